// Package clock supplies the current date for prompt composition.
// It exists as its own component so prompt and suggestion behavior is
// deterministically testable.
package clock

import "time"

// Tick is one observation of the clock.
type Tick struct {
	// Date is formatted dd/mm/yyyy, e.g. "02/06/2025".
	Date string
	// Weekday is the English weekday name, e.g. "Monday".
	Weekday string
}

// Clock produces ticks.
type Clock interface {
	Now() Tick
}

// SystemClock reads the wall clock in local time.
type SystemClock struct{}

func (SystemClock) Now() Tick {
	return TickAt(time.Now())
}

// Fixed returns a clock pinned at t.
func Fixed(t time.Time) Clock {
	return fixedClock{tick: TickAt(t)}
}

type fixedClock struct {
	tick Tick
}

func (c fixedClock) Now() Tick {
	return c.tick
}

// TickAt converts a time into a tick.
func TickAt(t time.Time) Tick {
	return Tick{
		Date:    t.Format("02/01/2006"),
		Weekday: t.Weekday().String(),
	}
}
