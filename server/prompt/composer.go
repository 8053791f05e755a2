// Package prompt composes the per-turn system message. It is the only place
// the system prompt is constructed.
package prompt

import (
	"fmt"
	"strings"

	"github.com/hrygo/famichat/server/clock"
	"github.com/hrygo/famichat/store"
)

// noInterests is shown when a member has no recorded interests yet.
const noInterests = "chưa có thông tin"

// Compose builds the system message for a member at a clock tick.
// Same inputs always yield the same output.
func Compose(member *store.Member, tick clock.Tick) string {
	var b strings.Builder

	if member == nil {
		b.WriteString("Bạn là một trợ lý gia đình thân thiện và hữu ích.")
	} else {
		interests := noInterests
		if len(member.Interests) > 0 {
			interests = strings.Join(member.Interests, ", ")
		}
		fmt.Fprintf(&b, "Bạn là trợ lý cá nhân của %s. ", member.Name)
		fmt.Fprintf(&b, "Sở thích của %s: %s. ", member.Name, interests)
		b.WriteString("Hãy cá nhân hóa câu trả lời theo những sở thích này và trả lời với giọng điệu thân thiện, tôn trọng.")
	}

	fmt.Fprintf(&b, " Hôm nay là %s, ngày %s.", tick.Weekday, tick.Date)
	return b.String()
}
