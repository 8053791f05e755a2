package store

import "errors"

var (
	// ErrValidation indicates invalid member data or an unparseable document.
	ErrValidation = errors.New("validation error")

	// ErrDuplicateName indicates a member with that name already exists.
	ErrDuplicateName = errors.New("duplicate member name")

	// ErrNotFound indicates the member does not exist.
	ErrNotFound = errors.New("member not found")
)
