package observe

import "github.com/pkg/errors"

var (
	// ErrElementNotFound is returned when a value looked up or removed from a
	// List is not present
	ErrElementNotFound = errors.New("element not found")
	// ErrIndexOutOfRange is returned when an index falls outside a List
	ErrIndexOutOfRange = errors.New("index out of range")
)
