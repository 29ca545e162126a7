package yams

import "fmt"

// EmitterError is returned when the underlying event backend rejects an
// event: an invalid tag, a malformed anchor name, or an encoding violation.
type EmitterError struct {
	Message string
}

func (e *EmitterError) Error() string { return "yams: emitter error: " + e.Message }

// RepresenterError is returned when Represent has no mapping for a host
// value: it implements neither ScalarRepresentable nor
// NodeRepresentable, is none of the built-in kinds, and is not a slice,
// array, map or pointer.
type RepresenterError struct {
	Value interface{}
}

func (e *RepresenterError) Error() string {
	return fmt.Sprintf("yams: failed to represent %#v", e.Value)
}

// StateError reports a call to Emitter made from the wrong lifecycle state.
type StateError struct {
	Op    string
	State string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("yams: cannot %s: emitter is %s", e.Op, e.State)
}

var (
	// ErrNotOpened is returned by Serialize/Close when Open was never called.
	ErrNotOpened = &StateError{Op: "serialize", State: "not opened"}
	// ErrAlreadyOpened is returned by Open when the emitter is already opened.
	ErrAlreadyOpened = &StateError{Op: "open", State: "already opened"}
	// ErrAlreadyClosed is returned by Open/Serialize when the emitter is closed.
	ErrAlreadyClosed = &StateError{Op: "serialize", State: "already closed"}
)
