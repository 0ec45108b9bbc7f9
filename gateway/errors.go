package gateway

import (
	"errors"
	"fmt"
)

// Sentinel errors for the decode pipeline. Match with errors.Is.
var (
	// ErrMalformedPayload marks frames or payload bodies that are structurally
	// invalid for their declared kind.
	ErrMalformedPayload = errors.New("malformed payload")
	// ErrUnknownEvent marks dispatch frames whose event name has no decoder.
	ErrUnknownEvent = errors.New("unknown dispatch event")
	// ErrUnexpectedOpcode marks opcodes outside the known set, likely a
	// protocol version mismatch.
	ErrUnexpectedOpcode = errors.New("unexpected opcode")
)

// FormatError reports a frame or payload body that is structurally invalid
// for its declared kind. Field names the missing or invalid field, or the
// dispatch event name whose body failed to decode.
type FormatError struct {
	Field string
	Err   error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed payload: %s: %s", e.Field, e.Err)
	}
	return fmt.Sprintf("malformed payload: %s", e.Field)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Is reports a match against ErrMalformedPayload so callers can classify
// without inspecting the concrete type.
func (e *FormatError) Is(target error) bool { return target == ErrMalformedPayload }

// UnknownEventError reports a dispatch frame whose event name is not in the
// registry. Tag carries the name verbatim for diagnostics; callers may treat
// this as ignorable for forward compatibility.
type UnknownEventError struct {
	Tag string
}

func (e *UnknownEventError) Error() string {
	return fmt.Sprintf("unknown dispatch event %q", e.Tag)
}

func (e *UnknownEventError) Is(target error) bool { return target == ErrUnknownEvent }

// UnexpectedOpcodeError reports an opcode outside the known control and
// dispatch set.
type UnexpectedOpcodeError struct {
	Op Opcode
}

func (e *UnexpectedOpcodeError) Error() string {
	return fmt.Sprintf("unexpected opcode %d", e.Op)
}

func (e *UnexpectedOpcodeError) Is(target error) bool { return target == ErrUnexpectedOpcode }
