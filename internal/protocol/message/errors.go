package message

import (
	"errors"
	"fmt"

	"github.com/danmuck/antlink/internal/protocol/ant"
	"github.com/danmuck/antlink/internal/protocol/frame"
)

// ErrUnknownType is returned for a well-formed frame whose type code has no
// registered kind.
var ErrUnknownType = errors.New("message: unknown type")

// FieldRangeError reports a field value outside its wire width.
// It matches frame.ErrMalformed.
type FieldRangeError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e FieldRangeError) Error() string {
	return fmt.Sprintf("message: field %s=%d out of range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

func (e FieldRangeError) Unwrap() error {
	return frame.ErrMalformed
}

// FieldLengthError reports a byte field or payload of the wrong length.
// It matches frame.ErrMalformed.
type FieldLengthError struct {
	Field string
	Got   int
	Min   int
	Max   int
}

func (e FieldLengthError) Error() string {
	if e.Min == e.Max {
		return fmt.Sprintf("message: field %s has %d bytes, want %d", e.Field, e.Got, e.Min)
	}
	return fmt.Sprintf("message: field %s has %d bytes, want %d..%d", e.Field, e.Got, e.Min, e.Max)
}

func (e FieldLengthError) Unwrap() error {
	return frame.ErrMalformed
}

// UnknownTypeError carries the unregistered type code. It matches ErrUnknownType.
type UnknownTypeError struct {
	Type ant.MessageID
}

func (e UnknownTypeError) Error() string {
	return fmt.Sprintf("message: unknown type 0x%02x", uint8(e.Type))
}

func (e UnknownTypeError) Unwrap() error {
	return ErrUnknownType
}
