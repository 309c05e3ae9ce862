package jsonfield

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidUTF8 is returned when string input is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

	// ErrFieldNotFound is returned when a field path does not resolve
	// within the stored document.
	ErrFieldNotFound = errors.New("field not found")

	// ErrTypeMismatch is returned when a typed field accessor finds a value
	// of a different JSON type at the path.
	ErrTypeMismatch = errors.New("field has unexpected type")

	errMalformedPayload = errors.New("payload is not valid JSON")
)

// DecodeError indicates the stored bytes do not decode as a value of T:
// empty payload, malformed JSON, or a shape mismatch.
//
// The underlying codec error can be accessed via errors.Unwrap.
type DecodeError struct {
	cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode payload: %v", e.cause)
}

func (e *DecodeError) Unwrap() error { return e.cause }

// EncodeError indicates a value could not be encoded to JSON, e.g. a
// non-finite float or a cyclic structure.
//
// The underlying codec error can be accessed via errors.Unwrap.
type EncodeError struct {
	cause error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode value: %v", e.cause)
}

func (e *EncodeError) Unwrap() error { return e.cause }

// FieldError indicates a failure resolving or writing a single field path.
//
// It wraps ErrFieldNotFound or ErrTypeMismatch where applicable, so both
// remain matchable with errors.Is.
type FieldError struct {
	Path  string
	cause error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Path, e.cause)
}

func (e *FieldError) Unwrap() error { return e.cause }
