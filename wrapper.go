package jsonfield

import (
	"encoding/json"
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/hupe1980/jsonfield/codec"
)

// Wrapper stores a value of type T as encoded JSON bytes.
//
// The stored bytes are the single piece of mutable state. They are always
// valid encoded JSON for a value of T, except transiently when the wrapper
// was constructed from untrusted external bytes; in that case validation is
// deferred to the first access, which fails with a DecodeError.
//
// A Wrapper is not safe for concurrent writes. See the package documentation
// for the full concurrency contract.
type Wrapper[T any] struct {
	bytes []byte
	codec codec.Codec
}

// New creates a wrapper by encoding v immediately.
//
// It returns an EncodeError if v is not representable as JSON (non-finite
// floats, cyclic structures).
func New[T any](v T, opts ...Option) (*Wrapper[T], error) {
	o := applyOptions(opts)

	b, err := o.codec.Marshal(v)
	if err != nil {
		return nil, &EncodeError{cause: err}
	}

	return &Wrapper[T]{bytes: b, codec: o.codec}, nil
}

// MustNew is like New but panics on encode failure. Intended for literals in
// tests and examples where the value is known to be encodable.
func MustNew[T any](v T, opts ...Option) *Wrapper[T] {
	w, err := New(v, opts...)
	if err != nil {
		panic(fmt.Errorf("jsonfield: %w", err))
	}
	return w
}

// FromBytes creates a wrapper over a copy of data without validating that it
// decodes. Validation happens on first access.
func FromBytes[T any](data []byte, opts ...Option) *Wrapper[T] {
	o := applyOptions(opts)
	return &Wrapper[T]{bytes: slices.Clone(data), codec: o.codec}
}

// FromString creates a wrapper from a JSON text string.
//
// It returns ErrInvalidUTF8 if s is not valid UTF-8. Decodability is not
// checked; like FromBytes, validation is deferred to first access.
func FromString[T any](s string, opts ...Option) (*Wrapper[T], error) {
	if !utf8.ValidString(s) {
		return nil, ErrInvalidUTF8
	}
	return FromBytes[T]([]byte(s), opts...), nil
}

// Value decodes the stored bytes into a T. Every call performs a full decode.
//
// Empty bytes, malformed JSON, and values of the wrong JSON type all surface
// as a DecodeError; a zero T is never silently returned for a bad payload.
func (w *Wrapper[T]) Value() (T, error) {
	var v T
	if err := w.codecOrDefault().Unmarshal(w.bytes, &v); err != nil {
		var zero T
		return zero, &DecodeError{cause: err}
	}
	return v, nil
}

// SetValue encodes v and replaces the stored bytes.
func (w *Wrapper[T]) SetValue(v T) error {
	b, err := w.codecOrDefault().Marshal(v)
	if err != nil {
		return &EncodeError{cause: err}
	}
	w.bytes = b
	return nil
}

// Field returns the value at a dotted field path, e.g. "company" or
// "address.city". It is a read-only projection; writing goes through Proxy.
func (w *Wrapper[T]) Field(path string) (any, error) {
	return w.Proxy().Get(path)
}

// RawBytes returns a copy of the stored payload without decoding it.
func (w *Wrapper[T]) RawBytes() []byte {
	return slices.Clone(w.bytes)
}

// JSONString returns the stored payload as a string.
//
// The second return value is false if the bytes are not valid UTF-8, which
// cannot happen for payloads written by this package but can for wrappers
// constructed from arbitrary external bytes.
func (w *Wrapper[T]) JSONString() (string, bool) {
	if !utf8.Valid(w.bytes) {
		return "", false
	}
	return string(w.bytes), true
}

// Refreshed returns a new wrapper holding a copy of the same bytes.
//
// There is no cache to invalidate (every access re-decodes), so this is a
// pass-through that yields an independent instance.
func (w *Wrapper[T]) Refreshed() *Wrapper[T] {
	return &Wrapper[T]{bytes: slices.Clone(w.bytes), codec: w.codec}
}

func (w *Wrapper[T]) codecOrDefault() codec.Codec {
	if w.codec == nil {
		return codec.Default
	}
	return w.codec
}

// envelope is the keyed serialized form: the payload under a single "data"
// field, base64-encoded per the JSON []byte convention.
type envelope struct {
	Data []byte `json:"data"`
}

// MarshalJSON implements json.Marshaler. The wrapper serializes as
// {"data": <base64 of the payload>}.
func (w Wrapper[T]) MarshalJSON() ([]byte, error) {
	return w.codecOrDefault().Marshal(envelope{Data: w.bytes})
}

// UnmarshalJSON implements json.Unmarshaler.
//
// The keyed {"data": ...} form is tried first; an explicit {"data": null}
// yields an empty payload, validated on first access. A bare base64 string
// is accepted as a fallback for hosts that stored the payload as an
// unwrapped scalar.
func (w *Wrapper[T]) UnmarshalJSON(data []byte) error {
	c := w.codecOrDefault()

	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := c.Unmarshal(data, &env); err == nil && env.Data != nil {
		if string(env.Data) == "null" {
			w.bytes = nil
			return nil
		}
		var payload []byte
		if err := c.Unmarshal(env.Data, &payload); err != nil {
			return &DecodeError{cause: fmt.Errorf("keyed form: %w", err)}
		}
		w.bytes = payload
		return nil
	}

	var raw []byte
	if err := c.Unmarshal(data, &raw); err != nil {
		return &DecodeError{cause: fmt.Errorf("neither keyed %q form nor bare payload: %w", "data", err)}
	}
	w.bytes = raw
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler, exposing the raw
// payload for hosts that persist it directly.
func (w Wrapper[T]) MarshalBinary() ([]byte, error) {
	return slices.Clone(w.bytes), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (w *Wrapper[T]) UnmarshalBinary(data []byte) error {
	w.bytes = slices.Clone(data)
	return nil
}
