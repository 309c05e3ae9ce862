package jsonfield

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Proxy is a transient view bound to one wrapper that permits single-field
// reads and writes without manual decode/encode calls.
//
// It holds no state beyond the wrapper reference; obtaining one is free and
// a fresh proxy per access is fine.
type Proxy[T any] struct {
	w *Wrapper[T]
}

// Proxy returns a mutation proxy bound to this wrapper.
func (w *Wrapper[T]) Proxy() *Proxy[T] {
	return &Proxy[T]{w: w}
}

// Get returns the value at a dotted field path as a decoded Go value
// (string, float64, bool, nil, map[string]any or []any).
//
// The stored payload must decode as a T; a bad payload surfaces as a
// DecodeError, a path that does not resolve as a FieldError wrapping
// ErrFieldNotFound.
func (p *Proxy[T]) Get(path string) (any, error) {
	res, err := p.lookup(path)
	if err != nil {
		return nil, err
	}
	return res.Value(), nil
}

// GetString returns the string at path. It returns a FieldError wrapping
// ErrTypeMismatch if the field holds a different JSON type.
func (p *Proxy[T]) GetString(path string) (string, error) {
	res, err := p.lookup(path)
	if err != nil {
		return "", err
	}
	if res.Type != gjson.String {
		return "", typeMismatch(path, res, "string")
	}
	return res.String(), nil
}

// GetInt returns the number at path truncated to an int64.
func (p *Proxy[T]) GetInt(path string) (int64, error) {
	res, err := p.lookup(path)
	if err != nil {
		return 0, err
	}
	if res.Type != gjson.Number {
		return 0, typeMismatch(path, res, "number")
	}
	return res.Int(), nil
}

// GetFloat returns the number at path as a float64.
func (p *Proxy[T]) GetFloat(path string) (float64, error) {
	res, err := p.lookup(path)
	if err != nil {
		return 0, err
	}
	if res.Type != gjson.Number {
		return 0, typeMismatch(path, res, "number")
	}
	return res.Float(), nil
}

// GetBool returns the boolean at path.
func (p *Proxy[T]) GetBool(path string) (bool, error) {
	res, err := p.lookup(path)
	if err != nil {
		return false, err
	}
	if !res.IsBool() {
		return false, typeMismatch(path, res, "bool")
	}
	return res.Bool(), nil
}

// Set replaces the value at a dotted field path. This is the only
// field-level write path: the field is replaced in the stored document and
// the whole document re-encoded through T with the wrapper's codec.
//
// Sibling fields keep their prior values. A value that does not fit T's
// shape at the path surfaces as a DecodeError; a path outside T's shape is
// rejected with a FieldError wrapping ErrFieldNotFound rather than silently
// dropped. The write is visible to the next read.
func (p *Proxy[T]) Set(path string, v any) error {
	w := p.w
	c := w.codecOrDefault()

	// sjson synthesizes structure over malformed input instead of failing,
	// so a broken payload must be rejected up front. Shape mismatches
	// against T are caught by the unmarshal below.
	if !gjson.ValidBytes(w.bytes) {
		return &DecodeError{cause: errMalformedPayload}
	}

	existed := gjson.GetBytes(w.bytes, path).Exists()

	updated, err := sjson.SetBytes(w.bytes, path, v)
	if err != nil {
		return &FieldError{Path: path, cause: err}
	}

	var parsed T
	if err := c.Unmarshal(updated, &parsed); err != nil {
		return &DecodeError{cause: err}
	}

	b, err := c.Marshal(parsed)
	if err != nil {
		return &EncodeError{cause: err}
	}

	// Re-encoding through T drops fields outside its shape, but the encoder
	// also elides valid fields (omitempty zero values). A path that resolved
	// before the write names a field of T regardless of what the encoder
	// emits; only a path absent both before and after the round-trip is
	// rejected.
	if !existed && !gjson.GetBytes(b, path).Exists() {
		return &FieldError{Path: path, cause: ErrFieldNotFound}
	}

	w.bytes = b
	return nil
}

// lookup validates the stored payload against T, then resolves path against
// the stored document.
func (p *Proxy[T]) lookup(path string) (gjson.Result, error) {
	if _, err := p.w.Value(); err != nil {
		return gjson.Result{}, err
	}

	res := gjson.GetBytes(p.w.bytes, path)
	if !res.Exists() {
		return gjson.Result{}, &FieldError{Path: path, cause: ErrFieldNotFound}
	}
	return res, nil
}

func typeMismatch(path string, res gjson.Result, want string) error {
	return &FieldError{
		Path:  path,
		cause: fmt.Errorf("%w: want %s, got %s", ErrTypeMismatch, want, res.Type),
	}
}
