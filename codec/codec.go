// Package codec centralizes the byte-level JSON encoding used by jsonfield.
//
// Codec selection is a compatibility boundary: a wrapper's stored bytes are
// produced by whichever codec the wrapper was configured with, and payloads
// written under one codec must stay readable by the codec that decodes them
// later. The built-in codecs all emit standard JSON text, so for well-formed
// payloads they are interchangeable.
package codec

import "fmt"

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
//
// Useful when the codec choice is itself configuration (e.g. read from the
// host application's settings) rather than hard-coded at the call site.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// MustMarshal is a helper for internal tests/benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
