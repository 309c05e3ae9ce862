package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// Notes:
// - Works for typical structs/maps/slices; field names are preserved.
// - time.Time encodes as RFC 3339 text (the encoding/json default).
// - Funcs, channels, complex numbers and non-finite floats are rejected.
//
// If you need custom encoding (e.g. a tuned third-party encoder), implement
// Codec and pass it to the wrapper via WithCodec.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the default codec used by the library.
//
// NOTE: This affects newly-created wrappers. Bytes already stored elsewhere
// decode under any of the built-in codecs since all of them accept standard
// JSON text.
var Default Codec = GoJSON{}
