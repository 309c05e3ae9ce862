// Package jsonfield stores a structured value as encoded JSON bytes while
// exposing field-level read and write access as if the value were stored
// natively.
//
// The wrapper is a persistence convenience: a host storage framework persists
// one opaque byte blob, application code keeps working with named fields.
// Every read is a full decode of the stored bytes and every field write is a
// full decode plus re-encode. There is no caching and no synchronization;
// the entire cost model is one decode per read, one decode+encode per write.
//
// # Quick Start
//
//	type Job struct {
//	    Company string  `json:"company"`
//	    Salary  float64 `json:"salary"`
//	    Remote  bool    `json:"remote"`
//	}
//
//	w, err := jsonfield.New(Job{Company: "Apple", Salary: 120000, Remote: true})
//	if err != nil {
//	    return err
//	}
//
//	job, err := w.Value()        // full decode
//	err = w.Proxy().Set("company", "Google")
//	company, err := w.Field("company")
//
// # Field Paths
//
// Field and Proxy resolve dotted paths against the stored document, so nested
// fields are addressed directly:
//
//	err = w.Proxy().Set("address.city", "Berlin")
//	city, err := w.Proxy().GetString("address.city")
//
// Writes round-trip the whole document through T: the payload is decoded,
// the field replaced, and the result re-encoded with the configured codec.
// Sibling fields keep their prior values; fields outside T's shape do not
// survive a write.
//
// # Typed Access
//
// For compile-time safe access without path strings, pair a getter and a
// setter as a Lens and compose lenses for nested fields:
//
//	company := jsonfield.Lens[Job, string]{
//	    Get: func(j Job) string { return j.Company },
//	    Set: func(j *Job, v string) { j.Company = v },
//	}
//	v, err := jsonfield.At(w, company)
//	err = jsonfield.Update(w, company, "Google")
//
// # Serialized Form
//
// A wrapper marshals as a single-field JSON object {"data": <base64>} holding
// the payload, and unmarshals from either that keyed form or a bare base64
// string for hosts that store the payload as an unwrapped scalar. The raw
// payload is also reachable through encoding.BinaryMarshaler/Unmarshaler.
//
// # Dates
//
// time.Time fields encode as RFC 3339 text, the encoding/json default. Both
// built-in codecs produce the same representation, so stored data stays
// readable when the codec choice changes.
//
// # Concurrency
//
// Concurrent reads of one wrapper are safe; the codecs are stateless and
// reads never mutate the stored bytes. Concurrent writes (SetValue,
// Proxy.Set, Update) are not synchronized and must be serialized by the
// caller.
package jsonfield
