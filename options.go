package jsonfield

import "github.com/hupe1980/jsonfield/codec"

type options struct {
	codec codec.Codec
}

// Option configures wrapper construction.
//
// Options exist to avoid exploding the constructor surface with
// codec-specific variants.
type Option func(*options)

// WithCodec configures the codec used to encode and decode the payload.
//
// If nil is passed, codec.Default is used. All wrappers holding the same
// stored bytes must use JSON-text-compatible codecs; the built-in codecs
// are interchangeable.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

func applyOptions(opts []Option) *options {
	o := &options{
		codec: codec.Default,
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}
