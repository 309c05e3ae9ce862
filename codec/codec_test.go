package codec

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDoc struct {
	ID    uint64    `json:"id"`
	Title string    `json:"title"`
	Score float64   `json:"score"`
	Tags  []string  `json:"tags"`
	When  time.Time `json:"when"`
}

func TestCodecRoundTrip(t *testing.T) {
	doc := testDoc{
		ID:    7,
		Title: "hello",
		Score: 0.25,
		Tags:  []string{"a", "b"},
		When:  time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			b, err := c.Marshal(doc)
			require.NoError(t, err)

			var got testDoc
			err = c.Unmarshal(b, &got)
			require.NoError(t, err)
			assert.Equal(t, doc, got)
		})
	}
}

func TestCodecCrossDecode(t *testing.T) {
	// Bytes written by one built-in codec must decode under the other.
	doc := testDoc{ID: 1, Title: "cross", When: time.Unix(0, 0).UTC()}

	b, err := JSON{}.Marshal(doc)
	require.NoError(t, err)

	var got testDoc
	require.NoError(t, GoJSON{}.Unmarshal(b, &got))
	assert.Equal(t, doc, got)

	b, err = GoJSON{}.Marshal(doc)
	require.NoError(t, err)

	got = testDoc{}
	require.NoError(t, JSON{}.Unmarshal(b, &got))
	assert.Equal(t, doc, got)
}

func TestCodecMarshalError(t *testing.T) {
	for _, c := range []Codec{JSON{}, GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			_, err := c.Marshal(math.Inf(1))
			assert.Error(t, err)
		})
	}
}

func TestByName(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"json", true},
		{"go-json", true},
		{"msgpack", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := ByName(tt.name)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.name, c.Name())
			} else {
				assert.Nil(t, c)
			}
		})
	}
}

func TestDefaultIsRegistered(t *testing.T) {
	c, ok := ByName(Default.Name())
	require.True(t, ok)
	assert.Equal(t, Default.Name(), c.Name())
}
