package security

import (
	"bytes"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cardNumberPattern = regexp.MustCompile(`^4\d{15}$`)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestRandomCardNumberGenerator(t *testing.T) {
	t.Run("should produce 16 digits starting with 4", func(t *testing.T) {
		gen := NewRandomCardNumberGenerator()

		for i := 0; i < 50; i++ {
			number, err := gen.Generate()
			require.NoError(t, err)
			assert.Regexp(t, cardNumberPattern, number)
		}
	})

	t.Run("should be deterministic for a fixed source", func(t *testing.T) {
		a := &RandomCardNumberGenerator{source: bytes.NewReader(bytes.Repeat([]byte{0x01}, 256))}
		b := &RandomCardNumberGenerator{source: bytes.NewReader(bytes.Repeat([]byte{0x01}, 256))}

		first, err := a.Generate()
		require.NoError(t, err)
		second, err := b.Generate()
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("should surface entropy failures", func(t *testing.T) {
		gen := &RandomCardNumberGenerator{source: failingReader{}}

		_, err := gen.Generate()
		assert.ErrorContains(t, err, "entropy exhausted")
	})
}
