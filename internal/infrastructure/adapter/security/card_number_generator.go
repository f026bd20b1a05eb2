package security

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strings"
)

const (
	cardNumberPrefix = "4"
	cardNumberDigits = 16
)

var ten = big.NewInt(10)

// RandomCardNumberGenerator produces 16 digit numbers starting with 4
type RandomCardNumberGenerator struct {
	source io.Reader
}

// NewRandomCardNumberGenerator reads from crypto/rand
func NewRandomCardNumberGenerator() *RandomCardNumberGenerator {
	return &RandomCardNumberGenerator{source: rand.Reader}
}

// Generate returns a new card number. Uniqueness is checked by the caller.
func (g *RandomCardNumberGenerator) Generate() (string, error) {
	var b strings.Builder
	b.Grow(cardNumberDigits)
	b.WriteString(cardNumberPrefix)

	for b.Len() < cardNumberDigits {
		d, err := rand.Int(g.source, ten)
		if err != nil {
			return "", fmt.Errorf("failed to generate card number: %w", err)
		}
		b.WriteByte(byte('0' + d.Int64()))
	}
	return b.String(), nil
}
