package security

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/bankcards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bankcards/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bankcards/internal/domain/port/core"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// MinSecretBytes is the shortest decoded HS256 key accepted
const MinSecretBytes = 32

var errUnexpectedAlgorithm = errors.New("unexpected signing algorithm")

type accessClaims struct {
	Authorities []string `json:"authorities,omitempty"`
	jwt.RegisteredClaims
}

// JWTSigner signs and verifies HS256 bearer tokens
type JWTSigner struct {
	key          []byte
	timeProvider coreport.TimeProvider
}

// NewJWTSigner builds a signer from a base64 encoded secret
func NewJWTSigner(base64Secret string, timeProvider coreport.TimeProvider) (*JWTSigner, error) {
	key, err := DecodeSecret(base64Secret)
	if err != nil {
		return nil, err
	}

	return &JWTSigner{key: key, timeProvider: timeProvider}, nil
}

// DecodeSecret decodes a base64 secret and checks its length
func DecodeSecret(base64Secret string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(strings.TrimSpace(base64Secret))
	if err != nil {
		return nil, fmt.Errorf("jwt secret is not valid base64: %w", err)
	}
	if len(key) < MinSecretBytes {
		return nil, fmt.Errorf("jwt secret must decode to at least %d bytes, got %d", MinSecretBytes, len(key))
	}
	return key, nil
}

// Sign encodes claims. A missing ID gets a random one so two tokens minted
// in the same second never collide.
func (s *JWTSigner) Sign(claims entity.TokenClaims) (string, error) {
	id := claims.ID
	if id == "" {
		id = uuid.NewString()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &accessClaims{
		Authorities: claims.Authorities,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			Subject:   claims.Subject,
			IssuedAt:  jwt.NewNumericDate(claims.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(claims.ExpiresAt),
		},
	})

	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies the signature and expiry and returns the claims
func (s *JWTSigner) Parse(token string) (*entity.TokenClaims, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errs.ErrTokenEmpty
	}

	claims := &accessClaims{}
	_, err := jwt.ParseWithClaims(token, claims, s.keyFunc,
		jwt.WithTimeFunc(s.timeProvider.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, mapJWTError(err)
	}

	result := &entity.TokenClaims{
		ID:          claims.ID,
		Subject:     claims.Subject,
		Authorities: claims.Authorities,
	}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}
	return result, nil
}

func (s *JWTSigner) keyFunc(token *jwt.Token) (any, error) {
	if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
		return nil, fmt.Errorf("%w: %s", errUnexpectedAlgorithm, token.Method.Alg())
	}
	return s.key, nil
}

// the order matters: a keyfunc rejection is reported as unverifiable
func mapJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return errs.ErrTokenExpired
	case errors.Is(err, errUnexpectedAlgorithm), errors.Is(err, jwt.ErrTokenUnverifiable):
		return errs.ErrTokenUnsupportedAlgorithm
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return errs.ErrTokenSignatureInvalid
	default:
		return errs.ErrTokenMalformed
	}
}
