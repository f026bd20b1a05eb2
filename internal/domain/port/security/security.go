package security

import "github.com/amirhossein-jamali/bankcards/internal/domain/entity"

// PasswordHasher hashes and verifies user passwords
type PasswordHasher interface {
	// Hash returns a one-way hash of the plain password
	Hash(password string) (string, error)
	// Compare returns nil when password matches hash
	Compare(hash, password string) error
}

// TokenSigner encodes claims into a signed bearer string and back.
//
// Parse maps every failure to one of the token errors:
// ErrTokenEmpty, ErrTokenExpired, ErrTokenMalformed,
// ErrTokenSignatureInvalid or ErrTokenUnsupportedAlgorithm.
type TokenSigner interface {
	Sign(claims entity.TokenClaims) (string, error)
	Parse(token string) (*entity.TokenClaims, error)
}

// CardNumberGenerator produces new card numbers
type CardNumberGenerator interface {
	Generate() (string, error)
}
