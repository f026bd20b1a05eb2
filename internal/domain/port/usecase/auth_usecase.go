package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/bankcards/internal/domain/entity"
)

// TokenUseCase mints, persists and verifies bearer tokens
type TokenUseCase interface {
	// Issue signs a token for subject. A zero expiresAt uses the configured lifetime.
	Issue(subject string, authorities []string, expiresAt time.Time) (string, error)

	// Persist stores the token for the user named in its subject.
	// Unknown subjects are ignored.
	//
	// Possible errors:
	// - ErrTokenAlreadyExists: If the exact value is already stored
	Persist(ctx context.Context, token string) error

	// Validate checks the token is stored
	//
	// Possible errors:
	// - ErrTokenNotFound: If the value was never stored or was invalidated
	Validate(ctx context.Context, token string) error

	// ResolveClaims verifies the signature and expiry. An expired token is removed from the store.
	ResolveClaims(ctx context.Context, token string) (*entity.TokenClaims, error)

	// Invalidate removes the token if present. Calling it twice is not an error.
	Invalidate(ctx context.Context, token string) error

	// Authenticate runs Validate and ResolveClaims and loads the caller
	Authenticate(ctx context.Context, token string) (*entity.Identity, error)

	// CurrentToken returns the stored token of the user
	//
	// Possible errors:
	// - ErrTokenNotFound: If the user has none
	CurrentToken(ctx context.Context, userID uint64) (string, error)
}

// SignUpRequest carries the fields of a self-registration
type SignUpRequest struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// AuthUseCase handles sign-up and sign-in
type AuthUseCase interface {
	// SignUp creates a USER account and returns its bearer token
	SignUp(ctx context.Context, req SignUpRequest) (string, error)

	// SignIn verifies credentials and returns a live bearer token
	//
	// Possible errors:
	// - ErrInvalidCredentials: If the username is unknown or the password is wrong
	SignIn(ctx context.Context, username, password string) (string, error)
}
