package persistence

import (
	"context"

	"github.com/amirhossein-jamali/bankcards/internal/domain/entity"
)

// TokenRepository stores issued bearer tokens keyed by their string value
type TokenRepository interface {
	// Save stores the token as the user's only token, replacing any previous
	// one atomically
	//
	// Possible errors:
	// - ErrTokenAlreadyExists: If the exact value is already stored for another user
	Save(ctx context.Context, token *entity.Token) error

	// GetByValue retrieves a token by its value
	//
	// Possible errors:
	// - ErrTokenNotFound: If no token has this value
	GetByValue(ctx context.Context, value string) (*entity.Token, error)

	// ExistsByValue checks whether the value is stored
	ExistsByValue(ctx context.Context, value string) (bool, error)

	// GetByUserID retrieves the user's current token
	//
	// Possible errors:
	// - ErrTokenNotFound: If the user has no token
	GetByUserID(ctx context.Context, userID uint64) (*entity.Token, error)

	// DeleteByValue removes the token if present
	DeleteByValue(ctx context.Context, value string) error

	// DeleteByUserID removes every token of the user
	DeleteByUserID(ctx context.Context, userID uint64) error
}
