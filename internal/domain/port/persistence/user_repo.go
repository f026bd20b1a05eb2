package persistence

import (
	"context"

	"github.com/amirhossein-jamali/bankcards/internal/domain/entity"
)

// UserRepository defines essential methods to interact with user data
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByUsername retrieves a user by its unique username
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has this username
	// - ErrDatabaseConnection: If database connection fails
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	// ExistsByUsername checks whether the username is taken
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByEmail checks whether the email is taken
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create stores a new user and sets its ID
	//
	// Possible errors:
	// - ErrDuplicateUser: If username or email already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// Update updates user profile and role
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrDuplicateUser: If the new username or email collides
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user, its cards and its token
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrCardHasTransactions: If one of the user's cards has transaction history
	Delete(ctx context.Context, id uint64) error
}
