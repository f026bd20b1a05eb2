package usecase

import (
	"context"

	"github.com/amirhossein-jamali/bankcards/internal/domain/entity"
)

// CreateUserRequest carries the fields of a new account
type CreateUserRequest struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      entity.Role // Defaults to USER when empty
}

// UpdateUserRequest carries the editable fields of an account
type UpdateUserRequest struct {
	Email     string
	FirstName string
	LastName  string
	Role      entity.Role
}

// UserUseCase defines methods for user-related business operations
type UserUseCase interface {
	// CreateUser creates an account with a hashed password
	//
	// Possible errors:
	// - ErrDuplicateUser: If username or email is taken
	CreateUser(ctx context.Context, req CreateUserRequest) (*entity.User, error)

	// UpdateUser changes profile fields and role
	UpdateUser(ctx context.Context, id uint64, req UpdateUserRequest) (*entity.User, error)

	// DeleteUser removes the account, its cards and its token
	DeleteUser(ctx context.Context, id uint64) error

	GetUser(ctx context.Context, id uint64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// EnsureDefaultAdmin creates the configured admin account when no user has its username
	EnsureDefaultAdmin(ctx context.Context, req CreateUserRequest) error
}
