package user

import (
	"context"

	"github.com/amirhossein-jamali/bankcards/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/bankcards/internal/domain/port/core"
	"github.com/amirhossein-jamali/bankcards/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bankcards/internal/domain/port/security"
)

// UserUseCase handles user-related business logic
type UserUseCase struct {
	uow          persistence.UnitOfWork
	hasher       security.PasswordHasher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	uow persistence.UnitOfWork,
	hasher security.PasswordHasher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UserUseCase {
	return &UserUseCase{
		uow:          uow,
		hasher:       hasher,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetUser returns a user by ID
func (u *UserUseCase) GetUser(ctx context.Context, id uint64) (*entity.User, error) {
	return u.uow.GetUserRepository(ctx).GetByID(ctx, id)
}

// GetByUsername returns a user by username
func (u *UserUseCase) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return u.uow.GetUserRepository(ctx).GetByUsername(ctx, username)
}

// ExistsByUsername checks if the username is taken
func (u *UserUseCase) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return u.uow.GetUserRepository(ctx).ExistsByUsername(ctx, username)
}

// ExistsByEmail checks if the email is taken
func (u *UserUseCase) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return u.uow.GetUserRepository(ctx).ExistsByEmail(ctx, email)
}
