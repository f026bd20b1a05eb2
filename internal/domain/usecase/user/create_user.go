package user

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/bankcards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bankcards/internal/domain/error"
	"github.com/amirhossein-jamali/bankcards/internal/domain/port/usecase"
)

// CreateUser creates a new account with a hashed password
func (u *UserUseCase) CreateUser(ctx context.Context, req usecase.CreateUserRequest) (*entity.User, error) {
	role := req.Role
	if role == "" {
		role = entity.RoleUser
	}
	role, err := entity.ParseRole(string(role))
	if err != nil {
		return nil, err
	}

	repo := u.uow.GetUserRepository(ctx)

	// Check if username or email already exists
	taken, err := repo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: username %q is taken", errs.ErrDuplicateUser, req.Username)
	}

	taken, err = repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: email is taken", errs.ErrDuplicateUser)
	}

	hash, err := u.hasher.Hash(req.Password)
	if err != nil {
		u.logger.Error("Failed to hash password", map[string]any{
			"username": req.Username,
			"error":    err.Error(),
		})
		return nil, err
	}

	// Create new user entity
	user, err := entity.NewUser(req.Username, req.Email, hash, req.FirstName, req.LastName, role, u.timeProvider)
	if err != nil {
		return nil, err
	}

	// Save the user to the database
	if err := repo.Create(ctx, user); err != nil {
		u.logger.Error("Failed to create user", map[string]any{
			"username": req.Username,
			"error":    err.Error(),
		})
		return nil, err
	}

	u.logger.Info("User created", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     string(user.Role),
	})

	return user, nil
}

// EnsureDefaultAdmin creates the configured admin account when its username is free
func (u *UserUseCase) EnsureDefaultAdmin(ctx context.Context, req usecase.CreateUserRequest) error {
	exists, err := u.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return err
	}

	if exists {
		u.logger.Info("Default admin already exists", map[string]any{
			"username": req.Username,
		})
		return nil
	}

	req.Role = entity.RoleAdmin
	if _, err := u.CreateUser(ctx, req); err != nil {
		return err
	}
	return nil
}
