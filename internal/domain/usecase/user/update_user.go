package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/bankcards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bankcards/internal/domain/error"
	"github.com/amirhossein-jamali/bankcards/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bankcards/internal/domain/port/usecase"
)

// UpdateUser changes profile fields and role. Empty fields are left unchanged.
func (u *UserUseCase) UpdateUser(ctx context.Context, id uint64, req usecase.UpdateUserRequest) (*entity.User, error) {
	repo := u.uow.GetUserRepository(ctx)

	user, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Role != "" {
		role, err := entity.ParseRole(string(req.Role))
		if err != nil {
			return nil, err
		}
		user.Role = role
	}

	email := strings.TrimSpace(req.Email)
	if email != "" && !strings.EqualFold(email, user.Email) {
		taken, err := repo.ExistsByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("%w: email is taken", errs.ErrDuplicateUser)
		}
		user.Email = email
	}

	if name := strings.TrimSpace(req.FirstName); name != "" {
		user.FirstName = name
	}
	if name := strings.TrimSpace(req.LastName); name != "" {
		user.LastName = name
	}

	if err := repo.Update(ctx, user); err != nil {
		u.logger.Error("Failed to update user", map[string]any{
			"user_id": id,
			"error":   err.Error(),
		})
		return nil, err
	}

	u.logger.Info("User updated", map[string]any{
		"user_id": id,
		"role":    string(user.Role),
	})
	return user, nil
}

// DeleteUser removes the account. Its token is dropped first and its cards
// go with it through the foreign key.
func (u *UserUseCase) DeleteUser(ctx context.Context, id uint64) error {
	err := persistence.WithinTransaction(ctx, u.uow, func(txCtx context.Context) error {
		if err := u.uow.GetTokenRepository(txCtx).DeleteByUserID(txCtx, id); err != nil {
			return err
		}
		return u.uow.GetUserRepository(txCtx).Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	u.logger.Info("User deleted", map[string]any{
		"user_id": id,
	})
	return nil
}
