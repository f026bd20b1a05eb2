package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/bankcards/internal/domain/port/core"
	"github.com/amirhossein-jamali/bankcards/internal/domain/port/usecase"
)

// SeedDefaultAdmin makes sure the configured administrator account exists.
// An empty username disables seeding.
func SeedDefaultAdmin(ctx context.Context, users usecase.UserUseCase, req usecase.CreateUserRequest, logger coreport.Logger) error {
	if req.Username == "" {
		logger.Debug("Default admin seeding disabled", nil)
		return nil
	}

	if err := users.EnsureDefaultAdmin(ctx, req); err != nil {
		logger.Error("Failed to seed default admin", map[string]any{
			"username": req.Username,
			"error":    err.Error(),
		})
		return err
	}
	return nil
}
