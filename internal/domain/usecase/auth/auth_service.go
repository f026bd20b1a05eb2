package auth

import (
	"context"
	"errors"
	"time"

	"github.com/amirhossein-jamali/bankcards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bankcards/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bankcards/internal/domain/port/core"
	"github.com/amirhossein-jamali/bankcards/internal/domain/port/security"
	"github.com/amirhossein-jamali/bankcards/internal/domain/port/usecase"
)

// Service handles sign-up and sign-in
type Service struct {
	users  usecase.UserUseCase
	tokens usecase.TokenUseCase
	hasher security.PasswordHasher
	logger coreport.Logger
}

// NewService creates a new auth Service
func NewService(
	users usecase.UserUseCase,
	tokens usecase.TokenUseCase,
	hasher security.PasswordHasher,
	logger coreport.Logger,
) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
		hasher: hasher,
		logger: logger,
	}
}

// SignUp registers a USER account and returns a fresh token for it
func (s *Service) SignUp(ctx context.Context, req usecase.SignUpRequest) (string, error) {
	user, err := s.users.CreateUser(ctx, usecase.CreateUserRequest{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      entity.RoleUser,
	})
	if err != nil {
		return "", err
	}

	return s.mint(ctx, user)
}

// SignIn verifies credentials. The user's stored token is reused while it is
// still valid; otherwise it is dropped and a new one is minted.
func (s *Service) SignIn(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return "", errs.ErrInvalidCredentials
		}
		return "", err
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		s.logger.Info("Sign-in rejected", map[string]any{
			"username": username,
		})
		return "", errs.ErrInvalidCredentials
	}

	current, err := s.tokens.CurrentToken(ctx, user.ID)
	switch {
	case err == nil:
		if s.isLive(ctx, current) {
			return current, nil
		}
		if err := s.tokens.Invalidate(ctx, current); err != nil {
			return "", err
		}
	case !errors.Is(err, errs.ErrTokenNotFound):
		return "", err
	}

	return s.mint(ctx, user)
}

func (s *Service) isLive(ctx context.Context, token string) bool {
	if err := s.tokens.Validate(ctx, token); err != nil {
		return false
	}
	_, err := s.tokens.ResolveClaims(ctx, token)
	return err == nil
}

func (s *Service) mint(ctx context.Context, user *entity.User) (string, error) {
	token, err := s.tokens.Issue(user.Username, user.Authorities(), time.Time{})
	if err != nil {
		return "", err
	}

	if err := s.tokens.Persist(ctx, token); err != nil {
		return "", err
	}

	s.logger.Info("Token issued", map[string]any{
		"user_id": user.ID,
	})
	return token, nil
}

// Authorize reports whether identity holds role. A nil identity is denied.
func Authorize(identity *entity.Identity, role entity.Role) bool {
	return identity.HasAuthority(role)
}
