package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/amirhossein-jamali/bankcards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bankcards/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bankcards/internal/domain/port/core"
	"github.com/amirhossein-jamali/bankcards/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bankcards/internal/domain/port/security"
)

// DefaultTokenLifetime is used when no lifetime is configured
const DefaultTokenLifetime = 24 * time.Hour

// TokenService mints, persists and verifies bearer tokens.
// A token is accepted only when it is stored AND its signature and expiry
// check out; the two checks are independent.
type TokenService struct {
	uow          persistence.UnitOfWork
	signer       security.TokenSigner
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	lifetime     time.Duration
}

// NewTokenService creates a new TokenService
func NewTokenService(
	uow persistence.UnitOfWork,
	signer security.TokenSigner,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	lifetime time.Duration,
) *TokenService {
	if lifetime <= 0 {
		lifetime = DefaultTokenLifetime
	}

	return &TokenService{
		uow:          uow,
		signer:       signer,
		timeProvider: timeProvider,
		logger:       logger,
		lifetime:     lifetime,
	}
}

// Issue signs a token for subject. It does not touch the store.
func (s *TokenService) Issue(subject string, authorities []string, expiresAt time.Time) (string, error) {
	now := s.timeProvider.Now()
	if expiresAt.IsZero() {
		expiresAt = now.Add(s.lifetime)
	}

	return s.signer.Sign(entity.TokenClaims{
		Subject:     subject,
		Authorities: authorities,
		IssuedAt:    now,
		ExpiresAt:   expiresAt,
	})
}

// Persist stores the token for the user named in its subject, replacing
// the user's previous token
func (s *TokenService) Persist(ctx context.Context, token string) error {
	claims, err := s.signer.Parse(token)
	if err != nil {
		return err
	}

	user, err := s.uow.GetUserRepository(ctx).GetByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			s.logger.Warn("Token subject does not resolve to a user, not persisting", map[string]any{
				"subject": claims.Subject,
			})
			return nil
		}
		return err
	}

	return persistence.WithinTransaction(ctx, s.uow, func(txCtx context.Context) error {
		tokens := s.uow.GetTokenRepository(txCtx)

		exists, err := tokens.ExistsByValue(txCtx, token)
		if err != nil {
			return err
		}
		if exists {
			return errs.ErrTokenAlreadyExists
		}

		if err := tokens.Save(txCtx, &entity.Token{
			Value:     token,
			UserID:    user.ID,
			CreatedAt: claims.IssuedAt,
			ExpiresAt: claims.ExpiresAt,
		}); err != nil {
			return err
		}

		s.logger.Debug("Token persisted", map[string]any{
			"user_id":    user.ID,
			"expires_at": claims.ExpiresAt,
		})
		return nil
	})
}

// Validate fails with ErrTokenNotFound unless the exact value is stored
func (s *TokenService) Validate(ctx context.Context, token string) error {
	exists, err := s.uow.GetTokenRepository(ctx).ExistsByValue(ctx, token)
	if err != nil {
		return err
	}
	if !exists {
		return errs.ErrTokenNotFound
	}
	return nil
}

// ResolveClaims verifies signature and expiry. An expired token is removed
// from the store before the error is returned.
func (s *TokenService) ResolveClaims(ctx context.Context, token string) (*entity.TokenClaims, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errs.ErrTokenEmpty
	}

	claims, err := s.signer.Parse(token)
	if err != nil {
		if errors.Is(err, errs.ErrTokenExpired) {
			if delErr := s.uow.GetTokenRepository(ctx).DeleteByValue(ctx, token); delErr != nil {
				s.logger.Warn("Failed to remove expired token", map[string]any{
					"error": delErr.Error(),
				})
			}
		}
		return nil, err
	}

	return claims, nil
}

// Invalidate removes the stored token. Unknown tokens are ignored.
func (s *TokenService) Invalidate(ctx context.Context, token string) error {
	return s.uow.GetTokenRepository(ctx).DeleteByValue(ctx, token)
}

// Authenticate resolves a bearer token to the calling identity
func (s *TokenService) Authenticate(ctx context.Context, token string) (*entity.Identity, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errs.ErrTokenEmpty
	}

	if err := s.Validate(ctx, token); err != nil {
		return nil, err
	}

	claims, err := s.ResolveClaims(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := s.uow.GetUserRepository(ctx).GetByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrTokenNotFound
		}
		return nil, err
	}

	return entity.NewIdentity(user), nil
}

// CurrentToken returns the user's stored token
func (s *TokenService) CurrentToken(ctx context.Context, userID uint64) (string, error) {
	token, err := s.uow.GetTokenRepository(ctx).GetByUserID(ctx, userID)
	if err != nil {
		return "", err
	}
	return token.Value, nil
}
