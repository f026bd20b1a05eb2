package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/bankcards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bankcards/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/bankcards/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/bankcards/mocks/port/persistence"
	securitymocks "github.com/amirhossein-jamali/bankcards/mocks/port/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

type tokenMocks struct {
	uow    *persistencemocks.MockUnitOfWork
	users  *persistencemocks.MockUserRepository
	tokens *persistencemocks.MockTokenRepository
	signer *securitymocks.MockTokenSigner
	logger *coremocks.MockLogger
}

func newQuietLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func newTokenServiceUnderTest(t *testing.T) (*TokenService, tokenMocks) {
	m := tokenMocks{
		uow:    persistencemocks.NewMockUnitOfWork(t),
		users:  persistencemocks.NewMockUserRepository(t),
		tokens: persistencemocks.NewMockTokenRepository(t),
		signer: securitymocks.NewMockTokenSigner(t),
		logger: newQuietLogger(t),
	}
	m.uow.EXPECT().GetUserRepository(mock.Anything).Return(m.users).Maybe()
	m.uow.EXPECT().GetTokenRepository(mock.Anything).Return(m.tokens).Maybe()

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	return NewTokenService(m.uow, m.signer, mockTime, m.logger, time.Hour), m
}

func newUser(id uint64, username string, role entity.Role) *entity.User {
	return &entity.User{ID: id, Username: username, PasswordHash: "$2a$hash", Role: role}
}

func TestTokenService_Issue(t *testing.T) {
	t.Run("Zero expiry uses the configured lifetime", func(t *testing.T) {
		service, m := newTokenServiceUnderTest(t)
		m.signer.EXPECT().Sign(mock.MatchedBy(func(c entity.TokenClaims) bool {
			return c.Subject == "alice01" &&
				c.IssuedAt.Equal(fixedTime) &&
				c.ExpiresAt.Equal(fixedTime.Add(time.Hour)) &&
				assert.ObjectsAreEqual([]string{"ROLE_USER"}, c.Authorities)
		})).Return("signed", nil).Once()

		token, err := service.Issue("alice01", []string{"ROLE_USER"}, time.Time{})

		require.NoError(t, err)
		assert.Equal(t, "signed", token)
	})

	t.Run("Explicit expiry is kept", func(t *testing.T) {
		service, m := newTokenServiceUnderTest(t)
		expiresAt := fixedTime.Add(5 * time.Minute)
		m.signer.EXPECT().Sign(mock.MatchedBy(func(c entity.TokenClaims) bool {
			return c.ExpiresAt.Equal(expiresAt)
		})).Return("signed", nil).Once()

		_, err := service.Issue("alice01", nil, expiresAt)

		require.NoError(t, err)
	})
}

func TestTokenService_Persist(t *testing.T) {
	ctx := context.Background()
	claims := &entity.TokenClaims{Subject: "alice01", IssuedAt: fixedTime, ExpiresAt: fixedTime.Add(time.Hour)}

	t.Run("Replaces the previous token of the user", func(t *testing.T) {
		// Arrange
		service, m := newTokenServiceUnderTest(t)
		m.signer.EXPECT().Parse("tok").Return(claims, nil).Once()
		m.users.EXPECT().GetByUsername(ctx, "alice01").Return(newUser(3, "alice01", entity.RoleUser), nil).Once()
		m.uow.EXPECT().Begin(ctx).Return(ctx, nil).Once()
		m.tokens.EXPECT().ExistsByValue(ctx, "tok").Return(false, nil).Once()
		m.tokens.EXPECT().Save(ctx, mock.MatchedBy(func(tk *entity.Token) bool {
			return tk.Value == "tok" && tk.UserID == 3 && tk.ExpiresAt.Equal(claims.ExpiresAt)
		})).Return(nil).Once()
		m.uow.EXPECT().Commit(ctx).Return(nil).Once()

		// Act
		err := service.Persist(ctx, "tok")

		// Assert
		require.NoError(t, err)
	})

	t.Run("Duplicate value is rejected", func(t *testing.T) {
		service, m := newTokenServiceUnderTest(t)
		m.signer.EXPECT().Parse("tok").Return(claims, nil).Once()
		m.users.EXPECT().GetByUsername(ctx, "alice01").Return(newUser(3, "alice01", entity.RoleUser), nil).Once()
		m.uow.EXPECT().Begin(ctx).Return(ctx, nil).Once()
		m.tokens.EXPECT().ExistsByValue(ctx, "tok").Return(true, nil).Once()
		m.uow.EXPECT().Rollback(ctx).Return(nil).Once()

		err := service.Persist(ctx, "tok")

		assert.ErrorIs(t, err, errs.ErrTokenAlreadyExists)
	})

	t.Run("Unknown subject is ignored", func(t *testing.T) {
		service, m := newTokenServiceUnderTest(t)
		m.signer.EXPECT().Parse("tok").Return(claims, nil).Once()
		m.users.EXPECT().GetByUsername(ctx, "alice01").Return(nil, errs.ErrUserNotFound).Once()

		err := service.Persist(ctx, "tok")

		require.NoError(t, err)
		m.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("Unparseable token is not stored", func(t *testing.T) {
		service, m := newTokenServiceUnderTest(t)
		m.signer.EXPECT().Parse("junk").Return(nil, errs.ErrTokenMalformed).Once()

		err := service.Persist(ctx, "junk")

		assert.ErrorIs(t, err, errs.ErrTokenMalformed)
	})
}

func TestTokenService_Validate(t *testing.T) {
	ctx := context.Background()

	t.Run("Stored token passes", func(t *testing.T) {
		service, m := newTokenServiceUnderTest(t)
		m.tokens.EXPECT().ExistsByValue(ctx, "tok").Return(true, nil).Once()

		assert.NoError(t, service.Validate(ctx, "tok"))
	})

	t.Run("Unknown token is not found", func(t *testing.T) {
		service, m := newTokenServiceUnderTest(t)
		m.tokens.EXPECT().ExistsByValue(ctx, "tok").Return(false, nil).Once()

		assert.ErrorIs(t, service.Validate(ctx, "tok"), errs.ErrTokenNotFound)
	})
}

func TestTokenService_ResolveClaims(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty token", func(t *testing.T) {
		service, _ := newTokenServiceUnderTest(t)

		_, err := service.ResolveClaims(ctx, "  ")

		assert.ErrorIs(t, err, errs.ErrTokenEmpty)
	})

	t.Run("Expired token is removed from the store", func(t *testing.T) {
		service, m := newTokenServiceUnderTest(t)
		m.signer.EXPECT().Parse("old").Return(nil, errs.ErrTokenExpired).Once()
		m.tokens.EXPECT().DeleteByValue(ctx, "old").Return(nil).Once()

		_, err := service.ResolveClaims(ctx, "old")

		assert.ErrorIs(t, err, errs.ErrTokenExpired)
	})

	t.Run("Bad signature leaves the store alone", func(t *testing.T) {
		service, m := newTokenServiceUnderTest(t)
		m.signer.EXPECT().Parse("forged").Return(nil, errs.ErrTokenSignatureInvalid).Once()

		_, err := service.ResolveClaims(ctx, "forged")

		assert.ErrorIs(t, err, errs.ErrTokenSignatureInvalid)
		m.tokens.AssertNotCalled(t, "DeleteByValue", mock.Anything, mock.Anything)
	})
}

func TestTokenService_Authenticate(t *testing.T) {
	ctx := context.Background()
	claims := &entity.TokenClaims{Subject: "root", ExpiresAt: fixedTime.Add(time.Hour)}

	t.Run("Resolves the caller", func(t *testing.T) {
		service, m := newTokenServiceUnderTest(t)
		m.tokens.EXPECT().ExistsByValue(ctx, "tok").Return(true, nil).Once()
		m.signer.EXPECT().Parse("tok").Return(claims, nil).Once()
		m.users.EXPECT().GetByUsername(ctx, "root").Return(newUser(1, "root", entity.RoleAdmin), nil).Once()

		identity, err := service.Authenticate(ctx, "tok")

		require.NoError(t, err)
		assert.Equal(t, uint64(1), identity.UserID)
		assert.True(t, identity.IsAdmin())
	})

	t.Run("Invalidated token is rejected before parsing", func(t *testing.T) {
		service, m := newTokenServiceUnderTest(t)
		m.tokens.EXPECT().ExistsByValue(ctx, "tok").Return(false, nil).Once()

		_, err := service.Authenticate(ctx, "tok")

		assert.ErrorIs(t, err, errs.ErrTokenNotFound)
		m.signer.AssertNotCalled(t, "Parse", mock.Anything)
	})

	t.Run("Deleted user", func(t *testing.T) {
		service, m := newTokenServiceUnderTest(t)
		m.tokens.EXPECT().ExistsByValue(ctx, "tok").Return(true, nil).Once()
		m.signer.EXPECT().Parse("tok").Return(claims, nil).Once()
		m.users.EXPECT().GetByUsername(ctx, "root").Return(nil, errs.ErrUserNotFound).Once()

		_, err := service.Authenticate(ctx, "tok")

		assert.ErrorIs(t, err, errs.ErrTokenNotFound)
	})

	t.Run("Store failure is passed through", func(t *testing.T) {
		service, m := newTokenServiceUnderTest(t)
		dbErr := errors.New("db down")
		m.tokens.EXPECT().ExistsByValue(ctx, "tok").Return(false, dbErr).Once()

		_, err := service.Authenticate(ctx, "tok")

		assert.ErrorIs(t, err, dbErr)
	})
}

func TestTokenService_InvalidateAndCurrent(t *testing.T) {
	ctx := context.Background()

	t.Run("Invalidate deletes by value", func(t *testing.T) {
		service, m := newTokenServiceUnderTest(t)
		m.tokens.EXPECT().DeleteByValue(ctx, "tok").Return(nil).Twice()

		require.NoError(t, service.Invalidate(ctx, "tok"))
		require.NoError(t, service.Invalidate(ctx, "tok"))
	})

	t.Run("CurrentToken returns the stored value", func(t *testing.T) {
		service, m := newTokenServiceUnderTest(t)
		m.tokens.EXPECT().GetByUserID(ctx, uint64(3)).Return(&entity.Token{Value: "tok", UserID: 3}, nil).Once()

		token, err := service.CurrentToken(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, "tok", token)
	})
}
