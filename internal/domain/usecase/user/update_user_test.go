package user

import (
	"context"
	"testing"

	"github.com/amirhossein-jamali/bankcards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bankcards/internal/domain/error"
	"github.com/amirhossein-jamali/bankcards/internal/domain/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()

	existing := func() *entity.User {
		return &entity.User{ID: 3, Username: "bob", Email: "bob@example.com", FirstName: "Bob", LastName: "Lee", Role: entity.RoleUser}
	}

	t.Run("Promotes user and changes email", func(t *testing.T) {
		useCase, m := newUserUseCaseUnderTest(t)
		m.users.EXPECT().GetByID(ctx, uint64(3)).Return(existing(), nil).Once()
		m.users.EXPECT().ExistsByEmail(ctx, "robert@example.com").Return(false, nil).Once()
		m.users.EXPECT().Update(ctx, mock.MatchedBy(func(user *entity.User) bool {
			return user.Role == entity.RoleAdmin && user.Email == "robert@example.com" && user.FirstName == "Robert"
		})).Return(nil).Once()
		m.logger.EXPECT().Info("User updated", mock.Anything).Once()

		user, err := useCase.UpdateUser(ctx, 3, usecase.UpdateUserRequest{
			Email:     "robert@example.com",
			FirstName: "Robert",
			Role:      "ROLE_ADMIN",
		})

		require.NoError(t, err)
		assert.True(t, user.IsAdmin())
		assert.Equal(t, "Lee", user.LastName)
	})

	t.Run("Rejects taken email", func(t *testing.T) {
		useCase, m := newUserUseCaseUnderTest(t)
		m.users.EXPECT().GetByID(ctx, uint64(3)).Return(existing(), nil).Once()
		m.users.EXPECT().ExistsByEmail(ctx, "taken@example.com").Return(true, nil).Once()

		_, err := useCase.UpdateUser(ctx, 3, usecase.UpdateUserRequest{Email: "taken@example.com"})

		assert.ErrorIs(t, err, errs.ErrDuplicateUser)
	})

	t.Run("Unknown user", func(t *testing.T) {
		useCase, m := newUserUseCaseUnderTest(t)
		m.users.EXPECT().GetByID(ctx, uint64(404)).Return(nil, errs.ErrUserNotFound).Once()

		_, err := useCase.UpdateUser(ctx, 404, usecase.UpdateUserRequest{})

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	txCtx := context.WithValue(ctx, struct{ name string }{"tx"}, true)

	t.Run("Drops token and user in one unit of work", func(t *testing.T) {
		useCase, m := newUserUseCaseUnderTest(t)
		m.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		m.tokens.EXPECT().DeleteByUserID(txCtx, uint64(3)).Return(nil).Once()
		m.users.EXPECT().Delete(txCtx, uint64(3)).Return(nil).Once()
		m.uow.EXPECT().Commit(txCtx).Return(nil).Once()
		m.logger.EXPECT().Info("User deleted", mock.Anything).Once()

		require.NoError(t, useCase.DeleteUser(ctx, 3))
	})

	t.Run("Rolls back when user is missing", func(t *testing.T) {
		useCase, m := newUserUseCaseUnderTest(t)
		m.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		m.tokens.EXPECT().DeleteByUserID(txCtx, uint64(9)).Return(nil).Once()
		m.users.EXPECT().Delete(txCtx, uint64(9)).Return(errs.ErrUserNotFound).Once()
		m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		assert.ErrorIs(t, useCase.DeleteUser(ctx, 9), errs.ErrUserNotFound)
	})
}
