package card

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/bankcards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bankcards/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/bankcards/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/bankcards/mocks/port/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newCard(t *testing.T, id, ownerID uint64, balance string) *entity.Card {
	t.Helper()
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	card, err := entity.NewCard(ownerID, "400000000000000"+string(rune('0'+id%10)), "USD", 3, mockTime)
	require.NoError(t, err)
	card.ID = id
	require.NoError(t, card.SetBalance(decimal.RequireFromString(balance)))
	return card
}

func newQuietLogger(t *testing.T) *coremocks.MockLogger {
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return mockLogger
}

func TestAccountStoreDeposit(t *testing.T) {
	ctx := context.Background()

	t.Run("should add amount and persist", func(t *testing.T) {
		// Arrange
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockCards := persistencemocks.NewMockCardRepository(t)
		card := newCard(t, 1, 7, "200.00")

		mockUow.EXPECT().GetCardRepository(ctx).Return(mockCards)
		mockCards.EXPECT().GetByIDForUpdate(ctx, uint64(1)).Return(card, nil).Once()
		mockCards.EXPECT().Update(ctx, mock.MatchedBy(func(c *entity.Card) bool {
			return c.GetBalance() == "300.00"
		})).Return(nil).Once()

		store := NewAccountStore(mockUow, newQuietLogger(t))

		// Act
		updated, err := store.Deposit(ctx, 1, decimal.RequireFromString("100"))

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "300.00", updated.GetBalance())
	})

	t.Run("should fail for missing card", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockCards := persistencemocks.NewMockCardRepository(t)

		mockUow.EXPECT().GetCardRepository(ctx).Return(mockCards)
		mockCards.EXPECT().GetByIDForUpdate(ctx, uint64(9)).Return(nil, errs.ErrCardNotFound).Once()

		store := NewAccountStore(mockUow, newQuietLogger(t))

		updated, err := store.Deposit(ctx, 9, decimal.RequireFromString("100"))

		assert.ErrorIs(t, err, errs.ErrCardNotFound)
		assert.Nil(t, updated)
	})
}

func TestAccountStoreWithdraw(t *testing.T) {
	ctx := context.Background()

	t.Run("should refuse overdraft without persisting", func(t *testing.T) {
		// Arrange
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockCards := persistencemocks.NewMockCardRepository(t)
		card := newCard(t, 1, 7, "500.00")

		mockUow.EXPECT().GetCardRepository(ctx).Return(mockCards)
		mockCards.EXPECT().GetByIDForUpdate(ctx, uint64(1)).Return(card, nil).Once()

		store := NewAccountStore(mockUow, newQuietLogger(t))

		// Act
		updated, err := store.Withdraw(ctx, 1, decimal.RequireFromString("600"))

		// Assert
		require.Error(t, err)
		var detailed *errs.InsufficientFundsError
		require.True(t, errors.As(err, &detailed))
		assert.Equal(t, "500.00", detailed.Available)
		assert.Equal(t, "600.00", detailed.Requested)
		assert.Nil(t, updated)
		mockCards.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("should surface update failure", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockCards := persistencemocks.NewMockCardRepository(t)
		card := newCard(t, 1, 7, "500.00")

		mockUow.EXPECT().GetCardRepository(ctx).Return(mockCards)
		mockCards.EXPECT().GetByIDForUpdate(ctx, uint64(1)).Return(card, nil).Once()
		mockCards.EXPECT().Update(ctx, card).Return(errs.ErrDatabaseConnection).Once()

		store := NewAccountStore(mockUow, newQuietLogger(t))

		_, err := store.Withdraw(ctx, 1, decimal.RequireFromString("100"))

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestAccountStoreSetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("should block card and clear active flag", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockCards := persistencemocks.NewMockCardRepository(t)
		card := newCard(t, 1, 7, "0")

		mockUow.EXPECT().GetCardRepository(ctx).Return(mockCards)
		mockCards.EXPECT().GetByIDForUpdate(ctx, uint64(1)).Return(card, nil).Once()
		mockCards.EXPECT().UpdateStatus(ctx, uint64(1), entity.CardStatusBlocked, false).Return(nil).Once()

		store := NewAccountStore(mockUow, newQuietLogger(t))

		err := store.SetStatus(ctx, 1, entity.CardStatusBlocked)

		require.NoError(t, err)
	})

	t.Run("should fail for missing card", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockCards := persistencemocks.NewMockCardRepository(t)

		mockUow.EXPECT().GetCardRepository(ctx).Return(mockCards)
		mockCards.EXPECT().GetByIDForUpdate(ctx, uint64(2)).Return(nil, errs.ErrCardNotFound).Once()

		store := NewAccountStore(mockUow, newQuietLogger(t))

		assert.ErrorIs(t, store.SetStatus(ctx, 2, entity.CardStatusActive), errs.ErrCardNotFound)
	})

	t.Run("should report existence", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockCards := persistencemocks.NewMockCardRepository(t)

		mockUow.EXPECT().GetCardRepository(ctx).Return(mockCards)
		mockCards.EXPECT().ExistsByID(ctx, uint64(3)).Return(true, nil).Once()

		store := NewAccountStore(mockUow, newQuietLogger(t))

		exists, err := store.Exists(ctx, 3)

		require.NoError(t, err)
		assert.True(t, exists)
	})
}
