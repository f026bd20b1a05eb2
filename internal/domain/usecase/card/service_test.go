package card

import (
	"context"
	"testing"

	"github.com/amirhossein-jamali/bankcards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bankcards/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/bankcards/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/bankcards/mocks/port/persistence"
	securitymocks "github.com/amirhossein-jamali/bankcards/mocks/port/security"
	usecasemocks "github.com/amirhossein-jamali/bankcards/mocks/port/usecase"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serviceMocks struct {
	uow       *persistencemocks.MockUnitOfWork
	cards     *persistencemocks.MockCardRepository
	users     *persistencemocks.MockUserRepository
	store     *usecasemocks.MockAccountStore
	generator *securitymocks.MockCardNumberGenerator
}

func newServiceUnderTest(t *testing.T) (*Service, serviceMocks) {
	m := serviceMocks{
		uow:       persistencemocks.NewMockUnitOfWork(t),
		cards:     persistencemocks.NewMockCardRepository(t),
		users:     persistencemocks.NewMockUserRepository(t),
		store:     usecasemocks.NewMockAccountStore(t),
		generator: securitymocks.NewMockCardNumberGenerator(t),
	}
	m.uow.EXPECT().GetCardRepository(mock.Anything).Return(m.cards).Maybe()
	m.uow.EXPECT().GetUserRepository(mock.Anything).Return(m.users).Maybe()

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	svc := NewService(m.uow, m.store, m.generator, mockTime, newQuietLogger(t), Config{ValidityYears: 3, DefaultCurrency: "EUR"})
	return svc, m
}

func TestIssueCard(t *testing.T) {
	ctx := context.Background()
	owner := &entity.User{ID: 7, Username: "alice", FirstName: "Alice", LastName: "Smith", Role: entity.RoleUser}

	t.Run("should issue an active card with masked number", func(t *testing.T) {
		// Arrange
		svc, m := newServiceUnderTest(t)
		m.users.EXPECT().GetByID(ctx, uint64(7)).Return(owner, nil).Once()
		m.generator.EXPECT().Generate().Return("4111222233334444", nil).Once()
		m.cards.EXPECT().ExistsByNumber(ctx, "4111222233334444").Return(false, nil).Once()
		m.cards.EXPECT().Create(ctx, mock.MatchedBy(func(c *entity.Card) bool {
			return c.OwnerID == 7 && c.Currency == "USD" && c.Status == entity.CardStatusActive
		})).Run(func(_ context.Context, c *entity.Card) { c.ID = 11 }).Return(nil).Once()

		// Act
		view, err := svc.IssueCard(ctx, 7, "usd")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, uint64(11), view.ID)
		assert.Equal(t, "**** **** **** 4444", view.MaskedNumber)
		assert.Equal(t, "Alice Smith", view.OwnerName)
		assert.Equal(t, "0.00", view.Balance)
		assert.Equal(t, fixedTime.AddDate(3, 0, 0), view.ExpiryDate)
		assert.True(t, view.Active)
		assert.False(t, view.Expired)
	})

	t.Run("should retry when number is taken and use default currency", func(t *testing.T) {
		svc, m := newServiceUnderTest(t)
		m.users.EXPECT().GetByUsername(ctx, "alice").Return(owner, nil).Once()
		m.generator.EXPECT().Generate().Return("4000000000000001", nil).Once()
		m.generator.EXPECT().Generate().Return("4000000000000002", nil).Once()
		m.cards.EXPECT().ExistsByNumber(ctx, "4000000000000001").Return(true, nil).Once()
		m.cards.EXPECT().ExistsByNumber(ctx, "4000000000000002").Return(false, nil).Once()
		m.cards.EXPECT().Create(ctx, mock.MatchedBy(func(c *entity.Card) bool {
			return c.Number == "4000000000000002" && c.Currency == "EUR"
		})).Return(nil).Once()

		view, err := svc.IssueCardForUsername(ctx, "alice", "")

		require.NoError(t, err)
		assert.Equal(t, "**** **** **** 0002", view.MaskedNumber)
	})

	t.Run("should fail for unknown owner", func(t *testing.T) {
		svc, m := newServiceUnderTest(t)
		m.users.EXPECT().GetByID(ctx, uint64(99)).Return(nil, errs.ErrUserNotFound).Once()

		view, err := svc.IssueCard(ctx, 99, "USD")

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		assert.Nil(t, view)
	})

	t.Run("should reject invalid currency", func(t *testing.T) {
		svc, m := newServiceUnderTest(t)
		m.users.EXPECT().GetByID(ctx, uint64(7)).Return(owner, nil).Once()
		m.generator.EXPECT().Generate().Return("4111222233334444", nil).Once()
		m.cards.EXPECT().ExistsByNumber(ctx, "4111222233334444").Return(false, nil).Once()

		_, err := svc.IssueCard(ctx, 7, "dollars")

		assert.ErrorIs(t, err, errs.ErrInvalidCurrency)
	})
}

func TestCardLifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("should block and activate inside a transaction", func(t *testing.T) {
		svc, m := newServiceUnderTest(t)
		blockCtx := context.WithValue(ctx, struct{}{}, "block")
		activateCtx := context.WithValue(ctx, struct{}{}, "activate")

		m.uow.EXPECT().Begin(ctx).Return(blockCtx, nil).Once()
		m.store.EXPECT().SetStatus(blockCtx, uint64(1), entity.CardStatusBlocked).Return(nil).Once()
		m.uow.EXPECT().Commit(blockCtx).Return(nil).Once()

		require.NoError(t, svc.BlockCard(ctx, 1))

		m.uow.EXPECT().Begin(ctx).Return(activateCtx, nil).Once()
		m.store.EXPECT().SetStatus(activateCtx, uint64(1), entity.CardStatusActive).Return(nil).Once()
		m.uow.EXPECT().Commit(activateCtx).Return(nil).Once()

		require.NoError(t, svc.ActivateCard(ctx, 1))
	})

	t.Run("should roll back when the status write fails", func(t *testing.T) {
		svc, m := newServiceUnderTest(t)
		txCtx := context.WithValue(ctx, struct{}{}, "tx")

		m.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		m.store.EXPECT().SetStatus(txCtx, uint64(9), entity.CardStatusBlocked).Return(errs.ErrCardNotFound).Once()
		m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		assert.ErrorIs(t, svc.BlockCard(ctx, 9), errs.ErrCardNotFound)
	})

	t.Run("should delete card", func(t *testing.T) {
		svc, m := newServiceUnderTest(t)
		m.cards.EXPECT().Delete(ctx, uint64(1)).Return(nil).Once()

		require.NoError(t, svc.DeleteCard(ctx, 1))
	})

	t.Run("should check ownership", func(t *testing.T) {
		svc, m := newServiceUnderTest(t)
		m.store.EXPECT().Get(ctx, uint64(1)).Return(newCard(t, 1, 7, "0"), nil).Twice()

		owned, err := svc.IsOwnedBy(ctx, 1, 7)
		require.NoError(t, err)
		assert.True(t, owned)

		owned, err = svc.IsOwnedBy(ctx, 1, 8)
		require.NoError(t, err)
		assert.False(t, owned)
	})
}

func TestCardBalanceOperations(t *testing.T) {
	ctx := context.Background()
	txCtx := context.WithValue(ctx, struct{}{}, "tx")

	t.Run("should deposit inside a unit of work", func(t *testing.T) {
		// Arrange
		svc, m := newServiceUnderTest(t)
		card := newCard(t, 1, 7, "100.00")
		require.NoError(t, card.Deposit(decimal.RequireFromString("50")))

		m.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		m.store.EXPECT().Deposit(txCtx, uint64(1), decimal.RequireFromString("50")).Return(card, nil).Once()
		m.uow.EXPECT().Commit(txCtx).Return(nil).Once()
		m.users.EXPECT().GetByID(ctx, uint64(7)).Return(&entity.User{ID: 7, FirstName: "Alice"}, nil).Once()

		// Act
		view, err := svc.Deposit(ctx, 1, decimal.RequireFromString("50"))

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "150.00", view.Balance)
		assert.Equal(t, "Alice", view.OwnerName)
	})

	t.Run("should roll back a refused withdrawal", func(t *testing.T) {
		svc, m := newServiceUnderTest(t)
		insufficient := errs.NewInsufficientFundsError(1, "10.00", "50.00", "40.00")

		m.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		m.store.EXPECT().Withdraw(txCtx, uint64(1), decimal.RequireFromString("50")).Return(nil, insufficient).Once()
		m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		view, err := svc.Withdraw(ctx, 1, decimal.RequireFromString("50"))

		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
		assert.Nil(t, view)
	})

	t.Run("should deny balance of another user's card", func(t *testing.T) {
		svc, m := newServiceUnderTest(t)
		m.cards.EXPECT().GetByNumber(ctx, "4000000000000001").Return(newCard(t, 1, 7, "5"), nil).Once()

		view, err := svc.GetBalanceByNumber(ctx, 8, "4000000000000001")

		assert.ErrorIs(t, err, errs.ErrAccessDenied)
		assert.Nil(t, view)
	})

	t.Run("should return balance of own card", func(t *testing.T) {
		svc, m := newServiceUnderTest(t)
		m.cards.EXPECT().GetByNumber(ctx, "4000000000000001").Return(newCard(t, 1, 7, "5"), nil).Once()
		m.users.EXPECT().GetByID(ctx, uint64(7)).Return(nil, errs.ErrUserNotFound).Once()

		view, err := svc.GetBalanceByNumber(ctx, 7, "4000000000000001")

		require.NoError(t, err)
		assert.Equal(t, "5.00", view.Balance)
		assert.Equal(t, "", view.OwnerName)
	})
}

func TestCardListings(t *testing.T) {
	ctx := context.Background()

	t.Run("should normalize paging and load each owner once", func(t *testing.T) {
		// Arrange
		svc, m := newServiceUnderTest(t)
		cards := []*entity.Card{newCard(t, 1, 7, "1"), newCard(t, 2, 7, "2")}

		m.cards.EXPECT().ListByOwner(ctx, uint64(7), mock.MatchedBy(func(req entity.PageRequest) bool {
			return req.Page == 1 && req.Size == entity.DefaultPageSize && req.SortBy == "id"
		})).Return(cards, int64(2), nil).Once()
		m.users.EXPECT().GetByID(ctx, uint64(7)).Return(&entity.User{ID: 7, FirstName: "Alice", LastName: "Smith"}, nil).Once()

		// Act
		page, err := svc.ListByOwner(ctx, 7, entity.PageRequest{SortBy: "password"})

		// Assert
		require.NoError(t, err)
		require.Len(t, page.Content, 2)
		assert.Equal(t, int64(2), page.TotalItems)
		assert.Equal(t, "Alice Smith", page.Content[1].OwnerName)
		assert.Equal(t, "2.00", page.Content[1].Balance)
	})

	t.Run("should list active cards", func(t *testing.T) {
		svc, m := newServiceUnderTest(t)
		m.cards.EXPECT().ListByOwnerAndStatus(ctx, uint64(7), entity.CardStatusActive, mock.Anything).
			Return([]*entity.Card{}, int64(0), nil).Once()

		page, err := svc.ListByOwnerAndStatus(ctx, 7, entity.CardStatusActive, entity.PageRequest{})

		require.NoError(t, err)
		assert.Empty(t, page.Content)
		assert.True(t, page.IsLast())
	})
}
