package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/amirhossein-jamali/bankcards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bankcards/internal/domain/error"
	"github.com/amirhossein-jamali/bankcards/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bankcards/internal/infrastructure/adapter/api/dto"
	usecasemocks "github.com/amirhossein-jamali/bankcards/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var sampleTransaction = usecase.TransactionView{
	ID:             5,
	Amount:         "100.00",
	FromCardID:     11,
	FromCardMasked: "**** **** **** 4444",
	ToCardID:       12,
	ToCardMasked:   "**** **** **** 5555",
	Description:    "rent",
	Status:         entity.StatusCompleted,
	CreatedAt:      fixedTime,
}

type transferRouterMocks struct {
	transfers *usecasemocks.MockTransferUseCase
	cards     *usecasemocks.MockCardUseCase
}

func newTransferRouter(t *testing.T, identity *entity.Identity) (*gin.Engine, transferRouterMocks) {
	m := transferRouterMocks{
		transfers: usecasemocks.NewMockTransferUseCase(t),
		cards:     usecasemocks.NewMockCardUseCase(t),
	}
	h := NewTransferHandler(m.transfers, m.cards, newTestRenderer(t), newQuietLogger(t))

	router := newTestRouter(t, identity)
	router.POST("/api/cards/transfer", h.Transfer)
	router.GET("/api/cards/transactions", h.MyTransactions)
	router.GET("/api/cards/transactions/:id", h.GetTransaction)
	router.GET("/api/cards/admin/transactions", h.AllTransactions)
	router.GET("/api/cards/admin/transactions/pending", h.PendingTransactions)
	return router, m
}

func TestTransferHandler_Transfer(t *testing.T) {
	const body = `{"fromCardId":11,"toCardId":12,"amount":"100","description":"rent"}`

	t.Run("should transfer between the caller's cards", func(t *testing.T) {
		router, m := newTransferRouter(t, userIdentity)
		m.cards.EXPECT().IsOwnedBy(mock.Anything, uint64(11), uint64(7)).Return(true, nil).Once()
		m.cards.EXPECT().IsOwnedBy(mock.Anything, uint64(12), uint64(7)).Return(true, nil).Once()
		m.transfers.EXPECT().Transfer(mock.Anything, usecase.TransferRequest{
			FromCardID:  11,
			ToCardID:    12,
			Amount:      decimal.RequireFromString("100"),
			Description: "rent",
		}).Return(&sampleTransaction, nil).Once()

		w := serve(router, http.MethodPost, "/api/cards/transfer", body)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decode[dto.TransactionResponse](t, w)
		assert.Equal(t, uint64(5), resp.ID)
		assert.Equal(t, "COMPLETED", resp.Status)
		assert.Equal(t, "**** **** **** 5555", resp.ToCardNumber)
	})

	t.Run("should refuse a transfer to a foreign card without touching balances", func(t *testing.T) {
		router, m := newTransferRouter(t, userIdentity)
		m.cards.EXPECT().IsOwnedBy(mock.Anything, uint64(11), uint64(7)).Return(true, nil).Once()
		m.cards.EXPECT().IsOwnedBy(mock.Anything, uint64(12), uint64(7)).Return(false, nil).Once()

		w := serve(router, http.MethodPost, "/api/cards/transfer", body)

		assert.Equal(t, http.StatusForbidden, w.Code)
		m.transfers.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything)
	})

	t.Run("should leave missing cards for the engine to report", func(t *testing.T) {
		router, m := newTransferRouter(t, userIdentity)
		m.cards.EXPECT().IsOwnedBy(mock.Anything, uint64(11), uint64(7)).Return(false, errs.ErrCardNotFound).Once()
		m.cards.EXPECT().IsOwnedBy(mock.Anything, uint64(12), uint64(7)).Return(true, nil).Once()
		m.transfers.EXPECT().Transfer(mock.Anything, mock.Anything).Return(nil, errs.ErrSourceCardNotFound).Once()

		w := serve(router, http.MethodPost, "/api/cards/transfer", body)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, errs.CodeSourceCardNotFound, decodeError(t, w).Code)
	})

	t.Run("should report both statuses when a card is blocked", func(t *testing.T) {
		router, m := newTransferRouter(t, adminIdentity)
		m.transfers.EXPECT().Transfer(mock.Anything, mock.Anything).
			Return(nil, errs.NewCardsNotActiveError("ACTIVE", "BLOCKED")).Once()

		w := serve(router, http.MethodPost, "/api/cards/transfer", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, "Card Status Validation Failed", resp.Error)
		assert.Equal(t, "BLOCKED", resp.Details["secondCardStatus"])
	})

	t.Run("should answer a generic 500 when the mutation fails", func(t *testing.T) {
		router, m := newTransferRouter(t, adminIdentity)
		m.transfers.EXPECT().Transfer(mock.Anything, mock.Anything).
			Return(nil, errs.NewTransferError(5, 11, 12, "100.00", errors.New("deadlock detected"))).Once()

		w := serve(router, http.MethodPost, "/api/cards/transfer", body)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Transfer failed", decodeError(t, w).Message)
		assert.NotContains(t, w.Body.String(), "deadlock")
	})

	t.Run("should reject an amount with three decimals", func(t *testing.T) {
		router, _ := newTransferRouter(t, userIdentity)

		w := serve(router, http.MethodPost, "/api/cards/transfer", `{"fromCardId":11,"toCardId":12,"amount":"1.005"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeError(t, w).Details, "amount")
	})

	t.Run("should require both card ids", func(t *testing.T) {
		router, _ := newTransferRouter(t, userIdentity)

		w := serve(router, http.MethodPost, "/api/cards/transfer", `{"fromCardId":11,"amount":"1"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeError(t, w).Details, "toCardID")
	})
}

func TestTransferHandler_GetTransaction(t *testing.T) {
	t.Run("should show a transaction touching the caller's card", func(t *testing.T) {
		router, m := newTransferRouter(t, userIdentity)
		m.transfers.EXPECT().GetTransaction(mock.Anything, uint64(5)).Return(&sampleTransaction, nil).Once()
		m.cards.EXPECT().IsOwnedBy(mock.Anything, uint64(11), uint64(7)).Return(false, nil).Once()
		m.cards.EXPECT().IsOwnedBy(mock.Anything, uint64(12), uint64(7)).Return(true, nil).Once()

		w := serve(router, http.MethodGet, "/api/cards/transactions/5", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("should hide transactions between other users' cards", func(t *testing.T) {
		router, m := newTransferRouter(t, userIdentity)
		m.transfers.EXPECT().GetTransaction(mock.Anything, uint64(5)).Return(&sampleTransaction, nil).Once()
		m.cards.EXPECT().IsOwnedBy(mock.Anything, mock.Anything, uint64(7)).Return(false, nil).Twice()

		w := serve(router, http.MethodGet, "/api/cards/transactions/5", "")

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("should fail when the ownership lookup fails", func(t *testing.T) {
		router, m := newTransferRouter(t, userIdentity)
		m.transfers.EXPECT().GetTransaction(mock.Anything, uint64(5)).Return(&sampleTransaction, nil).Once()
		m.cards.EXPECT().IsOwnedBy(mock.Anything, uint64(11), uint64(7)).Return(false, errs.ErrDatabaseConnection).Once()

		w := serve(router, http.MethodGet, "/api/cards/transactions/5", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		m.cards.AssertNotCalled(t, "IsOwnedBy", mock.Anything, uint64(12), uint64(7))
	})

	t.Run("should treat a missing card as not owned", func(t *testing.T) {
		router, m := newTransferRouter(t, userIdentity)
		m.transfers.EXPECT().GetTransaction(mock.Anything, uint64(5)).Return(&sampleTransaction, nil).Once()
		m.cards.EXPECT().IsOwnedBy(mock.Anything, uint64(11), uint64(7)).Return(false, errs.ErrCardNotFound).Once()
		m.cards.EXPECT().IsOwnedBy(mock.Anything, uint64(12), uint64(7)).Return(true, nil).Once()

		w := serve(router, http.MethodGet, "/api/cards/transactions/5", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("should answer 404 for an unknown transaction", func(t *testing.T) {
		router, m := newTransferRouter(t, adminIdentity)
		m.transfers.EXPECT().GetTransaction(mock.Anything, uint64(404)).Return(nil, errs.ErrTransactionNotFound).Once()

		w := serve(router, http.MethodGet, "/api/cards/transactions/404", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTransferHandler_Listings(t *testing.T) {
	page := entity.Page[usecase.TransactionView]{Content: []usecase.TransactionView{sampleTransaction}, Page: 1, Size: 10, TotalItems: 1}

	t.Run("should list the caller's transactions", func(t *testing.T) {
		router, m := newTransferRouter(t, userIdentity)
		m.transfers.EXPECT().ListByUser(mock.Anything, uint64(7), mock.Anything).Return(page, nil).Once()

		w := serve(router, http.MethodGet, "/api/cards/transactions", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode[dto.PageResponse[dto.TransactionResponse]](t, w).Content, 1)
	})

	t.Run("should list every transaction", func(t *testing.T) {
		router, m := newTransferRouter(t, adminIdentity)
		m.transfers.EXPECT().ListAll(mock.Anything, mock.Anything).Return(page, nil).Once()

		w := serve(router, http.MethodGet, "/api/cards/admin/transactions", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("should list pending transactions", func(t *testing.T) {
		router, m := newTransferRouter(t, adminIdentity)
		m.transfers.EXPECT().ListByStatus(mock.Anything, entity.StatusPending, mock.Anything).
			Return(entity.Page[usecase.TransactionView]{Page: 1, Size: 10}, nil).Once()

		w := serve(router, http.MethodGet, "/api/cards/admin/transactions/pending", "")

		assert.Equal(t, http.StatusOK, w.Code)
		body := decode[dto.PageResponse[dto.TransactionResponse]](t, w)
		assert.NotNil(t, body.Content)
		assert.Empty(t, body.Content)
	})
}
