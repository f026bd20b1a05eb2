package handler

import (
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

var sampleCard = usecase.CardView{
	ID:           11,
	MaskedNumber: "**** **** **** 4444",
	OwnerID:      7,
	OwnerName:    "Alice Smith",
	Currency:     "USD",
	ExpiryDate:   fixedTime.AddDate(3, 0, 0),
	Status:       entity.CardStatusActive,
	Active:       true,
	Balance:      "500.00",
}

func newCardRouter(t *testing.T, identity *entity.Identity) (*gin.Engine, *usecasemocks.MockCardUseCase) {
	cards := usecasemocks.NewMockCardUseCase(t)
	h := NewCardHandler(cards, newTestRenderer(t), newQuietLogger(t))

	router := newTestRouter(t, identity)
	router.GET("/api/cards/my-cards", h.MyCards)
	router.GET("/api/cards/my-cards/active", h.MyActiveCards)
	router.POST("/api/cards/create", h.Create)
	router.POST("/api/cards/block/:id", h.Block)
	router.GET("/api/cards/balance", h.Balance)
	router.GET("/api/cards/admin/all-cards", h.AllCards)
	router.POST("/api/cards/admin/create/:username", h.CreateForUser)
	router.DELETE("/api/cards/admin/delete/:id", h.Delete)
	router.POST("/api/cards/admin/update/:id", h.Activate)
	router.POST("/api/cards/admin/deposit/:id", h.Deposit)
	router.POST("/api/cards/admin/withdraw/:id", h.Withdraw)
	return router, cards
}

func TestCardHandler_MyCards(t *testing.T) {
	t.Run("should page the caller's cards with the query parameters", func(t *testing.T) {
		router, cards := newCardRouter(t, userIdentity)
		want := entity.PageRequest{Page: 2, Size: 1, SortBy: "balance", Direction: entity.SortDesc, Search: "4444"}
		cards.EXPECT().ListByOwner(mock.Anything, uint64(7), want).
			Return(entity.Page[usecase.CardView]{Content: []usecase.CardView{sampleCard}, Page: 2, Size: 1, TotalItems: 3}, nil).Once()

		w := serve(router, http.MethodGet, "/api/cards/my-cards?page=2&size=1&sortBy=balance&direction=desc&search=4444", "")

		assert.Equal(t, http.StatusOK, w.Code)
		body := decode[dto.PageResponse[dto.CardResponse]](t, w)
		assert.Len(t, body.Content, 1)
		assert.Equal(t, "**** **** **** 4444", body.Content[0].MaskedNumber)
		assert.Equal(t, "Alice Smith", body.Content[0].UserFullName)
		assert.Equal(t, 2, body.CurrentPage)
		assert.Equal(t, int64(3), body.TotalItems)
		assert.Equal(t, 3, body.TotalPages)
		assert.False(t, body.First)
		assert.False(t, body.Last)
	})

	t.Run("should never expose the full card number", func(t *testing.T) {
		router, cards := newCardRouter(t, userIdentity)
		cards.EXPECT().ListByOwnerAndStatus(mock.Anything, uint64(7), entity.CardStatusActive, mock.Anything).
			Return(entity.Page[usecase.CardView]{Content: []usecase.CardView{sampleCard}, Page: 1, Size: 100, TotalItems: 1}, nil).Once()

		w := serve(router, http.MethodGet, "/api/cards/my-cards/active", "")

		assert.Equal(t, http.StatusOK, w.Code)
		body := decode[[]dto.CardResponse](t, w)
		assert.Len(t, body, 1)
		assert.NotContains(t, w.Body.String(), "4111")
	})

	t.Run("should refuse anonymous callers", func(t *testing.T) {
		router, _ := newCardRouter(t, nil)

		w := serve(router, http.MethodGet, "/api/cards/my-cards", "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCardHandler_Create(t *testing.T) {
	t.Run("should issue a card in the default currency for an empty body", func(t *testing.T) {
		router, cards := newCardRouter(t, userIdentity)
		cards.EXPECT().IssueCard(mock.Anything, uint64(7), "").Return(&sampleCard, nil).Once()

		w := serve(router, http.MethodPost, "/api/cards/create", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "USD", decode[dto.CardResponse](t, w).Currency)
	})

	t.Run("should pass the requested currency", func(t *testing.T) {
		router, cards := newCardRouter(t, userIdentity)
		cards.EXPECT().IssueCard(mock.Anything, uint64(7), "eur").Return(&sampleCard, nil).Once()

		w := serve(router, http.MethodPost, "/api/cards/create", `{"currency":"eur"}`)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("should reject a malformed currency", func(t *testing.T) {
		router, _ := newCardRouter(t, userIdentity)

		w := serve(router, http.MethodPost, "/api/cards/create", `{"currency":"EURO"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeError(t, w).Details, "currency")
	})

	t.Run("should issue for a named user", func(t *testing.T) {
		router, cards := newCardRouter(t, adminIdentity)
		cards.EXPECT().IssueCardForUsername(mock.Anything, "alice01", "USD").Return(&sampleCard, nil).Once()

		w := serve(router, http.MethodPost, "/api/cards/admin/create/alice01", `{"currency":"USD"}`)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("should answer 404 for an unknown username", func(t *testing.T) {
		router, cards := newCardRouter(t, adminIdentity)
		cards.EXPECT().IssueCardForUsername(mock.Anything, "ghost01", "").Return(nil, errs.ErrUserNotFound).Once()

		w := serve(router, http.MethodPost, "/api/cards/admin/create/ghost01", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCardHandler_Block(t *testing.T) {
	t.Run("should block an owned card", func(t *testing.T) {
		router, cards := newCardRouter(t, userIdentity)
		cards.EXPECT().CardExists(mock.Anything, uint64(11)).Return(true, nil).Once()
		cards.EXPECT().IsOwnedBy(mock.Anything, uint64(11), uint64(7)).Return(true, nil).Once()
		cards.EXPECT().BlockCard(mock.Anything, uint64(11)).Return(nil).Once()

		w := serve(router, http.MethodPost, "/api/cards/block/11", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("should answer 400 when the card does not exist", func(t *testing.T) {
		router, cards := newCardRouter(t, userIdentity)
		cards.EXPECT().CardExists(mock.Anything, uint64(99)).Return(false, nil).Once()

		w := serve(router, http.MethodPost, "/api/cards/block/99", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("should refuse to block someone else's card", func(t *testing.T) {
		router, cards := newCardRouter(t, userIdentity)
		cards.EXPECT().CardExists(mock.Anything, uint64(12)).Return(true, nil).Once()
		cards.EXPECT().IsOwnedBy(mock.Anything, uint64(12), uint64(7)).Return(false, nil).Once()

		w := serve(router, http.MethodPost, "/api/cards/block/12", "")

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("should let an admin block any card", func(t *testing.T) {
		router, cards := newCardRouter(t, adminIdentity)
		cards.EXPECT().CardExists(mock.Anything, uint64(12)).Return(true, nil).Once()
		cards.EXPECT().BlockCard(mock.Anything, uint64(12)).Return(nil).Once()

		w := serve(router, http.MethodPost, "/api/cards/block/12", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("should reject a non-numeric id", func(t *testing.T) {
		router, _ := newCardRouter(t, userIdentity)

		w := serve(router, http.MethodPost, "/api/cards/block/abc", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, errs.CodeInvalidRequest, decodeError(t, w).Code)
	})
}

func TestCardHandler_ActivateAndDelete(t *testing.T) {
	t.Run("should activate an existing card", func(t *testing.T) {
		router, cards := newCardRouter(t, adminIdentity)
		cards.EXPECT().CardExists(mock.Anything, uint64(11)).Return(true, nil).Once()
		cards.EXPECT().ActivateCard(mock.Anything, uint64(11)).Return(nil).Once()

		w := serve(router, http.MethodPost, "/api/cards/admin/update/11", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("should answer 400 when deleting a missing card", func(t *testing.T) {
		router, cards := newCardRouter(t, adminIdentity)
		cards.EXPECT().CardExists(mock.Anything, uint64(99)).Return(false, nil).Once()

		w := serve(router, http.MethodDelete, "/api/cards/admin/delete/99", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("should delete an existing card", func(t *testing.T) {
		router, cards := newCardRouter(t, adminIdentity)
		cards.EXPECT().CardExists(mock.Anything, uint64(11)).Return(true, nil).Once()
		cards.EXPECT().DeleteCard(mock.Anything, uint64(11)).Return(nil).Once()

		w := serve(router, http.MethodDelete, "/api/cards/admin/delete/11", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestCardHandler_Balance(t *testing.T) {
	t.Run("should return the balance of an owned card", func(t *testing.T) {
		router, cards := newCardRouter(t, userIdentity)
		cards.EXPECT().GetBalanceByNumber(mock.Anything, uint64(7), "4111222233334444").Return(&sampleCard, nil).Once()

		w := serve(router, http.MethodGet, "/api/cards/balance?cardNumber=4111222233334444", "")

		assert.Equal(t, http.StatusOK, w.Code)
		body := decode[dto.BalanceResponse](t, w)
		assert.Equal(t, "500.00", body.Balance)
		assert.Equal(t, "**** **** **** 4444", body.MaskedNumber)
	})

	t.Run("should require the card number", func(t *testing.T) {
		router, _ := newCardRouter(t, userIdentity)

		w := serve(router, http.MethodGet, "/api/cards/balance", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("should answer 403 for a foreign card", func(t *testing.T) {
		router, cards := newCardRouter(t, userIdentity)
		cards.EXPECT().GetBalanceByNumber(mock.Anything, uint64(7), "4000000000000002").Return(nil, errs.ErrAccessDenied).Once()

		w := serve(router, http.MethodGet, "/api/cards/balance?cardNumber=4000000000000002", "")

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestCardHandler_AllCards(t *testing.T) {
	t.Run("should page every card", func(t *testing.T) {
		router, cards := newCardRouter(t, adminIdentity)
		cards.EXPECT().ListAll(mock.Anything, entity.PageRequest{}).
			Return(entity.Page[usecase.CardView]{Content: []usecase.CardView{sampleCard}, Page: 1, Size: 10, TotalItems: 1}, nil).Once()

		w := serve(router, http.MethodGet, "/api/cards/admin/all-cards", "")

		assert.Equal(t, http.StatusOK, w.Code)
		body := decode[dto.PageResponse[dto.CardResponse]](t, w)
		assert.True(t, body.First)
		assert.True(t, body.Last)
		assert.Equal(t, 1, body.TotalPages)
	})
}

func TestCardHandler_DepositAndWithdraw(t *testing.T) {
	t.Run("should deposit a parsed amount", func(t *testing.T) {
		router, cards := newCardRouter(t, adminIdentity)
		cards.EXPECT().Deposit(mock.Anything, uint64(11), decimal.RequireFromString("25.50")).Return(&sampleCard, nil).Once()

		w := serve(router, http.MethodPost, "/api/cards/admin/deposit/11", `{"amount":"25.50"}`)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("should reject a negative amount", func(t *testing.T) {
		router, _ := newCardRouter(t, adminIdentity)

		w := serve(router, http.MethodPost, "/api/cards/admin/deposit/11", `{"amount":"-1"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeError(t, w).Details, "amount")
	})

	t.Run("should answer 409 with the deficit on insufficient funds", func(t *testing.T) {
		router, cards := newCardRouter(t, adminIdentity)
		cards.EXPECT().Withdraw(mock.Anything, uint64(11), decimal.RequireFromString("600")).
			Return(nil, errs.NewInsufficientFundsError(11, "500.00", "600.00", "100.00")).Once()

		w := serve(router, http.MethodPost, "/api/cards/admin/withdraw/11", `{"amount":"600"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "100.00", decodeError(t, w).Details["deficit"])
	})
}
