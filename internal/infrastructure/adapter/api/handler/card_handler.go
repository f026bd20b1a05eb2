package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/amirhossein-jamali/bankcards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bankcards/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bankcards/internal/domain/port/core"
	"github.com/amirhossein-jamali/bankcards/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bankcards/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/bankcards/internal/infrastructure/adapter/api/httperr"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CardHandler handles card issuance, lifecycle and balance endpoints
type CardHandler struct {
	cardUseCase usecase.CardUseCase
	renderer    *httperr.Renderer
	logger      coreport.Logger
}

// NewCardHandler creates a new card handler instance
func NewCardHandler(
	cardUseCase usecase.CardUseCase,
	renderer *httperr.Renderer,
	logger coreport.Logger,
) *CardHandler {
	return &CardHandler{
		cardUseCase: cardUseCase,
		renderer:    renderer,
		logger:      logger,
	}
}

// MyCards handles GET /api/cards/my-cards
func (h *CardHandler) MyCards(c *gin.Context) {
	identity, err := currentIdentity(c)
	if err != nil {
		h.renderer.Abort(c, err)
		return
	}

	page, err := h.cardUseCase.ListByOwner(c.Request.Context(), identity.UserID, pageRequest(c))
	if err != nil {
		h.renderer.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPageResponse(page, dto.NewCardResponse))
}

// MyActiveCards handles GET /api/cards/my-cards/active
func (h *CardHandler) MyActiveCards(c *gin.Context) {
	identity, err := currentIdentity(c)
	if err != nil {
		h.renderer.Abort(c, err)
		return
	}

	page, err := h.cardUseCase.ListByOwnerAndStatus(
		c.Request.Context(),
		identity.UserID,
		entity.CardStatusActive,
		entity.PageRequest{Size: entity.MaxPageSize},
	)
	if err != nil {
		h.renderer.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCardResponses(page.Content))
}

// Create handles POST /api/cards/create
func (h *CardHandler) Create(c *gin.Context) {
	identity, err := currentIdentity(c)
	if err != nil {
		h.renderer.Abort(c, err)
		return
	}

	req, ok := h.bindCardRequest(c)
	if !ok {
		return
	}

	card, err := h.cardUseCase.IssueCard(c.Request.Context(), identity.UserID, req.Currency)
	if err != nil {
		h.renderer.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCardResponse(*card))
}

// CreateForUser handles POST /api/cards/admin/create/:username
func (h *CardHandler) CreateForUser(c *gin.Context) {
	username := strings.TrimSpace(c.Param("username"))
	if username == "" {
		h.renderer.Abort(c, fmt.Errorf("%w: username is required", errs.ErrInvalidRequest))
		return
	}

	req, ok := h.bindCardRequest(c)
	if !ok {
		return
	}

	card, err := h.cardUseCase.IssueCardForUsername(c.Request.Context(), username, req.Currency)
	if err != nil {
		h.renderer.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCardResponse(*card))
}

// bindCardRequest accepts an empty body, which issues a card in the default currency
func (h *CardHandler) bindCardRequest(c *gin.Context) (dto.CardRequest, bool) {
	var req dto.CardRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.renderer.AbortBinding(c, err)
		return req, false
	}
	return req, true
}

// Block handles POST /api/cards/block/:id
func (h *CardHandler) Block(c *gin.Context) {
	identity, err := currentIdentity(c)
	if err != nil {
		h.renderer.Abort(c, err)
		return
	}

	h.changeExisting(c, func(ctx context.Context, id uint64) error {
		if err := ensureOwned(ctx, h.cardUseCase, identity, id); err != nil {
			return err
		}
		return h.cardUseCase.BlockCard(ctx, id)
	})
}

// Activate handles POST /api/cards/admin/update/:id
func (h *CardHandler) Activate(c *gin.Context) {
	h.changeExisting(c, h.cardUseCase.ActivateCard)
}

// Delete handles DELETE /api/cards/admin/delete/:id
func (h *CardHandler) Delete(c *gin.Context) {
	h.changeExisting(c, h.cardUseCase.DeleteCard)
}

// changeExisting checks the card first and answers 400 when it is missing
func (h *CardHandler) changeExisting(c *gin.Context, change func(ctx context.Context, id uint64) error) {
	id, err := parseID(c, "id")
	if err != nil {
		h.renderer.Abort(c, err)
		return
	}

	ctx := c.Request.Context()
	exists, err := h.cardUseCase.CardExists(ctx, id)
	if err != nil {
		h.renderer.Abort(c, err)
		return
	}
	if !exists {
		h.renderer.Abort(c, fmt.Errorf("%w: card %d does not exist", errs.ErrInvalidRequest, id))
		return
	}

	if err := change(ctx, id); err != nil {
		h.renderer.Abort(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Balance handles GET /api/cards/balance?cardNumber=
func (h *CardHandler) Balance(c *gin.Context) {
	identity, err := currentIdentity(c)
	if err != nil {
		h.renderer.Abort(c, err)
		return
	}

	number := strings.TrimSpace(c.Query("cardNumber"))
	if number == "" {
		h.renderer.Abort(c, fmt.Errorf("%w: cardNumber is required", errs.ErrInvalidRequest))
		return
	}

	card, err := h.cardUseCase.GetBalanceByNumber(c.Request.Context(), identity.UserID, number)
	if err != nil {
		h.renderer.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		MaskedNumber: card.MaskedNumber,
		Currency:     card.Currency,
		Balance:      card.Balance,
	})
}

// AllCards handles GET /api/cards/admin/all-cards
func (h *CardHandler) AllCards(c *gin.Context) {
	page, err := h.cardUseCase.ListAll(c.Request.Context(), pageRequest(c))
	if err != nil {
		h.renderer.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPageResponse(page, dto.NewCardResponse))
}

// Deposit handles POST /api/cards/admin/deposit/:id
func (h *CardHandler) Deposit(c *gin.Context) {
	h.changeBalance(c, h.cardUseCase.Deposit)
}

// Withdraw handles POST /api/cards/admin/withdraw/:id
func (h *CardHandler) Withdraw(c *gin.Context) {
	h.changeBalance(c, h.cardUseCase.Withdraw)
}

func (h *CardHandler) changeBalance(
	c *gin.Context,
	change func(ctx context.Context, id uint64, amount decimal.Decimal) (*usecase.CardView, error),
) {
	id, err := parseID(c, "id")
	if err != nil {
		h.renderer.Abort(c, err)
		return
	}

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.renderer.AbortBinding(c, err)
		return
	}
	amount, err := entity.ParseAmount(req.Amount)
	if err != nil {
		h.renderer.Abort(c, err)
		return
	}

	card, err := change(c.Request.Context(), id, amount)
	if err != nil {
		h.renderer.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCardResponse(*card))
}
