package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/amirhossein-jamali/bankcards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bankcards/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bankcards/internal/domain/port/core"
	"github.com/amirhossein-jamali/bankcards/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bankcards/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/bankcards/internal/infrastructure/adapter/api/httperr"
	"github.com/gin-gonic/gin"
)

// TransferHandler handles transfers and the transaction history
type TransferHandler struct {
	transferUseCase usecase.TransferUseCase
	cardUseCase     usecase.CardUseCase
	renderer        *httperr.Renderer
	logger          coreport.Logger
}

// NewTransferHandler creates a new transfer handler instance
func NewTransferHandler(
	transferUseCase usecase.TransferUseCase,
	cardUseCase usecase.CardUseCase,
	renderer *httperr.Renderer,
	logger coreport.Logger,
) *TransferHandler {
	return &TransferHandler{
		transferUseCase: transferUseCase,
		cardUseCase:     cardUseCase,
		renderer:        renderer,
		logger:          logger,
	}
}

// Transfer handles POST /api/cards/transfer
func (h *TransferHandler) Transfer(c *gin.Context) {
	identity, err := currentIdentity(c)
	if err != nil {
		h.renderer.Abort(c, err)
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.renderer.AbortBinding(c, err)
		return
	}

	amount, err := entity.ParseAmount(req.Amount)
	if err != nil {
		h.renderer.Abort(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := ensureOwned(ctx, h.cardUseCase, identity, req.FromCardID, req.ToCardID); err != nil {
		h.logger.Warn("Transfer between foreign cards refused", map[string]any{
			"user_id":      identity.UserID,
			"from_card_id": req.FromCardID,
			"to_card_id":   req.ToCardID,
		})
		h.renderer.Abort(c, err)
		return
	}

	transaction, err := h.transferUseCase.Transfer(ctx, usecase.TransferRequest{
		FromCardID:  req.FromCardID,
		ToCardID:    req.ToCardID,
		Amount:      amount,
		Description: req.Description,
	})
	if err != nil {
		h.renderer.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponse(*transaction))
}

// MyTransactions handles GET /api/cards/transactions
func (h *TransferHandler) MyTransactions(c *gin.Context) {
	identity, err := currentIdentity(c)
	if err != nil {
		h.renderer.Abort(c, err)
		return
	}

	page, err := h.transferUseCase.ListByUser(c.Request.Context(), identity.UserID, pageRequest(c))
	if err != nil {
		h.renderer.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPageResponse(page, dto.NewTransactionResponse))
}

// GetTransaction handles GET /api/cards/transactions/:id.
// Non-admin callers only see transactions touching one of their cards.
func (h *TransferHandler) GetTransaction(c *gin.Context) {
	identity, err := currentIdentity(c)
	if err != nil {
		h.renderer.Abort(c, err)
		return
	}

	id, err := parseID(c, "id")
	if err != nil {
		h.renderer.Abort(c, err)
		return
	}

	ctx := c.Request.Context()
	transaction, err := h.transferUseCase.GetTransaction(ctx, id)
	if err != nil {
		h.renderer.Abort(c, err)
		return
	}

	if !identity.IsAdmin() {
		owned, err := h.ownsEitherCard(ctx, transaction, identity.UserID)
		if err != nil {
			h.renderer.Abort(c, err)
			return
		}
		if !owned {
			h.renderer.Abort(c, errs.ErrAccessDenied)
			return
		}
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponse(*transaction))
}

// ownsEitherCard reports whether userID owns the source or the destination card.
// A card that no longer exists counts as not owned.
func (h *TransferHandler) ownsEitherCard(ctx context.Context, transaction *usecase.TransactionView, userID uint64) (bool, error) {
	for _, cardID := range []uint64{transaction.FromCardID, transaction.ToCardID} {
		owned, err := h.cardUseCase.IsOwnedBy(ctx, cardID, userID)
		if err != nil && !errors.Is(err, errs.ErrCardNotFound) {
			return false, err
		}
		if owned {
			return true, nil
		}
	}
	return false, nil
}

// AllTransactions handles GET /api/cards/admin/transactions
func (h *TransferHandler) AllTransactions(c *gin.Context) {
	page, err := h.transferUseCase.ListAll(c.Request.Context(), pageRequest(c))
	if err != nil {
		h.renderer.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPageResponse(page, dto.NewTransactionResponse))
}

// PendingTransactions handles GET /api/cards/admin/transactions/pending
func (h *TransferHandler) PendingTransactions(c *gin.Context) {
	page, err := h.transferUseCase.ListByStatus(c.Request.Context(), entity.StatusPending, pageRequest(c))
	if err != nil {
		h.renderer.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPageResponse(page, dto.NewTransactionResponse))
}
