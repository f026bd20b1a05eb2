package dto

import (
	"time"

	"github.com/amirhossein-jamali/bankcards/internal/domain/port/usecase"
)

// TransferRequest represents the API request for a transfer between two cards
type TransferRequest struct {
	FromCardID  uint64 `json:"fromCardId" binding:"required"`
	ToCardID    uint64 `json:"toCardId" binding:"required"`
	Amount      string `json:"amount" binding:"required,money"`
	Description string `json:"description" binding:"max=255"`
}

// TransactionResponse represents the API response for a transaction
type TransactionResponse struct {
	ID             uint64     `json:"id"`
	Amount         string     `json:"amount"`
	FromCardNumber string     `json:"fromCardNumber"`
	ToCardNumber   string     `json:"toCardNumber"`
	Description    string     `json:"description,omitempty"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"createdAt"`
	ProcessedAt    *time.Time `json:"processedAt,omitempty"`
}

// NewTransactionResponse maps a transaction view to its response
func NewTransactionResponse(view usecase.TransactionView) TransactionResponse {
	return TransactionResponse{
		ID:             view.ID,
		Amount:         view.Amount,
		FromCardNumber: view.FromCardMasked,
		ToCardNumber:   view.ToCardMasked,
		Description:    view.Description,
		Status:         string(view.Status),
		CreatedAt:      view.CreatedAt,
		ProcessedAt:    view.ProcessedAt,
	}
}
