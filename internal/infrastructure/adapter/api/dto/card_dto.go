package dto

import (
	"time"

	"github.com/amirhossein-jamali/bankcards/internal/domain/port/usecase"
)

// CardRequest is the body of the card issuance endpoints
type CardRequest struct {
	Currency string `json:"currency" binding:"omitempty,currency"`
}

// AmountRequest is the body of the admin deposit and withdraw endpoints
type AmountRequest struct {
	Amount string `json:"amount" binding:"required,money"`
}

// CardResponse is the display-safe representation of a card
type CardResponse struct {
	ID           uint64    `json:"id"`
	MaskedNumber string    `json:"maskedNumber"`
	UserFullName string    `json:"userFullName"`
	Currency     string    `json:"currency"`
	ExpiryDate   time.Time `json:"expiryDate"`
	Status       string    `json:"status"`
	Balance      string    `json:"balance"`
	Active       bool      `json:"active"`
	Expired      bool      `json:"expired"`
}

// BalanceResponse is returned by GET /api/cards/balance
type BalanceResponse struct {
	MaskedNumber string `json:"maskedNumber"`
	Currency     string `json:"currency"`
	Balance      string `json:"balance"`
}

// NewCardResponse maps a card view to its response
func NewCardResponse(view usecase.CardView) CardResponse {
	return CardResponse{
		ID:           view.ID,
		MaskedNumber: view.MaskedNumber,
		UserFullName: view.OwnerName,
		Currency:     view.Currency,
		ExpiryDate:   view.ExpiryDate,
		Status:       string(view.Status),
		Balance:      view.Balance,
		Active:       view.Active,
		Expired:      view.Expired,
	}
}

// NewCardResponses maps a list of card views
func NewCardResponses(views []usecase.CardView) []CardResponse {
	out := make([]CardResponse, 0, len(views))
	for _, v := range views {
		out = append(out, NewCardResponse(v))
	}
	return out
}
