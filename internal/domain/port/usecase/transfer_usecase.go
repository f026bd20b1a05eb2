package usecase

import (
	"context"

	"github.com/amirhossein-jamali/bankcards/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// TransferRequest represents an incoming transfer between two cards
type TransferRequest struct {
	FromCardID  uint64
	ToCardID    uint64
	Amount      decimal.Decimal
	Description string
}

// TransferUseCase moves funds between cards and exposes the audit trail
type TransferUseCase interface {
	// Transfer moves Amount from FromCardID to ToCardID.
	//
	// Possible errors:
	// - ErrInvalidAmount: If amount is not positive
	// - ErrSourceCardNotFound / ErrDestinationCardNotFound
	// - ErrSelfTransferNotAllowed
	// - ErrInsufficientFunds: as *InsufficientFundsError
	// - ErrCardsNotActive: as *CardsNotActiveError
	// - ErrTransferFailed: the mutation phase failed, the attempt is recorded as FAILED
	Transfer(ctx context.Context, req TransferRequest) (*TransactionView, error)

	GetTransaction(ctx context.Context, id uint64) (*TransactionView, error)
	ListAll(ctx context.Context, req entity.PageRequest) (entity.Page[TransactionView], error)
	ListByUser(ctx context.Context, userID uint64, req entity.PageRequest) (entity.Page[TransactionView], error)
	ListByStatus(ctx context.Context, status entity.TransactionStatus, req entity.PageRequest) (entity.Page[TransactionView], error)
}
