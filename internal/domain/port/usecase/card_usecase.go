package usecase

import (
	"context"

	"github.com/amirhossein-jamali/bankcards/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// AccountStore is the only component allowed to mutate card balance or status.
// Operations run against the unit of work bound to ctx, so a caller holding a
// transaction gets its mutations committed or rolled back together.
type AccountStore interface {
	// Get loads a card
	//
	// Possible errors:
	// - ErrCardNotFound: If card doesn't exist
	Get(ctx context.Context, cardID uint64) (*entity.Card, error)

	// Lock loads a card and holds its row lock until the surrounding transaction ends
	Lock(ctx context.Context, cardID uint64) (*entity.Card, error)

	// Deposit adds amount to the balance. No upper bound is enforced.
	//
	// Possible errors:
	// - ErrCardNotFound: If card doesn't exist
	// - ErrInvalidAmount: If amount is not positive
	Deposit(ctx context.Context, cardID uint64, amount decimal.Decimal) (*entity.Card, error)

	// Withdraw subtracts amount from the balance
	//
	// Possible errors:
	// - ErrCardNotFound: If card doesn't exist
	// - ErrInsufficientFunds: If balance < amount (as *InsufficientFundsError)
	Withdraw(ctx context.Context, cardID uint64, amount decimal.Decimal) (*entity.Card, error)

	// SetStatus sets the status and derives the active flag
	//
	// Possible errors:
	// - ErrCardNotFound: If card doesn't exist
	// - ErrInvalidCardStatus: If status is unknown
	SetStatus(ctx context.Context, cardID uint64, status entity.CardStatus) error

	// Exists reports whether the card exists
	Exists(ctx context.Context, cardID uint64) (bool, error)
}

// CardUseCase defines card issuance, lifecycle and query operations
type CardUseCase interface {
	// IssueCard creates an ACTIVE card with zero balance for the owner
	IssueCard(ctx context.Context, ownerID uint64, currency string) (*CardView, error)

	// IssueCardForUsername resolves the owner by username first
	IssueCardForUsername(ctx context.Context, username string, currency string) (*CardView, error)

	BlockCard(ctx context.Context, cardID uint64) error
	ActivateCard(ctx context.Context, cardID uint64) error
	DeleteCard(ctx context.Context, cardID uint64) error

	// CardExists is the existence check used before block/activate/delete
	CardExists(ctx context.Context, cardID uint64) (bool, error)

	// IsOwnedBy reports whether the card belongs to the user
	//
	// Possible errors:
	// - ErrCardNotFound: If card doesn't exist
	IsOwnedBy(ctx context.Context, cardID uint64, userID uint64) (bool, error)

	Deposit(ctx context.Context, cardID uint64, amount decimal.Decimal) (*CardView, error)
	Withdraw(ctx context.Context, cardID uint64, amount decimal.Decimal) (*CardView, error)

	GetCard(ctx context.Context, cardID uint64) (*CardView, error)

	// GetBalanceByNumber returns the card with that number if it belongs to the user
	//
	// Possible errors:
	// - ErrCardNotFound: If no card has this number
	// - ErrAccessDenied: If the card belongs to someone else
	GetBalanceByNumber(ctx context.Context, userID uint64, number string) (*CardView, error)

	ListAll(ctx context.Context, req entity.PageRequest) (entity.Page[CardView], error)
	ListByOwner(ctx context.Context, ownerID uint64, req entity.PageRequest) (entity.Page[CardView], error)
	ListByOwnerAndStatus(ctx context.Context, ownerID uint64, status entity.CardStatus, req entity.PageRequest) (entity.Page[CardView], error)
}
