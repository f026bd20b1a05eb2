package entity

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	errs "github.com/amirhossein-jamali/bankcards/internal/domain/error"
	tport "github.com/amirhossein-jamali/bankcards/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

// TransactionStatus defines possible status values for a transaction
type TransactionStatus string

// TransactionStatus constants
const (
	StatusPending   TransactionStatus = "PENDING"
	StatusCompleted TransactionStatus = "COMPLETED"
	StatusFailed    TransactionStatus = "FAILED"
)

// MaxDescriptionLength bounds the free-text description
const MaxDescriptionLength = 255

// TransactionSortFields are the columns a transaction listing may be sorted by
var TransactionSortFields = []string{"id", "amount", "status", "created_at"}

// Transaction is the audit record of one transfer attempt between two cards
type Transaction struct {
	ID          uint64            // Unique identifier for the transaction
	Amount      decimal.Decimal   // Positive amount moved
	FromCardID  uint64            // Debited card
	ToCardID    uint64            // Credited card
	Description string            // Optional free text
	Status      TransactionStatus // PENDING until finalized
	CreatedAt   time.Time         // When the attempt started
	ProcessedAt *time.Time        // When the transaction was finalized (nullable)
}

// NewTransaction creates a PENDING transaction with basic validation
func NewTransaction(
	fromCardID uint64,
	toCardID uint64,
	amount decimal.Decimal,
	description string,
	timeProvider tport.TimeProvider,
) (*Transaction, error) {
	if fromCardID == 0 || toCardID == 0 {
		return nil, fmt.Errorf("%w: both card ids are required", errs.ErrInvalidRequest)
	}
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}

	description = strings.TrimSpace(description)
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return nil, fmt.Errorf("%w: description exceeds %d characters", errs.ErrInvalidRequest, MaxDescriptionLength)
	}

	return &Transaction{
		Amount:      amount,
		FromCardID:  fromCardID,
		ToCardID:    toCardID,
		Description: description,
		Status:      StatusPending,
		CreatedAt:   timeProvider.Now(),
	}, nil
}

// IsTerminal reports whether the status can no longer change
func (t *Transaction) IsTerminal() bool {
	return t.Status == StatusCompleted || t.Status == StatusFailed
}

// MarkAsCompleted finalizes the transaction as COMPLETED
func (t *Transaction) MarkAsCompleted(timeProvider tport.TimeProvider) error {
	return t.finalize(StatusCompleted, timeProvider)
}

// MarkAsFailed finalizes the transaction as FAILED
func (t *Transaction) MarkAsFailed(timeProvider tport.TimeProvider) error {
	return t.finalize(StatusFailed, timeProvider)
}

func (t *Transaction) finalize(status TransactionStatus, timeProvider tport.TimeProvider) error {
	if t.IsTerminal() {
		return fmt.Errorf("%w: transaction %d is %s", errs.ErrTransactionFinalized, t.ID, t.Status)
	}
	now := timeProvider.Now()
	t.ProcessedAt = &now
	t.Status = status
	return nil
}
