package persistence

import (
	"context"

	"github.com/amirhossein-jamali/bankcards/internal/domain/entity"
)

// TransactionRepository defines essential methods to interact with transaction data
type TransactionRepository interface {
	// Create saves a new transaction and sets its ID
	//
	// Possible errors:
	// - ErrCardNotFound: If a referenced card does not exist
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// Update finalizes a transaction. Only PENDING rows are updated.
	//
	// Possible errors:
	// - ErrTransactionNotFound: If transaction with the given ID doesn't exist
	// - ErrTransactionFinalized: If the stored row is already terminal
	Update(ctx context.Context, transaction *entity.Transaction) error

	// GetByID retrieves a transaction by its ID
	//
	// Possible errors:
	// - ErrTransactionNotFound: If transaction with the given ID doesn't exist
	GetByID(ctx context.Context, id uint64) (*entity.Transaction, error)

	// List returns a page of all transactions
	List(ctx context.Context, req entity.PageRequest) ([]*entity.Transaction, int64, error)

	// ListByUser returns a page of transactions touching any card of the user
	ListByUser(ctx context.Context, userID uint64, req entity.PageRequest) ([]*entity.Transaction, int64, error)

	// ListByStatus returns a page of transactions in the given status
	ListByStatus(ctx context.Context, status entity.TransactionStatus, req entity.PageRequest) ([]*entity.Transaction, int64, error)
}
