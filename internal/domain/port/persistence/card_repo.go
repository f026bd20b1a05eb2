package persistence

import (
	"context"

	"github.com/amirhossein-jamali/bankcards/internal/domain/entity"
)

// CardRepository defines methods to interact with card data
type CardRepository interface {
	// GetByID retrieves a card by ID
	//
	// Possible errors:
	// - ErrCardNotFound: If card doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Card, error)

	// GetByIDForUpdate retrieves a card and holds a row lock on it until the
	// surrounding transaction ends. Outside a transaction it behaves like GetByID.
	//
	// Possible errors:
	// - ErrCardNotFound: If card doesn't exist
	// - ErrConcurrentUpdate: If the lock could not be acquired
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Card, error)

	// GetByNumber retrieves a card by its full number
	GetByNumber(ctx context.Context, number string) (*entity.Card, error)

	// ExistsByID checks if a card with the given ID exists
	ExistsByID(ctx context.Context, id uint64) (bool, error)

	// ExistsByNumber checks if a card number is already issued
	ExistsByNumber(ctx context.Context, number string) (bool, error)

	// Create stores a new card and sets its ID
	//
	// Possible errors:
	// - ErrDuplicateCard: If the number collides
	// - ErrUserNotFound: If the owner doesn't exist
	Create(ctx context.Context, card *entity.Card) error

	// Update persists balance, status and expiry of an existing card
	//
	// Possible errors:
	// - ErrCardNotFound: If card doesn't exist
	// - ErrConstraintViolation: If the balance would become negative
	Update(ctx context.Context, card *entity.Card) error

	// UpdateStatus writes only status and the active flag. The balance column
	// is left alone.
	//
	// Possible errors:
	// - ErrCardNotFound: If card doesn't exist
	UpdateStatus(ctx context.Context, id uint64, status entity.CardStatus, active bool) error

	// Delete removes a card that no transaction references
	//
	// Possible errors:
	// - ErrCardNotFound: If card doesn't exist
	// - ErrCardHasTransactions: If transactions still reference the card
	Delete(ctx context.Context, id uint64) error

	// List returns a page of all cards. Search matches the last digits of the number.
	List(ctx context.Context, req entity.PageRequest) ([]*entity.Card, int64, error)

	// ListByOwner returns a page of the owner's cards
	ListByOwner(ctx context.Context, ownerID uint64, req entity.PageRequest) ([]*entity.Card, int64, error)

	// ListByOwnerAndStatus returns a page of the owner's cards in the given status
	ListByOwnerAndStatus(ctx context.Context, ownerID uint64, status entity.CardStatus, req entity.PageRequest) ([]*entity.Card, int64, error)
}
