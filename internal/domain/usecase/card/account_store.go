package card

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/bankcards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bankcards/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bankcards/internal/domain/port/core"
	"github.com/amirhossein-jamali/bankcards/internal/domain/port/persistence"
	"github.com/shopspring/decimal"
)

// AccountStore owns every write to card balance and status.
// Repositories are resolved from ctx on each call so the store joins whatever
// unit of work the caller has started.
type AccountStore struct {
	uow    persistence.UnitOfWork
	logger coreport.Logger
}

// NewAccountStore creates a new AccountStore
func NewAccountStore(uow persistence.UnitOfWork, logger coreport.Logger) *AccountStore {
	return &AccountStore{
		uow:    uow,
		logger: logger,
	}
}

// Get loads a card
func (s *AccountStore) Get(ctx context.Context, cardID uint64) (*entity.Card, error) {
	return s.uow.GetCardRepository(ctx).GetByID(ctx, cardID)
}

// Lock loads a card with a row lock held until the surrounding transaction ends
func (s *AccountStore) Lock(ctx context.Context, cardID uint64) (*entity.Card, error) {
	return s.uow.GetCardRepository(ctx).GetByIDForUpdate(ctx, cardID)
}

// Deposit adds amount to the card balance
func (s *AccountStore) Deposit(ctx context.Context, cardID uint64, amount decimal.Decimal) (*entity.Card, error) {
	return s.mutateBalance(ctx, cardID, amount, "deposit", (*entity.Card).Deposit)
}

// Withdraw subtracts amount from the card balance
func (s *AccountStore) Withdraw(ctx context.Context, cardID uint64, amount decimal.Decimal) (*entity.Card, error) {
	return s.mutateBalance(ctx, cardID, amount, "withdraw", (*entity.Card).Withdraw)
}

func (s *AccountStore) mutateBalance(
	ctx context.Context,
	cardID uint64,
	amount decimal.Decimal,
	operation string,
	apply func(*entity.Card, decimal.Decimal) error,
) (*entity.Card, error) {
	repo := s.uow.GetCardRepository(ctx)

	card, err := repo.GetByIDForUpdate(ctx, cardID)
	if err != nil {
		if !errors.Is(err, errs.ErrCardNotFound) {
			s.logger.Error("Failed to load card for balance change", map[string]any{
				"card_id":   cardID,
				"operation": operation,
				"error":     err.Error(),
			})
		}
		return nil, err
	}

	if err := apply(card, amount); err != nil {
		s.logger.Debug("Balance change rejected", map[string]any{
			"card_id":   cardID,
			"operation": operation,
			"amount":    entity.FormatAmount(amount),
			"error":     err.Error(),
		})
		return nil, err
	}

	if err := repo.Update(ctx, card); err != nil {
		s.logger.Error("Failed to persist balance change", map[string]any{
			"card_id":   cardID,
			"operation": operation,
			"error":     err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Card balance changed", map[string]any{
		"card_id":     cardID,
		"operation":   operation,
		"amount":      entity.FormatAmount(amount),
		"new_balance": card.GetBalance(),
	})

	return card, nil
}

// SetStatus sets the card status and derives its active flag. Callers run it
// inside a unit of work so the row lock lasts until the write commits.
func (s *AccountStore) SetStatus(ctx context.Context, cardID uint64, status entity.CardStatus) error {
	repo := s.uow.GetCardRepository(ctx)

	card, err := repo.GetByIDForUpdate(ctx, cardID)
	if err != nil {
		return err
	}

	previous := card.Status
	if err := card.SetStatus(status); err != nil {
		return err
	}

	if err := repo.UpdateStatus(ctx, cardID, card.Status, card.Active); err != nil {
		s.logger.Error("Failed to persist card status", map[string]any{
			"card_id": cardID,
			"status":  string(status),
			"error":   err.Error(),
		})
		return err
	}

	s.logger.Info("Card status changed", map[string]any{
		"card_id": cardID,
		"from":    string(previous),
		"to":      string(status),
	})
	return nil
}

// Exists reports whether the card exists
func (s *AccountStore) Exists(ctx context.Context, cardID uint64) (bool, error) {
	return s.uow.GetCardRepository(ctx).ExistsByID(ctx, cardID)
}
