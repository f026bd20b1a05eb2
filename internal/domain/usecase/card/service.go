package card

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/bankcards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bankcards/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bankcards/internal/domain/port/core"
	"github.com/amirhossein-jamali/bankcards/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bankcards/internal/domain/port/security"
	"github.com/amirhossein-jamali/bankcards/internal/domain/port/usecase"
	"github.com/shopspring/decimal"
)

// maxNumberAttempts bounds retries when a generated number is already issued
const maxNumberAttempts = 5

// Config holds card issuance settings
type Config struct {
	ValidityYears   int
	DefaultCurrency string
}

// Service handles card issuance, lifecycle and queries
type Service struct {
	uow          persistence.UnitOfWork
	store        usecase.AccountStore
	generator    security.CardNumberGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	config       Config
}

// NewService creates a new card Service
func NewService(
	uow persistence.UnitOfWork,
	store usecase.AccountStore,
	generator security.CardNumberGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	config Config,
) *Service {
	if config.ValidityYears <= 0 {
		config.ValidityYears = entity.DefaultCardValidityYears
	}
	if config.DefaultCurrency == "" {
		config.DefaultCurrency = "USD"
	}

	return &Service{
		uow:          uow,
		store:        store,
		generator:    generator,
		timeProvider: timeProvider,
		logger:       logger,
		config:       config,
	}
}

// IssueCard creates an ACTIVE card with zero balance for the owner
func (s *Service) IssueCard(ctx context.Context, ownerID uint64, currency string) (*usecase.CardView, error) {
	owner, err := s.uow.GetUserRepository(ctx).GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.issue(ctx, owner, currency)
}

// IssueCardForUsername creates a card for the user with that username
func (s *Service) IssueCardForUsername(ctx context.Context, username string, currency string) (*usecase.CardView, error) {
	owner, err := s.uow.GetUserRepository(ctx).GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.issue(ctx, owner, currency)
}

func (s *Service) issue(ctx context.Context, owner *entity.User, currency string) (*usecase.CardView, error) {
	if currency == "" {
		currency = s.config.DefaultCurrency
	}

	repo := s.uow.GetCardRepository(ctx)

	for attempt := 1; attempt <= maxNumberAttempts; attempt++ {
		number, err := s.generator.Generate()
		if err != nil {
			s.logger.Error("Failed to generate card number", map[string]any{
				"user_id": owner.ID,
				"error":   err.Error(),
			})
			return nil, err
		}

		taken, err := repo.ExistsByNumber(ctx, number)
		if err != nil {
			return nil, err
		}
		if taken {
			continue
		}

		card, err := entity.NewCard(owner.ID, number, currency, s.config.ValidityYears, s.timeProvider)
		if err != nil {
			return nil, err
		}

		if err := repo.Create(ctx, card); err != nil {
			if errors.Is(err, errs.ErrDuplicateCard) {
				continue
			}
			s.logger.Error("Failed to create card", map[string]any{
				"user_id": owner.ID,
				"error":   err.Error(),
			})
			return nil, err
		}

		s.logger.Info("Card issued", map[string]any{
			"card_id":       card.ID,
			"user_id":       owner.ID,
			"masked_number": card.MaskedNumber,
			"currency":      card.Currency,
		})

		return toCardView(card, owner.FullName(), s.timeProvider.Now()), nil
	}

	return nil, fmt.Errorf("%w: no free card number after %d attempts", errs.ErrDuplicateCard, maxNumberAttempts)
}

// BlockCard sets the card status to BLOCKED
func (s *Service) BlockCard(ctx context.Context, cardID uint64) error {
	return s.changeStatus(ctx, cardID, entity.CardStatusBlocked)
}

// ActivateCard sets the card status to ACTIVE
func (s *Service) ActivateCard(ctx context.Context, cardID uint64) error {
	return s.changeStatus(ctx, cardID, entity.CardStatusActive)
}

func (s *Service) changeStatus(ctx context.Context, cardID uint64, status entity.CardStatus) error {
	return persistence.WithinTransaction(ctx, s.uow, func(txCtx context.Context) error {
		return s.store.SetStatus(txCtx, cardID, status)
	})
}

// DeleteCard removes a card without transaction history
func (s *Service) DeleteCard(ctx context.Context, cardID uint64) error {
	if err := s.uow.GetCardRepository(ctx).Delete(ctx, cardID); err != nil {
		return err
	}

	s.logger.Info("Card deleted", map[string]any{
		"card_id": cardID,
	})
	return nil
}

// CardExists reports whether the card exists
func (s *Service) CardExists(ctx context.Context, cardID uint64) (bool, error) {
	return s.store.Exists(ctx, cardID)
}

// IsOwnedBy reports whether the card belongs to the user
func (s *Service) IsOwnedBy(ctx context.Context, cardID uint64, userID uint64) (bool, error) {
	card, err := s.store.Get(ctx, cardID)
	if err != nil {
		return false, err
	}
	return card.OwnerID == userID, nil
}

// Deposit adds amount to the card inside its own unit of work
func (s *Service) Deposit(ctx context.Context, cardID uint64, amount decimal.Decimal) (*usecase.CardView, error) {
	return s.changeBalance(ctx, cardID, amount, s.store.Deposit)
}

// Withdraw subtracts amount from the card inside its own unit of work
func (s *Service) Withdraw(ctx context.Context, cardID uint64, amount decimal.Decimal) (*usecase.CardView, error) {
	return s.changeBalance(ctx, cardID, amount, s.store.Withdraw)
}

func (s *Service) changeBalance(
	ctx context.Context,
	cardID uint64,
	amount decimal.Decimal,
	apply func(context.Context, uint64, decimal.Decimal) (*entity.Card, error),
) (*usecase.CardView, error) {
	var card *entity.Card
	err := persistence.WithinTransaction(ctx, s.uow, func(txCtx context.Context) error {
		var err error
		card, err = apply(txCtx, cardID, amount)
		return err
	})
	if err != nil {
		return nil, err
	}

	return s.view(ctx, card), nil
}

// GetCard returns a single card
func (s *Service) GetCard(ctx context.Context, cardID uint64) (*usecase.CardView, error) {
	card, err := s.store.Get(ctx, cardID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, card), nil
}

// GetBalanceByNumber returns the card with that number when userID owns it
func (s *Service) GetBalanceByNumber(ctx context.Context, userID uint64, number string) (*usecase.CardView, error) {
	card, err := s.uow.GetCardRepository(ctx).GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	if card.OwnerID != userID {
		s.logger.Warn("Balance requested for a card of another user", map[string]any{
			"card_id": card.ID,
			"user_id": userID,
		})
		return nil, errs.ErrAccessDenied
	}

	return s.view(ctx, card), nil
}

// ListAll returns a page of every card
func (s *Service) ListAll(ctx context.Context, req entity.PageRequest) (entity.Page[usecase.CardView], error) {
	req = req.Normalize(entity.CardSortFields...)
	cards, total, err := s.uow.GetCardRepository(ctx).List(ctx, req)
	if err != nil {
		return entity.Page[usecase.CardView]{}, err
	}
	return s.page(ctx, cards, req, total), nil
}

// ListByOwner returns a page of the owner's cards
func (s *Service) ListByOwner(ctx context.Context, ownerID uint64, req entity.PageRequest) (entity.Page[usecase.CardView], error) {
	req = req.Normalize(entity.CardSortFields...)
	cards, total, err := s.uow.GetCardRepository(ctx).ListByOwner(ctx, ownerID, req)
	if err != nil {
		return entity.Page[usecase.CardView]{}, err
	}
	return s.page(ctx, cards, req, total), nil
}

// ListByOwnerAndStatus returns a page of the owner's cards in status
func (s *Service) ListByOwnerAndStatus(
	ctx context.Context,
	ownerID uint64,
	status entity.CardStatus,
	req entity.PageRequest,
) (entity.Page[usecase.CardView], error) {
	req = req.Normalize(entity.CardSortFields...)
	cards, total, err := s.uow.GetCardRepository(ctx).ListByOwnerAndStatus(ctx, ownerID, status, req)
	if err != nil {
		return entity.Page[usecase.CardView]{}, err
	}
	return s.page(ctx, cards, req, total), nil
}
