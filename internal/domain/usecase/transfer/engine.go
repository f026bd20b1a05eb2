package transfer

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/bankcards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bankcards/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bankcards/internal/domain/port/core"
	"github.com/amirhossein-jamali/bankcards/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bankcards/internal/domain/port/usecase"
)

// Engine moves funds between two cards.
//
// The whole attempt runs in one unit of work: both card rows are locked in
// ascending id order, every check happens before the PENDING row is written,
// and the PENDING row, both balance changes and the COMPLETED update commit
// together. When a balance change fails the unit of work is rolled back and
// the attempt is recorded as FAILED in a separate write.
type Engine struct {
	uow          persistence.UnitOfWork
	store        usecase.AccountStore
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewEngine creates a new transfer Engine
func NewEngine(
	uow persistence.UnitOfWork,
	store usecase.AccountStore,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Engine {
	return &Engine{
		uow:          uow,
		store:        store,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Transfer moves req.Amount from req.FromCardID to req.ToCardID
func (e *Engine) Transfer(ctx context.Context, req usecase.TransferRequest) (*usecase.TransactionView, error) {
	if err := entity.ValidateAmount(req.Amount); err != nil {
		return nil, err
	}

	txCtx, err := e.uow.Begin(ctx)
	if err != nil {
		e.logger.Error("Failed to begin transfer", map[string]any{
			"from_card_id": req.FromCardID,
			"to_card_id":   req.ToCardID,
			"error":        err.Error(),
		})
		return nil, err
	}

	from, to, err := e.checkTransfer(txCtx, req)
	if err != nil {
		e.rollback(txCtx, req)
		e.logger.Info("Transfer rejected", map[string]any{
			"from_card_id": req.FromCardID,
			"to_card_id":   req.ToCardID,
			"amount":       entity.FormatAmount(req.Amount),
			"reason":       err.Error(),
		})
		return nil, err
	}

	txn, err := entity.NewTransaction(from.ID, to.ID, req.Amount, req.Description, e.timeProvider)
	if err != nil {
		e.rollback(txCtx, req)
		return nil, err
	}

	txRepo := e.uow.GetTransactionRepository(txCtx)
	if err := txRepo.Create(txCtx, txn); err != nil {
		e.rollback(txCtx, req)
		e.logger.Error("Failed to record pending transaction", map[string]any{
			"from_card_id": from.ID,
			"to_card_id":   to.ID,
			"error":        err.Error(),
		})
		return nil, err
	}

	if err := e.execute(txCtx, txRepo, txn); err != nil {
		return nil, e.fail(ctx, txCtx, txn, err)
	}

	e.logger.Info("Transfer completed", map[string]any{
		"transaction_id": txn.ID,
		"from_card_id":   from.ID,
		"to_card_id":     to.ID,
		"amount":         entity.FormatAmount(txn.Amount),
	})

	return toTransactionView(txn, from.MaskedNumber, to.MaskedNumber), nil
}

// checkTransfer resolves and locks both cards and runs every business check.
// Nothing is written here.
func (e *Engine) checkTransfer(ctx context.Context, req usecase.TransferRequest) (*entity.Card, *entity.Card, error) {
	from, to, err := e.lockCards(ctx, req.FromCardID, req.ToCardID)
	if err != nil {
		return nil, nil, err
	}

	if from.ID == to.ID {
		return nil, nil, errs.ErrSelfTransferNotAllowed
	}

	if !from.CanWithdraw(req.Amount) {
		return nil, nil, errs.NewInsufficientFundsError(
			from.ID,
			from.GetBalance(),
			entity.FormatAmount(req.Amount),
			entity.FormatAmount(req.Amount.Sub(from.Balance())),
		)
	}

	now := e.timeProvider.Now()
	fromStatus, toStatus := from.EffectiveStatus(now), to.EffectiveStatus(now)
	if fromStatus != entity.CardStatusActive || toStatus != entity.CardStatusActive {
		return nil, nil, errs.NewCardsNotActiveError(string(fromStatus), string(toStatus))
	}

	return from, to, nil
}

// lockCards locks both rows in ascending id order so two opposite transfers
// cannot deadlock. A missing source is reported before a missing destination.
func (e *Engine) lockCards(ctx context.Context, fromID, toID uint64) (*entity.Card, *entity.Card, error) {
	order := []uint64{fromID, toID}
	if toID < fromID {
		order = []uint64{toID, fromID}
	}

	cards := make(map[uint64]*entity.Card, 2)
	for _, id := range order {
		if _, done := cards[id]; done {
			continue
		}

		card, err := e.store.Lock(ctx, id)
		if err != nil {
			if errors.Is(err, errs.ErrCardNotFound) {
				cards[id] = nil
				continue
			}
			return nil, nil, err
		}
		cards[id] = card
	}

	if cards[fromID] == nil {
		return nil, nil, errs.ErrSourceCardNotFound
	}
	if cards[toID] == nil {
		return nil, nil, errs.ErrDestinationCardNotFound
	}
	return cards[fromID], cards[toID], nil
}

// execute applies the withdrawal, then the deposit, then commits the COMPLETED row
func (e *Engine) execute(ctx context.Context, txRepo persistence.TransactionRepository, txn *entity.Transaction) error {
	if _, err := e.store.Withdraw(ctx, txn.FromCardID, txn.Amount); err != nil {
		return err
	}

	if _, err := e.store.Deposit(ctx, txn.ToCardID, txn.Amount); err != nil {
		return err
	}

	if err := txn.MarkAsCompleted(e.timeProvider); err != nil {
		return err
	}

	if err := txRepo.Update(ctx, txn); err != nil {
		return err
	}

	return e.uow.Commit(ctx)
}

// fail rolls back the attempt and records it as FAILED outside the rolled back
// transaction. The returned error hides cause from callers.
func (e *Engine) fail(ctx, txCtx context.Context, pending *entity.Transaction, cause error) error {
	if err := e.uow.Rollback(txCtx); err != nil {
		e.logger.Warn("Failed to roll back transfer", map[string]any{
			"from_card_id": pending.FromCardID,
			"to_card_id":   pending.ToCardID,
			"error":        err.Error(),
		})
	}

	failed := &entity.Transaction{
		Amount:      pending.Amount,
		FromCardID:  pending.FromCardID,
		ToCardID:    pending.ToCardID,
		Description: pending.Description,
		Status:      entity.StatusPending,
		CreatedAt:   pending.CreatedAt,
	}

	// a fresh PENDING copy is never terminal
	_ = failed.MarkAsFailed(e.timeProvider)

	if err := e.uow.GetTransactionRepository(ctx).Create(ctx, failed); err != nil {
		e.logger.Error("Failed to record failed transfer", map[string]any{
			"from_card_id": failed.FromCardID,
			"to_card_id":   failed.ToCardID,
			"error":        err.Error(),
		})
	}

	transferErr := errs.NewTransferError(
		failed.ID,
		failed.FromCardID,
		failed.ToCardID,
		entity.FormatAmount(failed.Amount),
		cause,
	)

	var detailed *errs.TransferError
	if errors.As(transferErr, &detailed) {
		e.logger.Error("Transfer failed", detailed.LogFields())
	}

	return transferErr
}

func (e *Engine) rollback(txCtx context.Context, req usecase.TransferRequest) {
	if err := e.uow.Rollback(txCtx); err != nil {
		e.logger.Warn("Failed to roll back transfer", map[string]any{
			"from_card_id": req.FromCardID,
			"to_card_id":   req.ToCardID,
			"error":        err.Error(),
		})
	}
}
