package transfer

import (
	"context"

	"github.com/amirhossein-jamali/bankcards/internal/domain/entity"
	"github.com/amirhossein-jamali/bankcards/internal/domain/port/usecase"
)

func toTransactionView(txn *entity.Transaction, fromMasked, toMasked string) *usecase.TransactionView {
	return &usecase.TransactionView{
		ID:             txn.ID,
		Amount:         entity.FormatAmount(txn.Amount),
		FromCardID:     txn.FromCardID,
		FromCardMasked: fromMasked,
		ToCardID:       txn.ToCardID,
		ToCardMasked:   toMasked,
		Description:    txn.Description,
		Status:         txn.Status,
		CreatedAt:      txn.CreatedAt,
		ProcessedAt:    txn.ProcessedAt,
	}
}

// maskedNumbers resolves card ids to masked numbers once per call
type maskedNumbers struct {
	engine *Engine
	cache  map[uint64]string
}

func (e *Engine) masks() *maskedNumbers {
	return &maskedNumbers{engine: e, cache: make(map[uint64]string)}
}

func (m *maskedNumbers) lookup(ctx context.Context, cardID uint64) string {
	if masked, ok := m.cache[cardID]; ok {
		return masked
	}

	masked := entity.MaskCardNumber("")
	if card, err := m.engine.store.Get(ctx, cardID); err == nil {
		masked = card.MaskedNumber
	}

	m.cache[cardID] = masked
	return masked
}

func (e *Engine) view(ctx context.Context, masks *maskedNumbers, txn *entity.Transaction) *usecase.TransactionView {
	return toTransactionView(txn, masks.lookup(ctx, txn.FromCardID), masks.lookup(ctx, txn.ToCardID))
}

func (e *Engine) page(ctx context.Context, txns []*entity.Transaction, req entity.PageRequest, total int64) entity.Page[usecase.TransactionView] {
	masks := e.masks()
	views := make([]usecase.TransactionView, 0, len(txns))
	for _, txn := range txns {
		views = append(views, *e.view(ctx, masks, txn))
	}
	return entity.NewPage(views, req, total)
}

// GetTransaction returns a single transaction
func (e *Engine) GetTransaction(ctx context.Context, id uint64) (*usecase.TransactionView, error) {
	txn, err := e.uow.GetTransactionRepository(ctx).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return e.view(ctx, e.masks(), txn), nil
}

// ListAll returns a page of every transaction
func (e *Engine) ListAll(ctx context.Context, req entity.PageRequest) (entity.Page[usecase.TransactionView], error) {
	req = req.Normalize(entity.TransactionSortFields...)
	txns, total, err := e.uow.GetTransactionRepository(ctx).List(ctx, req)
	if err != nil {
		return entity.Page[usecase.TransactionView]{}, err
	}
	return e.page(ctx, txns, req, total), nil
}

// ListByUser returns a page of transactions touching any card of the user
func (e *Engine) ListByUser(ctx context.Context, userID uint64, req entity.PageRequest) (entity.Page[usecase.TransactionView], error) {
	req = req.Normalize(entity.TransactionSortFields...)
	txns, total, err := e.uow.GetTransactionRepository(ctx).ListByUser(ctx, userID, req)
	if err != nil {
		return entity.Page[usecase.TransactionView]{}, err
	}
	return e.page(ctx, txns, req, total), nil
}

// ListByStatus returns a page of transactions in status
func (e *Engine) ListByStatus(
	ctx context.Context,
	status entity.TransactionStatus,
	req entity.PageRequest,
) (entity.Page[usecase.TransactionView], error) {
	req = req.Normalize(entity.TransactionSortFields...)
	txns, total, err := e.uow.GetTransactionRepository(ctx).ListByStatus(ctx, status, req)
	if err != nil {
		return entity.Page[usecase.TransactionView]{}, err
	}
	return e.page(ctx, txns, req, total), nil
}
