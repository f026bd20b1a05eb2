package transfer

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/amirhossein-jamali/bankcards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bankcards/internal/domain/error"
	"github.com/amirhossein-jamali/bankcards/internal/domain/port/persistence"
)

var errNotSupported = errors.New("not supported by memStore")

type memTxKey struct{}

// memTx is a snapshot of the store that is written back on commit.
// The store mutex is held for the lifetime of the transaction, which gives
// the same serialization as row locks on every card.
type memTx struct {
	cards map[uint64]entity.Card
	txns  map[uint64]entity.Transaction
	done  bool
}

// memStore is an in-memory unit of work for exercising the engine end to end
type memStore struct {
	mu        sync.Mutex
	cards     map[uint64]entity.Card
	txns      map[uint64]entity.Transaction
	nextTxnID uint64

	// updateErr fails Update for the given card id
	updateErr map[uint64]error
	errMu     sync.Mutex
	begins    int
}

func newMemStore(cards ...*entity.Card) *memStore {
	s := &memStore{
		cards:     make(map[uint64]entity.Card),
		txns:      make(map[uint64]entity.Transaction),
		updateErr: make(map[uint64]error),
	}
	for _, c := range cards {
		s.cards[c.ID] = *c
	}
	return s
}

func (s *memStore) failUpdate(cardID uint64, err error) {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	s.updateErr[cardID] = err
}

func (s *memStore) card(id uint64) entity.Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cards[id]
}

func (s *memStore) transactions() []entity.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Transaction, 0, len(s.txns))
	for _, t := range s.txns {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *memStore) Begin(ctx context.Context) (context.Context, error) {
	s.mu.Lock()
	s.begins++
	tx := &memTx{
		cards: make(map[uint64]entity.Card, len(s.cards)),
		txns:  make(map[uint64]entity.Transaction, len(s.txns)),
	}
	for k, v := range s.cards {
		tx.cards[k] = v
	}
	for k, v := range s.txns {
		tx.txns[k] = v
	}
	return context.WithValue(ctx, memTxKey{}, tx), nil
}

func (s *memStore) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(memTxKey{}).(*memTx)
	if !ok || tx.done {
		return errors.New("no transaction in progress")
	}
	s.cards = tx.cards
	s.txns = tx.txns
	tx.done = true
	s.mu.Unlock()
	return nil
}

func (s *memStore) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(memTxKey{}).(*memTx)
	if !ok || tx.done {
		return nil
	}
	tx.done = true
	s.mu.Unlock()
	return nil
}

// view runs fn against the transaction bound to ctx, or against the store under its lock
func (s *memStore) view(ctx context.Context, fn func(cards map[uint64]entity.Card, txns map[uint64]entity.Transaction)) {
	if tx, ok := ctx.Value(memTxKey{}).(*memTx); ok && !tx.done {
		fn(tx.cards, tx.txns)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.cards, s.txns)
}

func (s *memStore) GetUserRepository(ctx context.Context) persistence.UserRepository {
	return nil
}

func (s *memStore) GetCardRepository(ctx context.Context) persistence.CardRepository {
	return &memCards{store: s}
}

func (s *memStore) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	return &memTxns{store: s}
}

func (s *memStore) GetTokenRepository(ctx context.Context) persistence.TokenRepository {
	return nil
}

type memCards struct {
	store *memStore
}

func (r *memCards) GetByID(ctx context.Context, id uint64) (*entity.Card, error) {
	var (
		card  entity.Card
		found bool
	)
	r.store.view(ctx, func(cards map[uint64]entity.Card, _ map[uint64]entity.Transaction) {
		card, found = cards[id]
	})
	if !found {
		return nil, errs.ErrCardNotFound
	}
	return &card, nil
}

func (r *memCards) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Card, error) {
	return r.GetByID(ctx, id)
}

func (r *memCards) Update(ctx context.Context, card *entity.Card) error {
	r.store.errMu.Lock()
	err := r.store.updateErr[card.ID]
	r.store.errMu.Unlock()
	if err != nil {
		return err
	}

	var found bool
	r.store.view(ctx, func(cards map[uint64]entity.Card, _ map[uint64]entity.Transaction) {
		if _, found = cards[card.ID]; found {
			cards[card.ID] = *card
		}
	})
	if !found {
		return errs.ErrCardNotFound
	}
	return nil
}

func (r *memCards) UpdateStatus(ctx context.Context, id uint64, status entity.CardStatus, active bool) error {
	var found bool
	r.store.view(ctx, func(cards map[uint64]entity.Card, _ map[uint64]entity.Transaction) {
		var card entity.Card
		if card, found = cards[id]; found {
			card.Status = status
			card.Active = active
			cards[id] = card
		}
	})
	if !found {
		return errs.ErrCardNotFound
	}
	return nil
}

func (r *memCards) ExistsByID(ctx context.Context, id uint64) (bool, error) {
	_, err := r.GetByID(ctx, id)
	return err == nil, nil
}

func (r *memCards) GetByNumber(context.Context, string) (*entity.Card, error) {
	return nil, errNotSupported
}

func (r *memCards) ExistsByNumber(context.Context, string) (bool, error) {
	return false, errNotSupported
}

func (r *memCards) Create(context.Context, *entity.Card) error {
	return errNotSupported
}

func (r *memCards) Delete(context.Context, uint64) error {
	return errNotSupported
}

func (r *memCards) List(context.Context, entity.PageRequest) ([]*entity.Card, int64, error) {
	return nil, 0, errNotSupported
}

func (r *memCards) ListByOwner(context.Context, uint64, entity.PageRequest) ([]*entity.Card, int64, error) {
	return nil, 0, errNotSupported
}

func (r *memCards) ListByOwnerAndStatus(context.Context, uint64, entity.CardStatus, entity.PageRequest) ([]*entity.Card, int64, error) {
	return nil, 0, errNotSupported
}

type memTxns struct {
	store *memStore
}

func (r *memTxns) Create(ctx context.Context, txn *entity.Transaction) error {
	r.store.view(ctx, func(_ map[uint64]entity.Card, txns map[uint64]entity.Transaction) {
		r.store.nextTxnID++
		txn.ID = r.store.nextTxnID
		txns[txn.ID] = *txn
	})
	return nil
}

func (r *memTxns) Update(ctx context.Context, txn *entity.Transaction) error {
	var err error
	r.store.view(ctx, func(_ map[uint64]entity.Card, txns map[uint64]entity.Transaction) {
		stored, ok := txns[txn.ID]
		switch {
		case !ok:
			err = errs.ErrTransactionNotFound
		case stored.Status != entity.StatusPending:
			err = errs.ErrTransactionFinalized
		default:
			txns[txn.ID] = *txn
		}
	})
	return err
}

func (r *memTxns) GetByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	var (
		txn   entity.Transaction
		found bool
	)
	r.store.view(ctx, func(_ map[uint64]entity.Card, txns map[uint64]entity.Transaction) {
		txn, found = txns[id]
	})
	if !found {
		return nil, errs.ErrTransactionNotFound
	}
	return &txn, nil
}

func (r *memTxns) List(context.Context, entity.PageRequest) ([]*entity.Transaction, int64, error) {
	return nil, 0, errNotSupported
}

func (r *memTxns) ListByUser(context.Context, uint64, entity.PageRequest) ([]*entity.Transaction, int64, error) {
	return nil, 0, errNotSupported
}

func (r *memTxns) ListByStatus(context.Context, entity.TransactionStatus, entity.PageRequest) ([]*entity.Transaction, int64, error) {
	return nil, 0, errNotSupported
}
