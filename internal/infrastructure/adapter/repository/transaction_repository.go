package repository

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/bankcards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bankcards/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bankcards/internal/domain/port/core"
	"github.com/amirhossein-jamali/bankcards/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

const transactionsTable = "transactions"

var transactionErrors = domainErrors{notFound: errs.ErrTransactionNotFound, duplicate: errs.ErrConstraintViolation}

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) model.Transaction {
	return model.Transaction{
		ID:          transaction.ID,
		Amount:      transaction.Amount,
		FromCardID:  transaction.FromCardID,
		ToCardID:    transaction.ToCardID,
		Description: transaction.Description,
		Status:      string(transaction.Status),
		CreatedAt:   transaction.CreatedAt,
		ProcessedAt: transaction.ProcessedAt,
	}
}

func (r *TransactionRepository) modelToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		Amount:      m.Amount,
		FromCardID:  m.FromCardID,
		ToCardID:    m.ToCardID,
		Description: m.Description,
		Status:      entity.TransactionStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		ProcessedAt: m.ProcessedAt,
	}
}

func (r *TransactionRepository) handleDatabaseError(operation string, err error, transactionID uint64) error {
	mapped := r.errorClassifier.mapError(err, transactionErrors)
	if r.errorClassifier.IsForeignKeyError(err) {
		mapped = errs.ErrCardNotFound
	}

	if mapped == errs.ErrTransactionNotFound {
		return mapped
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"transaction_id": transactionID,
		"error":          err.Error(),
	})
	return mapped
}

// Create saves a new transaction and sets its ID
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := r.entityToModel(transaction)
	transactionModel.ID = 0

	if err := r.db.WithContext(ctx).Create(&transactionModel).Error; err != nil {
		return r.handleDatabaseError("creating transaction", err, 0)
	}

	transaction.ID = transactionModel.ID
	r.logger.Debug("Transaction row inserted", map[string]any{
		"transaction_id": transaction.ID,
		"status":         transaction.Status,
	})
	return nil
}

// Update finalizes a PENDING transaction
func (r *TransactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ? AND status = ?", transaction.ID, string(entity.StatusPending)).
		Updates(map[string]any{
			"status":       string(transaction.Status),
			"processed_at": transaction.ProcessedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating transaction", result.Error, transaction.ID)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Transaction{}).Where("id = ?", transaction.ID).Count(&count).Error; err != nil {
		return r.handleDatabaseError("checking transaction", err, transaction.ID)
	}
	if count == 0 {
		return errs.ErrTransactionNotFound
	}

	r.logger.Warn("Attempt to update a finalized transaction", map[string]any{
		"transaction_id": transaction.ID,
	})
	return fmt.Errorf("%w: transaction %d", errs.ErrTransactionFinalized, transaction.ID)
}

// GetByID retrieves a transaction by its ID
func (r *TransactionRepository) GetByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	var transactionModel model.Transaction
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel).Error; err != nil {
		return nil, r.handleDatabaseError("getting transaction", err, id)
	}
	return r.modelToEntity(&transactionModel), nil
}

func (r *TransactionRepository) list(ctx context.Context, req entity.PageRequest, filter func(*gorm.DB) *gorm.DB) ([]*entity.Transaction, int64, error) {
	query := filter(r.db.WithContext(ctx).Model(&model.Transaction{})).Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, r.handleDatabaseError("counting transactions", err, 0)
	}

	var models []model.Transaction
	if err := paginate(transactionsTable, req)(query).Find(&models).Error; err != nil {
		return nil, 0, r.handleDatabaseError("listing transactions", err, 0)
	}

	transactions := make([]*entity.Transaction, 0, len(models))
	for i := range models {
		transactions = append(transactions, r.modelToEntity(&models[i]))
	}
	return transactions, total, nil
}

// List returns a page of all transactions
func (r *TransactionRepository) List(ctx context.Context, req entity.PageRequest) ([]*entity.Transaction, int64, error) {
	return r.list(ctx, req, func(db *gorm.DB) *gorm.DB { return db })
}

// ListByUser returns a page of transactions whose source or destination card
// belongs to the user
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uint64, req entity.PageRequest) ([]*entity.Transaction, int64, error) {
	owned := r.db.WithContext(ctx).Model(&model.Card{}).Select("id").Where("user_id = ?", userID)
	return r.list(ctx, req, func(db *gorm.DB) *gorm.DB {
		return db.Where("from_card_id IN (?) OR to_card_id IN (?)", owned, owned)
	})
}

// ListByStatus returns a page of transactions in the given status
func (r *TransactionRepository) ListByStatus(ctx context.Context, status entity.TransactionStatus, req entity.PageRequest) ([]*entity.Transaction, int64, error) {
	return r.list(ctx, req, func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ?", string(status))
	})
}
