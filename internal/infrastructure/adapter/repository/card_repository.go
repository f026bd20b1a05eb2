package repository

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/bankcards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bankcards/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bankcards/internal/domain/port/core"
	"github.com/amirhossein-jamali/bankcards/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const cardsTable = "cards"

var cardErrors = domainErrors{notFound: errs.ErrCardNotFound, duplicate: errs.ErrDuplicateCard}

// CardRepository implements CardRepository interface using GORM
type CardRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewCardRepository creates a new CardRepository instance
func NewCardRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *CardRepository {
	return &CardRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *CardRepository) modelToEntity(cardModel *model.Card) (*entity.Card, error) {
	card := &entity.Card{
		ID:           cardModel.ID,
		Number:       cardModel.Number,
		MaskedNumber: cardModel.MaskedNumber,
		OwnerID:      cardModel.OwnerID,
		Currency:     cardModel.Currency,
		ExpiryDate:   cardModel.ExpiryDate,
		Active:       cardModel.Active,
		Status:       entity.CardStatus(cardModel.Status),
	}
	if err := card.SetBalance(cardModel.Balance); err != nil {
		r.logger.Error("Stored card has a negative balance", map[string]any{
			"card_id": cardModel.ID,
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}
	return card, nil
}

func (r *CardRepository) modelsToEntities(models []model.Card) ([]*entity.Card, error) {
	cards := make([]*entity.Card, 0, len(models))
	for i := range models {
		card, err := r.modelToEntity(&models[i])
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func (r *CardRepository) handleDatabaseError(operation string, err error, cardID uint64) error {
	mapped := r.errorClassifier.mapError(err, cardErrors)
	if r.errorClassifier.IsForeignKeyError(err) {
		mapped = errs.ErrUserNotFound
	}

	if mapped == errs.ErrCardNotFound {
		r.logger.Debug("Card not found", map[string]any{"card_id": cardID})
		return mapped
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"card_id": cardID,
		"error":   err.Error(),
	})
	return mapped
}

func (r *CardRepository) getOne(ctx context.Context, db *gorm.DB, operation string, cardID uint64, query string, args ...any) (*entity.Card, error) {
	var cardModel model.Card
	if err := db.WithContext(ctx).Where(query, args...).First(&cardModel).Error; err != nil {
		return nil, r.handleDatabaseError(operation, err, cardID)
	}
	return r.modelToEntity(&cardModel)
}

// GetByID retrieves a card by ID
func (r *CardRepository) GetByID(ctx context.Context, id uint64) (*entity.Card, error) {
	return r.getOne(ctx, r.db, "getting card", id, "id = ?", id)
}

// GetByIDForUpdate reads the card with SELECT ... FOR UPDATE
func (r *CardRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Card, error) {
	locked := r.db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	return r.getOne(ctx, locked, "locking card", id, "id = ?", id)
}

// GetByNumber retrieves a card by its full number
func (r *CardRepository) GetByNumber(ctx context.Context, number string) (*entity.Card, error) {
	return r.getOne(ctx, r.db, "getting card by number", 0, "number = ?", number)
}

// ExistsByID checks if a card with the given ID exists
func (r *CardRepository) ExistsByID(ctx context.Context, id uint64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Card{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, r.handleDatabaseError("checking card", err, id)
	}
	return count > 0, nil
}

// ExistsByNumber checks if a card number is already issued
func (r *CardRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Card{}).Where("number = ?", number).Count(&count).Error; err != nil {
		return false, r.handleDatabaseError("checking card number", err, 0)
	}
	return count > 0, nil
}

// Create stores a new card and sets its ID
func (r *CardRepository) Create(ctx context.Context, card *entity.Card) error {
	now := r.timeProvider.Now()
	cardModel := model.Card{
		Number:       card.Number,
		MaskedNumber: card.MaskedNumber,
		OwnerID:      card.OwnerID,
		Currency:     card.Currency,
		ExpiryDate:   card.ExpiryDate,
		Active:       card.Active,
		Status:       string(card.Status),
		Balance:      card.Balance(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := r.db.WithContext(ctx).Create(&cardModel).Error; err != nil {
		return r.handleDatabaseError("creating card", err, 0)
	}

	card.ID = cardModel.ID
	r.logger.Debug("Card row inserted", map[string]any{
		"card_id":  card.ID,
		"owner_id": card.OwnerID,
		"masked":   card.MaskedNumber,
	})
	return nil
}

// Update persists balance, status and expiry of an existing card
func (r *CardRepository) Update(ctx context.Context, card *entity.Card) error {
	result := r.db.WithContext(ctx).Model(&model.Card{}).
		Where("id = ?", card.ID).
		Updates(map[string]any{
			"balance":     card.Balance(),
			"status":      string(card.Status),
			"active":      card.Active,
			"expiry_date": card.ExpiryDate,
			"updated_at":  r.timeProvider.Now(),
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating card", result.Error, card.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrCardNotFound
	}
	return nil
}

// UpdateStatus writes status and the active flag. The balance column is not touched.
func (r *CardRepository) UpdateStatus(ctx context.Context, id uint64, status entity.CardStatus, active bool) error {
	result := r.db.WithContext(ctx).Model(&model.Card{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(status),
			"active":     active,
			"updated_at": r.timeProvider.Now(),
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating card status", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrCardNotFound
	}
	return nil
}

// Delete removes the card. Transactions keep their card references, so a
// card with history cannot be deleted.
func (r *CardRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.Card{}, id)
	if result.Error != nil {
		if r.errorClassifier.IsForeignKeyError(result.Error) {
			r.logger.Info("Card still referenced by transactions", map[string]any{"card_id": id})
			return errs.ErrCardHasTransactions
		}
		return r.handleDatabaseError("deleting card", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrCardNotFound
	}
	return nil
}

func (r *CardRepository) list(ctx context.Context, req entity.PageRequest, filter func(*gorm.DB) *gorm.DB) ([]*entity.Card, int64, error) {
	query := filter(r.db.WithContext(ctx).Model(&model.Card{}))
	if req.Search != "" {
		query = query.Where("number LIKE ?", "%"+escapeLike(req.Search))
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, r.handleDatabaseError("counting cards", err, 0)
	}

	var models []model.Card
	if err := paginate(cardsTable, req)(query).Find(&models).Error; err != nil {
		return nil, 0, r.handleDatabaseError("listing cards", err, 0)
	}

	cards, err := r.modelsToEntities(models)
	if err != nil {
		return nil, 0, err
	}
	return cards, total, nil
}

// List returns a page of all cards. Search matches the last digits of the number.
func (r *CardRepository) List(ctx context.Context, req entity.PageRequest) ([]*entity.Card, int64, error) {
	return r.list(ctx, req, func(db *gorm.DB) *gorm.DB { return db })
}

// ListByOwner returns a page of the owner's cards
func (r *CardRepository) ListByOwner(ctx context.Context, ownerID uint64, req entity.PageRequest) ([]*entity.Card, int64, error) {
	return r.list(ctx, req, func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", ownerID)
	})
}

// ListByOwnerAndStatus returns a page of the owner's cards in the given status
func (r *CardRepository) ListByOwnerAndStatus(ctx context.Context, ownerID uint64, status entity.CardStatus, req entity.PageRequest) ([]*entity.Card, int64, error) {
	return r.list(ctx, req, func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ? AND status = ?", ownerID, string(status))
	})
}
