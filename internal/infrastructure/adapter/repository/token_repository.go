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

var tokenErrors = domainErrors{notFound: errs.ErrTokenNotFound, duplicate: errs.ErrTokenAlreadyExists}

// TokenRepository stores bearer tokens using GORM
type TokenRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTokenRepository creates a new TokenRepository instance
func NewTokenRepository(db *gorm.DB, logger coreport.Logger) *TokenRepository {
	return &TokenRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *TokenRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	mapped := r.errorClassifier.mapError(err, tokenErrors)
	if mapped == errs.ErrTokenNotFound {
		return mapped
	}

	// token values are credentials and are never logged
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})
	return mapped
}

func toTokenEntity(m *model.Token) *entity.Token {
	return &entity.Token{
		ID:        m.ID,
		Value:     m.Value,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		ExpiresAt: m.ExpiresAt,
	}
}

// Save stores the token as the user's only token. An existing row of the
// user is overwritten in the same statement.
func (r *TokenRepository) Save(ctx context.Context, token *entity.Token) error {
	tokenModel := model.Token{
		Value:     token.Value,
		UserID:    token.UserID,
		CreatedAt: token.CreatedAt,
		ExpiresAt: token.ExpiresAt,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "created_at", "expires_at"}),
		}).
		Create(&tokenModel).Error
	if err != nil {
		return r.handleDatabaseError("saving token", err, token.UserID)
	}

	token.ID = tokenModel.ID
	return nil
}

// GetByValue retrieves a token by its value
func (r *TokenRepository) GetByValue(ctx context.Context, value string) (*entity.Token, error) {
	var tokenModel model.Token
	if err := r.db.WithContext(ctx).Where("value = ?", value).First(&tokenModel).Error; err != nil {
		return nil, r.handleDatabaseError("getting token", err, 0)
	}
	return toTokenEntity(&tokenModel), nil
}

// ExistsByValue checks whether the exact value is stored
func (r *TokenRepository) ExistsByValue(ctx context.Context, value string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Token{}).Where("value = ?", value).Count(&count).Error; err != nil {
		return false, r.handleDatabaseError("checking token", err, 0)
	}
	return count > 0, nil
}

// GetByUserID returns the user's token
func (r *TokenRepository) GetByUserID(ctx context.Context, userID uint64) (*entity.Token, error) {
	var tokenModel model.Token
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&tokenModel).Error
	if err != nil {
		return nil, r.handleDatabaseError("getting user token", err, userID)
	}
	return toTokenEntity(&tokenModel), nil
}

// DeleteByValue removes the token. Missing values are not an error.
func (r *TokenRepository) DeleteByValue(ctx context.Context, value string) error {
	if err := r.db.WithContext(ctx).Where("value = ?", value).Delete(&model.Token{}).Error; err != nil {
		return r.handleDatabaseError("deleting token", err, 0)
	}
	return nil
}

// DeleteByUserID removes every token of the user
func (r *TokenRepository) DeleteByUserID(ctx context.Context, userID uint64) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Token{}).Error; err != nil {
		return r.handleDatabaseError("deleting user tokens", err, userID)
	}
	return nil
}
