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

var userErrors = domainErrors{notFound: errs.ErrUserNotFound, duplicate: errs.ErrDuplicateUser}

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *UserRepository) modelToEntity(userModel *model.User) (*entity.User, error) {
	role, err := entity.ParseRole(userModel.Role)
	if err != nil {
		r.logger.Error("Stored user has an unknown role", map[string]any{
			"user_id": userModel.ID,
			"role":    userModel.Role,
		})
		return nil, fmt.Errorf("%w: user %d has role %q", errs.ErrInternalServer, userModel.ID, userModel.Role)
	}

	return &entity.User{
		ID:           userModel.ID,
		Username:     userModel.Username,
		Email:        userModel.Email,
		PasswordHash: userModel.PasswordHash,
		FirstName:    userModel.FirstName,
		LastName:     userModel.LastName,
		Role:         role,
		CreatedAt:    userModel.CreatedAt,
	}, nil
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	mapped := r.errorClassifier.mapError(err, userErrors)
	if mapped == errs.ErrUserNotFound {
		r.logger.Debug("User not found", fields)
		return mapped
	}

	fields["error"] = err.Error()
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), fields)
	return mapped
}

func (r *UserRepository) getOne(ctx context.Context, operation string, fields map[string]any, query string, args ...any) (*entity.User, error) {
	var userModel model.User
	if err := r.db.WithContext(ctx).Where(query, args...).First(&userModel).Error; err != nil {
		return nil, r.handleDatabaseError(operation, err, fields)
	}
	return r.modelToEntity(&userModel)
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	return r.getOne(ctx, "getting user", map[string]any{"user_id": id}, "id = ?", id)
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.getOne(ctx, "getting user by username", map[string]any{"username": username}, "username = ?", username)
}

func (r *UserRepository) exists(ctx context.Context, column, value string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Where(column+" = ?", value).Count(&count).Error
	if err != nil {
		return false, r.handleDatabaseError("checking user "+column, err, map[string]any{column: value})
	}
	return count > 0, nil
}

// ExistsByUsername checks whether the username is taken
func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "username", username)
}

// ExistsByEmail checks whether the email is taken
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email", email)
}

// Create creates a new user and sets its ID
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	now := r.timeProvider.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}

	userModel := model.User{
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Role:         string(user.Role),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    now,
	}

	if err := r.db.WithContext(ctx).Create(&userModel).Error; err != nil {
		return r.handleDatabaseError("creating user", err, map[string]any{"username": user.Username})
	}

	user.ID = userModel.ID
	r.logger.Debug("User row inserted", map[string]any{
		"user_id": user.ID,
	})
	return nil
}

// Update updates user profile and role
func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"email":      user.Email,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"role":       string(user.Role),
			"updated_at": r.timeProvider.Now(),
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating user", result.Error, map[string]any{"user_id": user.ID})
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}

// Delete removes the user. Cards and tokens cascade; a card with
// transaction history blocks the delete.
func (r *UserRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.User{}, id)
	if result.Error != nil {
		if r.errorClassifier.IsForeignKeyError(result.Error) {
			return fmt.Errorf("%w: user %d owns cards with transactions", errs.ErrCardHasTransactions, id)
		}
		return r.handleDatabaseError("deleting user", result.Error, map[string]any{"user_id": id})
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}
