package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/bankcards/internal/domain/port/core"
	"gorm.io/gorm"
)

// BalanceCheckConstraint guards cards.balance against going negative
const BalanceCheckConstraint = "chk_cards_balance_non_negative"

// AddCardBalanceCheck adds the non-negative balance constraint to card tables
// created before the model carried it
type AddCardBalanceCheck struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAddCardBalanceCheck creates a new migration instance
func NewAddCardBalanceCheck(db *gorm.DB, logger coreport.Logger) *AddCardBalanceCheck {
	return &AddCardBalanceCheck{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration
func (m *AddCardBalanceCheck) Run(ctx context.Context) error {
	exists, err := m.constraintExists(ctx)
	if err != nil {
		return err
	}
	if exists {
		m.logger.Debug("Card balance constraint already present", nil)
		return nil
	}

	m.logger.Info("Adding card balance constraint", map[string]any{
		"constraint": BalanceCheckConstraint,
	})

	if err := m.db.WithContext(ctx).Exec(
		`ALTER TABLE cards ADD CONSTRAINT ` + BalanceCheckConstraint + ` CHECK (balance >= 0)`,
	).Error; err != nil {
		m.logger.Error("Failed to add card balance constraint", map[string]any{"error": err.Error()})
		return err
	}
	return nil
}

func (m *AddCardBalanceCheck) constraintExists(ctx context.Context) (bool, error) {
	var count int64
	err := m.db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM pg_constraint WHERE conname = ?`, BalanceCheckConstraint,
	).Scan(&count).Error
	if err != nil {
		m.logger.Error("Failed to check constraint existence", map[string]any{"error": err.Error()})
		return false, err
	}
	return count > 0, nil
}
