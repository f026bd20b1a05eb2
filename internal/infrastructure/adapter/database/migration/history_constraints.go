package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/bankcards/internal/domain/port/core"
	"gorm.io/gorm"
)

// historyConstraintStatements replace the cascading transaction foreign keys
// with restricting ones and make tokens.user_id unique. Older token rows of a
// user are dropped first so the unique index can be built.
var historyConstraintStatements = []string{
	`ALTER TABLE transactions DROP CONSTRAINT IF EXISTS fk_transactions_from_card`,
	`ALTER TABLE transactions ADD CONSTRAINT fk_transactions_from_card FOREIGN KEY (from_card_id) REFERENCES cards (id) ON DELETE RESTRICT`,
	`ALTER TABLE transactions DROP CONSTRAINT IF EXISTS fk_transactions_to_card`,
	`ALTER TABLE transactions ADD CONSTRAINT fk_transactions_to_card FOREIGN KEY (to_card_id) REFERENCES cards (id) ON DELETE RESTRICT`,
	`DELETE FROM tokens older USING tokens newer WHERE older.user_id = newer.user_id AND older.id < newer.id`,
	`DROP INDEX IF EXISTS idx_tokens_user_id`,
	`CREATE UNIQUE INDEX idx_tokens_user_id ON tokens (user_id)`,
}

// HistoryConstraints upgrades schemas created with cascading transaction
// deletes and a non-unique token owner index
type HistoryConstraints struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewHistoryConstraints creates a new migration instance
func NewHistoryConstraints(db *gorm.DB, logger coreport.Logger) *HistoryConstraints {
	return &HistoryConstraints{
		db:     db,
		logger: logger,
	}
}

// Run executes every statement in one transaction
func (m *HistoryConstraints) Run(ctx context.Context) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, stmt := range historyConstraintStatements {
			if err := tx.Exec(stmt).Error; err != nil {
				m.logger.Error("Failed to apply history constraint", map[string]any{
					"statement": stmt,
					"error":     err.Error(),
				})
				return err
			}
		}

		m.logger.Info("Transaction history constraints applied", map[string]any{
			"statements": len(historyConstraintStatements),
		})
		return nil
	})
}
