package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/bankcards/internal/domain/port/core"
	"gorm.io/gorm"
)

type indexDefinition struct {
	name string
	sql  string
}

// Statements are idempotent so a partially applied step can be rerun
var advancedIndexes = []indexDefinition{
	{
		name: "idx_cards_user_status",
		sql:  `CREATE INDEX IF NOT EXISTS idx_cards_user_status ON cards (user_id, status)`,
	},
	{
		name: "idx_transactions_from_card_created",
		sql:  `CREATE INDEX IF NOT EXISTS idx_transactions_from_card_created ON transactions (from_card_id, created_at DESC)`,
	},
	{
		name: "idx_transactions_to_card_created",
		sql:  `CREATE INDEX IF NOT EXISTS idx_transactions_to_card_created ON transactions (to_card_id, created_at DESC)`,
	},
	{
		name: "idx_transactions_pending",
		sql:  `CREATE INDEX IF NOT EXISTS idx_transactions_pending ON transactions (created_at) WHERE status = 'PENDING'`,
	},
	{
		name: "idx_transactions_created_at_brin",
		sql:  `CREATE INDEX IF NOT EXISTS idx_transactions_created_at_brin ON transactions USING BRIN (created_at) WITH (pages_per_range = 32)`,
	},
	{
		name: "idx_tokens_expires_at",
		sql:  `CREATE INDEX IF NOT EXISTS idx_tokens_expires_at ON tokens (expires_at)`,
	},
}

var performanceTweaks = []indexDefinition{
	// cards rows are rewritten on every transfer
	{name: "cards_fillfactor", sql: `ALTER TABLE cards SET (fillfactor = 85)`},
	{name: "transactions_fillfactor", sql: `ALTER TABLE transactions SET (fillfactor = 90)`},
	{name: "transactions_from_card_statistics", sql: `ALTER TABLE transactions ALTER COLUMN from_card_id SET STATISTICS 1000`},
}

// AdvancedIndexManager manages PostgreSQL-specific indexes and storage settings
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateAdvancedIndexes creates the composite, partial and BRIN indexes
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	for _, idx := range advancedIndexes {
		if err := m.db.WithContext(ctx).Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", map[string]any{
		"count": len(advancedIndexes),
	})
	return nil
}

// CreatePerformanceTweaks applies storage settings. Failures are logged only.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) error {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	for _, tweak := range performanceTweaks {
		if err := m.db.WithContext(ctx).Exec(tweak.sql).Error; err != nil {
			m.logger.Warn("Failed to apply performance tweak", map[string]any{
				"tweak": tweak.name,
				"error": err.Error(),
			})
		}
	}
	return nil
}
