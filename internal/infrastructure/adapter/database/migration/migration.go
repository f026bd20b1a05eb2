package migration

import (
	"context"
	"fmt"

	coreport "github.com/amirhossein-jamali/bankcards/internal/domain/port/core"
	"github.com/amirhossein-jamali/bankcards/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// CurrentSchemaVersion is the version of the newest migration step
const CurrentSchemaVersion = "1.0.4"

// step is one versioned schema change
type step struct {
	version string
	name    string
	run     func(ctx context.Context) error
}

// MigrationManager applies versioned migrations exactly once each
type MigrationManager struct {
	db               *gorm.DB
	logger           coreport.Logger
	timeProvider     coreport.TimeProvider
	advancedIndexMgr *AdvancedIndexManager
	steps            []step
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	m := &MigrationManager{
		db:               db,
		logger:           logger,
		timeProvider:     timeProvider,
		advancedIndexMgr: NewAdvancedIndexManager(db, logger),
	}

	m.steps = []step{
		{version: "1.0.0", name: "base_schema", run: m.autoMigrateModels},
		{version: "1.0.1", name: "card_balance_check", run: NewAddCardBalanceCheck(db, logger).Run},
		{version: "1.0.2", name: "advanced_indexes", run: m.advancedIndexMgr.CreateAdvancedIndexes},
		{version: "1.0.3", name: "performance_tweaks", run: m.advancedIndexMgr.CreatePerformanceTweaks},
		{version: "1.0.4", name: "history_constraints", run: NewHistoryConstraints(db, logger).Run},
	}
	return m
}

// MigrateAll applies every step that has not been recorded yet
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	if err := m.db.WithContext(ctx).AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	applied, err := m.AppliedVersions(ctx)
	if err != nil {
		m.logger.Error("Failed to read applied migrations", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	pending := m.pending(applied)
	if len(pending) == 0 {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": CurrentSchemaVersion,
		})
		return nil
	}

	for _, s := range pending {
		m.logger.Info("Applying migration", map[string]any{
			"version": s.version,
			"name":    s.name,
		})

		if err := s.run(ctx); err != nil {
			m.logger.Error("Migration failed", map[string]any{
				"version": s.version,
				"name":    s.name,
				"error":   err.Error(),
			})
			return fmt.Errorf("migration %s (%s): %w", s.version, s.name, err)
		}

		if err := m.setVersion(ctx, s); err != nil {
			return err
		}
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": CurrentSchemaVersion,
		"applied": len(pending),
	})
	return nil
}

// AppliedVersions returns the set of recorded migration versions
func (m *MigrationManager) AppliedVersions(ctx context.Context) (map[string]bool, error) {
	var versions []string
	if err := m.db.WithContext(ctx).Model(&model.MigrationVersion{}).Pluck("version", &versions).Error; err != nil {
		return nil, err
	}

	applied := make(map[string]bool, len(versions))
	for _, v := range versions {
		applied[v] = true
	}
	return applied, nil
}

// pending keeps step order and drops what is already applied
func (m *MigrationManager) pending(applied map[string]bool) []step {
	var out []step
	for _, s := range m.steps {
		if !applied[s.version] {
			out = append(out, s)
		}
	}
	return out
}

func (m *MigrationManager) setVersion(ctx context.Context, s step) error {
	record := model.MigrationVersion{
		Version:   s.version,
		Name:      s.name,
		AppliedAt: m.timeProvider.Now(),
		Details:   "applied by migration manager",
	}
	if err := m.db.WithContext(ctx).Create(&record).Error; err != nil {
		m.logger.Error("Failed to record schema version", map[string]any{
			"error":   err.Error(),
			"version": s.version,
		})
		return err
	}
	return nil
}

func (m *MigrationManager) autoMigrateModels(ctx context.Context) error {
	m.logger.Info("Auto-migrating database models", nil)

	return m.db.WithContext(ctx).AutoMigrate(
		&model.User{},
		&model.Card{},
		&model.Transaction{},
		&model.Token{},
	)
}
