package database

import (
	"context"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/bankcards/internal/domain/port/core"
	"github.com/amirhossein-jamali/bankcards/internal/infrastructure/adapter/database/migration"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Manager owns the connection pool and everything built on it
type Manager struct {
	config            *Config
	db                *gorm.DB
	logger            coreport.Logger
	timeProvider      coreport.TimeProvider
	connectionMonitor *ConnectionPoolMonitor
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// NewManagerWithDB wraps an already opened connection
func NewManagerWithDB(db *gorm.DB, config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// GormConfig returns the GORM settings used for every connection
func GormConfig(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *gorm.Config {
	return &gorm.Config{
		Logger:                 NewDatabaseLogger(logger, timeProvider, config.LogLevel, config.SlowThreshold),
		NowFunc:                func() time.Time { return timeProvider.Now() },
		SkipDefaultTransaction: true,
	}
}

// Connect opens the pool, retrying transient failures with backoff
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	if err := m.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	m.logger.Info("Connecting to database", map[string]any{
		"host": m.config.Host,
		"port": m.config.Port,
		"name": m.config.Database,
	})

	retry := DefaultRetryConfig()
	retry.MaxAttempts = m.config.RetryAttempts
	retry.RetryInterval = m.config.RetryDelay

	var gormDB *gorm.DB
	err := RetryOnTransientError(ctx, retry, func(ctx context.Context) error {
		db, err := gorm.Open(postgres.Open(m.config.DSN()), GormConfig(m.config, m.logger, m.timeProvider))
		if err != nil {
			return err
		}

		sqlDB, err := db.DB()
		if err != nil {
			return err
		}

		pingCtx, cancel := m.timeProvider.WithTimeout(ctx, coreport.Duration(m.config.QueryTimeout))
		defer cancel()
		if err := sqlDB.PingContext(pingCtx); err != nil {
			_ = sqlDB.Close()
			return err
		}

		gormDB = db
		return nil
	}, m.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", m.config.RetryAttempts, err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}
	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)

	m.db = gormDB
	if m.config.PoolCheckPeriod > 0 {
		m.connectionMonitor = NewConnectionPoolMonitor(sqlDB, m.logger)
		m.connectionMonitor.Start(m.config.PoolCheckPeriod)
	}

	m.logger.Info("Successfully connected to database", map[string]any{
		"max_open_conns": m.config.MaxOpenConns,
		"max_idle_conns": m.config.MaxIdleConns,
	})
	return m.db, nil
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Migrate brings the schema up to date
func (m *Manager) Migrate(ctx context.Context) error {
	return migration.NewMigrationManager(m.db, m.logger, m.timeProvider).MigrateAll(ctx)
}

// Ping checks the database is reachable within the query timeout
func (m *Manager) Ping(ctx context.Context) error {
	if m.db == nil {
		return fmt.Errorf("database is not connected")
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}

	ctx, cancel := m.timeProvider.WithTimeout(ctx, coreport.Duration(m.config.QueryTimeout))
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// Close stops monitoring and closes the pool
func (m *Manager) Close() error {
	m.logger.Info("Closing database connection", nil)

	if m.connectionMonitor != nil {
		m.connectionMonitor.Stop()
	}
	if m.db == nil {
		return nil
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}

// CreateUnitOfWork creates a new UnitOfWork instance
func (m *Manager) CreateUnitOfWork() *UnitOfWork {
	return NewUnitOfWork(m.db, m.logger, m.timeProvider)
}
