package migration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirhossein-jamali/bankcards/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bankcards/internal/infrastructure/adapter/database/dbtest"
	coremocks "github.com/amirhossein-jamali/bankcards/mocks/port/core"
	usecasemocks "github.com/amirhossein-jamali/bankcards/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newQuietLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func newFixedClock(t *testing.T) *coremocks.MockTimeProvider {
	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)).Maybe()
	return clock
}

func versions(steps []step) []string {
	out := make([]string, 0, len(steps))
	for _, s := range steps {
		out = append(out, s.version)
	}
	return out
}

func TestMigrationManager_Pending(t *testing.T) {
	m := NewMigrationManager(nil, newQuietLogger(t), newFixedClock(t))

	tests := []struct {
		name    string
		applied map[string]bool
		want    []string
	}{
		{name: "FreshDatabase", applied: map[string]bool{}, want: []string{"1.0.0", "1.0.1", "1.0.2", "1.0.3", "1.0.4"}},
		{name: "PartiallyMigrated", applied: map[string]bool{"1.0.0": true, "1.0.2": true}, want: []string{"1.0.1", "1.0.3", "1.0.4"}},
		{name: "UpToDate", applied: map[string]bool{"1.0.0": true, "1.0.1": true, "1.0.2": true, "1.0.3": true, "1.0.4": true}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, versions(m.pending(tt.applied)))
		})
	}
}

func TestMigrationManager_LastStepIsCurrentVersion(t *testing.T) {
	m := NewMigrationManager(nil, newQuietLogger(t), newFixedClock(t))

	require.NotEmpty(t, m.steps)
	assert.Equal(t, CurrentSchemaVersion, m.steps[len(m.steps)-1].version)
}

func TestMigrationManager_AppliedVersions(t *testing.T) {
	db, sqlMock := dbtest.NewMockDB(t)
	m := NewMigrationManager(db, newQuietLogger(t), newFixedClock(t))

	sqlMock.ExpectQuery(`SELECT "version" FROM "migration_versions"`).
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow("1.0.0").AddRow("1.0.1"))

	applied, err := m.AppliedVersions(context.Background())

	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"1.0.0": true, "1.0.1": true}, applied)
}

func TestAddCardBalanceCheck(t *testing.T) {
	t.Run("should add the constraint when missing", func(t *testing.T) {
		db, sqlMock := dbtest.NewMockDB(t)

		sqlMock.ExpectQuery(`SELECT COUNT\(\*\) FROM pg_constraint WHERE conname = \$1`).
			WithArgs(BalanceCheckConstraint).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		sqlMock.ExpectExec(`ALTER TABLE cards ADD CONSTRAINT chk_cards_balance_non_negative CHECK \(balance >= 0\)`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, NewAddCardBalanceCheck(db, newQuietLogger(t)).Run(context.Background()))
	})

	t.Run("should skip when present", func(t *testing.T) {
		db, sqlMock := dbtest.NewMockDB(t)

		sqlMock.ExpectQuery(`FROM pg_constraint`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		require.NoError(t, NewAddCardBalanceCheck(db, newQuietLogger(t)).Run(context.Background()))
	})
}

func TestHistoryConstraints(t *testing.T) {
	t.Run("should restrict card deletes and dedupe tokens in one transaction", func(t *testing.T) {
		db, sqlMock := dbtest.NewMockDB(t)

		sqlMock.ExpectBegin()
		sqlMock.ExpectExec(`ALTER TABLE transactions DROP CONSTRAINT IF EXISTS fk_transactions_from_card`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		sqlMock.ExpectExec(`ADD CONSTRAINT fk_transactions_from_card .+ ON DELETE RESTRICT`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		sqlMock.ExpectExec(`ALTER TABLE transactions DROP CONSTRAINT IF EXISTS fk_transactions_to_card`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		sqlMock.ExpectExec(`ADD CONSTRAINT fk_transactions_to_card .+ ON DELETE RESTRICT`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		sqlMock.ExpectExec(`DELETE FROM tokens older USING tokens newer`).
			WillReturnResult(sqlmock.NewResult(0, 2))
		sqlMock.ExpectExec(`DROP INDEX IF EXISTS idx_tokens_user_id`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		sqlMock.ExpectExec(`CREATE UNIQUE INDEX idx_tokens_user_id ON tokens \(user_id\)`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		sqlMock.ExpectCommit()

		require.NoError(t, NewHistoryConstraints(db, newQuietLogger(t)).Run(context.Background()))
	})

	t.Run("should roll back when a statement fails", func(t *testing.T) {
		db, sqlMock := dbtest.NewMockDB(t)

		sqlMock.ExpectBegin()
		sqlMock.ExpectExec(`DROP CONSTRAINT IF EXISTS fk_transactions_from_card`).
			WillReturnError(errors.New("must be owner of table transactions"))
		sqlMock.ExpectRollback()

		assert.Error(t, NewHistoryConstraints(db, newQuietLogger(t)).Run(context.Background()))
	})
}

func TestAdvancedIndexManager(t *testing.T) {
	t.Run("should stop at the first failing index", func(t *testing.T) {
		db, sqlMock := dbtest.NewMockDB(t)

		sqlMock.ExpectExec(`CREATE INDEX IF NOT EXISTS idx_cards_user_status`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		sqlMock.ExpectExec(`CREATE INDEX IF NOT EXISTS idx_transactions_from_card_created`).
			WillReturnError(errors.New("permission denied"))

		err := NewAdvancedIndexManager(db, newQuietLogger(t)).CreateAdvancedIndexes(context.Background())

		assert.Error(t, err)
	})

	t.Run("should tolerate failing performance tweaks", func(t *testing.T) {
		db, sqlMock := dbtest.NewMockDB(t)

		for range performanceTweaks {
			sqlMock.ExpectExec(`ALTER TABLE`).WillReturnError(errors.New("must be owner of table"))
		}

		err := NewAdvancedIndexManager(db, newQuietLogger(t)).CreatePerformanceTweaks(context.Background())

		assert.NoError(t, err)
	})
}

func TestSeedDefaultAdmin(t *testing.T) {
	t.Run("should ensure the configured admin", func(t *testing.T) {
		users := usecasemocks.NewMockUserUseCase(t)
		req := usecase.CreateUserRequest{Username: "admin", Email: "admin@example.com", Password: "admin123"}
		users.EXPECT().EnsureDefaultAdmin(mock.Anything, req).Return(nil).Once()

		assert.NoError(t, SeedDefaultAdmin(context.Background(), users, req, newQuietLogger(t)))
	})

	t.Run("should skip when no username is configured", func(t *testing.T) {
		users := usecasemocks.NewMockUserUseCase(t)

		assert.NoError(t, SeedDefaultAdmin(context.Background(), users, usecase.CreateUserRequest{}, newQuietLogger(t)))
	})

	t.Run("should return seeding failures", func(t *testing.T) {
		users := usecasemocks.NewMockUserUseCase(t)
		failure := errors.New("db down")
		users.EXPECT().EnsureDefaultAdmin(mock.Anything, mock.Anything).Return(failure).Once()

		err := SeedDefaultAdmin(context.Background(), users, usecase.CreateUserRequest{Username: "admin"}, newQuietLogger(t))

		assert.ErrorIs(t, err, failure)
	})
}
