package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirhossein-jamali/bankcards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bankcards/internal/domain/error"
	"github.com/amirhossein-jamali/bankcards/internal/infrastructure/adapter/database/dbtest"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var transactionColumns = []string{
	"id", "amount", "from_card_id", "to_card_id", "description", "status", "created_at", "processed_at",
}

func newTransactionRepositoryUnderTest(t *testing.T) (*TransactionRepository, sqlmock.Sqlmock) {
	db, mock := dbtest.NewMockDB(t)
	return NewTransactionRepository(db, newQuietLogger(t)), mock
}

func pendingTransaction(t *testing.T) *entity.Transaction {
	tx, err := entity.NewTransaction(1, 2, decimal.RequireFromString("25.00"), "rent", newFixedClock(t))
	require.NoError(t, err)
	return tx
}

func TestTransactionRepository_Create(t *testing.T) {
	repo, mock := newTransactionRepositoryUnderTest(t)
	tx := pendingTransaction(t)

	mock.ExpectQuery(`INSERT INTO "transactions" (.+) VALUES (.+) RETURNING`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	require.NoError(t, repo.Create(context.Background(), tx))
	assert.Equal(t, uint64(42), tx.ID)
}

func TestTransactionRepository_CreateUnknownCard(t *testing.T) {
	repo, mock := newTransactionRepositoryUnderTest(t)

	mock.ExpectQuery(`INSERT INTO "transactions"`).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	err := repo.Create(context.Background(), pendingTransaction(t))

	assert.ErrorIs(t, err, errs.ErrCardNotFound)
}

func TestTransactionRepository_UpdateOnlyPending(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		existing int64
		wantErr  error
	}{
		{name: "Finalized", affected: 1},
		{name: "AlreadyFinal", affected: 0, existing: 1, wantErr: errs.ErrTransactionFinalized},
		{name: "Missing", affected: 0, existing: 0, wantErr: errs.ErrTransactionNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTransactionRepositoryUnderTest(t)
			tx := pendingTransaction(t)
			tx.ID = 42
			require.NoError(t, tx.MarkAsCompleted(newFixedClock(t)))

			mock.ExpectExec(`UPDATE "transactions" SET .* WHERE id = \$\d+ AND status = \$\d+`).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))
			if tt.affected == 0 {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "transactions" WHERE id = \$1`).
					WithArgs(uint64(42)).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.existing))
			}

			err := repo.Update(context.Background(), tx)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTransactionRepository_GetByID(t *testing.T) {
	repo, mock := newTransactionRepositoryUnderTest(t)

	mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE id = \$1`).
		WithArgs(uint64(42), 1).
		WillReturnRows(sqlmock.NewRows(transactionColumns).
			AddRow(42, "25.00", 1, 2, "rent", "COMPLETED", fixedTime, fixedTime))

	tx, err := repo.GetByID(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, tx.Status)
	assert.Equal(t, "25.00", entity.FormatAmount(tx.Amount))
	require.NotNil(t, tx.ProcessedAt)
}

func TestTransactionRepository_GetByIDMissing(t *testing.T) {
	repo, mock := newTransactionRepositoryUnderTest(t)

	mock.ExpectQuery(`SELECT \* FROM "transactions"`).WillReturnError(gorm.ErrRecordNotFound)

	_, err := repo.GetByID(context.Background(), 1)

	assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
}

func TestTransactionRepository_ListByUser(t *testing.T) {
	repo, mock := newTransactionRepositoryUnderTest(t)

	subquery := `\(SELECT .+ FROM "cards" WHERE user_id = \$\d\)`
	mock.ExpectQuery(`SELECT count\(\*\) FROM "transactions" WHERE from_card_id IN ` + subquery + ` OR to_card_id IN ` + subquery).
		WithArgs(uint64(3), uint64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE .* ORDER BY "transactions"\."created_at" LIMIT`).
		WillReturnRows(sqlmock.NewRows(transactionColumns).
			AddRow(9, "5.00", 1, 4, "", "FAILED", fixedTime, fixedTime))

	req := entity.PageRequest{Page: 1, Size: 20, SortBy: "created_at", Direction: entity.SortAsc}
	txs, total, err := repo.ListByUser(context.Background(), 3, req)

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, txs, 1)
	assert.Equal(t, entity.StatusFailed, txs[0].Status)
}
