package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirhossein-jamali/bankcards/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bankcards/internal/infrastructure/adapter/database/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUnitOfWorkUnderTest(t *testing.T) (*UnitOfWork, sqlmock.Sqlmock) {
	db, mock := dbtest.NewMockDB(t)
	return NewUnitOfWork(db, newQuietLogger(t), newFixedClock(t)), mock
}

func TestUnitOfWork_CommitRunsRepositoriesInTransaction(t *testing.T) {
	uow, mock := newUnitOfWorkUnderTest(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE username = \$1`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectCommit()

	txCtx, err := uow.Begin(ctx)
	require.NoError(t, err)

	exists, err := uow.GetUserRepository(txCtx).ExistsByUsername(txCtx, "alice")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, uow.Commit(txCtx))
}

func TestUnitOfWork_NestedBeginFails(t *testing.T) {
	uow, mock := newUnitOfWorkUnderTest(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	txCtx, err := uow.Begin(context.Background())
	require.NoError(t, err)

	_, err = uow.Begin(txCtx)
	assert.Error(t, err)

	require.NoError(t, uow.Rollback(txCtx))
}

func TestUnitOfWork_RollbackAfterCommitIsTolerated(t *testing.T) {
	uow, mock := newUnitOfWorkUnderTest(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	txCtx, err := uow.Begin(context.Background())
	require.NoError(t, err)
	require.NoError(t, uow.Commit(txCtx))

	assert.NoError(t, uow.Rollback(txCtx))
}

func TestUnitOfWork_NoTransaction(t *testing.T) {
	uow, _ := newUnitOfWorkUnderTest(t)

	assert.ErrorIs(t, uow.Commit(context.Background()), ErrNoTransaction)
	assert.ErrorIs(t, uow.Rollback(context.Background()), ErrNoTransaction)
}

func TestUnitOfWork_BeginFailure(t *testing.T) {
	uow, mock := newUnitOfWorkUnderTest(t)

	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	ctx := context.Background()
	txCtx, err := uow.Begin(ctx)

	assert.Error(t, err)
	assert.Equal(t, ctx, txCtx)
}

func TestWithinTransaction_RollsBackOnError(t *testing.T) {
	uow, mock := newUnitOfWorkUnderTest(t)
	failure := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := persistence.WithinTransaction(context.Background(), uow, func(ctx context.Context) error {
		return failure
	})

	assert.ErrorIs(t, err, failure)
}
