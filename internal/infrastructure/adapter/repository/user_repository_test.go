package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirhossein-jamali/bankcards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bankcards/internal/domain/error"
	"github.com/amirhossein-jamali/bankcards/internal/infrastructure/adapter/database/dbtest"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var userColumns = []string{
	"id", "username", "email", "password_hash", "first_name", "last_name", "role", "created_at", "updated_at",
}

func newUserRepositoryUnderTest(t *testing.T) (*UserRepository, sqlmock.Sqlmock) {
	db, mock := dbtest.NewMockDB(t)
	return NewUserRepository(db, newFixedClock(t), newQuietLogger(t)), mock
}

func TestUserRepository_GetByUsername(t *testing.T) {
	repo, mock := newUserRepositoryUnderTest(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1 ORDER BY "users"\."id" LIMIT \$2`).
		WithArgs("alice", 1).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(1, "alice", "alice@example.com", "hash", "Alice", "Smith", "ADMIN", fixedTime, fixedTime))

	user, err := repo.GetByUsername(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, user.Role)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestUserRepository_UnknownStoredRole(t *testing.T) {
	repo, mock := newUserRepositoryUnderTest(t)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(1, "alice", "alice@example.com", "hash", "", "", "ROOT", fixedTime, fixedTime))

	_, err := repo.GetByID(context.Background(), 1)

	assert.ErrorIs(t, err, errs.ErrInternalServer)
}

func TestUserRepository_GetByIDMissing(t *testing.T) {
	repo, mock := newUserRepositoryUnderTest(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).WillReturnError(gorm.ErrRecordNotFound)

	_, err := repo.GetByID(context.Background(), 1)

	assert.ErrorIs(t, err, errs.ErrUserNotFound)
}

func TestUserRepository_Create(t *testing.T) {
	repo, mock := newUserRepositoryUnderTest(t)
	user := &entity.User{Username: "bob", Email: "bob@example.com", PasswordHash: "hash", Role: entity.RoleUser}

	mock.ExpectQuery(`INSERT INTO "users" (.+) VALUES (.+) RETURNING`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(17))

	require.NoError(t, repo.Create(context.Background(), user))
	assert.Equal(t, uint64(17), user.ID)
	assert.Equal(t, fixedTime, user.CreatedAt)
}

func TestUserRepository_CreateDuplicate(t *testing.T) {
	repo, mock := newUserRepositoryUnderTest(t)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_users_username"})

	err := repo.Create(context.Background(), &entity.User{Username: "bob", Role: entity.RoleUser})

	assert.ErrorIs(t, err, errs.ErrDuplicateUser)
}

func TestUserRepository_ExistsByEmail(t *testing.T) {
	repo, mock := newUserRepositoryUnderTest(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE email = \$1`).
		WithArgs("bob@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	exists, err := repo.ExistsByEmail(context.Background(), "bob@example.com")

	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUserRepository_UpdateMissing(t *testing.T) {
	repo, mock := newUserRepositoryUnderTest(t)

	mock.ExpectExec(`UPDATE "users" SET`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &entity.User{ID: 4, Role: entity.RoleUser})

	assert.ErrorIs(t, err, errs.ErrUserNotFound)
}

func TestUserRepository_DeleteBlockedByCardHistory(t *testing.T) {
	repo, mock := newUserRepositoryUnderTest(t)

	mock.ExpectExec(`DELETE FROM "users" WHERE "users"\."id" = \$1`).
		WithArgs(uint64(4)).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "fk_transactions_to_card"})

	err := repo.Delete(context.Background(), 4)

	assert.ErrorIs(t, err, errs.ErrCardHasTransactions)
}

func TestUserRepository_DeleteMissing(t *testing.T) {
	repo, mock := newUserRepositoryUnderTest(t)

	mock.ExpectExec(`DELETE FROM "users"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 4), errs.ErrUserNotFound)
}
