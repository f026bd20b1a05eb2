package database

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/bankcards/internal/domain/port/core"
	"github.com/amirhossein-jamali/bankcards/internal/infrastructure/adapter/database/dbtest"
	coremocks "github.com/amirhossein-jamali/bankcards/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestManager_PingUsesQueryTimeout(t *testing.T) {
	db, _ := dbtest.NewMockDB(t)

	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().WithTimeout(mock.Anything, core.Duration(2*time.Second)).
		RunAndReturn(func(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
			return context.WithTimeout(ctx, timeout.Std())
		}).Once()

	manager := NewManagerWithDB(db, &Config{QueryTimeout: 2 * time.Second}, newQuietLogger(t), clock)

	assert.NoError(t, manager.Ping(context.Background()))
}

func TestManager_PingWithoutConnection(t *testing.T) {
	manager := NewManager(&Config{QueryTimeout: time.Second}, newQuietLogger(t), coremocks.NewMockTimeProvider(t))

	assert.Error(t, manager.Ping(context.Background()))
}
