package database

import (
	"database/sql"
	"sync/atomic"
	"testing"
	"time"

	coremocks "github.com/amirhossein-jamali/bankcards/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type fakeStats struct {
	stats sql.DBStats
	calls atomic.Int32
}

func (f *fakeStats) Stats() sql.DBStats {
	f.calls.Add(1)
	return f.stats
}

func TestConnectionPoolMonitor_CollectsOnStart(t *testing.T) {
	source := &fakeStats{stats: sql.DBStats{MaxOpenConnections: 10, OpenConnections: 4, InUse: 2, Idle: 2}}
	monitor := NewConnectionPoolMonitor(source, newQuietLogger(t))

	monitor.Start(time.Hour)
	defer monitor.Stop()

	metrics := monitor.Metrics()
	assert.Equal(t, 4, metrics.OpenConnections)
	assert.Equal(t, 2, metrics.InUse)
	assert.Equal(t, 10, metrics.MaxOpenConnections)
}

func TestConnectionPoolMonitor_WarnsNearExhaustion(t *testing.T) {
	source := &fakeStats{stats: sql.DBStats{MaxOpenConnections: 10, InUse: 9}}
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Warn("Database connection pool nearly exhausted", mock.Anything).Once()

	monitor := NewConnectionPoolMonitor(source, logger)
	monitor.collect()
}

func TestConnectionPoolMonitor_StopIsIdempotent(t *testing.T) {
	source := &fakeStats{}
	monitor := NewConnectionPoolMonitor(source, newQuietLogger(t))

	monitor.Start(time.Millisecond)
	assert.Eventually(t, func() bool { return source.calls.Load() > 2 }, time.Second, time.Millisecond)

	monitor.Stop()
	monitor.Stop()

	after := source.calls.Load()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, after, source.calls.Load())
}
