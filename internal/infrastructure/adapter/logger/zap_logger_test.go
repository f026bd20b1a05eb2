package logger

import (
	"context"
	"testing"

	"github.com/amirhossein-jamali/bankcards/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		input    string
		expected core.LogLevel
	}{
		{"debug", core.LogLevelDebug},
		{"INFO", core.LogLevelInfo},
		{"warning", core.LogLevelWarn},
		{" error ", core.LogLevelError},
		{"verbose", core.LogLevelInfo},
		{"", core.LogLevelInfo},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseLevel(tc.input))
		})
	}
}

func TestZapLogger_Levels(t *testing.T) {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	observed, logs := observer.New(level)
	l := &ZapLogger{logger: zap.New(observed), level: level}

	t.Run("should drop messages below the level", func(t *testing.T) {
		l.Debug("hidden", nil)
		l.Info("shown", map[string]any{"card_id": uint64(7)})

		entries := logs.TakeAll()
		if assert.Len(t, entries, 1) {
			assert.Equal(t, "shown", entries[0].Message)
			assert.Equal(t, uint64(7), entries[0].ContextMap()["card_id"])
		}
	})

	t.Run("should apply SetLevel at runtime", func(t *testing.T) {
		l.SetLevel(core.LogLevelError)
		assert.Equal(t, core.LogLevelError, l.GetLevel())

		l.Warn("hidden", nil)
		l.Error("shown", nil)

		assert.Len(t, logs.TakeAll(), 1)
	})
}

func TestNoopLogger(t *testing.T) {
	l := NewNoopLogger()
	l.SetLevel(core.LogLevelDebug)

	assert.Equal(t, core.LogLevelDebug, l.GetLevel())
	assert.NoError(t, l.Flush())
}

func TestRequestIDContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")

	assert.Equal(t, "req-1", RequestIDFromContext(ctx))
	assert.Empty(t, RequestIDFromContext(context.Background()))
}
