package entity

import (
	"strings"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/bankcards/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/bankcards/mocks/port/core"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid transaction creation", func(t *testing.T) {
		tx, err := NewTransaction(1, 2, decimal.RequireFromString("100.00"), "  rent  ", mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(1), tx.FromCardID)
		assert.Equal(t, uint64(2), tx.ToCardID)
		assert.Equal(t, "100.00", FormatAmount(tx.Amount))
		assert.Equal(t, "rent", tx.Description)
		assert.Equal(t, StatusPending, tx.Status)
		assert.Equal(t, fixedTime, tx.CreatedAt)
		assert.Nil(t, tx.ProcessedAt)
		assert.False(t, tx.IsTerminal())
	})

	t.Run("Missing card ids", func(t *testing.T) {
		tx, err := NewTransaction(0, 2, decimal.RequireFromString("1"), "", mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
		assert.Nil(t, tx)
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		for _, amount := range []string{"0", "-5", "1.001"} {
			t.Run(amount, func(t *testing.T) {
				tx, err := NewTransaction(1, 2, decimal.RequireFromString(amount), "", mockTime)

				assert.ErrorIs(t, err, errs.ErrInvalidAmount)
				assert.Nil(t, tx)
			})
		}
	})

	t.Run("Description too long", func(t *testing.T) {
		long := make([]byte, MaxDescriptionLength+1)
		for i := range long {
			long[i] = 'a'
		}

		_, err := NewTransaction(1, 2, decimal.RequireFromString("1"), string(long), mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("Description length counts characters", func(t *testing.T) {
		// 200 Cyrillic letters take 400 bytes
		cyrillic := strings.Repeat("ж", 200)

		tx, err := NewTransaction(1, 2, decimal.RequireFromString("1"), cyrillic, mockTime)
		require.NoError(t, err)
		assert.Equal(t, cyrillic, tx.Description)

		_, err = NewTransaction(1, 2, decimal.RequireFromString("1"), strings.Repeat("ж", MaxDescriptionLength+1), mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}

func TestTransactionFinalize(t *testing.T) {
	created := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	processed := created.Add(time.Second)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(created).Once()
	mockTime.EXPECT().Now().Return(processed).Maybe()

	tx, err := NewTransaction(1, 2, decimal.RequireFromString("10"), "", mockTime)
	require.NoError(t, err)

	t.Run("Mark as completed", func(t *testing.T) {
		require.NoError(t, tx.MarkAsCompleted(mockTime))

		assert.Equal(t, StatusCompleted, tx.Status)
		require.NotNil(t, tx.ProcessedAt)
		assert.Equal(t, processed, *tx.ProcessedAt)
		assert.True(t, tx.IsTerminal())
	})

	t.Run("Terminal status cannot change", func(t *testing.T) {
		assert.ErrorIs(t, tx.MarkAsFailed(mockTime), errs.ErrTransactionFinalized)
		assert.ErrorIs(t, tx.MarkAsCompleted(mockTime), errs.ErrTransactionFinalized)
		assert.Equal(t, StatusCompleted, tx.Status)
	})

	t.Run("Mark as failed from pending", func(t *testing.T) {
		other, err := NewTransaction(1, 2, decimal.RequireFromString("10"), "", mockTime)
		require.NoError(t, err)

		require.NoError(t, other.MarkAsFailed(mockTime))
		assert.Equal(t, StatusFailed, other.Status)
		assert.NotNil(t, other.ProcessedAt)
	})
}
