package entity

import (
	"math"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/greeting-rewards-bot/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid account creation", func(t *testing.T) {
		account, err := NewAccount(42, "alice", mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(42), account.UserID)
		assert.Equal(t, "alice", account.Username)
		assert.Equal(t, int64(0), account.Points)
		assert.Equal(t, fixedTime, account.UpdatedAt)
	})

	t.Run("Zero ID should return error", func(t *testing.T) {
		account, err := NewAccount(0, "alice", mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
		assert.Nil(t, account)
	})

	t.Run("Negative IDs are valid group senders", func(t *testing.T) {
		account, err := NewAccount(-100123, "channel", mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(-100123), account.UserID)
	})
}

func TestAccountCredit(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Accumulates and renames", func(t *testing.T) {
		account := &Account{UserID: 1, Username: "old", Points: 3}

		total, err := account.Credit("new", 7, mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(10), total)
		assert.Equal(t, int64(10), account.Points)
		assert.Equal(t, "new", account.Username)
		assert.Equal(t, fixedTime, account.UpdatedAt)
	})

	t.Run("Non-positive delta is rejected", func(t *testing.T) {
		account := &Account{UserID: 1, Points: 5}

		for _, delta := range []int64{0, -1} {
			total, err := account.Credit("x", delta, mockTime)
			assert.ErrorIs(t, err, errs.ErrInvalidDelta)
			assert.Equal(t, int64(5), total)
		}
	})

	t.Run("Overflow is rejected", func(t *testing.T) {
		account := &Account{UserID: 1, Points: math.MaxInt64 - 1}

		_, err := account.Credit("x", 2, mockTime)

		assert.ErrorIs(t, err, errs.ErrPointsOverflow)
		assert.Equal(t, int64(math.MaxInt64-1), account.Points)
	})
}
