package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/error"
	coreport "github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/port/core"
	coremocks "github.com/amirhossein-jamali/greeting-rewards-bot/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/greeting-rewards-bot/mocks/port/persistence"
)

type ledgerFixture struct {
	repo    *persistencemocks.MockAccountRepository
	time    *coremocks.MockTimeProvider
	metrics *coremocks.MockMetrics
	logger  *coremocks.MockLogger
}

func newFixture(t *testing.T) *ledgerFixture {
	f := &ledgerFixture{
		repo:    persistencemocks.NewMockAccountRepository(t),
		time:    coremocks.NewMockTimeProvider(t),
		metrics: coremocks.NewMockMetrics(t),
		logger:  coremocks.NewMockLogger(t),
	}
	f.time.EXPECT().Now().Return(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)).Maybe()
	f.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	return f
}

func (f *ledgerFixture) ledger(opts Options) *Ledger {
	return NewLedger(f.repo, f.time, f.metrics, f.logger, opts).(*Ledger)
}

func TestLedger_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the record on first credit", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(ctx, int64(7)).Return(nil, errs.ErrAccountNotFound)
		f.repo.EXPECT().Set(ctx, mock.MatchedBy(func(a *entity.Account) bool {
			return a.UserID == 7 && a.Username == "alice" && a.Points == 3
		})).Return(nil)

		total, err := f.ledger(Options{}).Add(ctx, 7, "alice", 3)

		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
	})

	t.Run("updates an existing record with the new name", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(ctx, int64(7)).Return(&entity.Account{UserID: 7, Username: "old", Points: 3}, nil)
		f.repo.EXPECT().Update(ctx, mock.MatchedBy(func(a *entity.Account) bool {
			return a.Username == "alice" && a.Points == 10
		})).Return(nil)

		total, err := f.ledger(Options{}).Add(ctx, 7, "alice", 7)

		require.NoError(t, err)
		assert.Equal(t, int64(10), total)
	})

	t.Run("rejects invalid input without touching the store", func(t *testing.T) {
		f := newFixture(t)
		l := f.ledger(Options{})

		_, err := l.Add(ctx, 0, "alice", 1)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)

		_, err = l.Add(ctx, 7, "alice", 0)
		assert.ErrorIs(t, err, errs.ErrInvalidDelta)
	})

	t.Run("degraded read returns delta", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(ctx, int64(7)).Return(nil, errs.NewStoreError("redis", "get", 7, errors.New("dial tcp: refused")))
		f.metrics.EXPECT().IncLedgerDegraded("add").Once()
		f.logger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		total, err := f.ledger(Options{}).Add(ctx, 7, "alice", 5)

		require.NoError(t, err)
		assert.Equal(t, int64(5), total)
	})

	t.Run("degraded write returns delta", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(ctx, int64(7)).Return(&entity.Account{UserID: 7, Points: 20}, nil)
		f.repo.EXPECT().Update(ctx, mock.Anything).Return(errors.New("write timeout"))
		f.metrics.EXPECT().IncLedgerDegraded("add").Once()
		f.logger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		total, err := f.ledger(Options{}).Add(ctx, 7, "alice", 2)

		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})

	t.Run("recreates a record that vanished before update", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(ctx, int64(7)).Return(&entity.Account{UserID: 7, Username: "alice", Points: 8}, nil)
		f.repo.EXPECT().Update(ctx, mock.Anything).Return(errs.ErrAccountNotFound).Once()
		f.repo.EXPECT().Set(ctx, mock.MatchedBy(func(a *entity.Account) bool {
			return a.UserID == 7 && a.Points == 10
		})).Return(nil).Once()
		f.logger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		total, err := f.ledger(Options{StrictWrites: true}).Add(ctx, 7, "alice", 2)

		require.NoError(t, err)
		assert.Equal(t, int64(10), total)
	})

	t.Run("strict mode surfaces store failures", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(ctx, int64(7)).Return(nil, errors.New("connection reset"))
		f.metrics.EXPECT().IncLedgerDegraded("add").Once()
		f.logger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		total, err := f.ledger(Options{StrictWrites: true}).Add(ctx, 7, "alice", 2)

		assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
		assert.Equal(t, int64(0), total)
	})

	t.Run("store timeout wraps the call context", func(t *testing.T) {
		f := newFixture(t)
		timeoutCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		f.time.EXPECT().WithTimeout(ctx, coreport.Duration(2*time.Second)).Return(timeoutCtx, cancel).Once()
		f.repo.EXPECT().Get(timeoutCtx, int64(7)).Return(nil, errs.ErrAccountNotFound)
		f.repo.EXPECT().Set(timeoutCtx, mock.Anything).Return(nil)

		total, err := f.ledger(Options{StoreTimeout: 2 * coreport.Second}).Add(ctx, 7, "alice", 1)

		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})
}

func TestLedger_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("absent record reads as zero", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(ctx, int64(9)).Return(nil, errs.ErrAccountNotFound)

		points, err := f.ledger(Options{}).Get(ctx, 9)

		require.NoError(t, err)
		assert.Equal(t, int64(0), points)
	})

	t.Run("returns stored points", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(ctx, int64(9)).Return(&entity.Account{UserID: 9, Points: 42}, nil).Twice()
		l := f.ledger(Options{})

		first, err := l.Get(ctx, 9)
		require.NoError(t, err)
		second, err := l.Get(ctx, 9)
		require.NoError(t, err)

		assert.Equal(t, int64(42), first)
		assert.Equal(t, first, second)
	})

	t.Run("degraded read returns zero", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(ctx, int64(9)).Return(nil, errs.NewStoreError("firebase", "get", 9, errors.New("403")))
		f.metrics.EXPECT().IncLedgerDegraded("get").Once()
		f.logger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		points, err := f.ledger(Options{}).Get(ctx, 9)

		require.NoError(t, err)
		assert.Equal(t, int64(0), points)
	})
}

func TestLedger_WithoutStore(t *testing.T) {
	ctx := context.Background()
	mockTime := coremocks.NewMockTimeProvider(t)
	mockMetrics := coremocks.NewMockMetrics(t)
	mockLogger := coremocks.NewMockLogger(t)
	mockMetrics.EXPECT().IncLedgerDegraded(mock.Anything).Twice()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Twice()

	l := NewLedger(nil, mockTime, mockMetrics, mockLogger, Options{})

	total, err := l.Add(ctx, 5, "bob", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)

	points, err := l.Get(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(0), points)
}
