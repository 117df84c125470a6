package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/error"
	coreport "github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/port/core"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/port/usecase"
)

// Options tunes ledger behaviour when the store misbehaves
type Options struct {
	// StrictWrites surfaces ErrStoreUnavailable instead of answering in degraded mode
	StrictWrites bool
	// StoreTimeout bounds each store call; zero means the caller's context only
	StoreTimeout coreport.Duration
}

// Ledger credits points against an AccountRepository.
// A nil repository puts the ledger permanently in degraded mode.
type Ledger struct {
	repo         persistence.AccountRepository
	timeProvider coreport.TimeProvider
	metrics      coreport.Metrics
	logger       coreport.Logger
	opts         Options
}

// NewLedger creates a new points ledger
func NewLedger(
	repo persistence.AccountRepository,
	timeProvider coreport.TimeProvider,
	metrics coreport.Metrics,
	logger coreport.Logger,
	opts Options,
) usecase.PointsLedger {
	return &Ledger{
		repo:         repo,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger,
		opts:         opts,
	}
}

// Add reads the stored total, adds delta and writes the record back.
// The read and the write are not atomic; concurrent credits for one user may lose an update.
func (l *Ledger) Add(ctx context.Context, userID int64, displayName string, delta int64) (int64, error) {
	if userID == 0 {
		return 0, errs.ErrInvalidUserID
	}
	if delta <= 0 {
		return 0, errs.ErrInvalidDelta
	}
	if l.repo == nil {
		return l.degraded("add", userID, delta, errs.ErrStoreUnavailable)
	}

	ctx, cancel := l.storeContext(ctx)
	defer cancel()

	account, err := l.repo.Get(ctx, userID)
	exists := true
	switch {
	case err == nil:
	case errors.Is(err, errs.ErrAccountNotFound):
		exists = false
		account, err = entity.NewAccount(userID, displayName, l.timeProvider)
		if err != nil {
			return 0, err
		}
	default:
		return l.degraded("add", userID, delta, err)
	}

	total, err := account.Credit(displayName, delta, l.timeProvider)
	if err != nil {
		return 0, err
	}

	if exists {
		err = l.repo.Update(ctx, account)
		// The record can expire or be deleted between the read and the write.
		if errors.Is(err, errs.ErrAccountNotFound) {
			l.logger.Warn("Account disappeared before update, recreating", map[string]any{"userId": userID})
			err = l.repo.Set(ctx, account)
		}
	} else {
		err = l.repo.Set(ctx, account)
	}
	if err != nil {
		return l.degraded("add", userID, delta, err)
	}

	l.logger.Debug("Points credited", map[string]any{
		"userId":  userID,
		"delta":   delta,
		"total":   total,
		"created": !exists,
	})

	return total, nil
}

// Get returns the stored total or 0 when the user has never been credited
func (l *Ledger) Get(ctx context.Context, userID int64) (int64, error) {
	if userID == 0 {
		return 0, errs.ErrInvalidUserID
	}
	if l.repo == nil {
		return l.degraded("get", userID, 0, errs.ErrStoreUnavailable)
	}

	ctx, cancel := l.storeContext(ctx)
	defer cancel()

	account, err := l.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrAccountNotFound) {
			return 0, nil
		}
		return l.degraded("get", userID, 0, err)
	}

	return account.Points, nil
}

// degraded answers with fallback when the store failed, or fails in strict mode
func (l *Ledger) degraded(operation string, userID int64, fallback int64, cause error) (int64, error) {
	fields := map[string]any{
		"operation": operation,
		"userId":    userID,
		"error":     cause.Error(),
	}
	var storeErr *errs.StoreError
	if errors.As(cause, &storeErr) {
		for k, v := range storeErr.LogFields() {
			fields[k] = v
		}
	}

	l.metrics.IncLedgerDegraded(operation)

	if l.opts.StrictWrites {
		l.logger.Error("Account store unavailable", fields)
		if errors.Is(cause, errs.ErrStoreUnavailable) {
			return 0, fmt.Errorf("ledger %s: %w", operation, cause)
		}
		return 0, fmt.Errorf("ledger %s: %w: %w", operation, errs.ErrStoreUnavailable, cause)
	}

	fields["fallback"] = fallback
	l.logger.Warn("Account store unavailable, answering without persistence", fields)
	return fallback, nil
}

func (l *Ledger) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if l.opts.StoreTimeout <= 0 {
		return ctx, func() {}
	}
	return l.timeProvider.WithTimeout(ctx, l.opts.StoreTimeout)
}
