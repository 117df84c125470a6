package entity

import (
	"math"
	"time"

	errs "github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/error"
	coreport "github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/port/core"
)

// Account represents a chat user's point balance
type Account struct {
	UserID    int64     // Chat platform user identifier
	Username  string    // Last seen display name, overwritten on every credit
	Points    int64     // Accumulated points, never negative
	UpdatedAt time.Time // When the account was last credited
}

// NewAccount creates an empty account for the given user
func NewAccount(userID int64, username string, timeProvider coreport.TimeProvider) (*Account, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	return &Account{
		UserID:    userID,
		Username:  username,
		Points:    0,
		UpdatedAt: timeProvider.Now(),
	}, nil
}

// Credit adds delta points and records the display name seen with the message.
// Returns the new total.
func (a *Account) Credit(displayName string, delta int64, timeProvider coreport.TimeProvider) (int64, error) {
	if delta <= 0 {
		return a.Points, errs.ErrInvalidDelta
	}
	if a.Points > math.MaxInt64-delta {
		return a.Points, errs.ErrPointsOverflow
	}

	a.Points += delta
	a.Username = displayName
	a.UpdatedAt = timeProvider.Now()
	return a.Points, nil
}
