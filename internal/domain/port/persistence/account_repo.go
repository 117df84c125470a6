package persistence

import (
	"context"

	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/entity"
)

// AccountRepository is the key-value view of the account store.
// Records live under users/{userId} as {username, points}.
type AccountRepository interface {
	// Get retrieves the account for a user
	//
	// Possible errors:
	// - ErrAccountNotFound: if no record exists yet
	// - ErrStoreUnavailable: if the store cannot be reached
	Get(ctx context.Context, userID int64) (*entity.Account, error)

	// Set writes the whole record, creating it when absent
	Set(ctx context.Context, account *entity.Account) error

	// Update writes username and points onto an existing record
	Update(ctx context.Context, account *entity.Account) error

	// Close releases connections held by the store
	Close() error
}
