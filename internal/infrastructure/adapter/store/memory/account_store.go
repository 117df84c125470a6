package memory

import (
	"context"
	"sync"

	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/error"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/port/persistence"
)

// AccountStore keeps accounts in process memory. Contents are lost on restart.
type AccountStore struct {
	mu       sync.RWMutex
	accounts map[int64]entity.Account
}

// NewAccountStore creates an empty in-memory store
func NewAccountStore() persistence.AccountRepository {
	return &AccountStore{accounts: make(map[int64]entity.Account)}
}

func (s *AccountStore) Get(_ context.Context, userID int64) (*entity.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[userID]
	if !ok {
		return nil, errs.ErrAccountNotFound
	}
	return &account, nil
}

func (s *AccountStore) Set(_ context.Context, account *entity.Account) error {
	if account.UserID == 0 {
		return errs.ErrInvalidUserID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts[account.UserID] = *account
	return nil
}

func (s *AccountStore) Update(_ context.Context, account *entity.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.accounts[account.UserID]
	if !ok {
		return errs.ErrAccountNotFound
	}
	stored.Username = account.Username
	stored.Points = account.Points
	stored.UpdatedAt = account.UpdatedAt
	s.accounts[account.UserID] = stored
	return nil
}

func (s *AccountStore) Close() error {
	return nil
}
