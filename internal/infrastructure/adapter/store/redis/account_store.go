package redis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"

	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/error"
	coreport "github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/port/core"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/port/persistence"
)

const (
	driverName       = "redis"
	DefaultKeyPrefix = "users"

	fieldUsername = "username"
	fieldPoints   = "points"
)

// updateScript writes the hash only when the key still exists; it returns 0 for a missing key
const updateScript = `
if redis.call("EXISTS", KEYS[1]) == 0 then
	return 0
end
redis.call("HSET", KEYS[1], ARGV[1], ARGV[2], ARGV[3], ARGV[4])
return 1
`

// Options configures the redis connection
type Options struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// Client is the subset of *redis.Client the store uses
type Client interface {
	Ping(ctx context.Context) *redis.StatusCmd
	HGetAll(ctx context.Context, key string) *redis.StringStringMapCmd
	HSet(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
	Close() error
}

// AccountStore keeps each account as a hash at {prefix}:{userId}
type AccountStore struct {
	client       Client
	keyPrefix    string
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewAccountStore connects to redis and checks the connection with PING
func NewAccountStore(ctx context.Context, opts Options, timeProvider coreport.TimeProvider, logger coreport.Logger) (persistence.AccountRepository, error) {
	if opts.Addr == "" {
		return nil, fmt.Errorf("redis address is required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", opts.Addr, err)
	}

	logger.Info("Redis store initialized", map[string]any{
		"addr":       opts.Addr,
		"db":         opts.DB,
		"key_prefix": opts.KeyPrefix,
	})

	return NewAccountStoreWithClient(client, opts.KeyPrefix, timeProvider, logger), nil
}

// NewAccountStoreWithClient wraps an existing client
func NewAccountStoreWithClient(client Client, keyPrefix string, timeProvider coreport.TimeProvider, logger coreport.Logger) *AccountStore {
	if keyPrefix == "" {
		keyPrefix = DefaultKeyPrefix
	}
	return &AccountStore{
		client:       client,
		keyPrefix:    keyPrefix,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

func (s *AccountStore) key(userID int64) string {
	return fmt.Sprintf("%s:%d", s.keyPrefix, userID)
}

// Get reads the hash. HGETALL on a missing key returns an empty map, not redis.Nil.
func (s *AccountStore) Get(ctx context.Context, userID int64) (*entity.Account, error) {
	fields, err := s.client.HGetAll(ctx, s.key(userID)).Result()
	if err != nil && err != redis.Nil {
		return nil, errs.NewStoreError(driverName, "get", userID, err)
	}
	if len(fields) == 0 {
		return nil, errs.ErrAccountNotFound
	}

	points, err := strconv.ParseInt(fields[fieldPoints], 10, 64)
	if err != nil && fields[fieldPoints] != "" {
		return nil, errs.NewStoreError(driverName, "get", userID, fmt.Errorf("parse points %q: %w", fields[fieldPoints], err))
	}

	return &entity.Account{
		UserID:    userID,
		Username:  fields[fieldUsername],
		Points:    points,
		UpdatedAt: s.timeProvider.Now(),
	}, nil
}

func (s *AccountStore) Set(ctx context.Context, account *entity.Account) error {
	if account.UserID == 0 {
		return errs.ErrInvalidUserID
	}
	if err := s.write(ctx, account); err != nil {
		return errs.NewStoreError(driverName, "set", account.UserID, err)
	}
	return nil
}

func (s *AccountStore) Update(ctx context.Context, account *entity.Account) error {
	n, err := s.client.Eval(ctx, updateScript, []string{s.key(account.UserID)},
		fieldUsername, account.Username,
		fieldPoints, account.Points,
	).Int64()
	if err != nil {
		return errs.NewStoreError(driverName, "update", account.UserID, err)
	}
	if n == 0 {
		return errs.ErrAccountNotFound
	}
	return nil
}

func (s *AccountStore) write(ctx context.Context, account *entity.Account) error {
	return s.client.HSet(ctx, s.key(account.UserID),
		fieldUsername, account.Username,
		fieldPoints, account.Points,
	).Err()
}

func (s *AccountStore) Close() error {
	return s.client.Close()
}
