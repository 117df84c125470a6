package redis

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/error"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/greeting-rewards-bot/internal/infrastructure/adapter/time"
)

// fakeClient is a hash-only redis double built on the go-redis result constructors
type fakeClient struct {
	hashes map[string]map[string]string
	err    error
	closed bool
	calls  int
}

func newFakeClient() *fakeClient {
	return &fakeClient{hashes: map[string]map[string]string{}}
}

func (c *fakeClient) Ping(_ context.Context) *redis.StatusCmd {
	c.calls++
	return redis.NewStatusResult("PONG", c.err)
}

func (c *fakeClient) HGetAll(_ context.Context, key string) *redis.StringStringMapCmd {
	c.calls++
	if c.err != nil {
		return redis.NewStringStringMapResult(nil, c.err)
	}
	out := map[string]string{}
	for k, v := range c.hashes[key] {
		out[k] = v
	}
	return redis.NewStringStringMapResult(out, nil)
}

func (c *fakeClient) HSet(_ context.Context, key string, values ...interface{}) *redis.IntCmd {
	c.calls++
	if c.err != nil {
		return redis.NewIntResult(0, c.err)
	}
	hash, ok := c.hashes[key]
	if !ok {
		hash = map[string]string{}
		c.hashes[key] = hash
	}
	for i := 0; i+1 < len(values); i += 2 {
		hash[fmt.Sprint(values[i])] = fmt.Sprint(values[i+1])
	}
	return redis.NewIntResult(int64(len(values)/2), nil)
}

// Eval emulates the update script: write only when the key exists
func (c *fakeClient) Eval(_ context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	c.calls++
	if c.err != nil {
		return redis.NewCmdResult(nil, c.err)
	}
	hash, ok := c.hashes[keys[0]]
	if !ok {
		return redis.NewCmdResult(int64(0), nil)
	}
	for i := 0; i+1 < len(args); i += 2 {
		hash[fmt.Sprint(args[i])] = fmt.Sprint(args[i+1])
	}
	return redis.NewCmdResult(int64(1), nil)
}

func (c *fakeClient) Close() error {
	c.closed = true
	return nil
}

func newTestStore() (*AccountStore, *fakeClient) {
	client := newFakeClient()
	return NewAccountStoreWithClient(client, "", timeprovider.NewRealTimeProvider(), logger.NewNoopLogger()), client
}

func TestAccountStore_GetMissing(t *testing.T) {
	store, _ := newTestStore()

	_, err := store.Get(context.Background(), 3)

	assert.ErrorIs(t, err, errs.ErrAccountNotFound)
}

func TestAccountStore_SetUpdateGet(t *testing.T) {
	store, client := newTestStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, &entity.Account{UserID: 3, Username: "taras", Points: 7}))
	assert.Equal(t, map[string]string{"username": "taras", "points": "7"}, client.hashes["users:3"])

	require.NoError(t, store.Update(ctx, &entity.Account{UserID: 3, Username: "taras", Points: 10}))

	account, err := store.Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(10), account.Points)
	assert.Equal(t, "taras", account.Username)
}

func TestAccountStore_UpdateMissing(t *testing.T) {
	store, client := newTestStore()

	err := store.Update(context.Background(), &entity.Account{UserID: 9, Points: 1})

	assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	assert.Empty(t, client.hashes)
}

func TestAccountStore_UpdateIsOneRoundTrip(t *testing.T) {
	store, client := newTestStore()
	client.hashes["users:5"] = map[string]string{"username": "olena", "points": "2"}

	require.NoError(t, store.Update(context.Background(), &entity.Account{UserID: 5, Username: "olena", Points: 3}))

	assert.Equal(t, 1, client.calls)
	assert.Equal(t, "3", client.hashes["users:5"]["points"])
}

func TestAccountStore_CorruptPoints(t *testing.T) {
	store, client := newTestStore()
	client.hashes["users:4"] = map[string]string{"username": "x", "points": "lots"}

	_, err := store.Get(context.Background(), 4)

	assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
}

func TestAccountStore_ConnectionFailure(t *testing.T) {
	store, client := newTestStore()
	client.err = errors.New("dial tcp 127.0.0.1:6379: connect: connection refused")
	ctx := context.Background()

	_, err := store.Get(ctx, 1)
	assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
	assert.ErrorIs(t, store.Set(ctx, &entity.Account{UserID: 1, Points: 1}), errs.ErrStoreUnavailable)
	assert.ErrorIs(t, store.Update(ctx, &entity.Account{UserID: 1, Points: 1}), errs.ErrStoreUnavailable)
}

func TestAccountStore_Close(t *testing.T) {
	store, client := newTestStore()

	require.NoError(t, store.Close())
	assert.True(t, client.closed)
}
