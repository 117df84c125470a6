package firebase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/error"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/greeting-rewards-bot/internal/infrastructure/adapter/time"
)

// fakeTree stores nodes as raw JSON, like the realtime database REST API
type fakeTree struct {
	nodes map[string]json.RawMessage
	err   error
	paths []string
}

type fakeNode struct {
	tree *fakeTree
	path string
}

func (n fakeNode) Get(_ context.Context, v interface{}) error {
	if n.tree.err != nil {
		return n.tree.err
	}
	raw, ok := n.tree.nodes[n.path]
	if !ok {
		raw = json.RawMessage("null")
	}
	return json.Unmarshal(raw, v)
}

func (n fakeNode) Set(_ context.Context, v interface{}) error {
	if n.tree.err != nil {
		return n.tree.err
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	n.tree.nodes[n.path] = raw
	return nil
}

func (n fakeNode) Update(_ context.Context, v map[string]interface{}) error {
	if n.tree.err != nil {
		return n.tree.err
	}
	current := map[string]interface{}{}
	if raw, ok := n.tree.nodes[n.path]; ok {
		if err := json.Unmarshal(raw, &current); err != nil {
			return err
		}
	}
	for k, val := range v {
		current[k] = val
	}
	raw, err := json.Marshal(current)
	if err != nil {
		return err
	}
	n.tree.nodes[n.path] = raw
	return nil
}

func newTestStore(rootPath string) (*AccountStore, *fakeTree) {
	tree := &fakeTree{nodes: map[string]json.RawMessage{}}
	store := newAccountStore(func(path string) node {
		tree.paths = append(tree.paths, path)
		return fakeNode{tree: tree, path: path}
	}, rootPath, timeprovider.NewRealTimeProvider(), logger.NewNoopLogger())
	return store, tree
}

func TestAccountStore_MissingNode(t *testing.T) {
	store, tree := newTestStore("")

	account, err := store.Get(context.Background(), 12)

	assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	assert.Nil(t, account)
	assert.Equal(t, []string{"users/12"}, tree.paths)
}

func TestAccountStore_SetThenUpdate(t *testing.T) {
	store, tree := newTestStore("/users/")
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, &entity.Account{UserID: 12, Username: "olena", Points: 3}))
	assert.JSONEq(t, `{"username":"olena","points":3}`, string(tree.nodes["users/12"]))

	require.NoError(t, store.Update(ctx, &entity.Account{UserID: 12, Username: "olena_k", Points: 10}))

	account, err := store.Get(ctx, 12)
	require.NoError(t, err)
	assert.Equal(t, int64(12), account.UserID)
	assert.Equal(t, "olena_k", account.Username)
	assert.Equal(t, int64(10), account.Points)
}

func TestAccountStore_CustomRootPath(t *testing.T) {
	store, tree := newTestStore("bots/greeter/users")

	require.NoError(t, store.Set(context.Background(), &entity.Account{UserID: 5, Points: 1}))

	assert.Contains(t, tree.nodes, "bots/greeter/users/5")
}

func TestAccountStore_BackendFailure(t *testing.T) {
	store, tree := newTestStore("")
	tree.err = errors.New("permission denied")
	ctx := context.Background()

	_, err := store.Get(ctx, 1)
	assert.ErrorIs(t, err, errs.ErrStoreUnavailable)

	err = store.Set(ctx, &entity.Account{UserID: 1, Points: 1})
	assert.ErrorIs(t, err, errs.ErrStoreUnavailable)

	err = store.Update(ctx, &entity.Account{UserID: 1, Points: 1})
	assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
}

func TestNewAccountStore_RequiresURL(t *testing.T) {
	_, err := NewAccountStore(context.Background(), Options{}, timeprovider.NewRealTimeProvider(), logger.NewNoopLogger())

	assert.Error(t, err)
}
