package bot

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/entity"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/infrastructure/adapter/logger"
)

func TestDispatcher_PreservesOrderPerSender(t *testing.T) {
	var mu sync.Mutex
	seen := map[int64][]int{}

	d := NewDispatcher(func(_ context.Context, ev entity.MessageEvent) error {
		time.Sleep(time.Millisecond)
		mu.Lock()
		seen[ev.SenderID] = append(seen[ev.SenderID], ev.UpdateID)
		mu.Unlock()
		return nil
	}, 4, logger.NewNoopLogger())

	for i := 0; i < 20; i++ {
		require.NoError(t, d.Enqueue(context.Background(), entity.MessageEvent{UpdateID: i, SenderID: int64(i % 2)}))
	}
	require.NoError(t, d.Shutdown(context.Background()))

	assert.Equal(t, []int{0, 2, 4, 6, 8, 10, 12, 14, 16, 18}, seen[0])
	assert.Equal(t, []int{1, 3, 5, 7, 9, 11, 13, 15, 17, 19}, seen[1])
	assert.Equal(t, 0, d.Active())
}

func TestDispatcher_SendersRunInParallel(t *testing.T) {
	release := make(chan struct{})
	var running int32
	bothRunning := make(chan struct{})

	d := NewDispatcher(func(_ context.Context, _ entity.MessageEvent) error {
		if atomic.AddInt32(&running, 1) == 2 {
			close(bothRunning)
		}
		<-release
		return nil
	}, 1, logger.NewNoopLogger())

	require.NoError(t, d.Enqueue(context.Background(), entity.MessageEvent{SenderID: 1}))
	require.NoError(t, d.Enqueue(context.Background(), entity.MessageEvent{SenderID: 2}))

	select {
	case <-bothRunning:
	case <-time.After(time.Second):
		t.Fatal("second sender was blocked by the first")
	}
	close(release)
	require.NoError(t, d.Shutdown(context.Background()))
}

func TestDispatcher_SurvivesErrorsAndPanics(t *testing.T) {
	var handled int32
	d := NewDispatcher(func(_ context.Context, ev entity.MessageEvent) error {
		atomic.AddInt32(&handled, 1)
		switch ev.UpdateID {
		case 1:
			return errors.New("boom")
		case 2:
			panic("unexpected")
		}
		return nil
	}, 4, logger.NewNoopLogger())

	for i := 1; i <= 3; i++ {
		require.NoError(t, d.Enqueue(context.Background(), entity.MessageEvent{UpdateID: i, SenderID: 5}))
	}
	require.NoError(t, d.Shutdown(context.Background()))

	assert.Equal(t, int32(3), atomic.LoadInt32(&handled))
}

func TestDispatcher_DrainsIgnoringProducerCancellation(t *testing.T) {
	var handled int32
	d := NewDispatcher(func(ctx context.Context, _ entity.MessageEvent) error {
		time.Sleep(5 * time.Millisecond)
		if ctx.Err() == nil {
			atomic.AddInt32(&handled, 1)
		}
		return nil
	}, 8, logger.NewNoopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	for i := 0; i < 5; i++ {
		require.NoError(t, d.Enqueue(ctx, entity.MessageEvent{UpdateID: i, SenderID: 1}))
	}
	cancel()
	require.NoError(t, d.Shutdown(context.Background()))

	assert.Equal(t, int32(5), atomic.LoadInt32(&handled))
}

func TestDispatcher_RejectsAfterShutdown(t *testing.T) {
	d := NewDispatcher(func(context.Context, entity.MessageEvent) error { return nil }, 1, logger.NewNoopLogger())
	require.NoError(t, d.Shutdown(context.Background()))

	err := d.Enqueue(context.Background(), entity.MessageEvent{SenderID: 1})

	assert.ErrorIs(t, err, ErrDispatcherClosed)
}

func TestDispatcher_ShutdownTimeout(t *testing.T) {
	release := make(chan struct{})
	d := NewDispatcher(func(context.Context, entity.MessageEvent) error {
		<-release
		return nil
	}, 1, logger.NewNoopLogger())
	require.NoError(t, d.Enqueue(context.Background(), entity.MessageEvent{SenderID: 1}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := d.Shutdown(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	close(release)
}
