package workerpool_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/vds/workerpool"
)

func TestWorkerPool(t *testing.T) {
	pool, err := workerpool.New("test", 4)
	require.NoError(t, err)
	defer pool.Shutdown()

	executed := atomic.NewInt64(0)
	for range 200 {
		require.NoError(t, pool.Submit(context.Background(), func() {
			executed.Inc()
		}))
	}

	require.NoError(t, pool.Wait())
	require.EqualValues(t, 200, executed.Load())
	require.EqualValues(t, 200, pool.Submitted())
	require.Equal(t, 4, pool.WorkerCount())
}

func TestWorkerPool_BoundedConcurrency(t *testing.T) {
	pool, err := workerpool.New("test", 2)
	require.NoError(t, err)
	defer pool.Shutdown()

	var mutex sync.Mutex
	running, maxRunning := 0, 0

	for range 20 {
		require.NoError(t, pool.Submit(context.Background(), func() {
			mutex.Lock()
			running++
			maxRunning = max(maxRunning, running)
			mutex.Unlock()

			time.Sleep(time.Millisecond)

			mutex.Lock()
			running--
			mutex.Unlock()
		}))
	}

	require.NoError(t, pool.Wait())
	require.LessOrEqual(t, maxRunning, 2)
}

func TestWorkerPool_Panic(t *testing.T) {
	pool, err := workerpool.New("test", 2)
	require.NoError(t, err)
	defer pool.Shutdown()

	executed := atomic.NewInt64(0)
	require.NoError(t, pool.Submit(context.Background(), func() { panic("boom") }))
	for range 10 {
		require.NoError(t, pool.Submit(context.Background(), func() { executed.Inc() }))
	}

	err = pool.Wait()
	require.True(t, ierrors.Is(err, workerpool.ErrTaskPanicked))
	require.Contains(t, err.Error(), "boom")
	require.EqualValues(t, 10, executed.Load())

	// failures are reported once
	require.NoError(t, pool.Wait())
}

func TestWorkerPool_SubmitAfterShutdown(t *testing.T) {
	pool, err := workerpool.New("test", 1)
	require.NoError(t, err)

	pool.Shutdown()
	pool.Shutdown()

	require.True(t, ierrors.Is(pool.Submit(context.Background(), func() {}), workerpool.ErrPoolStopped))
}

func TestWorkerPool_CancelledContext(t *testing.T) {
	pool, err := workerpool.New("test", 1)
	require.NoError(t, err)
	defer pool.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.True(t, ierrors.Is(pool.Submit(ctx, func() {}), context.Canceled))
	require.Zero(t, pool.Submitted())
}

func Benchmark(b *testing.B) {
	pool, err := workerpool.New("benchmark", 10)
	require.NoError(b, err)
	defer pool.Shutdown()

	b.ResetTimer()

	for range b.N {
		_ = pool.Submit(context.Background(), func() {})
	}

	require.NoError(b, pool.Wait())
}

func TestWorkerPool_ConcurrentPanics(t *testing.T) {
	pool, err := workerpool.New("test", 8)
	require.NoError(t, err)
	defer pool.Shutdown()

	for range 100 {
		require.NoError(t, pool.Submit(context.Background(), func() { panic("boom") }))
	}

	err = pool.Wait()
	require.True(t, ierrors.Is(err, workerpool.ErrTaskPanicked))

	var joined interface{ Unwrap() []error }
	require.True(t, ierrors.As(err, &joined))
	require.Len(t, joined.Unwrap(), 100)
}
