package workerpool

import (
	"context"
	"sync"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/atomic"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/runtime/syncutils"
)

var (
	// ErrPoolStopped is returned when a task is submitted to a pool that was shut down.
	ErrPoolStopped = ierrors.New("worker pool stopped")
	// ErrTaskPanicked is reported by Wait for every task that panicked.
	ErrTaskPanicked = ierrors.New("task panicked")
)

// WorkerPool runs submitted tasks on a fixed number of recycled goroutines. Submit blocks while all workers are busy.
type WorkerPool struct {
	Name string

	pool         *ants.Pool
	pendingTasks sync.WaitGroup
	submitted    *atomic.Uint64
	stopped      *atomic.Bool
	shutdownOnce sync.Once

	failuresMutex syncutils.Mutex
	failures      []error
}

// New creates a pool with the given number of workers.
func New(name string, workerCount int) (*WorkerPool, error) {
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, ierrors.Wrapf(err, "failed to create worker pool %s", name)
	}

	return &WorkerPool{
		Name:      name,
		pool:      pool,
		submitted: atomic.NewUint64(0),
		stopped:   atomic.NewBool(false),
	}, nil
}

// Submit hands the task to the next idle worker.
func (w *WorkerPool) Submit(ctx context.Context, task func()) error {
	if w.stopped.Load() {
		return ierrors.Wrapf(ErrPoolStopped, "failed to submit task to %s", w.Name)
	}

	if err := ctx.Err(); err != nil {
		return ierrors.Wrapf(err, "failed to submit task to %s", w.Name)
	}

	w.pendingTasks.Add(1)
	if err := w.pool.Submit(func() {
		defer w.pendingTasks.Done()
		defer w.recoverPanic()

		task()
	}); err != nil {
		w.pendingTasks.Done()

		return ierrors.Wrapf(err, "failed to submit task to %s", w.Name)
	}

	w.submitted.Inc()

	return nil
}

// Wait blocks until all submitted tasks finished and returns the failures collected since the last call.
func (w *WorkerPool) Wait() error {
	w.pendingTasks.Wait()

	w.failuresMutex.Lock()
	defer w.failuresMutex.Unlock()

	err := ierrors.Join(w.failures...)
	w.failures = nil

	return err
}

// Submitted returns the number of tasks accepted by the pool.
func (w *WorkerPool) Submitted() uint64 {
	return w.submitted.Load()
}

// WorkerCount returns the number of workers of the pool.
func (w *WorkerPool) WorkerCount() int {
	return w.pool.Cap()
}

// Shutdown waits for the pending tasks and releases the workers.
func (w *WorkerPool) Shutdown() {
	w.shutdownOnce.Do(func() {
		w.stopped.Store(true)
		w.pendingTasks.Wait()
		w.pool.Release()
	})
}

func (w *WorkerPool) recoverPanic() {
	if r := recover(); r != nil {
		w.failuresMutex.Lock()
		defer w.failuresMutex.Unlock()

		w.failures = append(w.failures, ierrors.Wrapf(ErrTaskPanicked, "%s: %v", w.Name, r))
	}
}
