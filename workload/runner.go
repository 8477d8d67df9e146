package workload

import (
	"context"
	"time"

	"go.uber.org/atomic"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/vds/list"
	"github.com/iotaledger/vds/logger"
	"github.com/iotaledger/vds/workerpool"
)

var (
	// ErrInvalidParameters is returned if the workload parameters can not be executed.
	ErrInvalidParameters = ierrors.New("invalid workload parameters")
	// ErrSeedModified is returned if a workload changed the values it was seeded from.
	ErrSeedModified = ierrors.New("workload modified its seed values")
)

// Runner executes the configured workloads.
type Runner struct {
	*logger.WrappedLogger

	parameters ParametersWorkload
	kinds      []Kind
}

// NewRunner validates the parameters and creates a Runner for them.
func NewRunner(parameters ParametersWorkload, log *logger.Logger) (*Runner, error) {
	switch {
	case parameters.Size < 0:
		return nil, ierrors.Wrapf(ErrInvalidParameters, "size must not be negative, got %d", parameters.Size)
	case parameters.Iterations <= 0:
		return nil, ierrors.Wrapf(ErrInvalidParameters, "iterations must be positive, got %d", parameters.Iterations)
	case parameters.Workers <= 0:
		return nil, ierrors.Wrapf(ErrInvalidParameters, "workers must be positive, got %d", parameters.Workers)
	case len(parameters.Kinds) == 0:
		return nil, ierrors.Wrap(ErrInvalidParameters, "no workload kinds configured")
	}

	kinds := make([]Kind, 0, len(parameters.Kinds))
	for _, name := range parameters.Kinds {
		kind, err := ParseKind(name)
		if err != nil {
			return nil, err
		}

		kinds = append(kinds, kind)
	}

	return &Runner{
		WrappedLogger: logger.NewWrappedLogger(log),
		parameters:    parameters,
		kinds:         kinds,
	}, nil
}

// Kinds returns the workloads executed by Run in order.
func (r *Runner) Kinds() []Kind {
	return lo.CopySlice(r.kinds)
}

// Run executes every configured workload and returns the results of the workloads that completed.
func (r *Runner) Run(ctx context.Context) ([]*Result, error) {
	results := make([]*Result, 0, len(r.kinds))
	for _, kind := range r.kinds {
		result, err := r.run(ctx, kind)
		if err != nil {
			r.LogErrorw("workload failed", "kind", kind, "err", err)

			return results, err
		}

		results = append(results, result)
	}

	return results, nil
}

func (r *Runner) run(ctx context.Context, kind Kind) (*Result, error) {
	pool, err := workerpool.New(kind.String(), r.parameters.Workers)
	if err != nil {
		return nil, err
	}
	defer pool.Shutdown()

	seed := seedValues(r.parameters.Size)
	operations, checksum := atomic.NewUint64(0), atomic.NewUint64(0)
	execute := scenarios[kind]

	r.LogDebugw("workload started", "kind", kind, "size", r.parameters.Size, "iterations", r.parameters.Iterations, "workers", r.parameters.Workers)

	start := time.Now()
	for range r.parameters.Iterations {
		values := seed.Clone()

		if err = pool.Submit(ctx, func() {
			executedOperations, observedChecksum := execute(values)

			operations.Add(executedOperations)
			checksum.Add(observedChecksum)
		}); err != nil {
			break
		}
	}

	if waitErr := pool.Wait(); waitErr != nil {
		return nil, ierrors.Wrapf(waitErr, "workload %s failed", kind)
	} else if err != nil {
		return nil, ierrors.Wrapf(err, "workload %s aborted", kind)
	}

	result := &Result{
		Kind:       kind,
		Size:       r.parameters.Size,
		Iterations: r.parameters.Iterations,
		Workers:    r.parameters.Workers,
		Operations: operations.Load(),
		Checksum:   checksum.Load(),
		Elapsed:    time.Since(start),
	}

	// every iteration worked on its own copy
	if !list.Equal(seed, seedValues(r.parameters.Size)) {
		return nil, ierrors.Wrapf(ErrSeedModified, "workload %s", kind)
	}

	r.LogInfow("workload finished", "kind", kind, "size", result.Size, "elapsed", result.Elapsed, "operations", result.Operations, "checksum", result.Checksum)

	return result, nil
}
