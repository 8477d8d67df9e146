package workload

import (
	"time"

	"github.com/iotaledger/hive.go/stringify"
)

// Result summarizes one executed workload.
type Result struct {
	Kind       Kind
	Size       int
	Iterations int
	Workers    int
	Operations uint64
	Checksum   uint64
	Elapsed    time.Duration
}

// OperationsPerSecond returns the throughput of the workload.
func (r *Result) OperationsPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}

	return float64(r.Operations) / r.Elapsed.Seconds()
}

func (r *Result) String() string {
	return stringify.Struct("Result",
		stringify.NewStructField("Kind", r.Kind.String()),
		stringify.NewStructField("Size", r.Size),
		stringify.NewStructField("Iterations", r.Iterations),
		stringify.NewStructField("Workers", r.Workers),
		stringify.NewStructField("Operations", r.Operations),
		stringify.NewStructField("Checksum", r.Checksum),
		stringify.NewStructField("Elapsed", r.Elapsed),
	)
}
