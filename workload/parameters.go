package workload

// ParametersWorkload contains the definition of the parameters used by the workloads.
type ParametersWorkload struct {
	// Kinds lists the workloads to run.
	Kinds []string `default:"queue,stack,deque-rotate,splice,clone-fork,bag,orderedmap,sort" usage:"the workloads to run"`
	// Size is the number of elements every workload operates on.
	Size int `default:"1024" usage:"the number of elements every workload operates on"`
	// Iterations is the number of times every workload is executed.
	Iterations int `default:"64" usage:"how many times every workload is executed"`
	// Workers is the number of workers executing the iterations of a workload concurrently.
	Workers int `default:"4" usage:"the number of workers executing the iterations concurrently"`
}

// DefaultParameters returns the parameters that are used if nothing else is configured.
func DefaultParameters() ParametersWorkload {
	return ParametersWorkload{
		Kinds:      []string{KindQueue.String(), KindStack.String(), KindDequeRotate.String(), KindSplice.String(), KindCloneFork.String(), KindBag.String(), KindOrderedMap.String(), KindSort.String()},
		Size:       1024,
		Iterations: 64,
		Workers:    4,
	}
}
