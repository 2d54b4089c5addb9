package engine

type Options struct {
	// Threads limits concurrent root tasks in parallel mode, 0 runs one task per candidate.
	Threads  int
	Parallel bool
}

func NewOptions() Options {
	return Options{
		Threads:  0,
		Parallel: false,
	}
}
