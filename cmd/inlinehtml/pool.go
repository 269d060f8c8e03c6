package main

import (
	"fmt"
	"runtime"
)

// MaxWorkers caps the number of concurrent inlining workers.
const MaxWorkers = 8

// resolvePoolSize returns the worker count: the explicit value when
// positive, otherwise half of GOMAXPROCS clamped to [1, MaxWorkers].
func resolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	n := runtime.GOMAXPROCS(0) / 2
	if n < 1 {
		return 1
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, MaxWorkers)
	}
	return nil
}
