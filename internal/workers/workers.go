package workers

import (
	"os"
	"runtime"
	"strconv"
)

// Count returns the number of workers to use for fan-out work. It respects
// container CPU limits via GOMAXPROCS (Go 1.19+).
//
// The multiplier adjusts for task characteristics: directory scans are
// almost pure I/O wait, so they benefit from more workers than CPUs. The
// limit parameter caps the worker count; use 0 for no limit.
//
// Can be overridden with the SCAN_WORKERS environment variable.
func Count(multiplier float64, limit int) int {
	if n, ok := envOverride(); ok {
		return capped(n, limit)
	}

	// GOMAXPROCS is automatically set to the container CPU limit
	n := int(float64(runtime.GOMAXPROCS(0)) * multiplier)
	if n < 1 {
		n = 1
	}
	return capped(n, limit)
}

// ForIO returns the worker count for I/O-bound tasks (2 per CPU), capped
// at limit.
func ForIO(limit int) int {
	return Count(2.0, limit)
}

func envOverride() (int, bool) {
	raw := os.Getenv("SCAN_WORKERS")
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

func capped(n, limit int) int {
	if limit > 0 && n > limit {
		return limit
	}
	return n
}
