/*
Package workers sizes worker pools for containerized environments.

When running in containers, the number of available CPUs may be limited by
cgroup constraints. Go 1.19+ automatically sets GOMAXPROCS based on
container CPU limits, but runtime.NumCPU() still returns the host machine's
CPU count. This package sizes worker pools from GOMAXPROCS so that fan-out
work respects container resource limits.

The scanner uses ForIO to bound the goroutines that count media in
subdirectories during a directory listing: those scans spend nearly all of
their time waiting on the filesystem, so running more workers than CPUs
pays off, especially against network mounts.

	// 2 workers per CPU, at most 16
	numWorkers := workers.ForIO(16)

	// custom multiplier, no cap
	numWorkers := workers.Count(1.5, 0)

All functions respect the SCAN_WORKERS environment variable, allowing
operators to override the automatic calculation:

	env:
	- name: SCAN_WORKERS
	  value: "4"

All functions are safe for concurrent use.
*/
package workers
