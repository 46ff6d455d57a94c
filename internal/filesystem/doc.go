/*
Package filesystem provides resilient filesystem operations with automatic
retry logic for NFS stale file handle errors.

Media roots on a LAN media box frequently sit on NFS mounts, where ESTALE
(stale file handle, errno 116) errors occur transiently when files are
accessed during network issues or server-side changes. This package wraps
os.Stat, os.Open, and os.ReadDir with exponential-backoff retries for
exactly that failure; all other errors fail immediately.

Basic usage with default retry configuration:

	info, err := filesystem.StatWithRetry("/nfs/media/file.jpg", filesystem.DefaultRetryConfig())
	if err != nil {
	    return err
	}

Custom retry configuration:

	config := filesystem.RetryConfig{
	    MaxRetries:     5,
	    InitialBackoff: 100 * time.Millisecond,
	    MaxBackoff:     1 * time.Second,
	}
	f, err := filesystem.OpenWithRetry(path, config)

Defaults are 3 retries with 50ms initial backoff capped at 500ms
(50ms → 100ms → 200ms). Retry activity is recorded in the package-level
Prometheus counters in internal/metrics.
*/
package filesystem
