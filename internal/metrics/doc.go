// Package metrics provides Prometheus instrumentation for the kilo media server.
//
// This package defines and exposes various metrics that can be scraped by
// Prometheus to monitor the health, performance, and behavior of the
// application. All metrics are prefixed with "kilo_" to avoid naming
// collisions with other applications.
//
// # Metric Categories
//
// ## HTTP Metrics
//
// Track HTTP request performance and error rates:
//   - HTTPRequestsTotal: Counter of total requests by method, path, and status
//   - HTTPRequestDuration: Histogram of request duration by method and path
//   - HTTPRequestsInFlight: Gauge of currently processing requests
//
// ## Scanner Metrics
//
// Track directory and media listing operations:
//   - ScannerOperationsTotal: Counter of listing operations by operation and status
//   - ScannerOperationDuration: Histogram of listing duration by operation
//   - ScannerItemsReturned: Histogram of items returned per operation
//
// ## Streaming Metrics
//
// Track media file serving:
//   - MediaRequestsTotal: Counter of streaming requests by kind and status
//   - MediaBytesServed: Counter of bytes served by kind
//
// ## Filesystem Metrics
//
// Track retry behavior for media roots on network filesystems:
//   - FilesystemRetryAttempts/Success/Failures: Counters by operation
//   - FilesystemStaleErrors: Counter of ESTALE errors by operation
//
// Call Initialize once at startup so every metric is present from the first
// scrape.
package metrics
