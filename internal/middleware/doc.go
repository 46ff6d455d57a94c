// Package middleware provides HTTP middleware for the kilo media server.
//
// It includes:
//   - Request logging in W3C Extended Log Format
//   - Prometheus request metrics
//   - Response compression (gzip) for text payloads
//   - Configurable filtering for static files and health checks
package middleware
