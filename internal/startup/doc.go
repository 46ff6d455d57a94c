// Package startup handles application initialization, configuration loading,
// and startup/shutdown logging.
//
// # Configuration
//
// Configuration is loaded via [LoadConfig] from command-line flags with
// environment-variable fallbacks (flag > env > default). A .env file in the
// working directory is honored.
//
//   - --media-root / MEDIA_ROOT: Path to media directory (required)
//   - --host / HOST: Bind host (default: 0.0.0.0)
//   - --port / PORT: HTTP server port (default: 8000)
//   - --image-exts / IMAGE_EXTS: Comma-separated image extensions
//   - --video-exts / VIDEO_EXTS: Comma-separated video extensions
//   - METRICS_PORT: Prometheus metrics server port (default: 9090)
//   - METRICS_ENABLED: Enable or disable metrics server (default: true)
//   - LOG_LEVEL: Logging level - debug, info, warn, error (default: info)
//   - LOG_STATIC_FILES: Log page/static requests (default: false)
//   - LOG_HEALTH_CHECKS: Log health check requests (default: true)
//
// The media root is validated but never created: it should be mounted.
//
// # Build Information
//
// Build-time variables are injected via ldflags and exposed via [GetBuildInfo]:
//   - Version: Application version
//   - Commit: Git commit hash
//   - BuildTime: Build timestamp
package startup
