// Package scanner lists directories and media files under the configured
// media root.
//
// It owns the only safety-relevant invariant in the server: every
// client-supplied path is normalized, symlink-resolved, and checked to still
// lie under the media root before the filesystem is touched. Violations are
// reported as ErrInvalidPath; missing paths as ErrNotFound.
//
// A Scanner is immutable after construction and safe for concurrent use.
// Listing operations read the filesystem directly on each call; there is no
// cache or background indexing.
package scanner
