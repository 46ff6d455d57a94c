// Package handlers provides HTTP request handlers for the kilo media server.
//
// It includes handlers for:
//   - Directory browsing and media listing
//   - Byte-range media streaming
//   - The browser and slideshow pages
//   - Health checks and version info
package handlers
