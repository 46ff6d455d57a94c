package mediatypes

import (
	"path/filepath"
	"strings"
)

// Kind represents the kind of a media file.
type Kind string

const (
	// KindImage represents an image file.
	KindImage Kind = "image"
	// KindVideo represents a video file.
	KindVideo Kind = "video"
	// KindOther represents an unknown or unsupported file type.
	KindOther Kind = "other"
)

// DefaultImageExtensions are the image formats served when no override
// is configured.
var DefaultImageExtensions = []string{"jpg", "jpeg", "png", "gif", "webp"}

// DefaultVideoExtensions are the video formats served when no override
// is configured.
var DefaultVideoExtensions = []string{"mp4", "mov", "avi", "mkv", "webm"}

// mimeTypes maps file extensions to their MIME types.
var mimeTypes = map[string]string{
	// Images
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
	".tiff": "image/tiff",
	".tif":  "image/tiff",
	".heic": "image/heic",
	".heif": "image/heif",

	// Videos
	".mp4":  "video/mp4",
	".mkv":  "video/x-matroska",
	".avi":  "video/x-msvideo",
	".mov":  "video/quicktime",
	".wmv":  "video/x-ms-wmv",
	".flv":  "video/x-flv",
	".webm": "video/webm",
	".m4v":  "video/x-m4v",
	".mpeg": "video/mpeg",
	".mpg":  "video/mpeg",
	".3gp":  "video/3gpp",
	".ts":   "video/mp2t",
}

// Set holds the image and video extension sets the server recognizes.
// Extensions are stored lowercase with a leading dot (e.g. ".jpg").
type Set struct {
	images map[string]bool
	videos map[string]bool
}

// NewSet builds a Set from extension lists. Entries may be given with or
// without a leading dot and in any case; empty entries are skipped.
// Nil or empty lists fall back to the defaults.
func NewSet(imageExts, videoExts []string) Set {
	if len(imageExts) == 0 {
		imageExts = DefaultImageExtensions
	}
	if len(videoExts) == 0 {
		videoExts = DefaultVideoExtensions
	}
	return Set{
		images: buildExtMap(imageExts),
		videos: buildExtMap(videoExts),
	}
}

// DefaultSet returns a Set with the default image and video extensions.
func DefaultSet() Set {
	return NewSet(nil, nil)
}

func buildExtMap(exts []string) map[string]bool {
	m := make(map[string]bool, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		m[ext] = true
	}
	return m
}

// KindOf returns the Kind for a filename based on its extension.
// Returns KindOther if the extension is not in either set.
func (s Set) KindOf(name string) Kind {
	ext := strings.ToLower(filepath.Ext(name))
	if s.images[ext] {
		return KindImage
	}
	if s.videos[ext] {
		return KindVideo
	}
	return KindOther
}

// IsMedia returns true if the filename has a recognized media extension.
func (s Set) IsMedia(name string) bool {
	return s.KindOf(name) != KindOther
}

// MimeType returns the MIME type for a filename based on its extension.
// Returns "application/octet-stream" if the extension is not recognized.
func MimeType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if mime, ok := mimeTypes[ext]; ok {
		return mime
	}
	return "application/octet-stream"
}
