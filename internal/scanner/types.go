package scanner

import (
	"time"

	"kilo-server/internal/mediatypes"
)

// DirectoryEntry represents an immediate subdirectory of a listed directory,
// annotated with the number of media files directly inside it.
type DirectoryEntry struct {
	Name       string `json:"name"`
	Path       string `json:"path"`
	ImageCount int    `json:"imageCount"`
	VideoCount int    `json:"videoCount"`
}

// MediaEntry represents a single media file in a listing.
type MediaEntry struct {
	Name     string          `json:"name"`
	Path     string          `json:"path"`
	Kind     mediatypes.Kind `json:"kind"`
	Size     int64           `json:"size"`
	ModTime  time.Time       `json:"modTime"`
	MimeType string          `json:"mimeType"`
}

// PathPart represents a single component of a breadcrumb path.
type PathPart struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// DirectoryListing is the response for a directory browse request.
// ImageCount and VideoCount refer to media files directly in the listed
// directory itself, not in its subdirectories.
type DirectoryListing struct {
	Path        string           `json:"path"`
	Breadcrumb  []PathPart       `json:"breadcrumb"`
	Directories []DirectoryEntry `json:"directories"`
	ImageCount  int              `json:"imageCount"`
	VideoCount  int              `json:"videoCount"`
}

// MediaListing is the response for a media listing request.
type MediaListing struct {
	Path       string       `json:"path"`
	Randomized bool         `json:"randomized"`
	Items      []MediaEntry `json:"items"`
}
