package handlers

import (
	"net/http"
	"strconv"

	"kilo-server/internal/logging"
	"kilo-server/internal/mediatypes"
)

// ListDirectories returns the subdirectories and media counts for a
// directory under the media root.
//
// GET /api/directories?path=<relative path>
func (h *Handlers) ListDirectories(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")

	listing, err := h.scanner.ListDirectories(path)
	if err != nil {
		logging.Debug("ListDirectories %q: %v", path, err)
		writeScanError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, listing)
}

// ListMedia returns the media files in a directory under the media root.
//
// GET /api/media?path=<relative path>&type=<image|video>&randomize=<bool>
func (h *Handlers) ListMedia(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")

	kind := mediatypes.KindOther
	switch r.URL.Query().Get("type") {
	case "":
		// no filter
	case "image", "images":
		kind = mediatypes.KindImage
	case "video", "videos":
		kind = mediatypes.KindVideo
	default:
		writeJSONError(w, "Unknown media type", http.StatusBadRequest)
		return
	}

	randomize := false
	if raw := r.URL.Query().Get("randomize"); raw != "" {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			randomize = parsed
		}
	}

	listing, err := h.scanner.ListMedia(path, kind, randomize)
	if err != nil {
		logging.Debug("ListMedia %q: %v", path, err)
		writeScanError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, listing)
}
