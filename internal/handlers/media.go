package handlers

import (
	"errors"
	"net/http"

	"kilo-server/internal/filesystem"
	"kilo-server/internal/logging"
	"kilo-server/internal/mediatypes"
	"kilo-server/internal/metrics"
	"kilo-server/internal/scanner"
	"kilo-server/internal/streaming"

	"github.com/gorilla/mux"
)

// StreamMedia serves a media file with byte-range support.
//
// GET /media/{path}
//
// Range requests receive 206 Partial Content with a Content-Range header;
// requests without a Range header receive the full file. Unsatisfiable
// ranges are handled per standard HTTP semantics by http.ServeContent.
func (h *Handlers) StreamMedia(w http.ResponseWriter, r *http.Request) {
	relPath := mux.Vars(r)["path"]

	fullPath, info, kind, err := h.scanner.ResolveFile(relPath)
	if err != nil {
		logging.Debug("StreamMedia %q: %v", relPath, err)
		recordMediaError(kind, err)
		writeScanError(w, err)
		return
	}

	f, err := filesystem.OpenWithRetry(fullPath, filesystem.DefaultRetryConfig())
	if err != nil {
		logging.Error("StreamMedia failed to open %s: %v", fullPath, err)
		metrics.MediaRequestsTotal.WithLabelValues(string(kind), "error").Inc()
		writeJSONError(w, "Failed to open file", http.StatusInternalServerError)
		return
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			logging.Warn("failed to close %s: %v", fullPath, closeErr)
		}
	}()

	w.Header().Set("Content-Type", mediatypes.MimeType(info.Name()))
	w.Header().Set("Cache-Control", "public, max-age=3600")

	cw := streaming.NewCountingWriter(w)
	http.ServeContent(cw, r, info.Name(), info.ModTime(), f)

	status := streamStatusLabel(cw.Status())
	metrics.MediaRequestsTotal.WithLabelValues(string(kind), status).Inc()
	// A 416 carries a short error body; only successful streams count
	// toward bytes served.
	if status == "success" && cw.BytesWritten() > 0 {
		metrics.MediaBytesServed.WithLabelValues(string(kind)).Add(float64(cw.BytesWritten()))
	}
}

// streamStatusLabel maps the response status written by http.ServeContent
// to a metric status label. Conditional and range misses are not successful
// streams even though ResolveFile succeeded.
func streamStatusLabel(code int) string {
	switch {
	case code == http.StatusNotModified:
		return "not_modified"
	case code == http.StatusRequestedRangeNotSatisfiable:
		return "invalid_range"
	case code >= http.StatusBadRequest:
		return "error"
	default:
		return "success"
	}
}

func recordMediaError(kind mediatypes.Kind, err error) {
	label := string(kind)
	if kind == mediatypes.KindOther {
		label = "unknown"
	}
	switch {
	case errors.Is(err, scanner.ErrInvalidPath):
		metrics.MediaRequestsTotal.WithLabelValues(label, "invalid_path").Inc()
	case errors.Is(err, scanner.ErrNotFound), errors.Is(err, scanner.ErrNotMedia):
		metrics.MediaRequestsTotal.WithLabelValues(label, "not_found").Inc()
	}
}
