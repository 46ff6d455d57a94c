package handlers

import (
	"net/http"
	"strconv"

	"kilo-server/internal/logging"
	"kilo-server/internal/web"

	"github.com/gorilla/mux"
)

// Index serves the directory browser page.
//
// GET /
func (h *Handlers) Index(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := web.RenderIndex(w); err != nil {
		logging.Error("failed to render index page: %v", err)
	}
}

// Slideshow serves the slideshow viewer page for a media kind.
//
// GET /slideshow/{kind}?path=<relative path>&randomize=<bool>
func (h *Handlers) Slideshow(w http.ResponseWriter, r *http.Request) {
	kind := mux.Vars(r)["kind"]
	if kind != "images" && kind != "videos" {
		writeJSONError(w, "Unknown media type", http.StatusNotFound)
		return
	}

	randomize := false
	if raw := r.URL.Query().Get("randomize"); raw != "" {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			randomize = parsed
		}
	}

	data := web.SlideshowData{
		Kind:      kind,
		Path:      r.URL.Query().Get("path"),
		Randomize: randomize,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := web.RenderSlideshow(w, data); err != nil {
		logging.Error("failed to render slideshow page: %v", err)
	}
}
