package web

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.gohtml"))

// SlideshowData is the view model for the slideshow page.
type SlideshowData struct {
	// Kind is "images" or "videos".
	Kind string
	// Path is the directory being viewed, relative to the media root.
	Path string
	// Randomize requests a shuffled listing from the API.
	Randomize bool
}

// Title returns the page title for the slideshow.
func (d SlideshowData) Title() string {
	if d.Kind == "videos" {
		return "Video Slideshow"
	}
	return "Image Slideshow"
}

// RenderIndex writes the browser page.
func RenderIndex(w io.Writer) error {
	return templates.ExecuteTemplate(w, "index.gohtml", nil)
}

// RenderSlideshow writes the slideshow viewer page.
func RenderSlideshow(w io.Writer, data SlideshowData) error {
	return templates.ExecuteTemplate(w, "slideshow.gohtml", data)
}
