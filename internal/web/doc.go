// Package web holds the embedded browser frontend: the directory browser
// page and the slideshow viewer. Templates are compiled into the binary so
// the server ships as a single file.
package web
