// Package mediatypes provides shared media-type definitions for the
// kilo media server.
//
// It exists as a dependency-free foundation that can be imported by other
// packages without creating import cycles. The central type is Set, which
// holds the configured image and video extension lists:
//
//	set := mediatypes.NewSet([]string{"jpg", "png"}, []string{"mp4"})
//	switch set.KindOf("clip.mp4") {
//	case mediatypes.KindImage:
//	    // handle image
//	case mediatypes.KindVideo:
//	    // handle video
//	}
//
// Use MimeType to get the appropriate Content-Type for HTTP responses:
//
//	mime := mediatypes.MimeType("photo.jpg") // "image/jpeg"
package mediatypes
