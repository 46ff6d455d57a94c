package streaming

import (
	"net/http"
)

// CountingWriter wraps an http.ResponseWriter and records the status code
// and the number of bytes actually written to the client. Range and
// conditional requests make the response differ from the file on disk, so
// the streamer reports what went over the wire rather than trusting
// Content-Length.
type CountingWriter struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int64
}

// NewCountingWriter wraps w in a CountingWriter.
func NewCountingWriter(w http.ResponseWriter) *CountingWriter {
	return &CountingWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (cw *CountingWriter) WriteHeader(code int) {
	cw.statusCode = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *CountingWriter) Write(b []byte) (int, error) {
	n, err := cw.ResponseWriter.Write(b)
	cw.bytesWritten += int64(n)
	return n, err
}

// Status returns the response status code, defaulting to 200 when the
// handler never called WriteHeader explicitly.
func (cw *CountingWriter) Status() int {
	return cw.statusCode
}

// BytesWritten returns the number of bytes written so far.
func (cw *CountingWriter) BytesWritten() int64 {
	return cw.bytesWritten
}

// Flush implements http.Flusher when the underlying writer supports it,
// so long video streams are not held back by response buffering.
func (cw *CountingWriter) Flush() {
	if f, ok := cw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
