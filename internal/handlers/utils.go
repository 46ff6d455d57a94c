package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"kilo-server/internal/logging"
	"kilo-server/internal/scanner"
)

// writeJSON encodes v as JSON and writes it to the response writer.
// Any encoding or write errors are logged since we typically cannot
// recover from them in an HTTP handler context.
func writeJSON(w http.ResponseWriter, v interface{}) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("failed to encode JSON response: %v", err)
	}
}

// writeJSONError writes an error response as JSON with the given status code.
func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	writeJSON(w, map[string]string{"error": message})
}

// writeScanError maps scanner sentinel errors to HTTP responses.
func writeScanError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, scanner.ErrInvalidPath):
		writeJSONError(w, "Access denied", http.StatusForbidden)
	case errors.Is(err, scanner.ErrNotFound):
		writeJSONError(w, "Not found", http.StatusNotFound)
	case errors.Is(err, scanner.ErrNotMedia):
		writeJSONError(w, "Not a media file", http.StatusNotFound)
	case errors.Is(err, scanner.ErrNotDirectory):
		writeJSONError(w, "Not a directory", http.StatusBadRequest)
	default:
		logging.Error("internal error: %v", err)
		writeJSONError(w, "Internal server error", http.StatusInternalServerError)
	}
}
