package handlers

import (
	"encoding/json"
	"net/http"
)

// Response is the JSON envelope every endpoint answers with
// swagger:model Response
type Response struct {
	// Operation outcome
	// default: true
	Success bool `json:"success"`

	// Human-readable message
	// default: ok
	Message string `json:"message,omitempty"`
}

// writeJSON serializes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError answers with the standard failure envelope.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Response{Success: false, Message: message})
}
