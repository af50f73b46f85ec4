package api

import (
	"encoding/json"
	"net/http"
)

// errorResponse is the uniform failure body: a short error tag plus a
// human-readable message. Raw store errors never reach the client in any
// other shape.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (a *API) writeError(w http.ResponseWriter, status int, tag, message string) {
	writeJSON(w, status, errorResponse{Error: tag, Message: message})
}
