package handlers

import (
	"encoding/json"
	"net/http"
)

type contextKey string

// contextSubjectKey carries the authenticated username through the request
// context once the bearer middleware has validated the token.
const contextSubjectKey contextKey = "sub"

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}
