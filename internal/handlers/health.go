package handlers

import "net/http"

// Root reports that the service is up.
func Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MessageResponse{Message: "NeoControle Auth Backend running"})
}
