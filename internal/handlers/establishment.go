package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/neocontrole/authserver/internal/services"
	"github.com/neocontrole/authserver/internal/store"
)

// EstablishmentHandler provides HTTP handlers for establishments.
type EstablishmentHandler struct {
	establishmentService *services.EstablishmentService
}

// NewEstablishmentHandler constructs a handler with the provided service.
func NewEstablishmentHandler(establishmentService *services.EstablishmentService) *EstablishmentHandler {
	return &EstablishmentHandler{establishmentService: establishmentService}
}

// EstablishmentRouter registers establishment routes on the given router.
func EstablishmentRouter(r chi.Router, establishmentService *services.EstablishmentService, authMiddleware func(http.Handler) http.Handler) {
	handler := NewEstablishmentHandler(establishmentService)

	r.With(authMiddleware).Put("/{id}", handler.UpdateEstablishment)
}

// UpdateEstablishment renames an establishment. The frontend URL is fixed
// and never changed through the API.
func (h *EstablishmentHandler) UpdateEstablishment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateEstablishmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	req.Nome = strings.TrimSpace(req.Nome)
	if req.Nome == "" {
		writeError(w, http.StatusBadRequest, "missing nome")
		return
	}

	est, err := h.establishmentService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "establishment not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load establishment")
		return
	}

	est.Nome = req.Nome
	updated, err := h.establishmentService.Update(r.Context(), est)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "establishment not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update establishment")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

type UpdateEstablishmentRequest struct {
	Nome string `json:"nome"`
}
