package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/neocontrole/authserver/internal/services"
	"github.com/neocontrole/authserver/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// UserHandler provides HTTP handlers for user updates.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler constructs a handler with the provided service.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UserRouter registers user routes on the given router.
func UserRouter(r chi.Router, userService *services.UserService, authMiddleware func(http.Handler) http.Handler) {
	handler := NewUserHandler(userService)

	r.With(authMiddleware).Put("/{username}", handler.UpdateUser)
}

// UpdateUser applies a partial update to a user's display name and/or
// password. Fields absent or blank after trimming are left untouched.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	user, err := h.userService.GetByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load user")
		return
	}

	if nome := strings.TrimSpace(req.Nome); nome != "" {
		user.Nome = nome
	}
	if password := strings.TrimSpace(req.Password); password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to update user")
			return
		}
		user.PasswordHash = string(hashed)
	}

	updated, err := h.userService.Update(r.Context(), user)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update user")
		return
	}

	writeJSON(w, http.StatusOK, UpdateUserResponse{
		Username: updated.Username,
		Nome:     updated.Nome,
		IsActive: updated.IsActive,
	})
}

type UpdateUserRequest struct {
	Nome     string `json:"nome"`
	Password string `json:"password"`
}

type UpdateUserResponse struct {
	Username string `json:"username"`
	Nome     string `json:"nome"`
	IsActive bool   `json:"is_active"`
}
