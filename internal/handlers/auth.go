package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/neocontrole/authserver/internal/seed"
	"github.com/neocontrole/authserver/internal/services"
	"github.com/neocontrole/authserver/internal/store"
	"github.com/neocontrole/authserver/types"
	"golang.org/x/crypto/bcrypt"
)

// Tokens live as long as a store shift; the original service used the same
// eight-hour window.
const defaultTokenTTL = 8 * time.Hour

// AuthHandler provides the login endpoint.
type AuthHandler struct {
	userService          *services.UserService
	establishmentService *services.EstablishmentService
	secret               []byte
	tokenTTL             time.Duration
}

// NewAuthHandler constructs an AuthHandler with the provided dependencies.
func NewAuthHandler(userService *services.UserService, establishmentService *services.EstablishmentService, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		userService:          userService,
		establishmentService: establishmentService,
		secret:               []byte(jwtSecret),
		tokenTTL:             defaultTokenTTL,
	}
}

// AuthRouter registers auth routes on the given router.
func AuthRouter(r chi.Router, userService *services.UserService, establishmentService *services.EstablishmentService, jwtSecret string) {
	handler := NewAuthHandler(userService, establishmentService, jwtSecret)

	r.Post("/login", handler.Login)
}

// RequireAuth constructs bearer-token middleware for other routers.
func RequireAuth(jwtSecret string) func(http.Handler) http.Handler {
	return requireAuth([]byte(jwtSecret))
}

func requireAuth(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, err := bearerToken(r)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			subject, err := parseTokenSubject(tokenString, secret)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), contextSubjectKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Login verifies credentials and returns an access token plus the
// establishments the frontends may open.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "missing credentials")
		return
	}

	user, err := h.userService.GetByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to authenticate")
		return
	}

	if !user.IsActive {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	establishments, err := h.establishmentService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load establishments")
		return
	}
	if len(establishments) == 0 {
		// Bootstrap should make this unreachable; serve the seed
		// defaults rather than an empty picker.
		establishments = seed.DefaultEstablishments()
	}

	expiresAt := time.Now().Add(h.tokenTTL)
	token, err := issueToken(user.Username, h.secret, expiresAt)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create token")
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{
		AccessToken:      token,
		TokenType:        "bearer",
		Usuario:          user.Nome,
		ExpiresAt:        expiresAt,
		Estabelecimentos: establishments,
	})
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken      string                `json:"access_token"`
	TokenType        string                `json:"token_type"`
	Usuario          string                `json:"usuario"`
	ExpiresAt        time.Time             `json:"expires_at"`
	Estabelecimentos []types.Establishment `json:"estabelecimentos"`
}

func issueToken(username string, secret []byte, expiresAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func parseTokenSubject(tokenString string, secret []byte) (string, error) {
	claims := jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", errors.New("invalid token")
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return "", errors.New("missing subject")
	}
	return claims.Subject, nil
}

func bearerToken(r *http.Request) (string, error) {
	auth := strings.TrimSpace(r.Header.Get("Authorization"))
	if auth == "" {
		return "", errors.New("missing authorization")
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization")
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", errors.New("invalid authorization")
	}
	return token, nil
}
