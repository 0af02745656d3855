package handlers

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/neocontrole/authserver/internal/seed"
	"github.com/neocontrole/authserver/internal/services"
	"github.com/neocontrole/authserver/internal/store"
	"github.com/neocontrole/authserver/internal/testdb"
)

const testSecret = "test-secret"

// newTestRouter wires the handlers the same way internal/server does, backed
// by a seeded in-memory database.
func newTestRouter(t *testing.T) (*chi.Mux, *sql.DB) {
	t.Helper()

	db := testdb.Open(t)
	userRepo := store.NewUserRepository(db)
	establishmentRepo := store.NewEstablishmentRepository(db)

	if err := seed.Ensure(context.Background(), userRepo, establishmentRepo); err != nil {
		t.Fatalf("seed: %v", err)
	}

	userService := services.NewUserService(userRepo)
	establishmentService := services.NewEstablishmentService(establishmentRepo)
	authMiddleware := RequireAuth(testSecret)

	router := chi.NewRouter()
	router.Get("/", Root)
	router.Route("/auth", func(r chi.Router) {
		AuthRouter(r, userService, establishmentService, testSecret)
	})
	router.Route("/users", func(r chi.Router) {
		UserRouter(r, userService, authMiddleware)
	})
	router.Route("/estabelecimentos", func(r chi.Router) {
		EstablishmentRouter(r, establishmentService, authMiddleware)
	})
	return router, db
}

// doJSON performs a request with an optional bearer token and JSON body.
func doJSON(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// login authenticates and returns the decoded response, failing the test on
// a non-200 status.
func login(t *testing.T, router http.Handler, username, password string) LoginResponse {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/auth/login", "", LoginRequest{
		Username: username,
		Password: password,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: status %d body %s", username, rec.Code, rec.Body.String())
	}
	var resp LoginResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	return resp
}
