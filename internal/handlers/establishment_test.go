package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/neocontrole/authserver/internal/store"
	"github.com/neocontrole/authserver/types"
)

func TestUpdateEstablishment(t *testing.T) {
	router, _ := newTestRouter(t)
	token := login(t, router, "Nelson", "Nelson4").AccessToken

	rec := doJSON(t, router, http.MethodPut, "/estabelecimentos/neopdv1", token, UpdateEstablishmentRequest{Nome: "Loja Centro"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d body %s", rec.Code, rec.Body.String())
	}
	var resp types.Establishment
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ID != "neopdv1" || resp.Nome != "Loja Centro" {
		t.Fatalf("unexpected establishment: %+v", resp)
	}
	if resp.URLFront != "https://neopdv1.vercel.app" {
		t.Fatalf("url_front must not change: %+v", resp)
	}
}

func TestUpdateEstablishmentNotFound(t *testing.T) {
	router, db := newTestRouter(t)
	token := login(t, router, "Nelson", "Nelson4").AccessToken

	rec := doJSON(t, router, http.MethodPut, "/estabelecimentos/neopdv9", token, UpdateEstablishmentRequest{Nome: "Loja"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", rec.Code)
	}

	// Table left untouched
	repo := store.NewEstablishmentRepository(db)
	count, err := repo.Count(context.Background())
	if err != nil || count != 4 {
		t.Fatalf("table changed: count=%d err=%v", count, err)
	}
	est, err := repo.GetByID(context.Background(), "neopdv1")
	if err != nil || est.Nome != "NeoPDV 1" {
		t.Fatalf("row changed: %+v err=%v", est, err)
	}
}

func TestUpdateEstablishmentValidation(t *testing.T) {
	router, _ := newTestRouter(t)
	token := login(t, router, "Nelson", "Nelson4").AccessToken

	rec := doJSON(t, router, http.MethodPut, "/estabelecimentos/neopdv1", token, UpdateEstablishmentRequest{Nome: "   "})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rec.Code)
	}
}

func TestUpdateEstablishmentRequiresAuth(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPut, "/estabelecimentos/neopdv1", "", UpdateEstablishmentRequest{Nome: "Loja"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status %d, want 401", rec.Code)
	}
}
