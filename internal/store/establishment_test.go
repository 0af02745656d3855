package store

import (
	"context"
	"errors"
	"testing"

	"github.com/neocontrole/authserver/internal/testdb"
	"github.com/neocontrole/authserver/types"
)

func TestEstablishmentRepository_CRUD(t *testing.T) {
	db := testdb.Open(t)
	repo := NewEstablishmentRepository(db)
	ctx := context.Background()

	for _, est := range []types.Establishment{
		{ID: "neopdv1", Nome: "NeoPDV 1", URLFront: "https://neopdv1.vercel.app"},
		{ID: "neopdv2", Nome: "NeoPDV 2", URLFront: "https://neopdv2.vercel.app"},
	} {
		if _, err := repo.Create(ctx, est); err != nil {
			t.Fatalf("create %s: %v", est.ID, err)
		}
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 establishments, got %d", len(list))
	}

	got, err := repo.GetByID(ctx, "neopdv1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Nome != "NeoPDV 1" || got.URLFront != "https://neopdv1.vercel.app" {
		t.Fatalf("unexpected establishment: %+v", got)
	}

	if _, err := repo.GetByID(ctx, "neopdv9"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	got.Nome = "Loja Centro"
	if _, err := repo.Update(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	after, err := repo.GetByID(ctx, "neopdv1")
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if after.Nome != "Loja Centro" || after.URLFront != "https://neopdv1.vercel.app" {
		t.Fatalf("update not persisted: %+v", after)
	}

	unknown := types.Establishment{ID: "neopdv9", Nome: "x", URLFront: "x"}
	if _, err := repo.Update(ctx, unknown); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	count, err := repo.Count(ctx)
	if err != nil || count != 2 {
		t.Fatalf("count: %v count=%d", err, count)
	}
}
