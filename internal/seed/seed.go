// Package seed owns the default auth rows. It is the single source for both
// startup seeding and the login fallback, so the two can never drift.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/neocontrole/authserver/internal/store"
	"github.com/neocontrole/authserver/types"
	"golang.org/x/crypto/bcrypt"
)

// DefaultUser describes a seed account before hashing.
type DefaultUser struct {
	Username string
	Password string
	Nome     string
}

// DefaultUsers returns the accounts guaranteed to exist after bootstrap.
func DefaultUsers() []DefaultUser {
	return []DefaultUser{
		{Username: "Nelson", Password: "Nelson4", Nome: "Nelson"},
		{Username: "Neotrix", Password: "842384", Nome: "Neotrix Tecnologias"},
	}
}

// DefaultEstablishments returns the establishments seeded into an empty table
// and served as the fallback when the table is empty at login time.
func DefaultEstablishments() []types.Establishment {
	return []types.Establishment{
		{ID: "neopdv1", Nome: "NeoPDV 1", URLFront: "https://neopdv1.vercel.app"},
		{ID: "neopdv2", Nome: "NeoPDV 2", URLFront: "https://neopdv2.vercel.app"},
		{ID: "neopdv3", Nome: "NeoPDV 3", URLFront: "https://neopdv3.vercel.app"},
		{ID: "neopdv4", Nome: "NeoPDV 4", URLFront: "https://neopdv4.vercel.app"},
	}
}

// Ensure makes the default rows exist. Idempotent: existing users are never
// overwritten, and establishments are inserted only when the table is empty.
// Schema must already be in place (run migrations first). Any database error
// is returned to the caller, which treats it as fatal at startup.
func Ensure(ctx context.Context, users *store.UserRepository, establishments *store.EstablishmentRepository) error {
	for _, du := range DefaultUsers() {
		_, err := users.GetByUsername(ctx, du.Username)
		if err == nil {
			continue
		}
		if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("check seed user %q: %w", du.Username, err)
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(du.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash seed password for %q: %w", du.Username, err)
		}
		if _, err := users.Create(ctx, types.User{
			Username:     du.Username,
			PasswordHash: string(hashed),
			Nome:         du.Nome,
			IsActive:     true,
		}); err != nil {
			return fmt.Errorf("create seed user %q: %w", du.Username, err)
		}
	}

	count, err := establishments.Count(ctx)
	if err != nil {
		return fmt.Errorf("count establishments: %w", err)
	}
	if count > 0 {
		// Partially emptied tables are left alone; only a fully empty
		// table gets the defaults back.
		return nil
	}
	for _, est := range DefaultEstablishments() {
		if _, err := establishments.Create(ctx, est); err != nil {
			return fmt.Errorf("create seed establishment %q: %w", est.ID, err)
		}
	}
	return nil
}
