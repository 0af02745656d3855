package store

import (
	"context"
	"database/sql"
)

// ResetAuthTables irreversibly wipes both auth tables. RESTART IDENTITY is a
// no-op with the current UUID/natural keys but kept so serial columns added
// later are reset too; CASCADE covers any future foreign keys.
func ResetAuthTables(ctx context.Context, db *sql.DB) error {
	const query = `TRUNCATE TABLE auth_estabelecimentos, auth_users RESTART IDENTITY CASCADE`
	_, err := db.ExecContext(ctx, query)
	return err
}
