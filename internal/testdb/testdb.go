// Package testdb provides an in-memory SQLite database with the auth schema
// for repository and handler tests. The repositories use $N placeholders and
// portable SQL, which SQLite accepts unchanged.
package testdb

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE auth_users (
	id TEXT PRIMARY KEY,
	username VARCHAR(50) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	nome VARCHAR(100) NOT NULL,
	is_active BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE auth_estabelecimentos (
	id VARCHAR(50) PRIMARY KEY,
	nome VARCHAR(100) NOT NULL,
	url_front VARCHAR(255) NOT NULL
);
`

// Open returns an in-memory database with the auth tables created. It is
// closed automatically when the test finishes. A single connection keeps the
// pool from silently opening a second, empty :memory: database.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("create test schema: %v", err)
	}
	return db
}
