package types

// User represents an account that can authenticate against the service.
type User struct {
	// ID is the unique identifier of the user (UUID).
	ID string `json:"id" db:"id"`

	// Username is the unique, case-sensitive login name.
	Username string `json:"username" db:"username"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This field is never exposed in API responses.
	PasswordHash string `json:"-" db:"password_hash"`

	// Nome is the display name returned to clients.
	Nome string `json:"nome" db:"nome"`

	// IsActive gates login; inactive users cannot authenticate.
	IsActive bool `json:"is_active" db:"is_active"`
}
