package types

// Establishment is a location the frontends can open after login.
type Establishment struct {
	// ID is a short stable identifier used as a natural key (e.g. "neopdv1").
	ID string `json:"id" db:"id"`

	// Nome is the display label shown in the establishment picker.
	Nome string `json:"nome" db:"nome"`

	// URLFront is the URL of the frontend application for this establishment.
	URLFront string `json:"url_front" db:"url_front"`
}
