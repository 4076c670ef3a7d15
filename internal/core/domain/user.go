package domain

import "time"

// User is the account entity returned by authentication operations.
// It is a value object: compared by value, never mutated in place by
// another layer. The wire model used by the remote data source is a
// separate type owned by the API adapter.
type User struct {
	// ID is the account identifier assigned by the account service.
	ID string `json:"id"`

	// Email is the address the account is registered under.
	Email string `json:"email"`

	// DisplayName is the optional human-readable name.
	DisplayName string `json:"display_name,omitempty"`

	// Verified reports whether the account's email has been confirmed.
	Verified bool `json:"verified"`

	// CreatedAt is when the account was created on the service.
	CreatedAt time.Time `json:"created_at"`
}

// IsZero returns true if the user carries no identity.
func (u User) IsZero() bool {
	return u.ID == "" && u.Email == ""
}
