package domain

import "time"

// Session is the locally persisted record of a successful login.
// Exactly one session exists at a time; logging in replaces it and
// logging out deletes it.
type Session struct {
	// ID is the unique session identifier (UUID), generated locally.
	ID string `json:"id"`

	// User is the account the session belongs to.
	User User `json:"user"`

	// AccessToken is the bearer token for authenticated API calls.
	AccessToken string `json:"access_token"`

	// RefreshToken is used to obtain new access tokens, when the
	// account service issues one.
	RefreshToken string `json:"refresh_token,omitempty"`

	// Expiry is when the access token expires. Zero means the token
	// does not expire.
	Expiry time.Time `json:"expiry,omitempty"`

	// CreatedAt is when the session was established.
	CreatedAt time.Time `json:"created_at"`
}

// IsExpired returns true if the access token has expired.
func (s *Session) IsExpired() bool {
	if s.Expiry.IsZero() {
		return false
	}
	return time.Now().After(s.Expiry)
}

// IsAuthenticated returns true if the session holds a usable token.
func (s *Session) IsAuthenticated() bool {
	return s.AccessToken != "" && !s.IsExpired()
}
