package driven

import (
	"context"
	"time"

	"github.com/arclight-labs/gate-cli/internal/core/domain"
)

// UserRecord is the wire model returned by the account service.
// It is converted to domain.User at the service boundary; no other
// layer sees it.
type UserRecord struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name,omitempty"`
	Verified    bool      `json:"verified"`
	CreatedAt   time.Time `json:"created_at"`
}

// TokenGrant is the token material issued alongside a UserRecord on
// successful login or registration.
type TokenGrant struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	Expiry       time.Time `json:"expiry,omitempty"`
}

// LoginResult pairs the authenticated account with its token grant.
type LoginResult struct {
	User  UserRecord
	Token TokenGrant
}

// AccountAPI is the remote data source for account operations.
// Implementations perform the actual network I/O and return plain
// errors; translating them into domain failures is the account
// service's job, not the adapter's.
type AccountAPI interface {
	// Login authenticates the credentials and returns the account
	// with a fresh token grant.
	Login(ctx context.Context, params domain.LoginParams) (*LoginResult, error)

	// Register creates a new account and returns it with a token
	// grant, logging the user in as a side effect.
	Register(ctx context.Context, params domain.RegisterParams) (*LoginResult, error)

	// FetchUser retrieves the account behind the given access token.
	FetchUser(ctx context.Context, accessToken string) (*UserRecord, error)

	// Revoke invalidates the given access token on the service.
	Revoke(ctx context.Context, accessToken string) error
}
