package driving

import (
	"context"

	"github.com/arclight-labs/gate-cli/internal/core/domain"
)

// AccountService is the domain-facing boundary over the account data
// sources. It decides whether an operation can reach the remote service
// and translates low-level I/O errors into domain failures.
type AccountService interface {
	// Login authenticates the credentials, persists the resulting
	// session locally and returns the account entity.
	Login(ctx context.Context, params domain.LoginParams) (domain.User, error)

	// Register creates a new account and logs the user in.
	Register(ctx context.Context, params domain.RegisterParams) (domain.User, error)

	// Logout ends the current session. Remote revocation is best
	// effort; the local session is always cleared.
	Logout(ctx context.Context, params domain.LogoutParams) error

	// CurrentUser returns the account behind the stored session,
	// refreshed from the remote service when the network allows it.
	CurrentUser(ctx context.Context) (domain.User, error)

	// Session returns the locally stored session without touching
	// the network.
	Session(ctx context.Context) (*domain.Session, error)
}
