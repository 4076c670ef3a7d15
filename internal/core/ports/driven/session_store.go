package driven

import (
	"context"

	"github.com/arclight-labs/gate-cli/internal/core/domain"
)

// SessionStore persists the local login session. At most one session is
// stored; Save replaces any existing one.
type SessionStore interface {
	// Save stores the session, replacing the current one if present.
	Save(ctx context.Context, session domain.Session) error

	// Current returns the stored session, or domain.ErrNotAuthenticated
	// if none exists.
	Current(ctx context.Context) (*domain.Session, error)

	// Delete removes the stored session. Deleting when no session
	// exists is not an error.
	Delete(ctx context.Context) error
}
