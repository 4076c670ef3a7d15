package cli

import (
	"errors"
	"fmt"

	"github.com/arclight-labs/gate-cli/internal/core/domain"
)

// presentError converts a domain failure into a user-facing error.
// This is the only layer that rewrites failures; everything below it
// propagates them unchanged.
func presentError(err error) error {
	switch {
	case errors.Is(err, domain.ErrNoConnectivity):
		return errors.New("you appear to be offline; check your network connection and try again")
	case errors.Is(err, domain.ErrInvalidCredentials):
		return errors.New("email or password is incorrect")
	case errors.Is(err, domain.ErrNotAuthenticated):
		return errors.New("not logged in; run 'gate login' first")
	case errors.Is(err, domain.ErrServer):
		return fmt.Errorf("the account service reported a problem: %v", err)
	case errors.Is(err, domain.ErrInvalidInput):
		return errors.New("email and password are required")
	default:
		return err
	}
}
