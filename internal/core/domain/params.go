package domain

// Params objects group a use case's input arguments. They are constructed
// by the presentation layer, consumed by exactly one use-case invocation,
// and discarded afterwards.

// LoginParams carries the credentials for a login attempt.
type LoginParams struct {
	Email    string
	Password string
}

// Validate checks that the params are usable for a login call.
func (p LoginParams) Validate() error {
	if p.Email == "" || p.Password == "" {
		return ErrInvalidInput
	}
	return nil
}

// RegisterParams carries the fields for creating a new account.
type RegisterParams struct {
	Email       string
	Password    string
	DisplayName string
}

// Validate checks that the params are usable for a register call.
func (p RegisterParams) Validate() error {
	if p.Email == "" || p.Password == "" {
		return ErrInvalidInput
	}
	return nil
}

// LogoutParams carries the options for ending the current session.
type LogoutParams struct {
	// RevokeRemote requests a best-effort token revocation on the
	// account service before the local session is cleared.
	RevokeRemote bool
}
