package domain

import "errors"

// Domain errors represent expected runtime failures of account operations.
// These are distinct from wiring/configuration errors, which live in the
// container package and are fatal at startup.
var (
	// ErrNoConnectivity indicates the network is unreachable. Remote
	// operations fail with this error before the data source is invoked.
	// There is no retry or queuing; callers decide what to do next.
	ErrNoConnectivity = errors.New("no network connectivity")

	// ErrServer indicates the remote account service failed. The wrapped
	// error carries the underlying message.
	ErrServer = errors.New("server error")

	// ErrInvalidCredentials indicates the account service rejected the
	// supplied email/password combination.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotAuthenticated indicates no session is stored locally.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrInvalidInput indicates malformed or missing use-case parameters.
	ErrInvalidInput = errors.New("invalid input")
)
