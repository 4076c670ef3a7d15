package driven

import "context"

// NetworkChecker answers whether the network is reachable at the moment
// of the call. Results are never cached across calls; every repository
// operation consults it before touching the remote data source.
//
// The check-then-act sequence in callers is intentionally non-atomic:
// connectivity can change between the check and the remote call. That
// window is accepted, and the remote call's own error handling covers it.
type NetworkChecker interface {
	// IsConnected reports current network reachability. A false result
	// must be cheap to produce; implementations probe with a short
	// timeout bounded by ctx.
	IsConnected(ctx context.Context) bool
}
