// Package network implements the connectivity checker over a plain TCP
// dial probe.
package network

import (
	"context"
	"net"
	"net/url"
	"time"

	"github.com/arclight-labs/gate-cli/internal/core/ports/driven"
	"github.com/arclight-labs/gate-cli/internal/logger"
)

// Ensure Checker implements the interface.
var _ driven.NetworkChecker = (*Checker)(nil)

// DefaultProbeAddr is dialled when no probe address is configured.
const DefaultProbeAddr = "1.1.1.1:443"

// DefaultProbeTimeout bounds a single probe.
const DefaultProbeTimeout = 3 * time.Second

// Checker reports network reachability by dialling a TCP address.
// Every call performs a fresh probe; results are never cached.
type Checker struct {
	addr    string
	timeout time.Duration
	dial    func(ctx context.Context, network, addr string) (net.Conn, error)
}

// NewChecker creates a checker probing addr. An empty addr falls back
// to DefaultProbeAddr.
func NewChecker(addr string) *Checker {
	if addr == "" {
		addr = DefaultProbeAddr
	}
	dialer := &net.Dialer{Timeout: DefaultProbeTimeout}
	return &Checker{
		addr:    addr,
		timeout: DefaultProbeTimeout,
		dial:    dialer.DialContext,
	}
}

// NewCheckerForService derives the probe address from the account
// service's base URL, so "is the network up" means "can I reach the
// host I am about to call".
func NewCheckerForService(baseURL string) *Checker {
	return NewChecker(probeAddr(baseURL))
}

// IsConnected reports whether the probe address is reachable right now.
func (c *Checker) IsConnected(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	conn, err := c.dial(ctx, "tcp", c.addr)
	if err != nil {
		logger.Debug("connectivity probe to %s failed: %v", c.addr, err)
		return false
	}
	_ = conn.Close()
	return true
}

// probeAddr extracts host:port from a service base URL. Malformed URLs
// fall back to the default probe address.
func probeAddr(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return DefaultProbeAddr
	}

	host := u.Host
	if u.Port() == "" {
		switch u.Scheme {
		case "http":
			host = net.JoinHostPort(u.Hostname(), "80")
		default:
			host = net.JoinHostPort(u.Hostname(), "443")
		}
	}
	return host
}
