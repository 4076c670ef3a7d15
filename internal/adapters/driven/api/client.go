// Package api implements the remote account data source over HTTP.
package api

import (
	"net"
	"net/http"
	"time"
)

// Config holds HTTP transport settings for the account service client.
type Config struct {
	// BaseURL is the root of the account service, e.g. https://api.example.com.
	BaseURL string

	// Timeout bounds the entire request. A context deadline can still
	// override it.
	Timeout time.Duration

	// LoginRatePerMinute caps client-side login/register attempts.
	// Zero means the default.
	LoginRatePerMinute int

	DialTimeout     time.Duration
	TLSHandshake    time.Duration
	ResponseHeader  time.Duration
	IdleConnTimeout time.Duration
}

// DefaultConfig returns the transport defaults.
func DefaultConfig() Config {
	return Config{
		Timeout:            30 * time.Second,
		LoginRatePerMinute: 10,
		DialTimeout:        5 * time.Second,
		TLSHandshake:       5 * time.Second,
		ResponseHeader:     10 * time.Second,
		IdleConnTimeout:    90 * time.Second,
	}
}

// newHTTPClient builds an *http.Client from the config.
func newHTTPClient(cfg Config) *http.Client {
	dialer := &net.Dialer{
		Timeout:   cfg.DialTimeout,
		KeepAlive: 30 * time.Second,
	}

	tr := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		IdleConnTimeout:       cfg.IdleConnTimeout,
		TLSHandshakeTimeout:   cfg.TLSHandshake,
		ResponseHeaderTimeout: cfg.ResponseHeader,
	}

	return &http.Client{
		Transport: tr,
		Timeout:   cfg.Timeout,
	}
}
