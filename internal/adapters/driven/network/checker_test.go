package network

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecker_ReachableListener(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()

	checker := NewChecker(listener.Addr().String())

	assert.True(t, checker.IsConnected(context.Background()))
}

func TestChecker_UnreachableAddress(t *testing.T) {
	// Grab a port and close it so nothing is listening there.
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	listener.Close()

	checker := NewChecker(addr)

	assert.False(t, checker.IsConnected(context.Background()))
}

func TestChecker_CancelledContext(t *testing.T) {
	checker := NewChecker("127.0.0.1:1")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.False(t, checker.IsConnected(ctx))
}

func TestChecker_FreshProbePerCall(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()

	checker := NewChecker(addr)
	ctx := context.Background()

	assert.True(t, checker.IsConnected(ctx))

	// Connectivity state changes must show up on the next call.
	listener.Close()
	assert.False(t, checker.IsConnected(ctx))
}

func TestProbeAddr(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		want    string
	}{
		{"https default port", "https://api.example.com", "api.example.com:443"},
		{"http default port", "http://api.example.com", "api.example.com:80"},
		{"explicit port", "https://api.example.com:8443", "api.example.com:8443"},
		{"empty", "", DefaultProbeAddr},
		{"garbage", "::not-a-url::", DefaultProbeAddr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, probeAddr(tt.baseURL))
		})
	}
}
