package mcpserver

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBlockedIP(t *testing.T) {
	tests := []struct {
		ip      string
		blocked bool
	}{
		{"127.0.0.1", true},
		{"10.1.2.3", true},
		{"172.31.255.1", true},
		{"192.168.0.10", true},
		{"169.254.169.254", true}, // cloud metadata endpoint
		{"0.0.0.0", true},
		{"::1", true},
		{"::", true},
		{"fe80::abcd", true},
		{"fd12:3456::1", true},
		{"9.9.9.9", false},
		{"2606:4700:4700::1111", false},
	}
	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			ip := net.ParseIP(tt.ip)
			require.NotNil(t, ip)
			assert.Equal(t, tt.blocked, isBlockedIP(ip))
		})
	}
}

func TestPublicAddrs(t *testing.T) {
	ctx := context.Background()

	ips, err := publicAddrs(ctx, "9.9.9.9")
	require.NoError(t, err)
	require.Len(t, ips, 1)
	assert.Equal(t, "9.9.9.9", ips[0].IP.String())

	_, err = publicAddrs(ctx, "127.0.0.1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blocked request to private/loopback IP")
}

func TestSafeHTTPClientRefusesLoopback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("openapi: 3.0.3\n"))
	}))
	defer srv.Close()

	resp, err := newSafeHTTPClient().Get(srv.URL)
	if resp != nil {
		_ = resp.Body.Close()
	}
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blocked request")
}

func TestSafeHTTPClientRedirects(t *testing.T) {
	client := newSafeHTTPClient()
	require.NotNil(t, client.CheckRedirect)

	req, err := http.NewRequest(http.MethodGet, "http://127.0.0.1/openapi.yaml", nil)
	require.NoError(t, err)
	err = client.CheckRedirect(req, []*http.Request{{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blocked request")

	public, err := http.NewRequest(http.MethodGet, "http://9.9.9.9/openapi.yaml", nil)
	require.NoError(t, err)
	assert.NoError(t, client.CheckRedirect(public, []*http.Request{{}}))

	err = client.CheckRedirect(public, make([]*http.Request, 10))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stopped after 10 redirects")
}
