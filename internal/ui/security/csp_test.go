package security

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wantDefault = "default-src 'self'; " +
	"script-src 'self' 'unsafe-eval' 'unsafe-inline' https://*.twitch.tv https://*.kick.com https://*.cloudflareinsights.com; " +
	"style-src 'self' 'unsafe-inline'; " +
	"frame-src 'self' https://*.twitch.tv https://*.kick.com https://kick.com; " +
	"connect-src 'self' https://*.twitch.tv https://*.kick.com https://*.cloudflareinsights.com; " +
	"img-src 'self' data: https://*; " +
	"frame-ancestors 'self' https://*.twitch.tv https://*.kick.com;"

func TestDefaultPolicyString(t *testing.T) {
	assert.Equal(t, wantDefault, DefaultPolicy(Sources{}).String())
}

func TestDefaultPolicyExtraSources(t *testing.T) {
	p := DefaultPolicy(Sources{
		Script:  []string{"https://cdn.example"},
		Frame:   []string{"https://kick.com", " ", "https://player.example"},
		Connect: []string{"wss://events.example"},
	})

	frame, ok := p.Lookup("frame-src")
	require.True(t, ok)
	assert.Equal(t, []string{"'self'", "https://*.twitch.tv", "https://*.kick.com", "https://kick.com", "https://player.example"}, frame)

	script, _ := p.Lookup("script-src")
	assert.Contains(t, script, "https://cdn.example")
	connect, _ := p.Lookup("connect-src")
	assert.Contains(t, connect, "wss://events.example")

	_, ok = p.Lookup("worker-src")
	assert.False(t, ok)
}

func TestMiddlewareSetsHeader(t *testing.T) {
	h := Middleware(DefaultPolicy(Sources{}), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/anything", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, wantDefault, rr.Header().Get(HeaderName))
}
