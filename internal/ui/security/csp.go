// Package security holds the Content-Security-Policy served with the viewer.
package security

import (
	"net/http"
	"strings"
)

// HeaderName is the response header carrying the policy.
const HeaderName = "Content-Security-Policy"

// Directive is one policy entry such as "frame-src 'self' https://*.twitch.tv".
type Directive struct {
	Name    string
	Sources []string
}

// Policy is an ordered set of directives.
type Policy struct {
	Directives []Directive
}

// Sources are additional origins appended to the default policy.
type Sources struct {
	Script  []string
	Frame   []string
	Connect []string
}

const (
	self         = "'self'"
	twitchAll    = "https://*.twitch.tv"
	kickAll      = "https://*.kick.com"
	kickApex     = "https://kick.com"
	cfInsights   = "https://*.cloudflareinsights.com"
	unsafeEval   = "'unsafe-eval'"
	unsafeInline = "'unsafe-inline'"
)

// DefaultPolicy allows the page to load itself plus the Twitch and Kick
// players, the Cloudflare analytics beacon, and only lets the page be framed
// by itself or the two providers.
func DefaultPolicy(extra Sources) Policy {
	return Policy{Directives: []Directive{
		{Name: "default-src", Sources: []string{self}},
		{Name: "script-src", Sources: concat([]string{self, unsafeEval, unsafeInline, twitchAll, kickAll, cfInsights}, extra.Script)},
		{Name: "style-src", Sources: []string{self, unsafeInline}},
		{Name: "frame-src", Sources: concat([]string{self, twitchAll, kickAll, kickApex}, extra.Frame)},
		{Name: "connect-src", Sources: concat([]string{self, twitchAll, kickAll, cfInsights}, extra.Connect)},
		{Name: "img-src", Sources: []string{self, "data:", "https://*"}},
		{Name: "frame-ancestors", Sources: []string{self, twitchAll, kickAll}},
	}}
}

// String renders the header value. Each directive is terminated by a
// semicolon and directives are separated by a single space.
func (p Policy) String() string {
	var b strings.Builder
	for i, d := range p.Directives {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(d.Name)
		for _, src := range d.Sources {
			b.WriteByte(' ')
			b.WriteString(src)
		}
		b.WriteByte(';')
	}
	return b.String()
}

// Lookup returns the sources of the named directive.
func (p Policy) Lookup(name string) ([]string, bool) {
	for _, d := range p.Directives {
		if d.Name == name {
			return d.Sources, true
		}
	}
	return nil, false
}

// Middleware sets the policy header on every response.
func Middleware(policy Policy, next http.Handler) http.Handler {
	value := policy.String()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(HeaderName, value)
		next.ServeHTTP(w, r)
	})
}

func concat(base, extra []string) []string {
	out := make([]string, 0, len(base)+len(extra))
	seen := make(map[string]struct{}, len(base)+len(extra))
	for _, src := range append(base, extra...) {
		src = strings.TrimSpace(src)
		if src == "" {
			continue
		}
		if _, dup := seen[src]; dup {
			continue
		}
		seen[src] = struct{}{}
		out = append(out, src)
	}
	return out
}
