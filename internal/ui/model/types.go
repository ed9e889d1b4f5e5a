package model

import "strings"

// Platform identifies the provider hosting a live channel.
type Platform string

const (
	// PlatformTwitch is the Twitch player.
	PlatformTwitch Platform = "twitch"
	// PlatformKick is the Kick player.
	PlatformKick Platform = "kick"
)

// Valid reports whether p is one of the supported providers.
func (p Platform) Valid() bool {
	return p == PlatformTwitch || p == PlatformKick
}

// Stream is one entry of the viewer grid.
type Stream struct {
	ID       string   `json:"id"`
	Platform Platform `json:"platform"`
	Channel  string   `json:"channel"`
	Muted    bool     `json:"muted"`
}

// ChannelRef is the parsed form of a user supplied stream reference.
type ChannelRef struct {
	Platform Platform `json:"platform"`
	Channel  string   `json:"channel"`
}

// Label renders the "<platform> - <channel>" header shown above an embed.
func (s Stream) Label() string {
	return string(s.Platform) + " - " + s.Channel
}

// FrameTitle is the accessible title of the embedded player.
func (s Stream) FrameTitle() string {
	return string(s.Platform) + " stream - " + s.Channel
}

// IndicatorClass maps the platform onto the coloured status dot.
func (s Stream) IndicatorClass() string {
	switch s.Platform {
	case PlatformTwitch:
		return "indicator-twitch"
	case PlatformKick:
		return "indicator-kick"
	default:
		return "indicator-unknown"
	}
}

// MuteTitle is the tooltip of the volume button.
func (s Stream) MuteTitle() string {
	if s.Muted {
		return "Unmute"
	}
	return "Mute"
}

// CountUnmuted returns how many streams are currently audible.
func CountUnmuted(streams []Stream) int {
	n := 0
	for _, s := range streams {
		if !s.Muted {
			n++
		}
	}
	return n
}

// BootPayload is served to the WASM client so it can hydrate the grid.
type BootPayload struct {
	Streams        []Stream `json:"streams"`
	Columns        int      `json:"columns"`
	Parents        []string `json:"parents"`
	RestrictOrigin bool     `json:"restrictOrigin"`
}

// ParseResponse is the JSON body of the parse endpoint.
type ParseResponse struct {
	Platform Platform `json:"platform,omitempty"`
	Channel  string   `json:"channel,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// ColumnOption is one entry of the grid size select.
type ColumnOption struct {
	Value    int
	Label    string
	Selected bool
}

// DefaultRoster is the list of channel inputs shown on first load.
var DefaultRoster = []string{
	"twitch.tv/mikars",
	"twitch.tv/alfie",
	"twitch.tv/muts",
	"twitch.tv/mmorpg",
	"twitch.tv/purpp",
	"twitch.tv/coxie",
	"twitch.tv/verf",
	"kick.com/rhys",
	"kick.com/sick_nerd",
	"kick.com/odablock",
}

// DefaultParents are the hosts the Twitch player accepts when nothing else is
// configured.
var DefaultParents = []string{"localhost"}

// NormalizeHost lowercases a hostname and strips any port.
func NormalizeHost(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	if strings.HasPrefix(host, "[") {
		if end := strings.Index(host, "]"); end > 0 {
			return host[1:end]
		}
	}
	if idx := strings.LastIndex(host, ":"); idx >= 0 && strings.Count(host, ":") == 1 {
		host = host[:idx]
	}
	return host
}
