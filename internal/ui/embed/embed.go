// Package embed builds third-party player URLs and the control messages
// posted into those players.
package embed

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/Its-donkey/multistream/internal/ui/model"
)

const (
	twitchPlayer = "https://player.twitch.tv"
	kickPlayer   = "https://player.kick.com"

	// AnyOrigin is the postMessage wildcard target.
	AnyOrigin = "*"
)

// Command is the verb understood by the embedded players.
type Command string

const (
	CommandMute   Command = "mute"
	CommandUnmute Command = "unmute"
)

// Message is posted to the player frame.
type Message struct {
	Command Command `json:"command"`
}

// MuteMessage returns the message enforcing the given mute state.
func MuteMessage(muted bool) Message {
	if muted {
		return Message{Command: CommandMute}
	}
	return Message{Command: CommandUnmute}
}

// JSON encodes the message for logging and for the browser bridge.
func (m Message) JSON() string {
	data, err := json.Marshal(m)
	if err != nil {
		return ""
	}
	return string(data)
}

// URL returns the player address for stream. Twitch requires every host
// allowed to embed the player as a repeated parent parameter. Unknown
// platforms produce an empty, inert reference.
func URL(stream model.Stream, parents []string) string {
	switch stream.Platform {
	case model.PlatformTwitch:
		var b strings.Builder
		b.WriteString(twitchPlayer)
		b.WriteString("/?channel=")
		b.WriteString(url.QueryEscape(stream.Channel))
		for _, parent := range parents {
			b.WriteString("&parent=")
			b.WriteString(url.QueryEscape(parent))
		}
		return b.String()
	case model.PlatformKick:
		return kickPlayer + "/" + url.PathEscape(stream.Channel)
	default:
		return ""
	}
}

// ProviderOrigin is the origin serving a platform's player.
func ProviderOrigin(platform model.Platform) string {
	switch platform {
	case model.PlatformTwitch:
		return twitchPlayer
	case model.PlatformKick:
		return kickPlayer
	default:
		return ""
	}
}

// TargetOrigin picks the postMessage target. Messages go to any origin
// unless restrict is set, in which case they only reach the provider.
func TargetOrigin(platform model.Platform, restrict bool) string {
	if !restrict {
		return AnyOrigin
	}
	if origin := ProviderOrigin(platform); origin != "" {
		return origin
	}
	return AnyOrigin
}

// WithHost appends host to parents unless it is already listed or empty.
func WithHost(parents []string, host string) []string {
	out := make([]string, 0, len(parents)+1)
	seen := make(map[string]struct{}, len(parents)+1)
	for _, p := range parents {
		p = model.NormalizeHost(p)
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	if host = model.NormalizeHost(host); host != "" {
		if _, dup := seen[host]; !dup {
			out = append(out, host)
		}
	}
	return out
}
