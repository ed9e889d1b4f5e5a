package forms

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Its-donkey/multistream/internal/ui/model"
)

// ErrUnrecognized is returned when an input names neither a supported
// provider URL nor a bare channel.
var ErrUnrecognized = errors.New("unrecognized stream reference")

// ParseError carries the rejected input alongside ErrUnrecognized.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	if e == nil {
		return ErrUnrecognized.Error()
	}
	return fmt.Sprintf("%s: %q", ErrUnrecognized, e.Input)
}

// Unwrap lets errors.Is match ErrUnrecognized.
func (e *ParseError) Unwrap() error { return ErrUnrecognized }

var (
	twitchPattern = regexp.MustCompile(`twitch\.tv/([a-zA-Z0-9_]+)`)
	kickPattern   = regexp.MustCompile(`kick\.com/([a-zA-Z0-9_]+)`)
)

// ParseStreamURL maps free text onto a platform/channel pair.
//
// A twitch.tv or kick.com path wins wherever it appears in the input. Anything
// without a slash is taken verbatim as a Twitch channel name.
func ParseStreamURL(raw string) (model.ChannelRef, error) {
	if m := twitchPattern.FindStringSubmatch(raw); m != nil {
		return model.ChannelRef{Platform: model.PlatformTwitch, Channel: m[1]}, nil
	}
	if m := kickPattern.FindStringSubmatch(raw); m != nil {
		return model.ChannelRef{Platform: model.PlatformKick, Channel: m[1]}, nil
	}
	if raw != "" && !strings.Contains(raw, "/") {
		return model.ChannelRef{Platform: model.PlatformTwitch, Channel: raw}, nil
	}
	return model.ChannelRef{}, &ParseError{Input: raw}
}

// ChannelURL returns the public channel page for a parsed reference.
func ChannelURL(ref model.ChannelRef) string {
	switch ref.Platform {
	case model.PlatformTwitch:
		return "https://www.twitch.tv/" + ref.Channel
	case model.PlatformKick:
		return "https://kick.com/" + ref.Channel
	default:
		return ""
	}
}
