package embed

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Its-donkey/multistream/internal/ui/model"
)

func TestURL(t *testing.T) {
	cases := []struct {
		name    string
		stream  model.Stream
		parents []string
		want    string
	}{
		{
			name:    "twitch with parents",
			stream:  model.Stream{Platform: model.PlatformTwitch, Channel: "mikars"},
			parents: []string{"localhost", "claude.ai"},
			want:    "https://player.twitch.tv/?channel=mikars&parent=localhost&parent=claude.ai",
		},
		{
			name:   "twitch without parents",
			stream: model.Stream{Platform: model.PlatformTwitch, Channel: "verf"},
			want:   "https://player.twitch.tv/?channel=verf",
		},
		{
			name:    "twitch escapes channel",
			stream:  model.Stream{Platform: model.PlatformTwitch, Channel: "not a url"},
			parents: []string{"localhost"},
			want:    "https://player.twitch.tv/?channel=not+a+url&parent=localhost",
		},
		{
			name:    "kick ignores parents",
			stream:  model.Stream{Platform: model.PlatformKick, Channel: "odablock"},
			parents: []string{"localhost"},
			want:    "https://player.kick.com/odablock",
		},
		{
			name:   "unknown platform is inert",
			stream: model.Stream{Platform: "youtube", Channel: "x"},
			want:   "",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, URL(tc.stream, tc.parents))
		})
	}
}

func TestMuteMessage(t *testing.T) {
	assert.Equal(t, `{"command":"mute"}`, MuteMessage(true).JSON())
	assert.Equal(t, `{"command":"unmute"}`, MuteMessage(false).JSON())
}

func TestTargetOrigin(t *testing.T) {
	assert.Equal(t, "*", TargetOrigin(model.PlatformTwitch, false))
	assert.Equal(t, "https://player.twitch.tv", TargetOrigin(model.PlatformTwitch, true))
	assert.Equal(t, "https://player.kick.com", TargetOrigin(model.PlatformKick, true))
	assert.Equal(t, "*", TargetOrigin("other", true))
}

func TestWithHost(t *testing.T) {
	assert.Equal(t, []string{"localhost", "viewer.example"}, WithHost([]string{"localhost"}, "viewer.example:8080"))
	assert.Equal(t, []string{"localhost"}, WithHost([]string{"LOCALHOST", "localhost"}, "localhost:4173"))
	assert.Equal(t, []string{"localhost"}, WithHost([]string{"localhost", " "}, ""))
	assert.Equal(t, []string{"::1"}, WithHost(nil, "[::1]:4173"))
}
