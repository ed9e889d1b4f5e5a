package window_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Its-donkey/multistream/internal/mocks"
	"github.com/Its-donkey/multistream/internal/ui/embed"
	"github.com/Its-donkey/multistream/internal/ui/model"
	"github.com/Its-donkey/multistream/internal/ui/window"
)

var muteMsg = embed.Message{Command: embed.CommandMute}
var unmuteMsg = embed.Message{Command: embed.CommandUnmute}

func twitchStream() model.Stream {
	return model.Stream{ID: "1", Platform: model.PlatformTwitch, Channel: "mikars", Muted: true}
}

// watcher records the listener handed to it so tests can fire fullscreen changes.
type watcher struct {
	listener func(bool)
	released int
}

func expectWatcher(ctrl *gomock.Controller) (*mocks.MockFullscreenWatcher, *watcher) {
	w := &watcher{}
	m := mocks.NewMockFullscreenWatcher(ctrl)
	m.EXPECT().OnFullscreenChange(gomock.Any()).DoAndReturn(func(fn func(bool)) func() {
		w.listener = fn
		return func() { w.released++ }
	})
	return m, w
}

func TestMountSendsCurrentMuteState(t *testing.T) {
	ctrl := gomock.NewController(t)
	frame := mocks.NewMockFrame(ctrl)
	fs, _ := expectWatcher(ctrl)

	frame.EXPECT().PostMessage(muteMsg, "*").Times(1)

	w := window.New(twitchStream(), window.Options{})
	w.Mount(frame, fs)
}

func TestUpdateSendsMessageOnlyWhenMuteChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	frame := mocks.NewMockFrame(ctrl)
	fs, _ := expectWatcher(ctrl)

	gomock.InOrder(
		frame.EXPECT().PostMessage(muteMsg, "*"),
		frame.EXPECT().PostMessage(unmuteMsg, "*"),
		frame.EXPECT().PostMessage(muteMsg, "*"),
	)

	stream := twitchStream()
	w := window.New(stream, window.Options{})
	w.Mount(frame, fs)

	assert.False(t, w.Update(stream), "same state sends nothing")

	stream.Muted = false
	assert.False(t, w.Update(stream))

	stream.Muted = true
	assert.False(t, w.Update(stream))
}

func TestRestrictedOriginTargetsProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	frame := mocks.NewMockFrame(ctrl)

	frame.EXPECT().PostMessage(muteMsg, "https://player.kick.com")

	w := window.New(model.Stream{ID: "2", Platform: model.PlatformKick, Channel: "rhys", Muted: true}, window.Options{RestrictOrigin: true})
	w.Mount(frame, nil)
}

func TestUpdateRequestsRebuildWhenChannelChanges(t *testing.T) {
	stream := twitchStream()
	w := window.New(stream, window.Options{Parents: []string{"localhost"}})
	assert.Equal(t, "1-mikars", w.EmbedKey())

	stream.Channel = "alfie"
	assert.True(t, w.Update(stream))
	assert.Equal(t, "1-alfie", w.EmbedKey())
	assert.Equal(t, "https://player.twitch.tv/?channel=alfie&parent=localhost", w.EmbedURL())
}

func TestAttachFrameResendsState(t *testing.T) {
	ctrl := gomock.NewController(t)
	rebuilt := mocks.NewMockFrame(ctrl)
	rebuilt.EXPECT().PostMessage(unmuteMsg, "*")

	stream := twitchStream()
	stream.Muted = false
	w := window.New(stream, window.Options{})
	w.AttachFrame(rebuilt)
}

func TestFullscreenListenerScopedToMount(t *testing.T) {
	ctrl := gomock.NewController(t)
	frame := mocks.NewMockFrame(ctrl)
	frame.EXPECT().PostMessage(gomock.Any(), gomock.Any()).AnyTimes()
	fs, rec := expectWatcher(ctrl)

	w := window.New(twitchStream(), window.Options{})
	w.Mount(frame, fs)
	require.NotNil(t, rec.listener)

	rec.listener(true)
	assert.True(t, w.Fullscreen())
	rec.listener(false)
	assert.False(t, w.Fullscreen())

	w.Unmount()
	w.Unmount()
	assert.Equal(t, 1, rec.released)
}

func TestRemountReleasesPreviousListener(t *testing.T) {
	ctrl := gomock.NewController(t)
	frame := mocks.NewMockFrame(ctrl)
	frame.EXPECT().PostMessage(gomock.Any(), gomock.Any()).AnyTimes()
	first, firstRec := expectWatcher(ctrl)
	second, secondRec := expectWatcher(ctrl)

	w := window.New(twitchStream(), window.Options{})
	w.Mount(frame, first)
	w.Mount(frame, second)

	assert.Equal(t, 1, firstRec.released)
	assert.Equal(t, 0, secondRec.released)
}

func TestToggleFullscreen(t *testing.T) {
	ctrl := gomock.NewController(t)
	frame := mocks.NewMockFrame(ctrl)
	frame.EXPECT().PostMessage(gomock.Any(), gomock.Any()).AnyTimes()
	frame.EXPECT().RequestFullscreen().Return(nil).Times(1)
	fs, rec := expectWatcher(ctrl)

	w := window.New(twitchStream(), window.Options{})
	w.Mount(frame, fs)

	assert.True(t, w.ToggleFullscreen())
	assert.True(t, w.ToggleFullscreen(), "already fullscreen, no second request")

	rec.listener(false)
	assert.False(t, w.Fullscreen())
}

func TestToggleFullscreenDenied(t *testing.T) {
	ctrl := gomock.NewController(t)
	frame := mocks.NewMockFrame(ctrl)
	frame.EXPECT().PostMessage(gomock.Any(), gomock.Any()).AnyTimes()
	frame.EXPECT().RequestFullscreen().Return(errors.New("permission denied"))

	w := window.New(twitchStream(), window.Options{})
	w.Mount(frame, nil)

	assert.False(t, w.ToggleFullscreen())
	assert.False(t, w.Fullscreen())
}

func TestDenyFullscreenAllowsRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	frame := mocks.NewMockFrame(ctrl)
	frame.EXPECT().PostMessage(gomock.Any(), gomock.Any()).AnyTimes()
	frame.EXPECT().RequestFullscreen().Return(nil).Times(2)

	w := window.New(twitchStream(), window.Options{})
	w.Mount(frame, nil)

	require.True(t, w.ToggleFullscreen())
	w.DenyFullscreen()
	assert.False(t, w.Fullscreen())
	assert.True(t, w.ToggleFullscreen())
}

func TestToggleFullscreenWithoutFrame(t *testing.T) {
	w := window.New(twitchStream(), window.Options{})
	assert.False(t, w.ToggleFullscreen())
}

func TestIntentsCarryStreamID(t *testing.T) {
	var muted, removed []string
	w := window.New(twitchStream(), window.Options{
		OnToggleMute: func(id string) { muted = append(muted, id) },
		OnRemove:     func(id string) { removed = append(removed, id) },
	})

	w.ToggleMute()
	w.Remove()

	assert.Equal(t, []string{"1"}, muted)
	assert.Equal(t, []string{"1"}, removed)

	silent := window.New(twitchStream(), window.Options{})
	silent.ToggleMute()
	silent.Remove()
}

func TestUnknownPlatformEmbedIsInert(t *testing.T) {
	w := window.New(model.Stream{ID: "x", Platform: "vimeo", Channel: "c"}, window.Options{})
	assert.Empty(t, w.EmbedURL())
}
