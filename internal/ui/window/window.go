// Package window controls a single embedded player on the stream wall.
//
// A Window never touches the DOM directly. The browser bridge hands it a
// Frame for the player iframe and a FullscreenWatcher for the document, which
// keeps the controller testable outside a browser.
package window

//go:generate mockgen -source=window.go -destination=../../mocks/mock_window.go -package=mocks

import (
	"github.com/Its-donkey/multistream/internal/ui/embed"
	"github.com/Its-donkey/multistream/internal/ui/model"
)

// Frame is the embedded player. Messages are one-way and unacknowledged.
type Frame interface {
	PostMessage(msg embed.Message, targetOrigin string)
	RequestFullscreen() error
}

// FullscreenWatcher delivers document-level fullscreen changes. The returned
// function removes the listener.
type FullscreenWatcher interface {
	OnFullscreenChange(fn func(active bool)) (release func())
}

// Options wires a Window to its surroundings.
type Options struct {
	Parents        []string
	RestrictOrigin bool
	OnToggleMute   func(id string)
	OnRemove       func(id string)
}

// Window is the controller behind one grid cell. It is driven from the UI
// event loop and is not safe for concurrent use.
type Window struct {
	stream     model.Stream
	opts       Options
	frame      Frame
	release    func()
	fullscreen bool
}

// New constructs a Window for stream.
func New(stream model.Stream, opts Options) *Window {
	return &Window{stream: stream, opts: opts}
}

// Stream returns the stream currently rendered.
func (w *Window) Stream() model.Stream { return w.stream }

// EmbedURL is the player address for the current stream.
func (w *Window) EmbedURL() string {
	return embed.URL(w.stream, w.opts.Parents)
}

// EmbedKey identifies the player instance. The iframe has to be rebuilt
// whenever it changes because the players cannot switch channels in place.
func (w *Window) EmbedKey() string {
	return Key(w.stream)
}

// Key is the embed identity of stream.
func Key(stream model.Stream) string {
	return stream.ID + "-" + stream.Channel
}

// Mount attaches the frame, registers the fullscreen listener and pushes the
// current mute state into the player.
func (w *Window) Mount(frame Frame, watcher FullscreenWatcher) {
	w.Unmount()
	w.frame = frame
	if watcher != nil {
		w.release = watcher.OnFullscreenChange(func(active bool) {
			w.fullscreen = active
		})
	}
	w.sendMute()
}

// AttachFrame swaps in a rebuilt player frame and re-sends the mute state.
func (w *Window) AttachFrame(frame Frame) {
	w.frame = frame
	w.sendMute()
}

// Unmount removes the fullscreen listener. It is safe to call more than once.
func (w *Window) Unmount() {
	if w.release != nil {
		w.release()
		w.release = nil
	}
	w.fullscreen = false
}

// Update replaces the rendered stream. It reports whether the embed must be
// recreated; otherwise a changed mute flag is forwarded to the player.
func (w *Window) Update(next model.Stream) (rebuild bool) {
	prev := w.stream
	w.stream = next
	if Key(prev) != Key(next) || prev.Platform != next.Platform {
		return true
	}
	if prev.Muted != next.Muted {
		w.sendMute()
	}
	return false
}

// ToggleMute forwards the mute intent upward.
func (w *Window) ToggleMute() {
	if w.opts.OnToggleMute != nil {
		w.opts.OnToggleMute(w.stream.ID)
	}
}

// Remove forwards the remove intent upward.
func (w *Window) Remove() {
	if w.opts.OnRemove != nil {
		w.opts.OnRemove(w.stream.ID)
	}
}

// ToggleFullscreen asks for fullscreen on this player only. A request the
// browser denies leaves the window as it was. Leaving fullscreen is handled
// by the browser and reported through the watcher.
func (w *Window) ToggleFullscreen() bool {
	if w.fullscreen || w.frame == nil {
		return w.fullscreen
	}
	if err := w.frame.RequestFullscreen(); err != nil {
		return false
	}
	w.fullscreen = true
	return true
}

// DenyFullscreen rolls back a request the browser rejected after
// ToggleFullscreen returned.
func (w *Window) DenyFullscreen() {
	w.fullscreen = false
}

// Fullscreen reports the tracked fullscreen state.
func (w *Window) Fullscreen() bool { return w.fullscreen }

func (w *Window) sendMute() {
	if w.frame == nil {
		return
	}
	w.frame.PostMessage(
		embed.MuteMessage(w.stream.Muted),
		embed.TargetOrigin(w.stream.Platform, w.opts.RestrictOrigin),
	)
}
