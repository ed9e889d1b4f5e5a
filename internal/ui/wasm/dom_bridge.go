//go:build js && wasm

package wasm

import (
	"errors"
	"sync"
	"syscall/js"

	"github.com/Its-donkey/multistream/internal/ui/embed"
	"github.com/Its-donkey/multistream/internal/ui/window"
)

var errFullscreenUnsupported = errors.New("fullscreen not supported")

// jsFrame adapts a player iframe to window.Frame.
type jsFrame struct {
	iframe js.Value
	win    *window.Window
	onLoad js.Func
}

// newFrame binds the iframe inside el. The mute state is re-sent whenever the
// player finishes loading since messages posted earlier are lost.
func newFrame(el js.Value, win *window.Window) *jsFrame {
	f := &jsFrame{iframe: el.Call("querySelector", "iframe"), win: win}
	if f.iframe.Truthy() {
		f.onLoad = js.FuncOf(func(this js.Value, args []js.Value) any {
			f.win.AttachFrame(f)
			return nil
		})
		f.iframe.Call("addEventListener", "load", f.onLoad)
	}
	return f
}

func (f *jsFrame) PostMessage(msg embed.Message, targetOrigin string) {
	if !f.iframe.Truthy() {
		return
	}
	target := f.iframe.Get("contentWindow")
	if !target.Truthy() {
		return
	}
	payload := js.Global().Get("Object").New()
	payload.Set("command", string(msg.Command))
	target.Call("postMessage", payload, targetOrigin)
}

func (f *jsFrame) RequestFullscreen() error {
	if !f.iframe.Truthy() || f.iframe.Get("requestFullscreen").Type() != js.TypeFunction {
		return errFullscreenUnsupported
	}
	promise := f.iframe.Call("requestFullscreen")
	if promise.Type() != js.TypeObject {
		return nil
	}
	var resolved, rejected js.Func
	done := func() {
		resolved.Release()
		rejected.Release()
	}
	resolved = js.FuncOf(func(this js.Value, args []js.Value) any {
		done()
		return nil
	})
	rejected = js.FuncOf(func(this js.Value, args []js.Value) any {
		f.win.DenyFullscreen()
		done()
		return nil
	})
	promise.Call("then", resolved, rejected)
	return nil
}

func (f *jsFrame) release() {
	if f == nil || f.onLoad.Type() == js.TypeUndefined {
		return
	}
	f.iframe.Call("removeEventListener", "load", f.onLoad)
	f.onLoad.Release()
	f.onLoad = js.Func{}
}

// documentWatcher reports document fullscreen changes to a window.
type documentWatcher struct {
	doc js.Value
}

func (d documentWatcher) OnFullscreenChange(fn func(active bool)) func() {
	handler := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn(d.doc.Get("fullscreenElement").Truthy())
		return nil
	})
	d.doc.Call("addEventListener", "fullscreenchange", handler)

	var once sync.Once
	return func() {
		once.Do(func() {
			d.doc.Call("removeEventListener", "fullscreenchange", handler)
			handler.Release()
		})
	}
}
