//go:build js && wasm

package wasm

import (
	"strconv"
	"syscall/js"

	"github.com/Its-donkey/multistream/internal/ui/model"
	"github.com/Its-donkey/multistream/internal/ui/view"
	"github.com/Its-donkey/multistream/internal/ui/window"
)

// mountedWindow pairs a controller with its DOM node.
type mountedWindow struct {
	win   *window.Window
	el    js.Value
	frame *jsFrame
}

func (a *app) windowOptions() window.Options {
	return window.Options{
		Parents:        a.parents,
		RestrictOrigin: a.restrict,
		OnToggleMute:   a.view.Registry.Toggle,
		OnRemove:       func(id string) { a.view.Registry.Remove(id) },
	}
}

// adopt takes over windows the host already rendered so their players are
// not reloaded. Nodes that do not match the registry are dropped.
func (a *app) adopt() {
	nodes := a.grid.Call("querySelectorAll", ".stream-window")
	for i := 0; i < nodes.Length(); i++ {
		el := nodes.Index(i)
		id := el.Get("dataset").Get("id").String()
		stream, ok := a.view.Registry.Get(id)
		if !ok || el.Get("dataset").Get("key").String() != window.Key(stream) {
			el.Call("remove")
			continue
		}
		a.attach(stream, el)
	}
}

// render reconciles the grid with streams by id. Existing windows are
// updated in place; only a changed embed key reloads a player.
func (a *app) render(streams []model.Stream) {
	keep := make(map[string]struct{}, len(streams))
	for _, s := range streams {
		keep[s.ID] = struct{}{}
	}
	for id, mounted := range a.windows {
		if _, ok := keep[id]; ok {
			continue
		}
		mounted.win.Unmount()
		mounted.frame.release()
		mounted.el.Call("remove")
		delete(a.windows, id)
	}

	for _, s := range streams {
		mounted, ok := a.windows[s.ID]
		if !ok {
			a.mount(s)
			continue
		}
		if mounted.win.Update(s) {
			a.rebuild(mounted)
		}
		syncHeader(mounted.el, s)
	}

	empty := len(streams) == 0
	setHidden(a.grid, empty)
	setHidden(a.emptyState, !empty)
}

func (a *app) mount(s model.Stream) {
	el, ok := a.renderWindow(s)
	if !ok {
		return
	}
	a.grid.Call("appendChild", el)
	a.attach(s, el)
}

func (a *app) attach(s model.Stream, el js.Value) {
	win := window.New(s, a.windowOptions())
	frame := newFrame(el, win)
	a.windows[s.ID] = &mountedWindow{win: win, el: el, frame: frame}
	win.Mount(frame, a.watcher)
}

func (a *app) rebuild(mounted *mountedWindow) {
	el, ok := a.renderWindow(mounted.win.Stream())
	if !ok {
		return
	}
	mounted.frame.release()
	mounted.el.Call("replaceWith", el)
	mounted.el = el
	mounted.frame = newFrame(el, mounted.win)
	mounted.win.AttachFrame(mounted.frame)
}

func (a *app) renderWindow(s model.Stream) (js.Value, bool) {
	html, err := a.renderer.WindowHTML(view.NewWindow(s, a.parents))
	if err != nil {
		consoleError(err.Error())
		return js.Value{}, false
	}
	tmpl := Document.Call("createElement", "template")
	tmpl.Set("innerHTML", html)
	el := tmpl.Get("content").Get("firstElementChild")
	return el, el.Truthy()
}

func syncHeader(el js.Value, s model.Stream) {
	button := el.Call("querySelector", `[data-action="mute"]`)
	if !button.Truthy() {
		return
	}
	button.Call("setAttribute", "data-muted", strconv.FormatBool(s.Muted))
	button.Call("setAttribute", "title", s.MuteTitle())
}
