//go:build js && wasm

package wasm

import (
	"fmt"
	"strconv"
	"syscall/js"

	"github.com/Its-donkey/multistream/internal/ui/embed"
	"github.com/Its-donkey/multistream/internal/ui/layout"
	"github.com/Its-donkey/multistream/internal/ui/model"
	"github.com/Its-donkey/multistream/internal/ui/state"
	"github.com/Its-donkey/multistream/internal/ui/view"
)

// Document references the global browser document for DOM interactions.
var Document js.Value

type app struct {
	view     *state.View
	renderer *view.Renderer
	parents  []string
	restrict bool

	grid         js.Value
	emptyState   js.Value
	addPanel     js.Value
	addInput     js.Value
	addError     js.Value
	columnSelect js.Value

	windows     map[string]*mountedWindow
	watcher     documentWatcher
	handlers    []js.Func
	unsubscribe func()
}

func newApp(boot model.BootPayload) (*app, error) {
	renderer, err := view.New()
	if err != nil {
		return nil, err
	}
	registry := state.NewRegistry()
	if err := registry.Load(boot.Streams); err != nil {
		warn("discarding invalid stream list", err.Error())
	}

	columns := boot.Columns
	if !layout.InRange(columns) {
		columns = layout.DefaultColumns
	}

	a := &app{
		view:         state.NewView(registry, columns),
		renderer:     renderer,
		parents:      embed.WithHost(boot.Parents, js.Global().Get("location").Get("hostname").String()),
		restrict:     boot.RestrictOrigin,
		grid:         byID("stream-grid"),
		emptyState:   byID("empty-state"),
		addPanel:     byID("add-panel"),
		addInput:     byID("add-input"),
		addError:     byID("add-error"),
		columnSelect: byID("column-select"),
		windows:      make(map[string]*mountedWindow),
		watcher:      documentWatcher{doc: Document},
	}
	if !a.grid.Truthy() {
		return nil, fmt.Errorf("stream grid missing")
	}
	return a, nil
}

// bind wires the controls, adopts the server rendered windows and starts
// following the registry.
func (a *app) bind() {
	a.on(byID("add-toggle"), "click", func(js.Value) {
		a.view.AddForm.Toggle()
		a.syncAddPanel()
	})
	a.on(byID("add-cancel"), "click", func(js.Value) {
		a.view.AddForm.Cancel()
		a.syncAddPanel()
	})
	a.on(byID("empty-add"), "click", func(js.Value) {
		a.view.AddForm.Open()
		a.syncAddPanel()
	})
	a.on(byID("add-form"), "submit", func(event js.Value) {
		event.Call("preventDefault")
		a.view.AddForm.Input = a.addInput.Get("value").String()
		a.view.SubmitAddForm()
		a.syncAddPanel()
	})
	a.on(byID("column-form"), "submit", func(event js.Value) {
		event.Call("preventDefault")
	})
	a.on(a.columnSelect, "change", func(js.Value) {
		n, err := strconv.Atoi(a.columnSelect.Get("value").String())
		if err != nil || !layout.InRange(n) {
			return
		}
		a.view.SetColumns(n)
		a.syncColumns()
	})
	a.on(a.grid, "click", a.handleGridClick)

	a.adopt()
	a.render(a.view.Registry.Snapshot())
	a.syncColumns()
	a.syncAddPanel()
	a.unsubscribe = a.view.Registry.Subscribe(a.render)
}

func (a *app) on(target js.Value, event string, fn func(js.Value)) {
	if !target.Truthy() {
		return
	}
	handler := js.FuncOf(func(this js.Value, args []js.Value) any {
		var ev js.Value
		if len(args) > 0 {
			ev = args[0]
		}
		fn(ev)
		return nil
	})
	a.handlers = append(a.handlers, handler)
	target.Call("addEventListener", event, handler)
}

func (a *app) handleGridClick(event js.Value) {
	target := event.Get("target")
	if !target.Truthy() || target.Get("closest").Type() != js.TypeFunction {
		return
	}
	button := target.Call("closest", "[data-action]")
	if !button.Truthy() {
		return
	}
	article := button.Call("closest", ".stream-window")
	if !article.Truthy() {
		return
	}
	mounted, ok := a.windows[article.Get("dataset").Get("id").String()]
	if !ok {
		return
	}
	switch button.Get("dataset").Get("action").String() {
	case "mute":
		mounted.win.ToggleMute()
	case "fullscreen":
		mounted.win.ToggleFullscreen()
	case "remove":
		mounted.win.Remove()
	}
}

func (a *app) syncAddPanel() {
	form := a.view.AddForm
	setHidden(a.addPanel, !form.Visible)
	if a.addInput.Truthy() {
		a.addInput.Set("value", form.Input)
		if form.Visible {
			a.addInput.Call("focus")
		}
	}
	if a.addError.Truthy() {
		a.addError.Set("textContent", form.Error)
		setHidden(a.addError, form.Error == "")
	}
}

func (a *app) syncColumns() {
	a.grid.Get("style").Set("gridTemplateColumns", string(a.view.Grid()))
	if a.columnSelect.Truthy() {
		a.columnSelect.Set("value", strconv.Itoa(a.view.Columns))
	}
}

func byID(id string) js.Value {
	return Document.Call("getElementById", id)
}

func setHidden(el js.Value, hidden bool) {
	if el.Truthy() {
		el.Set("hidden", hidden)
	}
}
