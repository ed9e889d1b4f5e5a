//go:build js && wasm

package wasm

import (
	"context"
	"syscall/js"
	"time"

	"github.com/Its-donkey/multistream/internal/ui/streamers"
)

// RunApp bootstraps the viewer and blocks forever.
func RunApp() {
	done := make(chan struct{})
	Document = js.Global().Get("document")

	ctx, cancel := context.WithTimeout(context.Background(), 8*time.Second)
	columns := streamers.ColumnsFromSearch(js.Global().Get("location").Get("search").String())
	boot, err := streamers.FetchBoot(ctx, columns)
	cancel()
	if err != nil {
		warn("failed to load streams, using built-in roster", err.Error())
	}

	app, err := newApp(boot)
	if err != nil {
		consoleError("viewer failed to start", err.Error())
		return
	}
	app.bind()
	<-done
}

func warn(args ...any) {
	if console := js.Global().Get("console"); console.Truthy() {
		console.Call("warn", args...)
	}
}

func consoleError(args ...any) {
	if console := js.Global().Get("console"); console.Truthy() {
		console.Call("error", args...)
	}
}
