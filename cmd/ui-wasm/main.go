//go:build js && wasm

package main

import "github.com/Its-donkey/multistream/internal/ui/wasm"

func main() {
	wasm.RunApp()
}
