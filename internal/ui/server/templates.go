package server

import (
	"bytes"
	"net/http"

	"github.com/Its-donkey/multistream/internal/ui/view"
)

// loadTemplates parses the page and window templates shared with the WASM client.
func loadTemplates() (*view.Renderer, error) {
	return view.New()
}

// renderPage buffers the page so a template failure never leaves a partial
// document on the wire.
func (s *server) renderPage(w http.ResponseWriter, r *http.Request, page view.Page) {
	var buf bytes.Buffer
	if err := s.renderer.RenderPage(&buf, page); err != nil {
		s.logf(r, "render page: %v", err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
