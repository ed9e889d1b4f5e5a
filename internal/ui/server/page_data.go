package server

import (
	"net/http"

	"github.com/Its-donkey/multistream/internal/ui/embed"
	"github.com/Its-donkey/multistream/internal/ui/model"
	"github.com/Its-donkey/multistream/internal/ui/state"
	"github.com/Its-donkey/multistream/internal/ui/view"
)

// parentsFor adds the requesting host to the configured Twitch parents so the
// player accepts the page wherever it is served from.
func (s *server) parentsFor(r *http.Request) []string {
	host := ""
	if r != nil {
		host = r.Host
	}
	return embed.WithHost(s.parents, host)
}

func (s *server) buildPage(r *http.Request, columns int) view.Page {
	v := state.NewView(s.registry, columns)
	page := view.NewPage(v, s.parentsFor(r))
	page.WASM = s.wasm
	return page
}

// bootPayload honours ?cols=N the same way the page does, so the client keeps
// the layout the page was rendered with.
func (s *server) bootPayload(r *http.Request) model.BootPayload {
	return model.BootPayload{
		Streams:        s.registry.Snapshot(),
		Columns:        columnsFromQuery(r, s.columns),
		Parents:        s.parentsFor(r),
		RestrictOrigin: s.restrictOrigin,
	}
}
