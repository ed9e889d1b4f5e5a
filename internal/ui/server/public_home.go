package server

import "net/http"

func (s *server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if !allowRead(w, r) {
		return
	}
	s.renderPage(w, r, s.buildPage(r, columnsFromQuery(r, s.columns)))
}
