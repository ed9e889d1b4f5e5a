package server

import (
	"encoding/json"
	"net/http"

	"github.com/Its-donkey/multistream/internal/ui/forms"
	"github.com/Its-donkey/multistream/internal/ui/model"
)

func (s *server) serveStreamsJSON(w http.ResponseWriter, r *http.Request) {
	if !allowRead(w, r) {
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, s.bootPayload(r))
}

func (s *server) handleParse(w http.ResponseWriter, r *http.Request) {
	if !allowRead(w, r) {
		return
	}
	ref, err := forms.ParseStreamURL(r.URL.Query().Get("input"))
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, model.ParseResponse{Error: forms.FormatHint})
		return
	}
	writeJSON(w, http.StatusOK, model.ParseResponse{Platform: ref.Platform, Channel: ref.Channel})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
