package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Its-donkey/multistream/logging"
)

var validate = validator.New()

type homeQuery struct {
	Cols int `validate:"min=1,max=10"`
}

// columnsFromQuery reads ?cols=N. Missing, malformed or out of range values
// fall back to def.
func columnsFromQuery(r *http.Request, def int) int {
	raw := strings.TrimSpace(r.URL.Query().Get("cols"))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	if err := validate.Struct(homeQuery{Cols: n}); err != nil {
		return def
	}
	return n
}

func allowRead(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	w.Header().Set("Allow", "GET, HEAD")
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	return false
}

func (s *server) logf(r *http.Request, format string, args ...any) {
	entry := logging.Category(s.logger, logging.CategoryGeneral)
	if r != nil {
		if id := logging.RequestIDFromContext(r.Context()); id != "" {
			entry = entry.WithField("request_id", id)
		}
	}
	entry.Errorf(format, args...)
}
