// Package view renders the viewer page and its stream windows from embedded
// templates. The host renders the full page; the WASM client renders single
// windows with the same templates so both paths produce identical markup.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	uiembed "github.com/Its-donkey/multistream/internal/ui/embed"
	"github.com/Its-donkey/multistream/internal/ui/forms"
	"github.com/Its-donkey/multistream/internal/ui/layout"
	"github.com/Its-donkey/multistream/internal/ui/model"
	"github.com/Its-donkey/multistream/internal/ui/state"
	"github.com/Its-donkey/multistream/internal/ui/window"
)

const (
	// PageTitle heads the document and the toolbar.
	PageTitle = "Multi-Stream Viewer"
	// FooterHint explains the audio rule.
	FooterHint = "Click the volume icon to unmute a stream. Only one stream can be unmuted at a time."
	// DefaultStylesheet is the stylesheet route served by the host.
	DefaultStylesheet = "/styles.css"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Renderer executes the viewer templates.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.New("view").ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse view templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Page is the data behind the full document.
type Page struct {
	Title          string
	StylesheetPath string
	Columns        []model.ColumnOption
	GridStyle      template.CSS
	Windows        []Window
	Empty          bool
	AddForm        AddForm
	FooterHint     string
	WASM           bool
}

// AddForm is the data behind the add-stream panel.
type AddForm struct {
	Visible     bool
	Input       string
	Error       string
	Placeholder string
}

// Window is the data behind one grid cell.
type Window struct {
	Stream   model.Stream
	Key      string
	EmbedURL string
}

// NewWindow prepares stream for rendering with the given Twitch parents.
func NewWindow(stream model.Stream, parents []string) Window {
	return Window{
		Stream:   stream,
		Key:      window.Key(stream),
		EmbedURL: uiembed.URL(stream, parents),
	}
}

// NewPage snapshots v into page data.
func NewPage(v *state.View, parents []string) Page {
	streams := v.Registry.Snapshot()
	windows := make([]Window, 0, len(streams))
	for _, s := range streams {
		windows = append(windows, NewWindow(s, parents))
	}
	return Page{
		Title:          PageTitle,
		StylesheetPath: DefaultStylesheet,
		Columns:        layout.ColumnOptions(v.Columns),
		GridStyle:      GridStyle(v.Grid()),
		Windows:        windows,
		Empty:          len(windows) == 0,
		AddForm:        NewAddForm(v.AddForm),
		FooterHint:     FooterHint,
	}
}

// NewAddForm maps the panel state onto template data.
func NewAddForm(f forms.AddForm) AddForm {
	return AddForm{
		Visible:     f.Visible,
		Input:       f.Input,
		Error:       f.Error,
		Placeholder: forms.InputPlaceholder,
	}
}

// GridStyle marks the generated grid declaration as safe CSS. The value only
// ever comes from layout.Grid.
func GridStyle(t layout.Template) template.CSS {
	return template.CSS(t.Style())
}

// RenderPage writes the full document.
func (r *Renderer) RenderPage(w io.Writer, page Page) error {
	return r.tmpl.ExecuteTemplate(w, "page", page)
}

// RenderWindow writes a single stream window.
func (r *Renderer) RenderWindow(w io.Writer, win Window) error {
	return r.tmpl.ExecuteTemplate(w, "stream_window", win)
}

// WindowHTML renders a stream window to a string for DOM insertion.
func (r *Renderer) WindowHTML(win Window) (string, error) {
	var b strings.Builder
	if err := r.RenderWindow(&b, win); err != nil {
		return "", fmt.Errorf("render window %s: %w", win.Stream.ID, err)
	}
	return b.String(), nil
}
