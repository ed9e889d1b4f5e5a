package forms

import (
	"github.com/Its-donkey/multistream/internal/ui/model"
)

const (
	// InputPlaceholder is shown in the empty add-stream field.
	InputPlaceholder = "Enter Twitch/Kick URL or channel name (e.g., twitch.tv/shroud or just 'shroud')"
	// FormatHint lists the accepted input shapes.
	FormatHint = "Supported formats: twitch.tv/username, kick.com/username, or just the username"
)

// StreamAdder is the registry operation the add form drives.
type StreamAdder interface {
	Add(raw string) (model.Stream, error)
}

// AddForm holds the transient state of the add-stream panel.
type AddForm struct {
	Visible bool
	Input   string
	Error   string
}

// Toggle flips panel visibility.
func (f *AddForm) Toggle() {
	f.Visible = !f.Visible
}

// Open shows the panel.
func (f *AddForm) Open() {
	f.Visible = true
}

// Cancel hides the panel and keeps the typed input.
func (f *AddForm) Cancel() {
	f.Visible = false
	f.Error = ""
}

// Submit adds the current input to the registry. On success the input is
// cleared and the panel closes; on a parse failure the panel stays open with
// a hint and the registry is untouched.
func (f *AddForm) Submit(registry StreamAdder) (model.Stream, bool) {
	stream, err := registry.Add(f.Input)
	if err != nil {
		f.Error = FormatHint
		return model.Stream{}, false
	}
	f.Input = ""
	f.Error = ""
	f.Visible = false
	return stream, true
}
