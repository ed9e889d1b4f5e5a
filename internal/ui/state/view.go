package state

import (
	"github.com/Its-donkey/multistream/internal/ui/forms"
	"github.com/Its-donkey/multistream/internal/ui/layout"
)

// View bundles the registry with the transient page state around it: the
// grid size and the add-stream panel.
type View struct {
	Registry *Registry
	Columns  int
	AddForm  forms.AddForm
}

// NewView constructs a View over registry using the given column count.
// A zero count falls back to the default grid.
func NewView(registry *Registry, columns int) *View {
	if registry == nil {
		registry = NewRegistry()
	}
	if columns == 0 {
		columns = layout.DefaultColumns
	}
	return &View{Registry: registry, Columns: columns}
}

// SetColumns records the selected column count. Range checks belong to the
// caller that reads the value from user input.
func (v *View) SetColumns(columns int) {
	v.Columns = columns
}

// Grid returns the CSS template for the current column count.
func (v *View) Grid() layout.Template {
	return layout.Grid(v.Columns)
}

// SubmitAddForm feeds the add panel input into the registry.
func (v *View) SubmitAddForm() bool {
	_, ok := v.AddForm.Submit(v.Registry)
	return ok
}

// Empty reports whether the grid has nothing to show.
func (v *View) Empty() bool {
	return v.Registry.Len() == 0
}
