// Package layout derives the CSS grid used by the stream wall.
package layout

import (
	"fmt"
	"strconv"

	"github.com/Its-donkey/multistream/internal/ui/model"
)

const (
	MinColumns     = 1
	MaxColumns     = 10
	DefaultColumns = 2
)

// Template is a grid-template-columns value.
type Template string

// Grid maps a column count onto its CSS template. The count is not range
// checked.
func Grid(columns int) Template {
	return Template(fmt.Sprintf("repeat(%d, 1fr)", columns))
}

// Style renders the inline style attribute for the grid container.
func (t Template) Style() string {
	return "grid-template-columns: " + string(t) + ";"
}

// InRange reports whether columns is selectable.
func InRange(columns int) bool {
	return columns >= MinColumns && columns <= MaxColumns
}

// ColumnOptions lists the select entries, marking the current value.
func ColumnOptions(selected int) []model.ColumnOption {
	options := make([]model.ColumnOption, 0, MaxColumns)
	for n := MinColumns; n <= MaxColumns; n++ {
		label := strconv.Itoa(n) + " Columns"
		if n == 1 {
			label = "1 Column"
		}
		options = append(options, model.ColumnOption{Value: n, Label: label, Selected: n == selected})
	}
	return options
}
