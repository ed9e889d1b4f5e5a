package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid(t *testing.T) {
	assert.Equal(t, Template("repeat(1, 1fr)"), Grid(1))
	assert.Equal(t, Template("repeat(10, 1fr)"), Grid(10))
	assert.Equal(t, "grid-template-columns: repeat(3, 1fr);", Grid(3).Style())
}

func TestGridDoesNotClamp(t *testing.T) {
	assert.Equal(t, Template("repeat(12, 1fr)"), Grid(12))
	assert.False(t, InRange(12))
	assert.False(t, InRange(0))
	assert.True(t, InRange(DefaultColumns))
}

func TestColumnOptions(t *testing.T) {
	options := ColumnOptions(4)
	require.Len(t, options, 10)
	assert.Equal(t, "1 Column", options[0].Label)
	assert.Equal(t, "2 Columns", options[1].Label)
	assert.Equal(t, "10 Columns", options[9].Label)
	for _, opt := range options {
		assert.Equal(t, opt.Value == 4, opt.Selected, "option %d", opt.Value)
	}
}
