package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellOf(t *testing.T) {
	tests := []struct {
		name     string
		px, py   float64
		col, row int
	}{
		{"origin", 0, 0, 0, 0},
		{"bottom right corner", CanvasWidth - 1, CanvasHeight - 1, GridCols - 1, GridRows - 1},
		{"cell boundary belongs to the next cell", CanvasWidth / GridCols, 0, 1, 0},
		{"mid canvas", CanvasWidth / 2, CanvasHeight / 2, GridCols / 2, GridRows / 2},
		{"negative clamps to first cell", -50, -50, 0, 0},
		{"overshoot clamps to last cell", CanvasWidth + 500, CanvasHeight + 500, GridCols - 1, GridRows - 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, row := CellOf(tt.px, tt.py)
			assert.Equal(t, tt.col, col)
			assert.Equal(t, tt.row, row)
		})
	}
}

func TestCenterOfRoundTrip(t *testing.T) {
	for col := 0; col < GridCols; col++ {
		for row := 0; row < GridRows; row++ {
			x, y := CenterOf(col, row)
			gotCol, gotRow := CellOf(x, y)
			assert.Equal(t, col, gotCol)
			assert.Equal(t, row, gotRow)
		}
	}
}
