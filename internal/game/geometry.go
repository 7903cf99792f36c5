package game

// CellOf maps a canvas position to the grid cell containing it. The
// canvas is partitioned into GridCols x GridRows equal rectangles.
// Out-of-canvas input clamps to the nearest valid cell; sensor noise is
// never an error.
func CellOf(px, py float64) (col, row int) {
	col = clamp(int(px/(CanvasWidth/GridCols)), 0, GridCols-1)
	row = clamp(int(py/(CanvasHeight/GridRows)), 0, GridRows-1)
	return
}

// CenterOf returns the canvas-pixel centre of a cell.
func CenterOf(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * (CanvasWidth / GridCols),
		(float64(row) + 0.5) * (CanvasHeight / GridRows)
}
