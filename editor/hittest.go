package editor

// screenToOffset maps viewport-local coordinates to a cell offset on the
// current page.
//
// Coordinates are in terminal cells and are relative to the editor's viewport:
// (0,0) is the top-left of the visible content region. Gutter clicks map to
// column 0, clicks on the overflow column or past it map to the last column,
// and rule lines map to the row above them.
func (m Model) screenToOffset(x, y int) int {
	doc := m.state.Document()
	cols, rows := doc.Cols(), doc.Rows()
	if cols <= 0 || rows <= 0 {
		return 0
	}

	line := m.viewport.YOffset + y
	if line < 0 {
		line = 0
	}
	row := clampInt(line/m.rowStride(), 0, rows-1)

	x -= m.gutterWidth()
	if x < 0 {
		x = 0
	}
	col := clampInt(x/cellWidth, 0, cols-1)
	return row*cols + col
}

// offsetToScreen maps a cell offset to viewport-local coordinates of the
// cell's first terminal column.
//
// ok is false when the cell is outside the visible viewport.
func (m Model) offsetToScreen(offset int) (x int, y int, ok bool) {
	doc := m.state.Document()
	if offset < 0 || offset >= doc.PerPage() {
		return 0, 0, false
	}
	row, col := offset/doc.Cols(), offset%doc.Cols()
	x = m.gutterWidth() + col*cellWidth
	y = m.screenLineForRow(row) - m.viewport.YOffset
	if y < 0 || y >= m.visibleRowCount() {
		return x, y, false
	}
	if x >= m.viewport.Width {
		return x, y, false
	}
	return x, y, true
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
