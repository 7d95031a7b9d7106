package editor

// ViewportState is a stable host-facing snapshot of editor camera state.
type ViewportState struct {
	// TopLine is the content line rendered at viewport screen row 0.
	TopLine int
	// VisibleRows is the number of content rows available for rendering.
	VisibleRows int
	// GutterWidth is the number of terminal columns before the first cell.
	GutterWidth int
}

// ViewportState returns the current host-facing viewport state.
func (m Model) ViewportState() ViewportState {
	top := m.viewport.YOffset
	if top < 0 {
		top = 0
	}
	return ViewportState{
		TopLine:     top,
		VisibleRows: m.visibleRowCount(),
		GutterWidth: m.gutterWidth(),
	}
}

// ScreenToOffset maps viewport-local screen coordinates to a cell offset on
// the current page.
func (m Model) ScreenToOffset(x, y int) int {
	return m.screenToOffset(x, y)
}

// OffsetToScreen maps a cell offset to viewport-local screen coordinates.
//
// ok is false when the cell is outside the visible viewport.
func (m Model) OffsetToScreen(offset int) (x int, y int, ok bool) {
	return m.offsetToScreen(offset)
}

func (m Model) visibleRowCount() int {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h < 0 {
		return 0
	}
	return h
}
