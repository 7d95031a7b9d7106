package manuscript

// Direction is a cursor movement direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// RowCol splits a linear offset into row and column.
func RowCol(offset, cols int) (row, col int) {
	if cols <= 0 {
		return 0, 0
	}
	return offset / cols, offset % cols
}

// ClampCursor clamps offset into [0, per-1].
func ClampCursor(offset, per int) int {
	return clampInt(offset, 0, per-1)
}

// MoveOffset moves a cursor offset one step in dir on a cols x rows page.
// Left/right step by one cell, up/down by one row; the result never leaves
// the page.
func MoveOffset(offset, cols, rows int, dir Direction) int {
	per := cols * rows
	switch dir {
	case DirLeft:
		offset--
	case DirRight:
		offset++
	case DirUp:
		offset -= cols
	case DirDown:
		offset += cols
	}
	return ClampCursor(offset, per)
}
