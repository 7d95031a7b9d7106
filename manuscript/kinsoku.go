package manuscript

// KinsokuHead lists the closing marks that may not begin a line.
var KinsokuHead = []string{"、", "。", "）", "」", "』"}

// Indent is written at the start of a new paragraph line.
const Indent = "　"

var kinsokuHeadSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(KinsokuHead))
	for _, ch := range KinsokuHead {
		m[ch] = struct{}{}
	}
	return m
}()

// IsKinsokuHead reports whether ch may not begin a line.
func IsKinsokuHead(ch string) bool {
	_, ok := kinsokuHeadSet[ch]
	return ok
}

// IsLineStart reports whether offset pos is the first cell of a row.
func IsLineStart(pos, cols int) bool {
	return cols > 0 && pos%cols == 0
}

// OverflowLine returns the overflow slot that a line-start mark at pos is
// redirected to: the row above, or row 0 itself when pos is on row 0.
func OverflowLine(pos, cols int) int {
	row := pos / cols
	if row == 0 {
		return 0
	}
	return row - 1
}

// landing describes where one character placed at a position ends up.
// Exactly one of cell or line is >= 0 unless the target is out of bounds.
type landing struct {
	cell int
	line int
	next int
}

// land applies the placement rule for one character at pos on a
// cols x rows page without writing anything.
func land(cols, rows, pos int, ch string) landing {
	per := cols * rows
	l := landing{cell: -1, line: -1, next: minInt(pos+1, per-1)}
	if IsLineStart(pos, cols) && IsKinsokuHead(ch) {
		if line := OverflowLine(pos, cols); line >= 0 && line < rows {
			l.line = line
		}
		return l
	}
	if pos >= 0 && pos < per {
		l.cell = pos
	}
	return l
}

// Place writes one character at pos into cells/overflow (a page of the
// given column count) and returns the next cursor offset.
//
// A forbidden mark at a line start goes to the overflow slot of the row
// above (row 0 targets its own slot), replacing whatever was there, and
// leaves cells untouched. The cursor advances by one either way and is
// pinned at the last cell.
func Place(cells, overflow []string, cols, pos int, ch string) int {
	if cols <= 0 || len(overflow) == 0 {
		return pos
	}
	l := land(cols, len(overflow), pos, ch)
	switch {
	case l.line >= 0:
		overflow[l.line] = ch
	case l.cell >= 0 && l.cell < len(cells):
		cells[l.cell] = ch
	}
	return l.next
}

// DeleteOne removes the character before cursor and returns the new cursor.
//
// At a line start with an occupied overflow slot for that line, the slot is
// cleared instead of the preceding cell. Offset 0 is a no-op.
func DeleteOne(cells, overflow []string, cols, cursor int) int {
	if cursor <= 0 || cols <= 0 {
		return 0
	}
	line := OverflowLine(cursor, cols)
	if IsLineStart(cursor, cols) && line < len(overflow) && overflow[line] != "" {
		overflow[line] = ""
	} else if cursor-1 < len(cells) {
		cells[cursor-1] = ""
	}
	return cursor - 1
}
