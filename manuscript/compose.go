package manuscript

import "github.com/iw2rmb/genko/internal/grapheme"

// Preview is the render-only overlay of an uncommitted composition.
//
// Cells maps cell offsets to previewed characters. Overflow has one slot
// per row; a non-empty slot is shown instead of the committed one.
type Preview struct {
	Cells    map[int]string
	Overflow []string
}

// Empty reports whether the preview shows nothing.
func (p Preview) Empty() bool {
	if len(p.Cells) > 0 {
		return false
	}
	for _, ch := range p.Overflow {
		if ch != "" {
			return false
		}
	}
	return true
}

// PreviewFor runs the placement rule for text starting at cursor on a
// cols x rows page without touching any document, and returns where each
// character would land.
func PreviewFor(cols, rows, cursor int, text string) Preview {
	p := Preview{
		Cells:    make(map[int]string),
		Overflow: make([]string, maxInt(rows, 0)),
	}
	if cols <= 0 || rows <= 0 {
		return p
	}
	pos := cursor
	for _, ch := range grapheme.Split(text) {
		l := land(cols, rows, pos, ch)
		switch {
		case l.line >= 0:
			p.Overflow[l.line] = ch
		case l.cell >= 0:
			p.Cells[l.cell] = ch
		}
		pos = l.next
	}
	return p
}

// Preview returns the overlay for the current composition; empty when no
// composition text is pending.
func (s State) Preview() Preview {
	return PreviewFor(s.doc.Cols(), s.doc.Rows(), s.cursor, s.composition)
}
