package manuscript

import "github.com/iw2rmb/genko/internal/grapheme"

// State is one editing-session snapshot: the document, the cursor on the
// current page, the current page index and any in-progress composition.
//
// The zero State is not usable; start from NewState or Restore.
type State struct {
	doc    Document
	cursor int
	page   int

	composing   bool
	composition string

	version    uint64
	lastChange Change
	hasChange  bool
}

// NewState returns a session over a new one-page document.
func NewState(cols, rows int) State {
	return State{doc: New(cols, rows)}
}

// Restore returns a session over doc with cursor and page clamped into
// range. The composition is always empty.
func Restore(doc Document, cursor, page int) State {
	if doc.PageCount() == 0 {
		doc = New(doc.Cols(), doc.Rows())
	}
	return State{
		doc:    doc,
		cursor: ClampCursor(cursor, doc.PerPage()),
		page:   clampInt(page, 0, doc.PageCount()-1),
	}
}

func (s State) Document() Document { return s.doc }

func (s State) Cursor() int { return s.cursor }

// PageIndex returns the 0-based index of the current page.
func (s State) PageIndex() int { return s.page }

func (s State) Composing() bool { return s.composing }

// Composition returns the transient composition text; empty unless
// Composing.
func (s State) Composition() string { return s.composition }

// Version increases by one with every effective transition.
func (s State) Version() uint64 { return s.version }

// CurrentPage returns a copy of the current page.
func (s State) CurrentPage() Page {
	p, _ := s.doc.Page(s.page)
	return p
}

// CursorRowCol returns the cursor's row and column on the current page.
func (s State) CursorRowCol() (row, col int) {
	return RowCol(s.cursor, s.doc.Cols())
}

// Apply returns the state after cmd. Commands whose arguments are out of
// range resolve to a clamped result or to s itself; Apply never fails.
func (s State) Apply(cmd Command) State {
	if cmd == nil {
		return s
	}
	next, changed := cmd.apply(s)
	if !changed {
		return s
	}
	next.version = s.version + 1
	next.lastChange = Change{
		Command:       cmd,
		VersionBefore: s.version,
		VersionAfter:  next.version,
		CursorBefore:  s.cursor,
		CursorAfter:   next.cursor,
		PageBefore:    s.page,
		PageAfter:     next.page,
	}
	next.hasChange = true
	return next
}

// ApplyAll applies cmds in order.
func (s State) ApplyAll(cmds ...Command) State {
	for _, cmd := range cmds {
		s = s.Apply(cmd)
	}
	return s
}

// insert places text one character at a time on the current page.
func (s State) insert(text string) (State, bool) {
	chars := grapheme.Split(text)
	if len(chars) == 0 {
		return s, false
	}
	p := s.doc.page(s.page).clone()
	pos := s.cursor
	for _, ch := range chars {
		pos = Place(p.Cells, p.Overflow, s.doc.Cols(), pos, ch)
	}
	s.doc = s.doc.withPage(s.page, p)
	s.cursor = pos
	return s, true
}

func (s State) deleteBackward() (State, bool) {
	if s.cursor == 0 {
		return s, false
	}
	p := s.doc.page(s.page).clone()
	s.cursor = maxInt(DeleteOne(p.Cells, p.Overflow, s.doc.Cols(), s.cursor), 0)
	s.doc = s.doc.withPage(s.page, p)
	return s, true
}

// newline writes Indent at the start of the next row and places the cursor
// after it. Nothing happens on the last row.
func (s State) newline() (State, bool) {
	cols, per := s.doc.Cols(), s.doc.PerPage()
	row, _ := RowCol(s.cursor, cols)
	start := (row + 1) * cols
	if start >= per {
		return s, false
	}
	p := s.doc.page(s.page).clone()
	p.Cells[start] = Indent
	s.doc = s.doc.withPage(s.page, p)
	s.cursor = ClampCursor(start+1, per)
	return s, true
}

func (s State) resize(cols, rows, pageCount int) (State, bool) {
	if cols < 1 || rows < 1 || pageCount < 1 {
		return s, false
	}
	if cols == s.doc.Cols() && rows == s.doc.Rows() && pageCount == s.doc.PageCount() {
		return s, false
	}
	s.doc = s.doc.resize(cols, rows, pageCount)
	s.cursor = ClampCursor(s.cursor, s.doc.PerPage())
	s.page = clampInt(s.page, 0, pageCount-1)
	return s, true
}
