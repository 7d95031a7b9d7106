package manuscript

// Command is one input event or host command accepted by State.Apply.
// The set is closed; hosts use the types below.
type Command interface {
	apply(s State) (State, bool)
}

// CommitText places directly typed (or pasted) text at the cursor.
// Ignored while a composition is active.
type CommitText struct {
	Text string
}

// DeleteBackward removes the character before the cursor.
type DeleteBackward struct{}

// Newline starts an indented paragraph on the next row.
type Newline struct{}

// MoveCursor moves the cursor one step, clamped to the current page.
type MoveCursor struct {
	Dir Direction
}

// SetCursor moves the cursor to Offset, clamped to the current page.
type SetCursor struct {
	Offset int
}

// CompositionStart begins a composition with empty text.
type CompositionStart struct{}

// CompositionUpdate replaces the composition text.
type CompositionUpdate struct {
	Text string
}

// CompositionEnd finishes the composition and commits Text if non-empty.
type CompositionEnd struct {
	Text string
}

// CompositionCancel discards the composition without committing.
type CompositionCancel struct{}

// SetDimensions changes the grid geometry of every page.
type SetDimensions struct {
	Cols int
	Rows int
}

// SetPageCount grows or truncates the page list.
type SetPageCount struct {
	N int
}

// AddPage appends an empty page and makes it current.
type AddPage struct{}

// RemovePage deletes the current page unless it is the only one.
type RemovePage struct{}

// GotoPage makes page Index current.
type GotoPage struct {
	Index int
}

func (c CommitText) apply(s State) (State, bool) {
	if s.composing || c.Text == "" {
		return s, false
	}
	return s.insert(c.Text)
}

func (DeleteBackward) apply(s State) (State, bool) {
	if s.composing {
		return s, false
	}
	return s.deleteBackward()
}

func (Newline) apply(s State) (State, bool) {
	if s.composing {
		return s, false
	}
	return s.newline()
}

func (c MoveCursor) apply(s State) (State, bool) {
	if s.composing {
		return s, false
	}
	next := MoveOffset(s.cursor, s.doc.Cols(), s.doc.Rows(), c.Dir)
	if next == s.cursor {
		return s, false
	}
	s.cursor = next
	return s, true
}

func (c SetCursor) apply(s State) (State, bool) {
	if s.composing {
		return s, false
	}
	next := ClampCursor(c.Offset, s.doc.PerPage())
	if next == s.cursor {
		return s, false
	}
	s.cursor = next
	return s, true
}

func (CompositionStart) apply(s State) (State, bool) {
	if s.composing && s.composition == "" {
		return s, false
	}
	s.composing = true
	s.composition = ""
	return s, true
}

func (c CompositionUpdate) apply(s State) (State, bool) {
	if !s.composing || c.Text == s.composition {
		return s, false
	}
	s.composition = c.Text
	return s, true
}

func (c CompositionEnd) apply(s State) (State, bool) {
	changed := s.composing || s.composition != ""
	s.composing = false
	s.composition = ""
	if c.Text == "" {
		return s, changed
	}
	next, inserted := s.insert(c.Text)
	return next, changed || inserted
}

func (CompositionCancel) apply(s State) (State, bool) {
	if !s.composing && s.composition == "" {
		return s, false
	}
	s.composing = false
	s.composition = ""
	return s, true
}

func (c SetDimensions) apply(s State) (State, bool) {
	return s.resize(c.Cols, c.Rows, s.doc.PageCount())
}

func (c SetPageCount) apply(s State) (State, bool) {
	return s.resize(s.doc.Cols(), s.doc.Rows(), c.N)
}

func (AddPage) apply(s State) (State, bool) {
	s.doc = s.doc.appendPage()
	s.page = s.doc.PageCount() - 1
	return s, true
}

func (RemovePage) apply(s State) (State, bool) {
	if s.doc.PageCount() <= 1 {
		return s, false
	}
	s.doc = s.doc.removePage(s.page)
	s.page = maxInt(0, s.page-1)
	return s, true
}

func (c GotoPage) apply(s State) (State, bool) {
	if c.Index < 0 || c.Index >= s.doc.PageCount() {
		return s, false
	}
	cursor := ClampCursor(s.cursor, s.doc.PerPage())
	if c.Index == s.page && cursor == s.cursor {
		return s, false
	}
	s.page = c.Index
	s.cursor = cursor
	return s, true
}
