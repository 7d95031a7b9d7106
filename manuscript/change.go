package manuscript

// Change describes the most recent effective transition of a State.
type Change struct {
	Command       Command
	VersionBefore uint64
	VersionAfter  uint64
	CursorBefore  int
	CursorAfter   int
	PageBefore    int
	PageAfter     int
}

// LastChange returns the transition that produced s, if any.
func (s State) LastChange() (Change, bool) {
	if !s.hasChange {
		return Change{}, false
	}
	return s.lastChange, true
}

// TextChanged reports whether the change could have altered document
// content (as opposed to only cursor, page or composition).
func (c Change) TextChanged() bool {
	switch c.Command.(type) {
	case CommitText, DeleteBackward, Newline, CompositionEnd,
		SetDimensions, SetPageCount, AddPage, RemovePage:
		return true
	default:
		return false
	}
}
