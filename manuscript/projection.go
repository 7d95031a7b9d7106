package manuscript

// Projection is the read-only view of the current page handed to renderers.
// All slices and maps are copies.
type Projection struct {
	Cols      int
	Rows      int
	Page      int
	Pages     int
	Cursor    int
	Cells     []string
	Overflow  []string
	Preview   Preview
	Composing bool
}

// ViewCell is one rendered cell after merging the preview over committed
// content.
type ViewCell struct {
	Text    string
	Pending bool
	Cursor  bool
}

// Projection returns the render view of s.
func (s State) Projection() Projection {
	p := s.CurrentPage()
	return Projection{
		Cols:      s.doc.Cols(),
		Rows:      s.doc.Rows(),
		Page:      s.page,
		Pages:     s.doc.PageCount(),
		Cursor:    s.cursor,
		Cells:     p.Cells,
		Overflow:  p.Overflow,
		Preview:   s.Preview(),
		Composing: s.composing,
	}
}

// Row merges committed cells of row r with the preview and returns the
// row's cells and its effective overflow slot.
func (p Projection) Row(r int) (cells []ViewCell, overflow ViewCell) {
	if r < 0 || r >= p.Rows || p.Cols <= 0 {
		return nil, ViewCell{}
	}
	cells = make([]ViewCell, p.Cols)
	base := r * p.Cols
	for c := range cells {
		idx := base + c
		vc := ViewCell{Cursor: idx == p.Cursor}
		if ch, ok := p.Preview.Cells[idx]; ok {
			vc.Text = ch
			vc.Pending = true
		} else if idx < len(p.Cells) {
			vc.Text = p.Cells[idx]
		}
		cells[c] = vc
	}
	if r < len(p.Preview.Overflow) && p.Preview.Overflow[r] != "" {
		overflow = ViewCell{Text: p.Preview.Overflow[r], Pending: true}
	} else if r < len(p.Overflow) {
		overflow = ViewCell{Text: p.Overflow[r]}
	}
	return cells, overflow
}

// GlobalLine returns the 1-based line number of row r counted across
// pages, as printed in the gutter.
func (p Projection) GlobalLine(r int) int {
	return p.Page*p.Rows + r + 1
}
