package manuscript

// Page is one Cols x Rows grid plus its per-row overflow slots.
// The empty string marks an empty cell or slot.
type Page struct {
	Cells    []string
	Overflow []string
}

func newPage(cols, rows int) Page {
	return Page{
		Cells:    make([]string, cols*rows),
		Overflow: make([]string, rows),
	}
}

func (p Page) clone() Page {
	return Page{
		Cells:    append([]string(nil), p.Cells...),
		Overflow: append([]string(nil), p.Overflow...),
	}
}

// IsEmpty reports whether no cell or overflow slot holds a character.
func (p Page) IsEmpty() bool {
	return p.CharCount() == 0
}

// CharCount returns the number of occupied cells and overflow slots.
func (p Page) CharCount() int {
	n := 0
	for _, c := range p.Cells {
		if c != "" {
			n++
		}
	}
	for _, c := range p.Overflow {
		if c != "" {
			n++
		}
	}
	return n
}

// Document is an immutable paginated grid. Operations return new values;
// pages not touched by an operation are shared between the old and new
// Document, so no returned Document is ever written to afterwards.
type Document struct {
	cols  int
	rows  int
	pages []Page
}

// New returns a document with one empty page. Dimensions below 1 are
// raised to 1.
func New(cols, rows int) Document {
	cols = maxInt(cols, 1)
	rows = maxInt(rows, 1)
	return Document{cols: cols, rows: rows, pages: []Page{newPage(cols, rows)}}
}

// FromPages builds a document from externally supplied pages, padding or
// truncating every page to cols*rows cells and rows overflow slots.
// An empty pages slice yields one empty page.
func FromPages(cols, rows int, pages []Page) Document {
	d := New(cols, rows)
	if len(pages) == 0 {
		return d
	}
	d.pages = make([]Page, len(pages))
	for i, src := range pages {
		p := newPage(d.cols, d.rows)
		copy(p.Cells, src.Cells)
		copy(p.Overflow, src.Overflow)
		d.pages[i] = p
	}
	return d
}

func (d Document) Cols() int { return d.cols }

func (d Document) Rows() int { return d.rows }

// PerPage returns the number of cells on one page.
func (d Document) PerPage() int { return d.cols * d.rows }

func (d Document) PageCount() int { return len(d.pages) }

// Page returns a copy of page i.
func (d Document) Page(i int) (Page, bool) {
	if i < 0 || i >= len(d.pages) {
		return Page{}, false
	}
	return d.pages[i].clone(), true
}

// Pages returns copies of all pages in order.
func (d Document) Pages() []Page {
	out := make([]Page, len(d.pages))
	for i, p := range d.pages {
		out[i] = p.clone()
	}
	return out
}

// CharCount returns the number of occupied cells and overflow slots across
// all pages.
func (d Document) CharCount() int {
	n := 0
	for _, p := range d.pages {
		n += p.CharCount()
	}
	return n
}

// page returns the shared (read-only) page i.
func (d Document) page(i int) Page {
	if i < 0 || i >= len(d.pages) {
		return newPage(d.cols, d.rows)
	}
	return d.pages[i]
}

// withPage returns a document whose page i is replaced by p. The pages
// slice is copied; the pages themselves are shared.
func (d Document) withPage(i int, p Page) Document {
	pages := append([]Page(nil), d.pages...)
	pages[i] = p
	d.pages = pages
	return d
}

func (d Document) appendPage() Document {
	pages := make([]Page, 0, len(d.pages)+1)
	pages = append(pages, d.pages...)
	pages = append(pages, newPage(d.cols, d.rows))
	d.pages = pages
	return d
}

func (d Document) removePage(i int) Document {
	pages := make([]Page, 0, len(d.pages)-1)
	pages = append(pages, d.pages[:i]...)
	pages = append(pages, d.pages[i+1:]...)
	d.pages = pages
	return d
}

// resize reallocates every page for the new geometry and copies content by
// linear offset, not by row/column. Changing cols therefore re-maps
// characters onto different rows.
//
// TODO: geometry-aware reflow (copy row by row, carrying overflow slots
// along) once the linear behavior no longer has to match old drafts.
func (d Document) resize(cols, rows, pageCount int) Document {
	next := Document{cols: cols, rows: rows, pages: make([]Page, pageCount)}
	for i := range next.pages {
		next.pages[i] = newPage(cols, rows)
	}
	for i := 0; i < minInt(len(d.pages), pageCount); i++ {
		copy(next.pages[i].Cells, d.pages[i].Cells)
		copy(next.pages[i].Overflow, d.pages[i].Overflow)
	}
	return next
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
