package manuscript

import "strings"

// Export serializes every page as plain text: one line per row (cells in
// order followed by the row's overflow slot), pages separated by exactly
// one blank line.
func Export(d Document) string {
	lines := make([]string, 0, d.PageCount()*(d.Rows()+1))
	for i, p := range d.pages {
		for r := 0; r < d.rows; r++ {
			var sb strings.Builder
			for c := 0; c < d.cols; c++ {
				if idx := r*d.cols + c; idx < len(p.Cells) {
					sb.WriteString(p.Cells[idx])
				}
			}
			if r < len(p.Overflow) {
				sb.WriteString(p.Overflow[r])
			}
			lines = append(lines, sb.String())
		}
		if i < len(d.pages)-1 {
			lines = append(lines, "")
		}
	}
	return strings.Join(lines, "\n")
}
