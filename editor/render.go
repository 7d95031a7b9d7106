package editor

import (
	"fmt"
	"strconv"
	"strings"

	graphemeutil "github.com/iw2rmb/genko/internal/grapheme"
	"github.com/iw2rmb/genko/manuscript"
)

// cellWidth is the number of terminal columns one grid cell occupies.
const cellWidth = 2

func (m *Model) renderContent() string {
	proj := m.state.Projection()
	gw := m.gutterWidth()

	out := make([]string, 0, m.contentLineCount())
	for r := 0; r < proj.Rows; r++ {
		if r > 0 && m.cfg.ShowRules {
			out = append(out, m.renderRule(proj.Cols, gw))
		}
		out = append(out, m.renderRow(proj, r, gw))
	}
	return strings.Join(out, "\n")
}

func (m *Model) renderRow(proj manuscript.Projection, r, gw int) string {
	st := m.cfg.Style
	cells, overflow := proj.Row(r)

	var sb strings.Builder
	if m.cfg.ShowLineNumbers {
		numStyle := st.LineNum
		if row, _ := m.state.CursorRowCol(); m.focused && row == r {
			numStyle = st.LineNumActive
		}
		sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", gw-1, proj.GlobalLine(r))))
		sb.WriteString(st.Gutter.Render(" "))
	}

	for _, c := range cells {
		s := padCell(c.Text)
		switch {
		case c.Cursor && m.focused:
			sb.WriteString(st.Cursor.Render(s))
		case c.Pending:
			sb.WriteString(st.Pending.Render(s))
		default:
			sb.WriteString(st.Text.Render(s))
		}
	}

	sb.WriteString(st.Gutter.Render(" "))
	if overflow.Pending {
		sb.WriteString(st.Pending.Render(padCell(overflow.Text)))
	} else {
		sb.WriteString(st.Overflow.Render(padCell(overflow.Text)))
	}
	return sb.String()
}

func (m *Model) renderRule(cols, gw int) string {
	return strings.Repeat(" ", gw) + m.cfg.Style.Rule.Render(strings.Repeat("─", cols*cellWidth))
}

func (m Model) renderStatus() string {
	s := fmt.Sprintf("page %d / %d", m.state.PageIndex()+1, m.state.Document().PageCount())
	if m.state.Composing() {
		s += "  composing"
	}
	if m.cfg.ReadOnly {
		s += "  read-only"
	}
	return m.cfg.Style.Status.Render(s)
}

// padCell renders one character into exactly cellWidth terminal columns.
func padCell(ch string) string {
	w := 0
	if ch != "" {
		w = graphemeutil.Width(ch)
	}
	if w >= cellWidth {
		return ch
	}
	return ch + strings.Repeat(" ", cellWidth-w)
}

// gutterWidth returns the width of the line-number gutter including its
// trailing space, or 0 when line numbers are hidden.
func (m Model) gutterWidth() int {
	if !m.cfg.ShowLineNumbers {
		return 0
	}
	doc := m.state.Document()
	last := doc.PageCount() * doc.Rows()
	return len(strconv.Itoa(last)) + 1
}

func (m Model) rowStride() int {
	if m.cfg.ShowRules {
		return 2
	}
	return 1
}

// screenLineForRow returns the content line grid row r is drawn on.
func (m Model) screenLineForRow(r int) int {
	return r * m.rowStride()
}

func (m Model) contentLineCount() int {
	rows := m.state.Document().Rows()
	if rows <= 0 {
		return 0
	}
	return m.screenLineForRow(rows-1) + 1
}
