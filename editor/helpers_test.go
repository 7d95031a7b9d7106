package editor

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/genko/manuscript"
)

type memClipboard struct {
	s   string
	err error
}

func (c *memClipboard) ReadText() (string, error) { return c.s, c.err }
func (c *memClipboard) WriteText(s string) error {
	if c.err != nil {
		return c.err
	}
	c.s = s
	return nil
}

func stripANSI(s string) string { return ansi.Strip(s) }

func viewLines(m Model) []string {
	lines := strings.Split(m.View(), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(stripANSI(lines[i]), " ")
	}
	return lines
}

func cellsOf(t *testing.T, m Model) []string {
	t.Helper()
	return m.State().CurrentPage().Cells
}

func overflowOf(t *testing.T, m Model) []string {
	t.Helper()
	return m.State().CurrentPage().Overflow
}

func stateWith(cols, rows int, cmds ...manuscript.Command) *manuscript.State {
	s := manuscript.NewState(cols, rows).ApplyAll(cmds...)
	return &s
}
