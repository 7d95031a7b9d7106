package editor

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/genko/manuscript"
)

// Clipboard provides editor-level clipboard integration.
//
// Failures never touch the document; a failed copy is reported through
// CopyResultMsg and a failed paste is ignored.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// CopyResultMsg reports the outcome of a plain-text copy.
type CopyResultMsg struct {
	Text string
	Err  error
}

// copyCmd exports the committed document and hands it to the clipboard off
// the update loop. There is no retry; the text can always be regenerated.
func (m Model) copyCmd() tea.Cmd {
	if m.cfg.Clipboard == nil {
		return nil
	}
	cb := m.cfg.Clipboard
	text := manuscript.Export(m.state.Document())
	return func() tea.Msg {
		return CopyResultMsg{Text: text, Err: cb.WriteText(text)}
	}
}

// pasteCommands turns clipboard text into commit/newline commands.
func pasteCommands(s string) []manuscript.Command {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	if s == "" {
		return nil
	}
	var cmds []manuscript.Command
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			cmds = append(cmds, manuscript.Newline{})
		}
		if line != "" {
			cmds = append(cmds, manuscript.CommitText{Text: line})
		}
	}
	return cmds
}
