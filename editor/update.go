package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	graphemeutil "github.com/iw2rmb/genko/internal/grapheme"
	"github.com/iw2rmb/genko/manuscript"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	if m.state.Composing() {
		return m.updateComposeKey(msg)
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.apply(pasteCommands(string(msg.Runes))...)
		}
		return m, nil
	}

	km := m.cfg.KeyMap
	st := m.state

	switch {
	case key.Matches(msg, km.Left):
		m.apply(manuscript.MoveCursor{Dir: manuscript.DirLeft})
	case key.Matches(msg, km.Right):
		m.apply(manuscript.MoveCursor{Dir: manuscript.DirRight})
	case key.Matches(msg, km.Up):
		m.apply(manuscript.MoveCursor{Dir: manuscript.DirUp})
	case key.Matches(msg, km.Down):
		m.apply(manuscript.MoveCursor{Dir: manuscript.DirDown})

	case key.Matches(msg, km.PrevPage):
		m.apply(manuscript.GotoPage{Index: st.PageIndex() - 1})
	case key.Matches(msg, km.NextPage):
		m.apply(manuscript.GotoPage{Index: st.PageIndex() + 1})

	case key.Matches(msg, km.Copy):
		return m, m.copyCmd()

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			m.apply(manuscript.DeleteBackward{})
		}
	case key.Matches(msg, km.Enter):
		if !m.cfg.ReadOnly {
			m.apply(manuscript.Newline{})
		}
	case key.Matches(msg, km.Compose):
		if !m.cfg.ReadOnly {
			m.apply(manuscript.CompositionStart{})
		}
	case key.Matches(msg, km.AddPage):
		if !m.cfg.ReadOnly {
			m.apply(manuscript.AddPage{})
		}
	case key.Matches(msg, km.RemovePage):
		if !m.cfg.ReadOnly {
			m.apply(manuscript.RemovePage{})
		}
	case key.Matches(msg, km.Paste):
		if !m.cfg.ReadOnly {
			m.pasteClipboard()
		}

	default:
		if text, ok := typedText(msg); ok && !m.cfg.ReadOnly {
			m.apply(manuscript.CommitText{Text: text})
		}
	}

	return m, nil
}

// updateComposeKey drives the built-in composition session. Keys outside
// the session's own bindings are dropped.
func (m Model) updateComposeKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	text := m.state.Composition()

	switch {
	case key.Matches(msg, km.ComposeCommit):
		m.apply(manuscript.CompositionEnd{Text: text})
	case key.Matches(msg, km.ComposeCancel):
		m.apply(manuscript.CompositionCancel{})
	case key.Matches(msg, km.Backspace):
		m.apply(manuscript.CompositionUpdate{Text: graphemeutil.TrimLast(text)})
	default:
		if in, ok := typedText(msg); ok {
			if m.cfg.WidenComposition {
				in = graphemeutil.Widen(in)
			}
			m.apply(manuscript.CompositionUpdate{Text: text + in})
		}
	}
	return m, nil
}

// typedText returns the text a key press types, if any.
func typedText(msg tea.KeyMsg) (string, bool) {
	if msg.Alt {
		return "", false
	}
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) > 0 {
			return string(msg.Runes), true
		}
	case tea.KeySpace:
		return " ", true
	}
	return "", false
}

func (m *Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		m.cfg.Logger.Warn("read clipboard", "err", err)
		return
	}
	m.apply(pasteCommands(s)...)
}
