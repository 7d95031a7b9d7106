package commands

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/genko/editor"
	"github.com/iw2rmb/genko/manuscript"
	"github.com/iw2rmb/genko/store"
)

type appKeyMap struct {
	Save, SaveQuit, Discard key.Binding
}

func defaultAppKeyMap() appKeyMap {
	return appKeyMap{
		Save:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		SaveQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "save and quit")),
		Discard:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "quit without saving")),
	}
}

// editModel hosts the editor for one named draft and owns saving.
type editModel struct {
	name  string
	store *store.Store
	log   *slog.Logger
	keys  appKeyMap

	editor   editor.Model
	readOnly bool

	savedVersion uint64
	message      string
	err          error
}

func newEditModel(e *env, name string, st manuscript.State, readOnly bool) editModel {
	return editModel{
		name:         name,
		store:        e.store,
		log:          e.log,
		keys:         defaultAppKeyMap(),
		editor:       editor.New(newEditorConfig(e, st, readOnly)),
		readOnly:     readOnly,
		savedVersion: st.Version(),
	}
}

func (m editModel) Init() tea.Cmd { return m.editor.Init() }

func (m editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.editor = m.editor.SetSize(msg.Width, msg.Height-1)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Save):
			m.save()
			return m, nil
		case key.Matches(msg, m.keys.SaveQuit):
			m.save()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Discard) && !m.editor.State().Composing():
			m.log.Info("quit without saving", "name", m.name, "dirty", m.dirty())
			return m, tea.Quit
		}

	case editor.CopyResultMsg:
		if msg.Err != nil {
			m.message = "copy failed: " + msg.Err.Error()
		} else {
			m.message = "copied to clipboard"
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *editModel) save() {
	if m.readOnly {
		m.message = "read-only, not saved"
		return
	}
	st := m.editor.State()
	if err := m.store.Save(m.name, st); err != nil {
		m.err = err
		m.message = "save failed: " + err.Error()
		m.log.Error("save failed", "name", m.name, "err", err)
		return
	}
	m.err = nil
	m.savedVersion = st.Version()
	m.message = "saved " + m.name
	m.log.Info("draft saved", "name", m.name, "version", st.Version())
}

func (m editModel) dirty() bool {
	return m.editor.State().Version() != m.savedVersion
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func (m editModel) View() string {
	title := m.name
	if m.dirty() {
		title += " [+]"
	}
	line := titleStyle.Render(title)
	if m.message != "" {
		line += "  " + messageStyle.Render(m.message)
	}
	return m.editor.View() + "\n" + line
}
