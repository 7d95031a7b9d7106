package editor

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/genko/manuscript"
)

// Model is a Bubble Tea component that renders and edits one manuscript
// session. It is a value type: Update returns the next Model.
type Model struct {
	cfg   Config
	state manuscript.State

	focused bool

	viewport viewport.Model

	lastVersion uint64
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)

	st := manuscript.NewState(cfg.Cols, cfg.Rows)
	if cfg.State != nil {
		st = *cfg.State
	}

	m := Model{
		cfg:      cfg,
		state:    st,
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastVersion = st.Version()
	m.rebuildContent()
	return m
}

// State returns the current session state.
func (m Model) State() manuscript.State { return m.state }

// SetState replaces the session state without firing OnChange.
func (m Model) SetState(s manuscript.State) Model {
	m.state = s
	m.lastVersion = s.Version()
	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if m.cfg.ShowStatus && height > 0 {
		height--
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case CopyResultMsg:
		if msg.Err != nil {
			m.cfg.Logger.Warn("copy to clipboard failed", "err", msg.Err)
		} else {
			m.cfg.Logger.Debug("copied to clipboard", "chars", len(msg.Text))
		}
		return m, nil
	}

	if cmd, ok := commandForMsg(msg); ok {
		if m.cfg.ReadOnly && mutates(cmd) {
			return m, nil
		}
		m.apply(cmd)
	}
	return m, nil
}

func (m Model) View() string {
	if !m.cfg.ShowStatus {
		return m.viewport.View()
	}
	return m.viewport.View() + "\n" + m.renderStatus()
}

// apply runs cmds in order and reports each effective transition.
func (m *Model) apply(cmds ...manuscript.Command) {
	for _, cmd := range cmds {
		m.state = m.state.Apply(cmd)
		m.sync()
	}
}

func (m *Model) sync() {
	ver := m.state.Version()
	if ver == m.lastVersion {
		return
	}
	m.lastVersion = ver
	m.rebuildContent()
	m.followCursor()

	if ch, ok := m.state.LastChange(); ok {
		m.cfg.Logger.Debug("apply",
			"command", fmt.Sprintf("%T", ch.Command),
			"version", ver,
			"cursor", m.state.Cursor(),
			"page", m.state.PageIndex(),
		)
	}
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.state))
	}
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

// followCursor scrolls the viewport so the cursor row is visible.
func (m *Model) followCursor() {
	h := m.visibleRowCount()
	if h <= 0 {
		return
	}
	row, _ := m.state.CursorRowCol()
	line := m.screenLineForRow(row)

	y := m.viewport.YOffset
	if line < y {
		m.viewport.SetYOffset(line)
		return
	}
	if line >= y+h {
		m.viewport.SetYOffset(line - h + 1)
	}
}

// mutates reports whether cmd can change document content or composition.
func mutates(cmd manuscript.Command) bool {
	switch cmd.(type) {
	case manuscript.MoveCursor, manuscript.SetCursor, manuscript.GotoPage:
		return false
	default:
		return true
	}
}
