package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl fallbacks for keys some
// terminals do not send).
type KeyMap struct {
	Left, Right, Up, Down key.Binding

	Backspace key.Binding
	Enter     key.Binding

	// Compose starts a built-in composition; ComposeCommit and ComposeCancel
	// finish it.
	Compose, ComposeCommit, ComposeCancel key.Binding

	PrevPage, NextPage  key.Binding
	AddPage, RemovePage key.Binding
	Copy, Paste         key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "paragraph")),

		Compose:       key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "compose")),
		ComposeCommit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "commit")),
		ComposeCancel: key.NewBinding(key.WithKeys("esc", "ctrl+g"), key.WithHelp("esc", "cancel")),

		PrevPage:   key.NewBinding(key.WithKeys("pgup", "ctrl+b"), key.WithHelp("pgup", "previous page")),
		NextPage:   key.NewBinding(key.WithKeys("pgdown", "ctrl+f"), key.WithHelp("pgdn", "next page")),
		AddPage:    key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "add page")),
		RemovePage: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "remove page")),

		Copy:  key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy text")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Compose, k.NextPage, k.Copy}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Backspace, k.Enter, k.Compose, k.ComposeCancel},
		{k.PrevPage, k.NextPage, k.AddPage, k.RemovePage},
		{k.Copy, k.Paste},
	}
}
