package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text     lipgloss.Style
	Cursor   lipgloss.Style
	Pending  lipgloss.Style
	Overflow lipgloss.Style
	Rule     lipgloss.Style
	Status   lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Cursor:        lipgloss.NewStyle().Background(lipgloss.Color("153")).Foreground(lipgloss.Color("0")),
		Pending:       lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
		Overflow:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Rule:          lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
