package editor

import "github.com/iw2rmb/genko/manuscript"

// ChangeEvent is passed to Config.OnChange after an effective transition.
type ChangeEvent struct {
	Version   uint64
	Cursor    int
	Page      int
	Pages     int
	Composing bool

	// Change is the transition that produced this state.
	Change manuscript.Change

	// Text is the plain-text export of the committed document.
	Text string
}

func buildChangeEvent(s manuscript.State) ChangeEvent {
	ev := ChangeEvent{
		Version:   s.Version(),
		Cursor:    s.Cursor(),
		Page:      s.PageIndex(),
		Pages:     s.Document().PageCount(),
		Composing: s.Composing(),
		Text:      manuscript.Export(s.Document()),
	}
	ev.Change, _ = s.LastChange()
	return ev
}

// Messages for hosts that own a real input-method surface or drive the
// document directly. Each maps to one manuscript command.
type (
	CompositionStartMsg  struct{}
	CompositionUpdateMsg struct{ Text string }
	CompositionEndMsg    struct{ Text string }
	CompositionCancelMsg struct{}

	SetDimensionsMsg struct{ Cols, Rows int }
	SetPageCountMsg  struct{ N int }
	GotoPageMsg      struct{ Index int }

	// CommandMsg applies an arbitrary manuscript command.
	CommandMsg struct{ Command manuscript.Command }
)

// commandForMsg maps host messages to commands. ok is false for messages
// the editor does not own.
func commandForMsg(msg any) (manuscript.Command, bool) {
	switch msg := msg.(type) {
	case CompositionStartMsg:
		return manuscript.CompositionStart{}, true
	case CompositionUpdateMsg:
		return manuscript.CompositionUpdate{Text: msg.Text}, true
	case CompositionEndMsg:
		return manuscript.CompositionEnd{Text: msg.Text}, true
	case CompositionCancelMsg:
		return manuscript.CompositionCancel{}, true
	case SetDimensionsMsg:
		return manuscript.SetDimensions{Cols: msg.Cols, Rows: msg.Rows}, true
	case SetPageCountMsg:
		return manuscript.SetPageCount{N: msg.N}, true
	case GotoPageMsg:
		return manuscript.GotoPage{Index: msg.Index}, true
	case CommandMsg:
		return msg.Command, msg.Command != nil
	default:
		return nil, false
	}
}
