package editor

import (
	"log/slog"

	"github.com/iw2rmb/genko/manuscript"
)

const (
	DefaultCols = 20
	DefaultRows = 20
)

// Config configures the editor Model.
type Config struct {
	// Grid size for a new document. Ignored when State is set.
	Cols int
	Rows int

	// Initial session state, e.g. a draft loaded from disk.
	State *manuscript.State

	KeyMap KeyMap
	Style  Style

	ShowLineNumbers bool
	ShowRules       bool
	ShowStatus      bool

	// WidenComposition converts narrow input typed during a built-in
	// composition to fullwidth forms.
	WidenComposition bool

	// ReadOnly disables every mutation; movement, paging and copy still work.
	ReadOnly bool

	Clipboard Clipboard

	// OnChange is called after every effective state transition.
	OnChange func(ChangeEvent)

	Logger *slog.Logger
}

func normalizeConfig(cfg Config) Config {
	if cfg.Cols <= 0 {
		cfg.Cols = DefaultCols
	}
	if cfg.Rows <= 0 {
		cfg.Rows = DefaultRows
	}
	if len(cfg.KeyMap.Left.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return cfg
}
