package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/genko/editor"
	"github.com/iw2rmb/genko/manuscript"
	"github.com/iw2rmb/genko/store"
)

const defaultDraft = "draft"

var errReadOnlyResize = errors.New("--read-only cannot be combined with --cols, --rows or --pages")

type editOptions struct {
	cols, rows, pages int
	readOnly          bool
}

func addEdit(topLevel *cobra.Command, e *env) {
	o := &editOptions{}
	cmd := &cobra.Command{
		Use:   "edit [name]",
		Short: "Open a draft in the manuscript editor.",
		Long: `Open a draft in the manuscript editor, creating it when it does not exist.

Keys: ctrl+o composes (enter commits, esc cancels), pgup/pgdown change page,
ctrl+n adds a page, ctrl+x removes it, ctrl+y copies the text,
ctrl+s saves, ctrl+c saves and quits, esc quits without saving.

A --read-only session opens an existing draft and never writes it back.`,
		Example: `
genko edit
genko edit chapter-1 --cols 20 --rows 20
genko edit notes --pages 3
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := defaultDraft
			if len(args) > 0 {
				name = args[0]
			}
			if !store.ValidName(name) {
				return fmt.Errorf("%w: %q", store.ErrInvalidName, name)
			}

			resize := cmd.Flags().Changed("cols") || cmd.Flags().Changed("rows")
			if o.readOnly && (resize || o.pages > 0) {
				return errReadOnlyResize
			}

			st, base, err := e.openState(name, o, resize)
			if err != nil {
				return err
			}

			m := newEditModel(e, name, st, o.readOnly)
			m.savedVersion = base
			final, err := e.run(m)
			if err != nil {
				return err
			}
			if fm, ok := final.(editModel); ok {
				return fm.err
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&o.cols, "cols", 0, "Cells per row (default from config).")
	cmd.Flags().IntVar(&o.rows, "rows", 0, "Rows per page (default from config).")
	cmd.Flags().IntVar(&o.pages, "pages", 0, "Resize the draft to this many pages.")
	cmd.Flags().BoolVar(&o.readOnly, "read-only", false, "Open without allowing edits.")

	topLevel.AddCommand(cmd)
}

// openState loads name or starts a new draft, then applies the size flags.
// Resizing an existing draft reflows it like any other dimension change.
// base is the version matching what is on disk, before any flag applied;
// a read-only session never starts a new draft.
func (e *env) openState(name string, o *editOptions, resize bool) (st manuscript.State, base uint64, err error) {
	cols, rows := e.cfg.Cols, e.cfg.Rows
	if o.cols > 0 {
		cols = o.cols
	}
	if o.rows > 0 {
		rows = o.rows
	}

	st, err = e.store.Load(name)
	switch {
	case errors.Is(err, store.ErrNotFound) && o.readOnly:
		return manuscript.State{}, 0, err
	case errors.Is(err, store.ErrNotFound):
		e.log.Info("new draft", "name", name, "cols", cols, "rows", rows)
		st = manuscript.NewState(cols, rows)
		resize = false
	case err != nil:
		return manuscript.State{}, 0, err
	}
	base = st.Version()

	if resize {
		doc := st.Document()
		if o.cols <= 0 {
			cols = doc.Cols()
		}
		if o.rows <= 0 {
			rows = doc.Rows()
		}
		st = st.Apply(manuscript.SetDimensions{Cols: cols, Rows: rows})
	}
	if o.pages > 0 {
		st = st.Apply(manuscript.SetPageCount{N: o.pages})
	}
	return st, base, nil
}

func newEditorConfig(e *env, st manuscript.State, readOnly bool) editor.Config {
	return editor.Config{
		State:            &st,
		Style:            editor.DefaultStyle(),
		ShowLineNumbers:  true,
		ShowStatus:       true,
		WidenComposition: e.cfg.Widen,
		ReadOnly:         readOnly,
		Clipboard:        e.clip,
		Logger:           e.log,
	}
}
