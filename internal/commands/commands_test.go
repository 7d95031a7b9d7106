package commands

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/genko"
	"github.com/iw2rmb/genko/internal/config"
	"github.com/iw2rmb/genko/manuscript"
	"github.com/iw2rmb/genko/store"
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

func testEnv(t *testing.T) *env {
	t.Helper()
	return &env{
		cfg:   config.Config{Cols: 4, Rows: 3, Widen: true},
		log:   slog.New(slog.DiscardHandler),
		store: store.New(t.TempDir(), nil),
		clip:  &memClipboard{},
		run: func(m tea.Model) (tea.Model, error) {
			return m, nil
		},
	}
}

func execute(t *testing.T, e *env, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRoot(e)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, testEnv(t), "version")
	require.NoError(t, err)
	assert.Equal(t, genko.Banner()+"\n", out)

	out, _, err = execute(t, testEnv(t), "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, genko.Version()+"\n", out)
}

func TestExport(t *testing.T) {
	e := testEnv(t)
	require.NoError(t, e.store.Save("ch1", manuscript.NewState(2, 2).Apply(manuscript.CommitText{Text: "あい。う"})))

	out, _, err := execute(t, e, "export", "ch1")
	require.NoError(t, err)
	assert.Equal(t, "あい。\nう\n", out)

	_, _, err = execute(t, e, "export", "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestCopy(t *testing.T) {
	e := testEnv(t)
	require.NoError(t, e.store.Save("ch1", manuscript.NewState(2, 1).Apply(manuscript.CommitText{Text: "あい"})))

	out, _, err := execute(t, e, "copy", "ch1")
	require.NoError(t, err)
	assert.Contains(t, out, "copied ch1 (2 characters)")
	assert.Equal(t, "あい", e.clip.(*memClipboard).s)
}

func TestCopyFailureIsReported(t *testing.T) {
	e := testEnv(t)
	boom := errors.New("no clipboard utility")
	e.clip = &memClipboard{err: boom}
	require.NoError(t, e.store.Save("ch1", manuscript.NewState(2, 1)))

	_, errOut, err := execute(t, e, "copy", "ch1")
	require.ErrorIs(t, err, boom)
	assert.Contains(t, errOut, "no clipboard utility")
}

func TestListAndRemove(t *testing.T) {
	e := testEnv(t)

	out, _, err := execute(t, e, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "no drafts")

	require.NoError(t, e.store.Save("b", manuscript.NewState(2, 2).Apply(manuscript.CommitText{Text: "あ"})))
	require.NoError(t, e.store.Save("a", manuscript.NewState(20, 20)))

	out, _, err = execute(t, e, "list")
	require.NoError(t, err)
	lines := bytes.Split(bytes.TrimSpace([]byte(out)), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Contains(t, string(lines[0]), "NAME")
	assert.Contains(t, string(lines[1]), "20x20")
	assert.Contains(t, string(lines[2]), "2x2")

	out, _, err = execute(t, e, "rm", "a", "b")
	require.NoError(t, err)
	assert.Contains(t, out, "removed a")
	assert.Contains(t, out, "removed b")
	assert.Empty(t, e.store.List(t.Context()))

	_, _, err = execute(t, e, "rm", "a")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestEditCreatesDraftWithConfigSize(t *testing.T) {
	e := testEnv(t)
	var got manuscript.State
	e.run = func(m tea.Model) (tea.Model, error) {
		em := m.(editModel)
		got = em.editor.State()
		next, _ := em.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		return next, nil
	}

	_, _, err := execute(t, e, "edit")
	require.NoError(t, err)
	assert.Equal(t, 4, got.Document().Cols())
	assert.Equal(t, 3, got.Document().Rows())
	assert.True(t, e.store.Has(defaultDraft))
}

func TestEditResizesExistingDraft(t *testing.T) {
	e := testEnv(t)
	require.NoError(t, e.store.Save("ch1", manuscript.NewState(4, 2).Apply(manuscript.CommitText{Text: "あいうえお"})))

	var got manuscript.State
	e.run = func(m tea.Model) (tea.Model, error) {
		got = m.(editModel).editor.State()
		return m, nil
	}

	_, _, err := execute(t, e, "edit", "ch1", "--cols", "2", "--pages", "2")
	require.NoError(t, err)
	doc := got.Document()
	assert.Equal(t, 2, doc.Cols())
	assert.Equal(t, 2, doc.Rows())
	assert.Equal(t, 2, doc.PageCount())
	// Linear reflow keeps the first cols*rows cells of each page.
	assert.Equal(t, "あい\nうえ\n\n\n", manuscript.Export(doc))
}

func TestEditReadOnlyLeavesDraftOnDisk(t *testing.T) {
	e := testEnv(t)
	require.NoError(t, e.store.Save("ch1", manuscript.NewState(4, 2).Apply(manuscript.CommitText{Text: "あいうえおか"})))
	e.run = func(m tea.Model) (tea.Model, error) {
		em := m.(editModel)
		next, _ := em.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
		next, _ = next.(editModel).Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		return next, nil
	}

	_, _, err := execute(t, e, "edit", "ch1", "--read-only")
	require.NoError(t, err)

	got, err := e.store.Load("ch1")
	require.NoError(t, err)
	assert.Equal(t, 4, got.Document().Cols())
	assert.Equal(t, "あいうえ\nおか", manuscript.Export(got.Document()))
}

func TestEditReadOnlyRejectsResizeFlags(t *testing.T) {
	for _, args := range [][]string{
		{"--cols", "2"},
		{"--rows", "1"},
		{"--pages", "2"},
	} {
		t.Run(args[0], func(t *testing.T) {
			e := testEnv(t)
			require.NoError(t, e.store.Save("ch1", manuscript.NewState(4, 2).Apply(manuscript.CommitText{Text: "あいうえおか"})))
			ran := false
			e.run = func(m tea.Model) (tea.Model, error) {
				ran = true
				return m, nil
			}

			_, _, err := execute(t, e, append([]string{"edit", "ch1", "--read-only"}, args...)...)
			require.ErrorIs(t, err, errReadOnlyResize)
			assert.False(t, ran)

			got, err := e.store.Load("ch1")
			require.NoError(t, err)
			assert.Equal(t, 4, got.Document().Cols())
			assert.Equal(t, 1, got.Document().PageCount())
		})
	}
}

func TestEditReadOnlyMissingDraft(t *testing.T) {
	e := testEnv(t)
	_, _, err := execute(t, e, "edit", "fresh", "--read-only")
	require.ErrorIs(t, err, store.ErrNotFound)
	assert.False(t, e.store.Has("fresh"))
}

func TestEditResizedDraftStartsDirty(t *testing.T) {
	e := testEnv(t)
	require.NoError(t, e.store.Save("ch1", manuscript.NewState(4, 2).Apply(manuscript.CommitText{Text: "あいうえお"})))

	var dirty, plainDirty bool
	e.run = func(m tea.Model) (tea.Model, error) {
		dirty = m.(editModel).dirty()
		return m, nil
	}
	_, _, err := execute(t, e, "edit", "ch1", "--pages", "2")
	require.NoError(t, err)
	assert.True(t, dirty)

	e.run = func(m tea.Model) (tea.Model, error) {
		plainDirty = m.(editModel).dirty()
		return m, nil
	}
	_, _, err = execute(t, e, "edit", "ch1")
	require.NoError(t, err)
	assert.False(t, plainDirty)
}

func TestEditRejectsInvalidName(t *testing.T) {
	_, _, err := execute(t, testEnv(t), "edit", "../x")
	require.ErrorIs(t, err, store.ErrInvalidName)
}

func TestEditReturnsSaveError(t *testing.T) {
	e := testEnv(t)
	boom := errors.New("disk full")
	e.run = func(m tea.Model) (tea.Model, error) {
		em := m.(editModel)
		em.err = boom
		return em, nil
	}

	_, _, err := execute(t, e, "edit", "x")
	require.ErrorIs(t, err, boom)
}
