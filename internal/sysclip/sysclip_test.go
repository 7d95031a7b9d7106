package sysclip

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stub(t *testing.T, unsup bool, store *string, err error) {
	t.Helper()
	oldR, oldW, oldU := readAll, writeAll, unsupported
	t.Cleanup(func() { readAll, writeAll, unsupported = oldR, oldW, oldU })

	unsupported = func() bool { return unsup }
	readAll = func() (string, error) { return *store, err }
	writeAll = func(s string) error {
		if err != nil {
			return err
		}
		*store = s
		return nil
	}
}

func TestClipboardRoundTrip(t *testing.T) {
	var store string
	stub(t, false, &store, nil)

	var c Clipboard
	require.NoError(t, c.WriteText("原稿"))
	got, err := c.ReadText()
	require.NoError(t, err)
	assert.Equal(t, "原稿", got)
}

func TestClipboardUnsupported(t *testing.T) {
	var store string
	stub(t, true, &store, nil)

	var c Clipboard
	require.ErrorIs(t, c.WriteText("x"), ErrUnsupported)
	_, err := c.ReadText()
	require.ErrorIs(t, err, ErrUnsupported)
	assert.Empty(t, store)
}

func TestClipboardWriteError(t *testing.T) {
	var store string
	boom := errors.New("xsel: exit status 1")
	stub(t, false, &store, boom)

	var c Clipboard
	require.ErrorIs(t, c.WriteText("x"), boom)
}
