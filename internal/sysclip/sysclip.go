// Package sysclip adapts the system clipboard to editor.Clipboard.
package sysclip

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available.
var ErrUnsupported = errors.New("sysclip: system clipboard unavailable")

// Indirected for tests.
var (
	readAll     = clipboard.ReadAll
	writeAll    = clipboard.WriteAll
	unsupported = func() bool { return clipboard.Unsupported }
)

// Clipboard reads and writes the system clipboard.
type Clipboard struct{}

func (Clipboard) ReadText() (string, error) {
	if unsupported() {
		return "", ErrUnsupported
	}
	return readAll()
}

func (Clipboard) WriteText(s string) error {
	if unsupported() {
		return ErrUnsupported
	}
	return writeAll(s)
}
