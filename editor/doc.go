// Package editor provides a Bubble Tea component that edits a
// manuscript.State.
//
// The component owns key handling, a built-in composition session for
// terminals without an input method, mouse hit-testing, grid rendering with
// the pending composition overlaid, and the clipboard handoff for plain-text
// export. All document semantics live in package manuscript.
package editor
