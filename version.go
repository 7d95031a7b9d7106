// Package genko is a manuscript-paper (genkō yōshi) editor: a fixed grid of
// cells per page with line-start punctuation pushed into a per-row overflow
// column. The document model lives in package manuscript and the terminal
// component in package editor.
package genko

import (
	_ "embed"
	"regexp"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Name is the program name used by the CLI and in the record schema.
const Name = "genko"

// Version returns the release version in SemVer form (without `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns Version with a leading `v`.
func VersionTag() string {
	return "v" + Version()
}

// Banner is the one-line identification printed by `genko version`.
func Banner() string {
	v := VersionTag()
	if !IsSemver(Version()) {
		v = "devel"
	}
	return Name + " " + v
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}
