// Package grapheme splits text into user-perceived characters and measures
// them in terminal cells.
package grapheme

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"golang.org/x/text/width"
)

// Split returns the grapheme clusters of text in order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// TrimLast drops the final grapheme cluster of text.
func TrimLast(text string) string {
	clusters := Split(text)
	if len(clusters) == 0 {
		return ""
	}
	n := 0
	for _, c := range clusters[:len(clusters)-1] {
		n += len(c)
	}
	return text[:n]
}

// Width returns the terminal cell width of a cluster.
func Width(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		return 0
	}
	return w
}

// Widen maps narrow forms to their fullwidth counterparts (ASCII letters,
// digits, halfwidth katakana). Other text passes through unchanged.
func Widen(text string) string {
	if text == "" {
		return ""
	}
	return width.Widen.String(text)
}
