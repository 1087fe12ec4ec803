// Package grapheme maps grapheme-cluster indices onto byte offsets so callers
// can address user-perceived characters in byte-indexed text.
package grapheme

import "github.com/rivo/uniseg"

// Offsets returns the byte offset where each grapheme cluster of text starts.
func Offsets(text string) []int {
	if text == "" {
		return nil
	}
	out := make([]int, 0, len(text))
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		from, _ := g.Positions()
		out = append(out, from)
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	return uniseg.GraphemeClusterCount(text)
}

// ByteRange converts the inclusive cluster range [start, end] to the inclusive
// byte range covering those clusters. ok is false when the range is reversed
// or falls outside text.
func ByteRange(text string, start, end int) (from, to int, ok bool) {
	offs := Offsets(text)
	if start < 0 || start > end || end >= len(offs) {
		return 0, 0, false
	}
	from = offs[start]
	if end+1 < len(offs) {
		to = offs[end+1] - 1
	} else {
		to = len(text) - 1
	}
	return from, to, true
}
