// Package styled implements a byte-accurate text buffer that carries
// per-character style annotations and exports them to markup formats.
//
// Positions are 0-based byte offsets. Style ranges passed to SetStyleRange and
// ClearStyleRange are inclusive: [start, end]. Edit ranges (Delete, Slice) are
// half-open: [start, end).
package styled
