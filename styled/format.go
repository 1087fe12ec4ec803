package styled

import (
	"maps"
	"slices"

	"github.com/iw2rmb/richtext/internal/bitseq"
)

func (t *Text) seq(name Style) *bitseq.Seq {
	if t.styles == nil {
		t.styles = make(map[Style]*bitseq.Seq)
	}
	seq, ok := t.styles[name]
	if !ok {
		seq = bitseq.New(0)
		t.styles[name] = seq
	}
	return seq
}

// cleanup removes styles whose sequence has no bit set.
func (t *Text) cleanup() {
	for name, seq := range t.styles {
		if seq.None() {
			delete(t.styles, name)
		}
	}
}

// SetStyle applies name to every current position. It is idempotent.
func (t *Text) SetStyle(name Style) *Text {
	if len(t.content) == 0 {
		return t
	}
	t.touch()
	seq := t.seq(name)
	seq.Resize(len(t.content))
	seq.SetAll()
	return t
}

// SetStyleAt applies name at pos, growing the style's sequence if needed.
func (t *Text) SetStyleAt(name Style, pos int) error {
	if pos < 0 || pos >= len(t.content) {
		return posError("SetStyleAt", pos, len(t.content))
	}
	t.touch()
	seq := t.seq(name)
	seq.Grow(pos + 1)
	seq.Set(pos)
	return nil
}

// SetStyleRange applies name over the inclusive range [start, end].
func (t *Text) SetStyleRange(name Style, start, end int) error {
	if start < 0 || start > end || end >= len(t.content) {
		return rangeError("SetStyleRange", start, end, len(t.content))
	}
	t.touch()
	seq := t.seq(name)
	seq.Grow(end + 1)
	seq.SetRange(start, end+1)
	return nil
}

// ClearAll drops every style.
func (t *Text) ClearAll() *Text {
	if len(t.styles) == 0 {
		return t
	}
	t.touch()
	t.styles = nil
	return t
}

// ClearAt clears every style at pos. Positions no style reaches are a no-op.
func (t *Text) ClearAt(pos int) *Text {
	if !t.anyStyleAt(pos) {
		return t
	}
	t.touch()
	t.clearAt(pos)
	t.cleanup()
	return t
}

func (t *Text) clearAt(pos int) {
	for _, seq := range t.styles {
		seq.Clear(pos)
	}
}

func (t *Text) anyStyleAt(pos int) bool {
	for _, seq := range t.styles {
		if seq.Has(pos) {
			return true
		}
	}
	return false
}

// ClearStyle removes name entirely, whatever its bits.
func (t *Text) ClearStyle(name Style) *Text {
	if _, ok := t.styles[name]; !ok {
		return t
	}
	t.touch()
	delete(t.styles, name)
	return t
}

// ClearStyleAt clears name at pos. A position beyond the style's own
// sequence is already unset, so it is a no-op rather than an error.
func (t *Text) ClearStyleAt(name Style, pos int) *Text {
	return t.ClearStyleRange(name, pos, pos)
}

// ClearStyleRange clears name over the inclusive range [start, end]. end is
// clamped to the style's sequence length, not the buffer size.
func (t *Text) ClearStyleRange(name Style, start, end int) *Text {
	seq, ok := t.styles[name]
	if !ok || start < 0 || start > end || start >= seq.Len() {
		return t
	}
	if end >= seq.Len() {
		end = seq.Len() - 1
	}
	t.touch()
	seq.ClearRange(start, end+1)
	t.cleanup()
	return t
}

// Styles returns every live style name in the buffer, sorted.
//
// Reading the style set also removes entries whose sequence has become empty.
func (t *Text) Styles() []Style {
	t.cleanup()
	return slices.Sorted(maps.Keys(t.styles))
}

// StylesAt returns the sorted style names active at pos. Like Styles, it
// removes empty entries first.
func (t *Text) StylesAt(pos int) []Style {
	t.cleanup()
	var out []Style
	for name, seq := range t.styles {
		if seq.Has(pos) {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}

// HasStyle reports whether name is set at one position or more.
func (t *Text) HasStyle(name Style) bool {
	seq, ok := t.styles[name]
	return ok && seq.Any()
}

func (t *Text) HasStyleAt(name Style, pos int) bool {
	seq, ok := t.styles[name]
	return ok && seq.Has(pos)
}

// Runs returns the maximal half-open ranges where name is set, in order.
func (t *Text) Runs(name Style) []Run {
	seq, ok := t.styles[name]
	if !ok {
		return nil
	}
	var runs []Run
	for i, ok := seq.NextSet(0); ok; i, ok = seq.NextSet(i) {
		end := i + 1
		for end < seq.Len() && seq.Has(end) {
			end++
		}
		runs = append(runs, Run{Start: i, End: end})
		i = end
	}
	return runs
}

// Segments splits the content into maximal stretches with one style set.
// An empty buffer has no segments.
func (t *Text) Segments() []Segment {
	names := t.Styles()
	var out []Segment
	start := 0
	var cur []Style
	for pos := 0; pos <= len(t.content); pos++ {
		var here []Style
		if pos < len(t.content) {
			for _, name := range names {
				if t.styles[name].Has(pos) {
					here = append(here, name)
				}
			}
		}
		if pos > 0 && (pos == len(t.content) || !slices.Equal(here, cur)) {
			out = append(out, Segment{
				Start:  start,
				End:    pos,
				Text:   string(t.content[start:pos]),
				Styles: cur,
			})
			start = pos
		}
		cur = here
	}
	return out
}
