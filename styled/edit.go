package styled

import (
	"slices"

	"github.com/iw2rmb/richtext/internal/bitseq"
)

// Insert inserts s before pos. Inserted bytes are unstyled; styled bytes at or
// after pos move right with their styles.
func (t *Text) Insert(pos int, s string) error {
	if pos < 0 || pos > len(t.content) {
		return posError("Insert", pos, len(t.content))
	}
	if s == "" {
		return nil
	}
	t.touchLayout()
	t.content = slices.Insert(t.content, pos, []byte(s)...)
	for _, seq := range t.styles {
		seq.InsertAt(pos, len(s))
	}
	return nil
}

// Delete removes the half-open range [start, end) together with its styling.
func (t *Text) Delete(start, end int) error {
	if start < 0 || start > end || end > len(t.content) {
		return rangeError("Delete", start, end, len(t.content))
	}
	if start == end {
		return nil
	}
	t.touchLayout()
	t.content = slices.Delete(t.content, start, end)
	for _, seq := range t.styles {
		seq.DeleteRange(start, end)
	}
	t.cleanup()
	return nil
}

// Slice returns a new Text holding [start, end) with its styling.
func (t *Text) Slice(start, end int) (*Text, error) {
	if start < 0 || start > end || end > len(t.content) {
		return nil, rangeError("Slice", start, end, len(t.content))
	}
	out := &Text{content: slices.Clone(t.content[start:end]), opt: t.opt}
	for name, seq := range t.styles {
		n := min(seq.Len(), end) - start
		if n <= 0 {
			continue
		}
		part := bitseq.New(n)
		for i, ok := seq.NextSet(start); ok && i < start+n; i, ok = seq.NextSet(i + 1) {
			part.Set(i - start)
		}
		if part.Any() {
			if out.styles == nil {
				out.styles = make(map[Style]*bitseq.Seq)
			}
			out.styles[name] = part
		}
	}
	return out, nil
}

// AppendText appends o's content and styling.
func (t *Text) AppendText(o *Text) *Text {
	if o == nil || len(o.content) == 0 {
		return t
	}
	if o == t {
		o = t.Clone()
	}
	t.touchLayout()
	offset := len(t.content)
	t.content = append(t.content, o.content...)
	for name, src := range o.styles {
		if src.None() {
			continue
		}
		dst := t.seq(name)
		dst.Grow(offset + src.Len())
		src.Each(func(i int) { dst.Set(offset + i) })
	}
	return t
}
