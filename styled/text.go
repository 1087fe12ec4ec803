package styled

import (
	"fmt"

	"github.com/iw2rmb/richtext/internal/bitseq"
)

type Options struct {
	HistoryLimit int // 0 disables undo/redo
}

// Text is a string-like buffer that tracks styling per byte.
//
// The zero value is an empty buffer ready to use. A Text is not safe for
// concurrent use; callers sharing one across goroutines guard it with a single
// mutex.
type Text struct {
	content []byte
	styles  map[Style]*bitseq.Seq

	version uint64
	layout  uint64

	opt  Options
	hist historyState
}

func New(s string) *Text {
	return NewWithOptions(s, Options{})
}

func NewWithOptions(s string, opt Options) *Text {
	if opt.HistoryLimit < 0 {
		opt.HistoryLimit = 0
	}
	return &Text{content: []byte(s), opt: opt}
}

// Size returns the number of bytes, ignoring all formatting.
func (t *Text) Size() int { return len(t.content) }

func (t *Text) Len() int { return len(t.content) }

func (t *Text) Empty() bool { return len(t.content) == 0 }

// String returns the content as an unformatted string.
func (t *Text) String() string { return string(t.content) }

// Bytes returns a copy of the content.
func (t *Text) Bytes() []byte { return append([]byte(nil), t.content...) }

// Version increases on every mutation of content or styling.
func (t *Text) Version() uint64 { return t.version }

// SetString replaces the content and drops every style.
func (t *Text) SetString(s string) *Text {
	t.touchLayout()
	t.content = []byte(s)
	t.styles = nil
	return t
}

// Resize truncates or zero-pads the content to n bytes. Style sequences longer
// than n are truncated; padding is unstyled and does not grow any sequence.
func (t *Text) Resize(n int) error {
	if n < 0 {
		return posError("Resize", n, len(t.content))
	}
	t.touchLayout()
	if n <= len(t.content) {
		t.content = t.content[:n:n]
	} else {
		t.content = append(t.content, make([]byte, n-len(t.content))...)
	}
	for _, seq := range t.styles {
		if seq.Len() > n {
			seq.Resize(n)
		}
	}
	t.cleanup()
	return nil
}

// Append extends the content with s. Appended bytes carry no style.
func (t *Text) Append(s string) *Text {
	if s == "" {
		return t
	}
	t.touchLayout()
	t.content = append(t.content, s...)
	return t
}

func (t *Text) AppendBytes(b []byte) *Text {
	return t.Append(string(b))
}

// AppendValue appends the default fmt formatting of v.
func (t *Text) AppendValue(v any) *Text {
	switch v := v.(type) {
	case string:
		return t.Append(v)
	case []byte:
		return t.AppendBytes(v)
	default:
		return t.Append(fmt.Sprint(v))
	}
}

func (t *Text) Char(pos int) (byte, error) {
	if pos < 0 || pos >= len(t.content) {
		return 0, posError("Char", pos, len(t.content))
	}
	return t.content[pos], nil
}

// SetChar replaces the byte at pos and leaves its styling untouched.
func (t *Text) SetChar(pos int, c byte) error {
	if pos < 0 || pos >= len(t.content) {
		return posError("SetChar", pos, len(t.content))
	}
	t.touch()
	t.content[pos] = c
	return nil
}

// Clone returns a deep copy of content and styling. History is not copied.
func (t *Text) Clone() *Text {
	return &Text{
		content: t.Bytes(),
		styles:  cloneStyles(t.styles),
		opt:     t.opt,
	}
}

func cloneStyles(in map[Style]*bitseq.Seq) map[Style]*bitseq.Seq {
	if len(in) == 0 {
		return nil
	}
	out := make(map[Style]*bitseq.Seq, len(in))
	for name, seq := range in {
		out[name] = seq.Clone()
	}
	return out
}

// touch records the pre-mutation state and advances the version.
func (t *Text) touch() {
	t.recordUndo()
	t.version++
}

// touchLayout is touch for mutations that change the content size, which
// invalidates outstanding character references.
func (t *Text) touchLayout() {
	t.touch()
	t.layout++
}
