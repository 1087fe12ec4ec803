package styled

import "cmp"

// Char is the read side shared by both reference flavours. Either may be the
// source of CharRef.Assign.
type Char interface {
	Pos() int
	Byte() (byte, error)
	Styles() ([]Style, error)
}

// CharRef is a writable handle to one position of a Text.
//
// It holds no storage of its own: every access goes back through the owning
// buffer's bounds-checked accessors. A CharRef taken before a size change
// (Resize, Append, Insert, Delete, SetString, Undo, Redo) reports ErrStaleRef.
type CharRef struct {
	t      *Text
	pos    int
	layout uint64
}

// ConstCharRef is the read-only handle. It has no mutators.
type ConstCharRef struct {
	t      *Text
	pos    int
	layout uint64
}

// At returns a writable reference to pos.
func (t *Text) At(pos int) (CharRef, error) {
	if pos < 0 || pos >= len(t.content) {
		return CharRef{}, posError("At", pos, len(t.content))
	}
	return CharRef{t: t, pos: pos, layout: t.layout}, nil
}

// MustAt is At that panics on an out-of-range position.
func (t *Text) MustAt(pos int) CharRef {
	r, err := t.At(pos)
	if err != nil {
		panic(err)
	}
	return r
}

// View returns a read-only reference to pos.
func (t *Text) View(pos int) (ConstCharRef, error) {
	if pos < 0 || pos >= len(t.content) {
		return ConstCharRef{}, posError("View", pos, len(t.content))
	}
	return ConstCharRef{t: t, pos: pos, layout: t.layout}, nil
}

func checkRef(t *Text, pos int, layout uint64) error {
	if t == nil || t.layout != layout {
		return ErrStaleRef
	}
	if pos >= len(t.content) {
		return posError("CharRef", pos, len(t.content))
	}
	return nil
}

func (r CharRef) Pos() int { return r.pos }

func (r CharRef) Text() *Text { return r.t }

// Const returns the read-only view of the same position.
func (r CharRef) Const() ConstCharRef {
	return ConstCharRef{t: r.t, pos: r.pos, layout: r.layout}
}

func (r CharRef) Byte() (byte, error) {
	if err := checkRef(r.t, r.pos, r.layout); err != nil {
		return 0, err
	}
	return r.t.content[r.pos], nil
}

// Set replaces the byte and keeps the styling of the position.
func (r CharRef) Set(c byte) error {
	if err := checkRef(r.t, r.pos, r.layout); err != nil {
		return err
	}
	return r.t.SetChar(r.pos, c)
}

// Assign copies both the byte and the complete style set of src into r.
// src may be a ConstCharRef: only the destination has to be writable.
func (r CharRef) Assign(src Char) error {
	if err := checkRef(r.t, r.pos, r.layout); err != nil {
		return err
	}
	c, err := src.Byte()
	if err != nil {
		return err
	}
	styles, err := src.Styles()
	if err != nil {
		return err
	}

	t := r.t
	t.touch()
	t.content[r.pos] = c
	t.clearAt(r.pos)
	for _, name := range styles {
		seq := t.seq(name)
		seq.Grow(r.pos + 1)
		seq.Set(r.pos)
	}
	t.cleanup()
	return nil
}

func (r CharRef) Styles() ([]Style, error) {
	if err := checkRef(r.t, r.pos, r.layout); err != nil {
		return nil, err
	}
	return r.t.StylesAt(r.pos), nil
}

func (r CharRef) HasStyle(name Style) (bool, error) {
	if err := checkRef(r.t, r.pos, r.layout); err != nil {
		return false, err
	}
	return r.t.HasStyleAt(name, r.pos), nil
}

func (r CharRef) SetStyle(name Style) error {
	if err := checkRef(r.t, r.pos, r.layout); err != nil {
		return err
	}
	return r.t.SetStyleAt(name, r.pos)
}

func (r CharRef) ClearStyle(name Style) error {
	if err := checkRef(r.t, r.pos, r.layout); err != nil {
		return err
	}
	r.t.ClearStyleAt(name, r.pos)
	return nil
}

// Compare orders by byte value only; styling is ignored.
func (r CharRef) Compare(o Char) (int, error) { return compareChars(r, o) }

func (r CharRef) Equal(o Char) (bool, error) {
	c, err := compareChars(r, o)
	return c == 0, err
}

func (r CharRef) CompareByte(c byte) (int, error) { return compareByte(r, c) }

func (r CharRef) IsBold() (bool, error)        { return r.HasStyle(Bold) }
func (r CharRef) IsCode() (bool, error)        { return r.HasStyle(Code) }
func (r CharRef) IsItalic() (bool, error)      { return r.HasStyle(Italic) }
func (r CharRef) IsStrike() (bool, error)      { return r.HasStyle(Strike) }
func (r CharRef) IsSubscript() (bool, error)   { return r.HasStyle(Subscript) }
func (r CharRef) IsSuperscript() (bool, error) { return r.HasStyle(Superscript) }
func (r CharRef) IsUnderline() (bool, error)   { return r.HasStyle(Underline) }

func (r CharRef) Bold() error        { return r.SetStyle(Bold) }
func (r CharRef) Code() error        { return r.SetStyle(Code) }
func (r CharRef) Italic() error      { return r.SetStyle(Italic) }
func (r CharRef) Strike() error      { return r.SetStyle(Strike) }
func (r CharRef) Subscript() error   { return r.SetStyle(Subscript) }
func (r CharRef) Superscript() error { return r.SetStyle(Superscript) }
func (r CharRef) Underline() error   { return r.SetStyle(Underline) }

func (r ConstCharRef) Pos() int { return r.pos }

func (r ConstCharRef) Byte() (byte, error) {
	if err := checkRef(r.t, r.pos, r.layout); err != nil {
		return 0, err
	}
	return r.t.content[r.pos], nil
}

func (r ConstCharRef) Styles() ([]Style, error) {
	if err := checkRef(r.t, r.pos, r.layout); err != nil {
		return nil, err
	}
	return r.t.StylesAt(r.pos), nil
}

func (r ConstCharRef) HasStyle(name Style) (bool, error) {
	if err := checkRef(r.t, r.pos, r.layout); err != nil {
		return false, err
	}
	return r.t.HasStyleAt(name, r.pos), nil
}

func (r ConstCharRef) Compare(o Char) (int, error) { return compareChars(r, o) }

func (r ConstCharRef) Equal(o Char) (bool, error) {
	c, err := compareChars(r, o)
	return c == 0, err
}

func (r ConstCharRef) CompareByte(c byte) (int, error) { return compareByte(r, c) }

func compareChars(a, b Char) (int, error) {
	x, err := a.Byte()
	if err != nil {
		return 0, err
	}
	y, err := b.Byte()
	if err != nil {
		return 0, err
	}
	return cmp.Compare(x, y), nil
}

func compareByte(a Char, c byte) (int, error) {
	x, err := a.Byte()
	if err != nil {
		return 0, err
	}
	return cmp.Compare(x, c), nil
}
