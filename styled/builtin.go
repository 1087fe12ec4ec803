package styled

// Convenience wrappers for the built-in styles. Each delegates to the generic
// style method with a fixed name.

func (t *Text) Bold() *Text        { return t.SetStyle(Bold) }
func (t *Text) Code() *Text        { return t.SetStyle(Code) }
func (t *Text) Italic() *Text      { return t.SetStyle(Italic) }
func (t *Text) Strike() *Text      { return t.SetStyle(Strike) }
func (t *Text) Subscript() *Text   { return t.SetStyle(Subscript) }
func (t *Text) Superscript() *Text { return t.SetStyle(Superscript) }
func (t *Text) Underline() *Text   { return t.SetStyle(Underline) }

func (t *Text) BoldAt(pos int) error        { return t.SetStyleAt(Bold, pos) }
func (t *Text) CodeAt(pos int) error        { return t.SetStyleAt(Code, pos) }
func (t *Text) ItalicAt(pos int) error      { return t.SetStyleAt(Italic, pos) }
func (t *Text) StrikeAt(pos int) error      { return t.SetStyleAt(Strike, pos) }
func (t *Text) SubscriptAt(pos int) error   { return t.SetStyleAt(Subscript, pos) }
func (t *Text) SuperscriptAt(pos int) error { return t.SetStyleAt(Superscript, pos) }
func (t *Text) UnderlineAt(pos int) error   { return t.SetStyleAt(Underline, pos) }

func (t *Text) BoldRange(start, end int) error   { return t.SetStyleRange(Bold, start, end) }
func (t *Text) CodeRange(start, end int) error   { return t.SetStyleRange(Code, start, end) }
func (t *Text) ItalicRange(start, end int) error { return t.SetStyleRange(Italic, start, end) }
func (t *Text) StrikeRange(start, end int) error { return t.SetStyleRange(Strike, start, end) }
func (t *Text) SubscriptRange(start, end int) error {
	return t.SetStyleRange(Subscript, start, end)
}
func (t *Text) SuperscriptRange(start, end int) error {
	return t.SetStyleRange(Superscript, start, end)
}
func (t *Text) UnderlineRange(start, end int) error {
	return t.SetStyleRange(Underline, start, end)
}

func (t *Text) HasBold() bool        { return t.HasStyle(Bold) }
func (t *Text) HasCode() bool        { return t.HasStyle(Code) }
func (t *Text) HasItalic() bool      { return t.HasStyle(Italic) }
func (t *Text) HasStrike() bool      { return t.HasStyle(Strike) }
func (t *Text) HasSubscript() bool   { return t.HasStyle(Subscript) }
func (t *Text) HasSuperscript() bool { return t.HasStyle(Superscript) }
func (t *Text) HasUnderline() bool   { return t.HasStyle(Underline) }

func (t *Text) HasBoldAt(pos int) bool        { return t.HasStyleAt(Bold, pos) }
func (t *Text) HasCodeAt(pos int) bool        { return t.HasStyleAt(Code, pos) }
func (t *Text) HasItalicAt(pos int) bool      { return t.HasStyleAt(Italic, pos) }
func (t *Text) HasStrikeAt(pos int) bool      { return t.HasStyleAt(Strike, pos) }
func (t *Text) HasSubscriptAt(pos int) bool   { return t.HasStyleAt(Subscript, pos) }
func (t *Text) HasSuperscriptAt(pos int) bool { return t.HasStyleAt(Superscript, pos) }
func (t *Text) HasUnderlineAt(pos int) bool   { return t.HasStyleAt(Underline, pos) }

func (t *Text) ClearBold() *Text        { return t.ClearStyle(Bold) }
func (t *Text) ClearCode() *Text        { return t.ClearStyle(Code) }
func (t *Text) ClearItalic() *Text      { return t.ClearStyle(Italic) }
func (t *Text) ClearStrike() *Text      { return t.ClearStyle(Strike) }
func (t *Text) ClearSubscript() *Text   { return t.ClearStyle(Subscript) }
func (t *Text) ClearSuperscript() *Text { return t.ClearStyle(Superscript) }
func (t *Text) ClearUnderline() *Text   { return t.ClearStyle(Underline) }

func (t *Text) ClearBoldAt(pos int) *Text        { return t.ClearStyleAt(Bold, pos) }
func (t *Text) ClearCodeAt(pos int) *Text        { return t.ClearStyleAt(Code, pos) }
func (t *Text) ClearItalicAt(pos int) *Text      { return t.ClearStyleAt(Italic, pos) }
func (t *Text) ClearStrikeAt(pos int) *Text      { return t.ClearStyleAt(Strike, pos) }
func (t *Text) ClearSubscriptAt(pos int) *Text   { return t.ClearStyleAt(Subscript, pos) }
func (t *Text) ClearSuperscriptAt(pos int) *Text { return t.ClearStyleAt(Superscript, pos) }
func (t *Text) ClearUnderlineAt(pos int) *Text   { return t.ClearStyleAt(Underline, pos) }

func (t *Text) ClearBoldRange(start, end int) *Text { return t.ClearStyleRange(Bold, start, end) }
func (t *Text) ClearCodeRange(start, end int) *Text { return t.ClearStyleRange(Code, start, end) }
func (t *Text) ClearItalicRange(start, end int) *Text {
	return t.ClearStyleRange(Italic, start, end)
}
func (t *Text) ClearStrikeRange(start, end int) *Text {
	return t.ClearStyleRange(Strike, start, end)
}
func (t *Text) ClearSubscriptRange(start, end int) *Text {
	return t.ClearStyleRange(Subscript, start, end)
}
func (t *Text) ClearSuperscriptRange(start, end int) *Text {
	return t.ClearStyleRange(Superscript, start, end)
}
func (t *Text) ClearUnderlineRange(start, end int) *Text {
	return t.ClearStyleRange(Underline, start, end)
}
