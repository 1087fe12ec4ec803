package styled

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Tag is the markup placed around a styled run.
type Tag struct {
	Open  string
	Close string
}

// TagTable maps style names to their markup for one export format.
type TagTable map[Style]Tag

// With returns a copy of tt that also maps name to tag.
func (tt TagTable) With(name Style, tag Tag) TagTable {
	out := maps.Clone(tt)
	if out == nil {
		out = make(TagTable, 1)
	}
	out[name] = tag
	return out
}

type Format string

const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
	FormatLaTeX    Format = "latex"
	FormatRTF      Format = "rtf"
	FormatBBCode   Format = "bbcode"
)

var tagTables = map[Format]TagTable{
	FormatHTML: {
		Bold:        {"<b>", "</b>"},
		Code:        {"<code>", "</code>"},
		Italic:      {"<i>", "</i>"},
		Strike:      {"<del>", "</del>"},
		Subscript:   {"<sub>", "</sub>"},
		Superscript: {"<sup>", "</sup>"},
		Underline:   {"<u>", "</u>"},
	},
	FormatMarkdown: {
		Bold:        {"**", "**"},
		Code:        {"`", "`"},
		Italic:      {"*", "*"},
		Strike:      {"~~", "~~"},
		Subscript:   {"<sub>", "</sub>"},
		Superscript: {"<sup>", "</sup>"},
		Underline:   {"<u>", "</u>"},
	},
	FormatLaTeX: {
		Bold:        {`\textbf{`, "}"},
		Code:        {`\texttt{`, "}"},
		Italic:      {`\textit{`, "}"},
		Strike:      {`\sout{`, "}"},
		Subscript:   {`\textsubscript{`, "}"},
		Superscript: {`\textsuperscript{`, "}"},
		Underline:   {`\underline{`, "}"},
	},
	FormatRTF: {
		Bold:        {`{\b `, "}"},
		Code:        {`{\f1 `, "}"},
		Italic:      {`{\i `, "}"},
		Strike:      {`{\strike `, "}"},
		Subscript:   {`{\sub `, "}"},
		Superscript: {`{\super `, "}"},
		Underline:   {`{\ul `, "}"},
	},
	FormatBBCode: {
		Bold:        {"[b]", "[/b]"},
		Code:        {"[code]", "[/code]"},
		Italic:      {"[i]", "[/i]"},
		Strike:      {"[s]", "[/s]"},
		Subscript:   {"[sub]", "[/sub]"},
		Superscript: {"[sup]", "[/sup]"},
		Underline:   {"[u]", "[/u]"},
	},
}

// Formats lists the built-in export formats in name order.
func Formats() []Format { return slices.Sorted(maps.Keys(tagTables)) }

// Tags returns a copy of the built-in tag table for f.
func Tags(f Format) (TagTable, bool) {
	tt, ok := tagTables[f]
	if !ok {
		return nil, false
	}
	return maps.Clone(tt), true
}

// ClassSpan returns an HTML span tag carrying the style name as its class,
// for custom styles the HTML table does not know.
func ClassSpan(name Style) Tag {
	return Tag{Open: `<span class="` + EscapeHTMLString(string(name)) + `">`, Close: "</span>"}
}

// Exporter renders a Text into one markup format.
type Exporter struct {
	Format Format
	Tags   TagTable
	// Escape, when set, replaces content bytes on output. Nil writes every
	// byte unchanged.
	Escape func(c byte) string
	// Fallback supplies tags for styles missing from Tags. Styles with no tag
	// from either source are exported without markup.
	Fallback func(name Style) (Tag, bool)
}

// NewExporter returns the built-in, non-escaping exporter for f.
func NewExporter(f Format) (Exporter, error) {
	tt, ok := Tags(f)
	if !ok {
		return Exporter{}, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	return Exporter{Format: f, Tags: tt}, nil
}

func (e Exporter) tag(name Style) (Tag, bool) {
	if tag, ok := e.Tags[name]; ok {
		return tag, true
	}
	if e.Fallback != nil {
		return e.Fallback(name)
	}
	return Tag{}, false
}

// Export renders t. For each style, an open tag goes where its run starts and
// a close tag where it ends; a run reaching the end of the style's sequence
// closes there. Tags meeting at one position are emitted in style-name order.
// Partially overlapping styles are not re-nested.
func (e Exporter) Export(t *Text) string {
	inserts := make(map[int]string)
	for _, name := range t.Styles() {
		tag, ok := e.tag(name)
		if !ok {
			continue
		}
		for _, run := range t.Runs(name) {
			inserts[run.Start] += tag.Open
			inserts[run.End] += tag.Close
		}
	}

	var sb strings.Builder
	sb.Grow(len(t.content) + 16*len(inserts))
	copied := 0
	for _, pos := range slices.Sorted(maps.Keys(inserts)) {
		e.write(&sb, t.content[copied:pos])
		sb.WriteString(inserts[pos])
		copied = pos
	}
	e.write(&sb, t.content[copied:])
	return sb.String()
}

func (e Exporter) write(sb *strings.Builder, b []byte) {
	if e.Escape == nil {
		sb.Write(b)
		return
	}
	for _, c := range b {
		sb.WriteString(e.Escape(c))
	}
}

func (t *Text) exportAs(f Format) string {
	return Exporter{Format: f, Tags: tagTables[f]}.Export(t)
}

// HTML renders t with the built-in HTML tags. Content is not escaped.
func (t *Text) HTML() string     { return t.exportAs(FormatHTML) }
func (t *Text) Markdown() string { return t.exportAs(FormatMarkdown) }
func (t *Text) LaTeX() string    { return t.exportAs(FormatLaTeX) }
func (t *Text) RTF() string      { return t.exportAs(FormatRTF) }
func (t *Text) BBCode() string   { return t.exportAs(FormatBBCode) }
