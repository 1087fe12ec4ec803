package styled

import "slices"

// Style names a boolean attribute that can be toggled per character.
//
// The built-in constants cover the formats every exporter knows; any other
// name is a custom style and follows the same code path.
type Style string

const (
	Bold        Style = "bold"
	Code        Style = "code"
	Italic      Style = "italic"
	Strike      Style = "strike"
	Subscript   Style = "subscript"
	Superscript Style = "superscript"
	Underline   Style = "underline"
)

var builtins = []Style{Bold, Code, Italic, Strike, Subscript, Superscript, Underline}

// Builtins returns the built-in styles in name order.
func Builtins() []Style { return slices.Clone(builtins) }

func (s Style) String() string { return string(s) }

// Run is a half-open range [Start, End) where a style is continuously set.
type Run struct {
	Start int
	End   int
}

// Segment is a maximal stretch of bytes sharing one style set.
type Segment struct {
	Start  int
	End    int
	Text   string
	Styles []Style
}
