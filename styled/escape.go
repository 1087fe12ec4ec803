package styled

import (
	"fmt"
	"strings"
)

func EscapeHTML(c byte) string {
	switch c {
	case '&':
		return "&amp;"
	case '\'':
		return "&#39;"
	case '<':
		return "&lt;"
	case '>':
		return "&gt;"
	case '"':
		return "&quot;"
	}
	return byteString(c)
}

func EscapeHTMLString(s string) string { return escapeString(s, EscapeHTML) }

func EscapeLaTeX(c byte) string {
	switch c {
	case '\\':
		return `\textbackslash{}`
	case '~':
		return `\textasciitilde{}`
	case '^':
		return `\textasciicircum{}`
	case '{', '}', '$', '&', '#', '_', '%':
		return `\` + byteString(c)
	}
	return byteString(c)
}

// EscapeRTF escapes control characters and writes bytes above 0x7f as \'hh.
func EscapeRTF(c byte) string {
	switch {
	case c == '\\' || c == '{' || c == '}':
		return `\` + byteString(c)
	case c == '\n':
		return "\\line\n"
	case c > 0x7f:
		return fmt.Sprintf(`\'%02x`, c)
	}
	return byteString(c)
}

func EscapeMarkdown(c byte) string {
	switch c {
	case '\\', '*', '_', '`', '~', '[', ']', '#', '<', '>':
		return `\` + byteString(c)
	}
	return byteString(c)
}

// EscapeFor returns the escaper that matches f, or nil when f needs none.
func EscapeFor(f Format) func(c byte) string {
	switch f {
	case FormatHTML:
		return EscapeHTML
	case FormatLaTeX:
		return EscapeLaTeX
	case FormatRTF:
		return EscapeRTF
	case FormatMarkdown:
		return EscapeMarkdown
	}
	return nil
}

func escapeString(s string, esc func(byte) string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		sb.WriteString(esc(s[i]))
	}
	return sb.String()
}

func byteString(c byte) string { return string([]byte{c}) }
