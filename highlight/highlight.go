// Package highlight applies syntax-highlighting styles to a styled.Text.
//
// Source is tokenised with a chroma lexer and each token whose type matches a
// Rule receives that rule's style. Keywords and comments map onto built-in
// styles; other token classes use custom style names that exporters can tag
// through a TagTable entry or a fallback.
package highlight

import (
	"errors"
	"fmt"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/iw2rmb/richtext/styled"
)

var ErrUnknownLanguage = errors.New("unknown language")

const (
	StyleString   styled.Style = "string"
	StyleNumber   styled.Style = "number"
	StyleFunction styled.Style = "function"
)

// Rule styles every token of Type. A Type that names a whole category
// (chroma.Keyword) or subcategory (chroma.LiteralString) matches its members.
type Rule struct {
	Type  chroma.TokenType
	Style styled.Style
}

func DefaultRules() []Rule {
	return []Rule{
		{Type: chroma.Keyword, Style: styled.Bold},
		{Type: chroma.Comment, Style: styled.Italic},
		{Type: chroma.LiteralString, Style: StyleString},
		{Type: chroma.LiteralNumber, Style: StyleNumber},
		{Type: chroma.NameFunction, Style: StyleFunction},
	}
}

// Apply highlights t as source code in language using DefaultRules.
func Apply(t *styled.Text, language string) error {
	lexer := lexers.Get(language)
	if lexer == nil {
		return fmt.Errorf("%w: %q", ErrUnknownLanguage, language)
	}
	return ApplyWith(t, lexer, DefaultRules())
}

// ApplyWith highlights t with an explicit lexer and rule set. The first
// matching rule wins.
func ApplyWith(t *styled.Text, lexer chroma.Lexer, rules []Rule) error {
	// EnsureLF stays off: rewriting "\r\n" would shift every later offset.
	it, err := chroma.Coalesce(lexer).Tokenise(&chroma.TokeniseOptions{State: "root"}, t.String())
	if err != nil {
		return fmt.Errorf("tokenise: %w", err)
	}

	size := t.Size()
	pos := 0
	for tok := it(); tok != chroma.EOF; tok = it() {
		start := pos
		pos += len(tok.Value)
		// Some lexers append a trailing newline that is not in the text.
		end := min(pos, size)
		if start >= end {
			continue
		}
		style, ok := match(tok.Type, rules)
		if !ok {
			continue
		}
		if err := t.SetStyleRange(style, start, end-1); err != nil {
			return err
		}
	}
	return nil
}

func match(tt chroma.TokenType, rules []Rule) (styled.Style, bool) {
	for _, r := range rules {
		if matches(tt, r.Type) {
			return r.Style, true
		}
	}
	return "", false
}

func matches(tt, rule chroma.TokenType) bool {
	switch {
	case tt == rule:
		return true
	case rule%1000 == 0:
		return tt.InCategory(rule)
	case rule%100 == 0:
		return tt.InSubCategory(rule)
	}
	return false
}
