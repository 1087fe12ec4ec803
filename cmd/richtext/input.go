package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/iw2rmb/richtext/highlight"
	"github.com/iw2rmb/richtext/internal/grapheme"
	"github.com/iw2rmb/richtext/internal/logging"
	"github.com/iw2rmb/richtext/styled"
)

type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// StyleFlags select the input text and the styles applied to it. Ranges are
// "S:E" with an inclusive end, a single index "N", or "all". With --units
// grapheme the indices count grapheme clusters instead of bytes.
type StyleFlags struct {
	Text string `arg:"" optional:"" help:"Text to style; read from --file or stdin when omitted"`
	File string `name:"file" short:"f" help:"Read the text from a file" type:"path"`

	Bold        []string `name:"bold" short:"b" help:"Bold range" placeholder:"S:E"`
	Italic      []string `name:"italic" short:"i" help:"Italic range" placeholder:"S:E"`
	Underline   []string `name:"underline" short:"u" help:"Underline range" placeholder:"S:E"`
	Strike      []string `name:"strike" help:"Strikethrough range" placeholder:"S:E"`
	Subscript   []string `name:"sub" help:"Subscript range" placeholder:"S:E"`
	Superscript []string `name:"sup" help:"Superscript range" placeholder:"S:E"`
	Code        []string `name:"code" help:"Code range" placeholder:"S:E"`
	Style       []string `name:"style" short:"s" help:"Custom style range" placeholder:"NAME=S:E"`

	Units string `name:"units" help:"Unit of range indices" enum:"byte,grapheme" default:"byte"`

	Highlight string `name:"highlight" help:"Apply syntax highlighting for a language (e.g. go, python)" placeholder:"LANG"`
}

func (f *StyleFlags) readText(in io.Reader) (string, error) {
	switch {
	case f.Text != "" && f.File != "":
		return "", usagef("text argument and --file are mutually exclusive")
	case f.Text != "":
		return f.Text, nil
	case f.File != "":
		b, err := os.ReadFile(f.File)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", f.File, err)
		}
		return string(b), nil
	}
	b, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), nil
}

// build reads the input and applies every requested style.
func (f *StyleFlags) build(in io.Reader) (*styled.Text, error) {
	s, err := f.readText(in)
	if err != nil {
		return nil, err
	}
	t := styled.New(s)
	log := logging.Logger()

	if f.Highlight != "" {
		if err := highlight.Apply(t, f.Highlight); err != nil {
			return nil, err
		}
		log.Debug("highlighted", "language", f.Highlight, "styles", len(t.Styles()))
	}

	groups := []struct {
		name   styled.Style
		ranges []string
	}{
		{styled.Bold, f.Bold},
		{styled.Italic, f.Italic},
		{styled.Underline, f.Underline},
		{styled.Strike, f.Strike},
		{styled.Subscript, f.Subscript},
		{styled.Superscript, f.Superscript},
		{styled.Code, f.Code},
	}
	for _, g := range groups {
		for _, arg := range g.ranges {
			if err := f.applyRange(t, g.name, arg); err != nil {
				return nil, err
			}
		}
	}
	for _, arg := range f.Style {
		name, rng, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, usagef("--style %q: want NAME=S:E", arg)
		}
		if err := f.applyRange(t, styled.Style(name), rng); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (f *StyleFlags) applyRange(t *styled.Text, name styled.Style, arg string) error {
	if arg == "all" {
		t.SetStyle(name)
		return nil
	}
	start, end, err := parseRange(arg)
	if err != nil {
		return usagef("%s range %q: %v", name, arg, err)
	}
	if f.Units == "grapheme" {
		from, to, ok := grapheme.ByteRange(t.String(), start, end)
		if !ok {
			return usagef("%s range %q: outside %d graphemes", name, arg, grapheme.Count(t.String()))
		}
		start, end = from, to
	}
	if err := t.SetStyleRange(name, start, end); err != nil {
		return usagef("%s range %q: %v", name, arg, err)
	}
	return nil
}

// parseRange accepts "N" or "S:E". An empty bound on either side of ':' is an
// error.
func parseRange(arg string) (start, end int, err error) {
	lo, hi, ok := strings.Cut(arg, ":")
	start, err = strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return 0, 0, fmt.Errorf("bad start: %w", err)
	}
	if !ok {
		return start, start, nil
	}
	end, err = strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return 0, 0, fmt.Errorf("bad end: %w", err)
	}
	return start, end, nil
}
