package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/richtext"
	"github.com/iw2rmb/richtext/highlight"
	"github.com/iw2rmb/richtext/internal/logging"
	"github.com/iw2rmb/richtext/internal/viewer"
	"github.com/iw2rmb/richtext/styled"
	"github.com/iw2rmb/richtext/term"
)

const formatANSI = "ansi"

// ExportCmd prints the styled text in one format.
type ExportCmd struct {
	StyleFlags `embed:""`

	Format     string `name:"format" short:"F" help:"Output format" enum:"html,markdown,latex,rtf,bbcode,ansi" default:"html" env:"RICHTEXT_FORMAT"`
	Escape     bool   `name:"escape" short:"e" help:"Escape content bytes for the output format"`
	ClassSpans bool   `name:"class-spans" help:"Export unknown styles as <span class=...> (html only)"`
	Color      string `name:"color" help:"Colour mode for ansi output" enum:"auto,always,never" default:"auto"`
	Output     string `name:"output" short:"o" help:"Write to a file instead of stdout" type:"path"`
	CacheDir   string `name:"cache-dir" help:"Reuse exports keyed by the text digest" type:"path"`
}

func (c *ExportCmd) Run(s *Streams) (err error) {
	if c.ClassSpans && c.Format != string(styled.FormatHTML) {
		return usagef("--class-spans requires --format html")
	}
	t, err := c.build(s.In)
	if err != nil {
		return err
	}
	log := logging.Logger()
	digest := t.Digest()
	key := hex.EncodeToString(digest[:])
	log.Debug("built text", "size", t.Size(), "styles", len(t.Styles()), "digest", key)

	w := s.Out
	if c.Output != "" {
		f, ferr := os.Create(c.Output)
		if ferr != nil {
			return fmt.Errorf("create %s: %w", c.Output, ferr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close %s: %w", c.Output, cerr)
			}
		}()
		w = f
	}

	// The ANSI renderer resolves its colour profile against the destination.
	var r *term.Renderer
	if c.Format == formatANSI {
		r = c.renderer(w)
	}

	cache := exportCache{dir: c.CacheDir}
	variant := c.variant(r)
	out, hit := cache.get(key, variant)
	if !hit {
		out, err = c.render(t, r)
		if err != nil {
			return err
		}
		if perr := cache.put(key, variant, out); perr != nil {
			log.Warn("cache write failed", "dir", c.CacheDir, "error", perr)
		}
	}
	log.Debug("exported", "format", c.Format, "variant", variant, "bytes", len(out), "cached", hit)

	if _, werr := io.WriteString(w, out); werr != nil {
		if c.Output != "" {
			return fmt.Errorf("write %s: %w", c.Output, werr)
		}
		return werr
	}
	return nil
}

// variant names every option that changes the output for one digest. For
// ANSI output that is the resolved colour profile, not the --color mode.
func (c *ExportCmd) variant(r *term.Renderer) string {
	v := c.Format
	if c.Escape {
		v += "+escape"
	}
	if c.ClassSpans {
		v += "+class"
	}
	if r != nil {
		v += "+" + strconv.Itoa(int(r.Profile()))
	}
	return v
}

func (c *ExportCmd) render(t *styled.Text, r *term.Renderer) (string, error) {
	if r != nil {
		return r.Render(t), nil
	}
	f := styled.Format(c.Format)
	e, err := styled.NewExporter(f)
	if err != nil {
		return "", err
	}
	if c.Escape {
		e.Escape = styled.EscapeFor(f)
	}
	if c.ClassSpans {
		e.Fallback = func(name styled.Style) (styled.Tag, bool) { return styled.ClassSpan(name), true }
	}
	return e.Export(t), nil
}

func (c *ExportCmd) renderer(w io.Writer) *term.Renderer {
	switch c.Color {
	case "always":
		return term.NewRenderer(termenv.ANSI256, theme())
	case "never":
		return term.NewRenderer(termenv.Ascii, theme())
	}
	return term.NewRendererFor(w, theme())
}

// theme extends the default theme with the highlighter's token styles.
func theme() term.Theme {
	return term.DefaultTheme().
		With(highlight.StyleString, lipgloss.NewStyle().Foreground(lipgloss.Color("114"))).
		With(highlight.StyleNumber, lipgloss.NewStyle().Foreground(lipgloss.Color("179"))).
		With(highlight.StyleFunction, lipgloss.NewStyle().Foreground(lipgloss.Color("75")))
}

// exportCache stores rendered exports as <dir>/<digest>.<variant>. An empty dir
// disables it.
type exportCache struct {
	dir string
}

func (c exportCache) path(key, variant string) string {
	return filepath.Join(c.dir, key+"."+strings.ReplaceAll(variant, "+", "_"))
}

func (c exportCache) get(key, variant string) (string, bool) {
	if c.dir == "" {
		return "", false
	}
	b, err := os.ReadFile(c.path(key, variant))
	if err != nil {
		return "", false
	}
	return string(b), true
}

func (c exportCache) put(key, variant, out string) error {
	if c.dir == "" {
		return nil
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(c.path(key, variant), []byte(out), 0o644)
}

// ViewCmd shows the ANSI rendering in a pager.
type ViewCmd struct {
	StyleFlags `embed:""`

	Title string `name:"title" help:"Pager title (defaults to the input file name)"`
}

func (c *ViewCmd) Run(s *Streams) error {
	t, err := c.build(s.In)
	if err != nil {
		return err
	}
	cfg := viewer.DefaultConfig()
	cfg.Title = c.Title
	if cfg.Title == "" {
		cfg.Title = "richtext"
		if c.File != "" {
			cfg.Title = filepath.Base(c.File)
		}
	}
	cfg.Content = term.NewRendererFor(s.Out, theme()).Render(t)
	logging.Logger().Debug("viewing", "title", cfg.Title, "size", t.Size())
	return viewer.Run(cfg)
}

// FormatsCmd lists the export formats.
type FormatsCmd struct{}

func (c *FormatsCmd) Run(s *Streams) error {
	for _, f := range styled.Formats() {
		fmt.Fprintln(s.Out, f)
	}
	fmt.Fprintln(s.Out, formatANSI)
	return nil
}

// VersionCmd prints the library version.
type VersionCmd struct{}

func (c *VersionCmd) Run(s *Streams) error {
	fmt.Fprintf(s.Out, "richtext %s\n", richtext.VersionTag())
	return nil
}
