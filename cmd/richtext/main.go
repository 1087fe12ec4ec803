// Command richtext styles plain text from the command line and exports it as
// HTML, Markdown, LaTeX, RTF, BBCode or ANSI, or shows it in a terminal pager.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/iw2rmb/richtext/internal/logging"
)

const configPath = "~/.config/richtext/config.json"

// Globals are the flags shared by every command.
type Globals struct {
	LogLevel  string `name:"log-level" help:"Log level" enum:"debug,info,warn,error" default:"warn" env:"RICHTEXT_LOG_LEVEL"`
	LogFormat string `name:"log-format" help:"Log format" enum:"text,json" default:"text"`
}

// Streams carries the process I/O into commands.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// CLI defines the command-line interface for richtext.
type CLI struct {
	Globals

	Export  ExportCmd  `cmd:"" help:"Style text and print it in a markup format"`
	View    ViewCmd    `cmd:"" help:"Style text and page through the terminal rendering"`
	Formats FormatsCmd `cmd:"" help:"List export formats"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

type exitCode int

func run(args []string, in io.Reader, out, errOut io.Writer) (code int) {
	var cli CLI
	defer func() {
		if r := recover(); r != nil {
			c, ok := r.(exitCode)
			if !ok {
				panic(r)
			}
			code = int(c)
		}
	}()

	parser, err := kong.New(&cli,
		kong.Name("richtext"),
		kong.Description("Format-aware text styling and export"),
		kong.UsageOnError(),
		kong.Writers(out, errOut),
		kong.Exit(func(c int) { panic(exitCode(c)) }),
		kong.Configuration(kong.JSON, configPath),
	)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return 1
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(errOut, "richtext: error: %v\n", err)
		return 2
	}

	level, err := logging.ParseLevel(cli.LogLevel)
	if err != nil {
		fmt.Fprintf(errOut, "richtext: error: %v\n", err)
		return 2
	}
	format, err := logging.ParseFormat(cli.LogFormat)
	if err != nil {
		fmt.Fprintf(errOut, "richtext: error: %v\n", err)
		return 2
	}
	logging.InitLogger(errOut, level, format)

	streams := &Streams{In: in, Out: out, Err: errOut}
	if err := ctx.Run(&cli.Globals, streams); err != nil {
		var ue *usageError
		if errors.As(err, &ue) {
			fmt.Fprintf(errOut, "richtext: error: %v\n", err)
			return 2
		}
		logging.Logger().Error("command failed", "command", ctx.Command(), "error", err)
		fmt.Fprintf(errOut, "richtext: error: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
