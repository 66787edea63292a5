// Package main is the entry point for the hilite command.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dshills/hilite/internal/highlight"
	"github.com/dshills/hilite/internal/markup"
	"github.com/dshills/hilite/internal/richtext"
	"github.com/dshills/hilite/internal/section"
	"github.com/dshills/hilite/internal/theme"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	language   string
	themeName  string
	match      string
	format     string
	tabWidth   int
	expandTabs bool
	file       string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	data, err := readInput(opts.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	registry := theme.NewRegistry()
	if !registry.SetCurrent(opts.themeName) {
		fmt.Fprintf(os.Stderr, "Error: unknown theme %q (have: %s)\n",
			opts.themeName, strings.Join(registry.Names(), ", "))
		return 1
	}
	th := registry.Current()

	syntax := highlight.NewChroma(opts.language, th)
	var matcher *highlight.Matcher
	if opts.match != "" {
		matcher, err = highlight.NewMatcher(opts.match, th.StyleFor("match"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	if err := emit(out, string(data), opts, th, syntax, matcher); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// emit highlights the input line by line and writes it in the requested
// format. Search matches form the base store so they win over syntax
// coloring in the merge.
func emit(out *bufio.Writer, input string, opts options, th *theme.Theme, syntax *highlight.Chroma, matcher *highlight.Matcher) error {
	if opts.format == "html" {
		fmt.Fprintf(out, "<pre style=\"color:%s;background-color:%s\">\n",
			th.Foreground.Hex(), th.Background.Hex())
	}

	renderOpts := &markup.Options{
		Escape:     markup.EscapeHTML,
		TabWidth:   opts.tabWidth,
		ExpandTabs: opts.expandTabs,
	}

	off := 0
	for _, text := range strings.Split(input, "\n") {
		line := section.Line{Offset: off, Length: len(text)}

		store := section.NewStore()
		if matcher != nil {
			var err error
			store, err = matcher.HighlightLine(text, off)
			if err != nil {
				return err
			}
		}
		syn, err := syntax.HighlightLine(text, off)
		if err != nil {
			return err
		}
		section.Merge(store, syn, line.End())

		src := stringSource{text: text, base: off}
		var rendered string
		switch opts.format {
		case "html":
			rendered, err = markup.RenderRange(store, src, line, line.Offset, line.End(), renderOpts)
		case "ansi":
			builder := richtext.NewANSIBuilder(line)
			if err = richtext.Export(store, builder); err == nil {
				rendered, err = builder.Render(src)
			}
		default:
			err = fmt.Errorf("unknown format %q (want html or ansi)", opts.format)
		}
		if err != nil {
			return err
		}

		out.WriteString(rendered)
		out.WriteByte('\n')
		off += len(text) + 1
	}

	if opts.format == "html" {
		out.WriteString("</pre>\n")
	}
	return nil
}

// stringSource serves one line's text over the global offset space.
type stringSource struct {
	text string
	base int
}

func (s stringSource) Text(offset, length int) (string, error) {
	start := offset - s.base
	if start < 0 || start+length > len(s.text) || length < 0 {
		return "", fmt.Errorf("text request [%d,%d) outside line", offset, offset+length)
	}
	return s.text[start : start+length], nil
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.language, "lang", "go", "Source language for syntax highlighting")
	flag.StringVar(&opts.themeName, "theme", "Dark", "Color theme")
	flag.StringVar(&opts.match, "match", "", "Regex whose matches are overlaid on the syntax coloring")
	flag.StringVar(&opts.format, "format", "ansi", "Output format: html or ansi")
	flag.IntVar(&opts.tabWidth, "tabwidth", 4, "Tab stop width")
	flag.BoolVar(&opts.expandTabs, "expandtabs", false, "Expand tabs to spaces in html output")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "hilite - line highlighter with merge and markup export\n\n")
		fmt.Fprintf(os.Stderr, "Usage: hilite [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  hilite main.go                     Colorize a file to the terminal\n")
		fmt.Fprintf(os.Stderr, "  hilite -format html main.go        Emit nested-span HTML\n")
		fmt.Fprintf(os.Stderr, "  hilite -match 'TODO' main.go       Overlay search hits\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("hilite %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if flag.NArg() > 0 {
		opts.file = flag.Arg(0)
	}
	return opts
}
