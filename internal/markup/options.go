package markup

import (
	"io"
	"strings"

	"github.com/dshills/hilite/internal/style"
)

// Escaper rewrites markup-reserved characters in literal text.
type Escaper interface {
	Escape(string) string
}

// EscapeHTML escapes the HTML-reserved characters &, <, > and ".
var EscapeHTML Escaper = replacerEscaper{strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)}

// EscapeNone passes literal text through unchanged.
var EscapeNone Escaper = noEscaper{}

type replacerEscaper struct {
	r *strings.Replacer
}

func (e replacerEscaper) Escape(s string) string {
	return e.r.Replace(s)
}

type noEscaper struct{}

func (noEscaper) Escape(s string) string {
	return s
}

// Styler decides whether a style contributes a tag and emits its style
// attribute. The default delegates to the style itself.
type Styler interface {
	NeedsMarkup(style.Style) bool
	WriteStyleAttribute(io.Writer, style.Style) error
}

type selfStyler struct{}

func (selfStyler) NeedsMarkup(s style.Style) bool {
	return s.NeedsMarkup()
}

func (selfStyler) WriteStyleAttribute(w io.Writer, s style.Style) error {
	return s.WriteStyleAttribute(w)
}

// Options configures RenderRange.
type Options struct {
	// Escape rewrites markup-reserved characters in literal text.
	Escape Escaper

	// TabWidth is the tab stop distance used when ExpandTabs is set.
	TabWidth int

	// ExpandTabs replaces tabs with spaces up to the next tab stop.
	// Columns are counted rune-width aware from the start of the
	// rendered range.
	ExpandTabs bool

	// Styler overrides the per-style markup capability surface.
	// Nil means each style speaks for itself.
	Styler Styler
}

// DefaultOptions returns options with HTML escaping, tab width 4 and
// tab expansion off.
func DefaultOptions() *Options {
	return &Options{
		Escape:   EscapeHTML,
		TabWidth: 4,
	}
}

func (o *Options) styler() Styler {
	if o.Styler != nil {
		return o.Styler
	}
	return selfStyler{}
}

func (o *Options) escaper() Escaper {
	if o.Escape != nil {
		return o.Escape
	}
	return EscapeNone
}

func (o *Options) tabWidth() int {
	if o.TabWidth < 1 {
		return 4
	}
	return o.TabWidth
}
