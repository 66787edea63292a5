package style

import (
	"io"
	"strconv"
	"strings"
)

// Attr represents text attributes (bold, italic, etc.).
type Attr uint16

// Text attribute flags.
const (
	AttrNone          Attr = 0
	AttrBold          Attr = 1 << iota
	AttrItalic             // Italic text
	AttrUnderline          // Underlined text
	AttrStrikethrough      // Strikethrough text
)

// Has returns true if the attribute set contains the given attribute.
func (a Attr) Has(attr Attr) bool {
	return a&attr != 0
}

// Style represents the visual style of a highlight section.
// It is a comparable value type; sections reference it by value.
type Style struct {
	Foreground Color
	Background Color
	Attrs      Attr
}

// DefaultStyle returns the all-default style.
func DefaultStyle() Style {
	return Style{Foreground: ColorDefault, Background: ColorDefault}
}

// NewStyle creates a style with the given foreground color.
func NewStyle(fg Color) Style {
	return Style{Foreground: fg, Background: ColorDefault}
}

// WithBackground returns a new style with the given background color.
func (s Style) WithBackground(bg Color) Style {
	s.Background = bg
	return s
}

// Bold returns a new style with the bold attribute added.
func (s Style) Bold() Style {
	s.Attrs |= AttrBold
	return s
}

// Italic returns a new style with the italic attribute added.
func (s Style) Italic() Style {
	s.Attrs |= AttrItalic
	return s
}

// Underline returns a new style with the underline attribute added.
func (s Style) Underline() Style {
	s.Attrs |= AttrUnderline
	return s
}

// Strikethrough returns a new style with the strikethrough attribute added.
func (s Style) Strikethrough() Style {
	s.Attrs |= AttrStrikethrough
	return s
}

// IsDefault returns true if the style carries no color and no attributes.
func (s Style) IsDefault() bool {
	return s.Foreground.IsDefault() && s.Background.IsDefault() && s.Attrs == AttrNone
}

// ForegroundInk returns the foreground color and whether one is set.
func (s Style) ForegroundInk() (Color, bool) {
	return s.Foreground, !s.Foreground.IsDefault()
}

// BackgroundInk returns the background color and whether one is set.
func (s Style) BackgroundInk() (Color, bool) {
	return s.Background, !s.Background.IsDefault()
}

// NeedsMarkup reports whether the style contributes a tag when a
// section is serialized to markup. All-default styles contribute text
// only.
func (s Style) NeedsMarkup() bool {
	return !s.IsDefault()
}

// WriteStyleAttribute emits the CSS declarations for the style, without
// surrounding quotes. Indexed palette colors are emitted as custom
// property references so a stylesheet can resolve them.
func (s Style) WriteStyleAttribute(w io.Writer) error {
	var decls []string
	if c, ok := s.ForegroundInk(); ok {
		decls = append(decls, "color:"+cssColor(c))
	}
	if c, ok := s.BackgroundInk(); ok {
		decls = append(decls, "background-color:"+cssColor(c))
	}
	if s.Attrs.Has(AttrBold) {
		decls = append(decls, "font-weight:bold")
	}
	if s.Attrs.Has(AttrItalic) {
		decls = append(decls, "font-style:italic")
	}
	if deco := cssDecoration(s.Attrs); deco != "" {
		decls = append(decls, "text-decoration:"+deco)
	}
	_, err := io.WriteString(w, strings.Join(decls, ";"))
	return err
}

func cssColor(c Color) string {
	if c.Indexed {
		return "var(--palette-" + strconv.Itoa(int(c.R)) + ")"
	}
	return c.Hex()
}

func cssDecoration(a Attr) string {
	switch {
	case a.Has(AttrUnderline) && a.Has(AttrStrikethrough):
		return "underline line-through"
	case a.Has(AttrUnderline):
		return "underline"
	case a.Has(AttrStrikethrough):
		return "line-through"
	default:
		return ""
	}
}
