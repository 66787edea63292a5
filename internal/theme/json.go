package theme

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/hilite/internal/style"
)

// ErrBadTheme indicates a theme document that cannot be parsed.
var ErrBadTheme = errors.New("theme: invalid theme document")

// Load parses a theme from its JSON representation:
//
//	{
//	  "name": "Dark",
//	  "foreground": "#d4d4d4",
//	  "background": "#1e1e1e",
//	  "scopes": {
//	    "keyword": {"color": "#569cd6", "bold": true},
//	    "comment.line": {"color": "#6a9955", "italic": true}
//	  }
//	}
func Load(data []byte) (*Theme, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrBadTheme)
	}
	doc := gjson.ParseBytes(data)
	name := doc.Get("name").String()
	if name == "" {
		return nil, fmt.Errorf("%w: missing name", ErrBadTheme)
	}

	t := &Theme{
		Name:       name,
		Foreground: style.ColorDefault,
		Background: style.ColorDefault,
		Scopes:     make(map[string]style.Style),
	}
	var err error
	if t.Foreground, err = loadColor(doc.Get("foreground")); err != nil {
		return nil, err
	}
	if t.Background, err = loadColor(doc.Get("background")); err != nil {
		return nil, err
	}

	var scopeErr error
	doc.Get("scopes").ForEach(func(k, v gjson.Result) bool {
		st, err := loadStyle(v)
		if err != nil {
			scopeErr = fmt.Errorf("scope %q: %w", k.String(), err)
			return false
		}
		t.Scopes[k.String()] = st
		return true
	})
	if scopeErr != nil {
		return nil, scopeErr
	}
	return t, nil
}

func loadColor(r gjson.Result) (style.Color, error) {
	if !r.Exists() {
		return style.ColorDefault, nil
	}
	c, err := style.Hex(r.String())
	if err != nil {
		return style.Color{}, fmt.Errorf("%w: %v", ErrBadTheme, err)
	}
	return c, nil
}

func loadStyle(r gjson.Result) (style.Style, error) {
	st := style.DefaultStyle()
	var err error
	if st.Foreground, err = loadColor(r.Get("color")); err != nil {
		return style.Style{}, err
	}
	if st.Background, err = loadColor(r.Get("background")); err != nil {
		return style.Style{}, err
	}
	if r.Get("bold").Bool() {
		st = st.Bold()
	}
	if r.Get("italic").Bool() {
		st = st.Italic()
	}
	if r.Get("underline").Bool() {
		st = st.Underline()
	}
	if r.Get("strikethrough").Bool() {
		st = st.Strikethrough()
	}
	return st, nil
}

// Save serializes the theme to the JSON representation Load accepts.
// Scopes are emitted in sorted order.
func (t *Theme) Save() ([]byte, error) {
	out := []byte("{}")
	var err error
	if out, err = sjson.SetBytes(out, "name", t.Name); err != nil {
		return nil, err
	}
	if !t.Foreground.IsDefault() {
		if out, err = sjson.SetBytes(out, "foreground", t.Foreground.Hex()); err != nil {
			return nil, err
		}
	}
	if !t.Background.IsDefault() {
		if out, err = sjson.SetBytes(out, "background", t.Background.Hex()); err != nil {
			return nil, err
		}
	}

	scopes := make([]string, 0, len(t.Scopes))
	for scope := range t.Scopes {
		scopes = append(scopes, scope)
	}
	sort.Strings(scopes)
	for _, scope := range scopes {
		st := t.Scopes[scope]
		base := "scopes." + escapeKey(scope)
		if c, ok := st.ForegroundInk(); ok {
			if out, err = sjson.SetBytes(out, base+".color", c.Hex()); err != nil {
				return nil, err
			}
		}
		if c, ok := st.BackgroundInk(); ok {
			if out, err = sjson.SetBytes(out, base+".background", c.Hex()); err != nil {
				return nil, err
			}
		}
		for _, attr := range []struct {
			key string
			has bool
		}{
			{"bold", st.Attrs.Has(style.AttrBold)},
			{"italic", st.Attrs.Has(style.AttrItalic)},
			{"underline", st.Attrs.Has(style.AttrUnderline)},
			{"strikethrough", st.Attrs.Has(style.AttrStrikethrough)},
		} {
			if !attr.has {
				continue
			}
			if out, err = sjson.SetBytes(out, base+"."+attr.key, true); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// escapeKey escapes dots in scope names so sjson treats them as one
// object key.
func escapeKey(scope string) string {
	return strings.ReplaceAll(scope, ".", `\.`)
}
