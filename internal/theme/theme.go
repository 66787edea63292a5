// Package theme maps highlight scope names to styles.
package theme

import (
	"github.com/dshills/hilite/internal/style"
)

// Theme defines the styles for a set of highlight scopes. Scopes are
// dotted names ("comment.line", "keyword.control"); lookup falls back
// through parent scopes.
type Theme struct {
	// Name is the display name of the theme.
	Name string

	// Foreground is the default text color.
	Foreground style.Color

	// Background is the document background color.
	Background style.Color

	// Scopes maps scope names to styles.
	Scopes map[string]style.Style
}

// StyleFor returns the style for a scope, trying the scope itself and
// then each parent scope. Unknown scopes get the default style.
func (t *Theme) StyleFor(scope string) style.Style {
	for scope != "" {
		if st, ok := t.Scopes[scope]; ok {
			return st
		}
		scope = parentScope(scope)
	}
	return style.DefaultStyle()
}

func parentScope(scope string) string {
	for i := len(scope) - 1; i >= 0; i-- {
		if scope[i] == '.' {
			return scope[:i]
		}
	}
	return ""
}

// Dark returns a dark theme in the VS Code default palette.
func Dark() *Theme {
	comment := style.RGB(106, 153, 85)
	keyword := style.RGB(86, 156, 214)
	str := style.RGB(206, 145, 120)
	number := style.RGB(181, 206, 168)
	function := style.RGB(220, 220, 170)
	typ := style.RGB(78, 201, 176)
	variable := style.RGB(156, 220, 254)

	return &Theme{
		Name:       "Dark",
		Foreground: style.RGB(212, 212, 212),
		Background: style.RGB(30, 30, 30),
		Scopes: map[string]style.Style{
			"comment":         style.NewStyle(comment).Italic(),
			"keyword":         style.NewStyle(keyword),
			"string":          style.NewStyle(str),
			"string.escape":   style.NewStyle(style.RGB(215, 186, 125)),
			"number":          style.NewStyle(number),
			"function":        style.NewStyle(function),
			"type":            style.NewStyle(typ),
			"variable":        style.NewStyle(variable),
			"constant":        style.NewStyle(style.RGB(79, 193, 255)),
			"operator":        style.NewStyle(style.RGB(212, 212, 212)),
			"invalid":         style.NewStyle(style.RGB(244, 71, 71)),
			"invalid.illegal": style.NewStyle(style.RGB(244, 71, 71)).Bold(),
			"match":           style.DefaultStyle().WithBackground(style.RGB(81, 92, 106)),
		},
	}
}

// Monokai returns a Monokai-inspired theme.
func Monokai() *Theme {
	pink := style.RGB(249, 38, 114)
	green := style.RGB(166, 226, 46)
	yellow := style.RGB(230, 219, 116)
	blue := style.RGB(102, 217, 239)
	purple := style.RGB(174, 129, 255)
	orange := style.RGB(253, 151, 31)

	return &Theme{
		Name:       "Monokai",
		Foreground: style.RGB(248, 248, 242),
		Background: style.RGB(39, 40, 34),
		Scopes: map[string]style.Style{
			"comment":             style.NewStyle(style.RGB(117, 113, 94)),
			"keyword":             style.NewStyle(pink),
			"keyword.declaration": style.NewStyle(blue).Italic(),
			"string":              style.NewStyle(yellow),
			"string.escape":       style.NewStyle(purple),
			"number":              style.NewStyle(purple),
			"function":            style.NewStyle(green),
			"type":                style.NewStyle(blue).Italic(),
			"variable.parameter":  style.NewStyle(orange).Italic(),
			"constant":            style.NewStyle(purple),
			"operator":            style.NewStyle(pink),
			"invalid":             style.NewStyle(pink).WithBackground(style.RGB(80, 20, 40)),
			"match":               style.DefaultStyle().WithBackground(style.RGB(73, 72, 62)),
		},
	}
}

// Light returns a light theme.
func Light() *Theme {
	return &Theme{
		Name:       "Light",
		Foreground: style.RGB(0, 0, 0),
		Background: style.RGB(255, 255, 255),
		Scopes: map[string]style.Style{
			"comment":  style.NewStyle(style.RGB(0, 128, 0)).Italic(),
			"keyword":  style.NewStyle(style.RGB(0, 0, 255)),
			"string":   style.NewStyle(style.RGB(163, 21, 21)),
			"number":   style.NewStyle(style.RGB(9, 134, 88)),
			"function": style.NewStyle(style.RGB(121, 94, 38)),
			"type":     style.NewStyle(style.RGB(38, 127, 153)),
			"variable": style.NewStyle(style.RGB(0, 16, 128)),
			"constant": style.NewStyle(style.RGB(0, 112, 193)),
			"invalid":  style.NewStyle(style.RGB(205, 49, 49)),
			"match":    style.DefaultStyle().WithBackground(style.RGB(173, 214, 255)),
		},
	}
}

// Registry holds available themes.
type Registry struct {
	themes  map[string]*Theme
	current *Theme
}

// NewRegistry creates a registry with the built-in themes, with Dark
// current.
func NewRegistry() *Registry {
	r := &Registry{themes: make(map[string]*Theme)}
	r.Register(Dark())
	r.Register(Monokai())
	r.Register(Light())
	r.current = r.themes["Dark"]
	return r
}

// Register adds a theme to the registry.
func (r *Registry) Register(t *Theme) {
	r.themes[t.Name] = t
}

// Get returns a theme by name.
func (r *Registry) Get(name string) (*Theme, bool) {
	t, ok := r.themes[name]
	return t, ok
}

// Current returns the current theme.
func (r *Registry) Current() *Theme {
	return r.current
}

// SetCurrent sets the current theme by name.
func (r *Registry) SetCurrent(name string) bool {
	if t, ok := r.themes[name]; ok {
		r.current = t
		return true
	}
	return false
}

// Names returns all registered theme names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	return names
}
