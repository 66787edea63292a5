// Package style defines the color and style value types carried by
// highlight sections.
package style

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color represents a color value.
// Supports true color (RGB) and terminal palette colors.
type Color struct {
	R, G, B uint8
	// If Indexed is true, R contains the palette index (0-255).
	// G and B are ignored in indexed mode.
	Indexed bool
	// Default indicates the terminal's or document's default color.
	Default bool
}

// ColorDefault represents the default/transparent color.
var ColorDefault = Color{Default: true}

// RGB creates a true color from RGB components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Index creates an indexed palette color (0-255).
func Index(index uint8) Color {
	return Color{R: index, Indexed: true}
}

// Hex parses a color from a hex string.
// Supports "#RGB", "#RRGGBB", "RGB" and "RRGGBB".
func Hex(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 3 && len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid hex color length: %q", hex)
	}
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// IsDefault returns true if this is the default/transparent color.
func (c Color) IsDefault() bool {
	return c.Default
}

// Hex returns the "#RRGGBB" representation of a true color.
// Returns an empty string for indexed and default colors.
func (c Color) Hex() string {
	if c.Default || c.Indexed {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String returns a string representation of the color.
func (c Color) String() string {
	switch {
	case c.Default:
		return "default"
	case c.Indexed:
		return fmt.Sprintf("idx(%d)", c.R)
	default:
		return c.Hex()
	}
}

// Lighten returns a lighter version of the color.
// Amount should be 0.0 to 1.0. Indexed and default colors pass through.
func (c Color) Lighten(amount float64) Color {
	if c.Default || c.Indexed {
		return c
	}
	h, s, l := c.colorful().Hsl()
	return fromColorful(colorful.Hsl(h, s, l+(1-l)*amount))
}

// Darken returns a darker version of the color.
// Amount should be 0.0 to 1.0. Indexed and default colors pass through.
func (c Color) Darken(amount float64) Color {
	if c.Default || c.Indexed {
		return c
	}
	h, s, l := c.colorful().Hsl()
	return fromColorful(colorful.Hsl(h, s, l*(1-amount)))
}

// Blend blends two true colors in Lab space.
// Amount 0.0 = c, 1.0 = other. Non-RGB colors pick the nearer input.
func (c Color) Blend(other Color, amount float64) Color {
	if c.Default || c.Indexed || other.Default || other.Indexed {
		if amount < 0.5 {
			return c
		}
		return other
	}
	return fromColorful(c.colorful().BlendLab(other.colorful(), amount))
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func fromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}
