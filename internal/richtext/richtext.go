// Package richtext exports a line's highlight sections to rich-text
// builders. Targets handle arbitrary overlapping style ranges natively,
// so the export is a single flat walk with no escaping or nesting
// logic.
package richtext

import (
	"errors"
	"fmt"

	"github.com/dshills/hilite/internal/section"
	"github.com/dshills/hilite/internal/style"
)

// Package errors.
var (
	// ErrNoBuilder indicates the builder collaborator is absent.
	ErrNoBuilder = errors.New("richtext: no builder")

	// ErrNoSource indicates the text source collaborator is absent.
	ErrNoSource = errors.New("richtext: no text source")

	// ErrRange indicates a style range falls outside the builder's line.
	ErrRange = errors.New("richtext: range out of bounds")
)

// Ink carries the colors of one section. Either color may be the
// default, but never both; sections with no ink at all are not
// forwarded.
type Ink struct {
	Foreground style.Color
	Background style.Color
}

// Builder receives one style range per inked section.
type Builder interface {
	StyleRange(offset, length int, ink Ink) error
}

// Export walks the store once and forwards each section carrying a
// foreground or background color to b as an (offset, length, ink)
// triple. Sections with neither ink, and zero-length sections, are
// skipped.
func Export(st *section.Store, b Builder) error {
	if b == nil {
		return ErrNoBuilder
	}
	for i := 0; i < st.Len(); i++ {
		s := st.At(i)
		fg, hasFg := s.Style.ForegroundInk()
		bg, hasBg := s.Style.BackgroundInk()
		if s.Length == 0 || (!hasFg && !hasBg) {
			continue
		}
		if err := b.StyleRange(s.Offset, s.Length, Ink{Foreground: fg, Background: bg}); err != nil {
			return fmt.Errorf("style range [%d,%d): %w", s.Offset, s.End(), err)
		}
	}
	return nil
}
