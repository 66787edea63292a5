package richtext

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/hilite/internal/section"
	"github.com/dshills/hilite/internal/style"
)

// Cell is one rune of a line with its resolved terminal style.
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// CellBuilder resolves a line's styled ranges into terminal cells for
// screen backends.
type CellBuilder struct {
	line  section.Line
	cover []int
	inks  []Ink
}

// NewCellBuilder creates a builder for the given line bounds.
func NewCellBuilder(line section.Line) *CellBuilder {
	cover := make([]int, line.Length)
	for i := range cover {
		cover[i] = -1
	}
	return &CellBuilder{line: line, cover: cover}
}

// StyleRange implements Builder.
func (b *CellBuilder) StyleRange(offset, length int, ink Ink) error {
	if offset < b.line.Offset || offset+length > b.line.End() || length < 0 {
		return fmt.Errorf("%w: [%d,%d) not within line [%d,%d)",
			ErrRange, offset, offset+length, b.line.Offset, b.line.End())
	}
	idx := len(b.inks)
	b.inks = append(b.inks, ink)
	for i := offset - b.line.Offset; i < offset+length-b.line.Offset; i++ {
		b.cover[i] = idx
	}
	return nil
}

// Cells reads the line's text from src and returns one styled cell per
// rune. A rune spanning several bytes takes the style at its first
// byte.
func (b *CellBuilder) Cells(src section.TextSource) ([]Cell, error) {
	if src == nil {
		return nil, fmt.Errorf("%w for line [%d,%d)", ErrNoSource, b.line.Offset, b.line.End())
	}
	text, err := src.Text(b.line.Offset, b.line.Length)
	if err != nil {
		return nil, fmt.Errorf("text source failed for line [%d,%d): %w",
			b.line.Offset, b.line.End(), err)
	}

	cells := make([]Cell, 0, len(text))
	for i, r := range text {
		st := tcell.StyleDefault
		if idx := b.cover[i]; idx >= 0 {
			st = cellStyle(b.inks[idx])
		}
		cells = append(cells, Cell{Rune: r, Style: st})
	}
	return cells, nil
}

func cellStyle(ink Ink) tcell.Style {
	st := tcell.StyleDefault
	if c := ink.Foreground; !c.IsDefault() {
		st = st.Foreground(cellColor(c))
	}
	if c := ink.Background; !c.IsDefault() {
		st = st.Background(cellColor(c))
	}
	return st
}

func cellColor(c style.Color) tcell.Color {
	if c.Indexed {
		return tcell.PaletteColor(int(c.R))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
