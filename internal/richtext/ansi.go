package richtext

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dshills/hilite/internal/section"
	"github.com/dshills/hilite/internal/style"
)

// ANSIBuilder renders a line's styled ranges as terminal text.
// Overlapping ranges are resolved per byte, with later (inner) ranges
// winning, matching the section store's outer-before-inner order.
type ANSIBuilder struct {
	line section.Line
	// ink index per byte of the line, -1 for plain text
	cover []int
	inks  []Ink
}

// NewANSIBuilder creates a builder for the given line bounds.
func NewANSIBuilder(line section.Line) *ANSIBuilder {
	cover := make([]int, line.Length)
	for i := range cover {
		cover[i] = -1
	}
	return &ANSIBuilder{line: line, cover: cover}
}

// StyleRange implements Builder.
func (b *ANSIBuilder) StyleRange(offset, length int, ink Ink) error {
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

// Render reads the line's text from src and returns it with ANSI color
// sequences applied over each styled run.
func (b *ANSIBuilder) Render(src section.TextSource) (string, error) {
	if src == nil {
		return "", fmt.Errorf("%w for line [%d,%d)", ErrNoSource, b.line.Offset, b.line.End())
	}
	text, err := src.Text(b.line.Offset, b.line.Length)
	if err != nil {
		return "", fmt.Errorf("text source failed for line [%d,%d): %w",
			b.line.Offset, b.line.End(), err)
	}

	var out strings.Builder
	runStart := 0
	for i := 1; i <= len(text); i++ {
		if i < len(text) && b.cover[i] == b.cover[runStart] {
			continue
		}
		seg := text[runStart:i]
		if idx := b.cover[runStart]; idx >= 0 {
			out.WriteString(ansiStyle(b.inks[idx]).Render(seg))
		} else {
			out.WriteString(seg)
		}
		runStart = i
	}
	return out.String(), nil
}

func ansiStyle(ink Ink) lipgloss.Style {
	st := lipgloss.NewStyle()
	if c := ink.Foreground; !c.IsDefault() {
		st = st.Foreground(lipglossColor(c))
	}
	if c := ink.Background; !c.IsDefault() {
		st = st.Background(lipglossColor(c))
	}
	return st
}

func lipglossColor(c style.Color) lipgloss.Color {
	if c.Indexed {
		return lipgloss.Color(strconv.Itoa(int(c.R)))
	}
	return lipgloss.Color(c.Hex())
}
