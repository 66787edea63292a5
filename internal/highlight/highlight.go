// Package highlight produces section stores from raw line text. These
// are the external highlighters whose output feeds section.Merge; the
// section core itself never tokenizes.
package highlight

import (
	"github.com/dshills/hilite/internal/section"
)

// Liner produces one line's sections. lineOffset is the line's starting
// offset in the global text coordinate space; all produced sections are
// offset-aligned to it.
type Liner interface {
	HighlightLine(text string, lineOffset int) (*section.Store, error)
}
