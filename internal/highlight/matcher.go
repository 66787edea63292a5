package highlight

import (
	"fmt"
	"regexp"

	"github.com/dshills/hilite/internal/section"
	"github.com/dshills/hilite/internal/style"
)

// Matcher highlights every match of a regular expression on a line,
// producing a sibling-only store. Typical use is a search-hit overlay
// merged over or under a syntax store.
type Matcher struct {
	re  *regexp.Regexp
	sty style.Style
}

// NewMatcher compiles pattern and creates a matcher applying sty to
// each hit.
func NewMatcher(pattern string, sty style.Style) (*Matcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("match pattern: %w", err)
	}
	return &Matcher{re: re, sty: sty}, nil
}

// HighlightLine implements Liner.
func (m *Matcher) HighlightLine(text string, lineOffset int) (*section.Store, error) {
	st := section.NewStore()
	for _, loc := range m.re.FindAllStringIndex(text, -1) {
		if loc[1] == loc[0] {
			continue
		}
		st.Append(section.Section{
			Offset: lineOffset + loc[0],
			Length: loc[1] - loc[0],
			Style:  m.sty,
		})
	}
	return st, nil
}
