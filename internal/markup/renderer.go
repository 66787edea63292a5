// Package markup serializes a line's highlight sections to nested
// markup. The output is byte-for-byte what naive recursion into nested
// sections would produce, computed instead from a flat sorted list of
// open/close boundary events.
package markup

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/hilite/internal/section"
)

// event is an open or close marker derived from a section boundary,
// clipped to the render range. rank is the section's position in the
// store and orders ties: among events at one offset, closes come before
// opens, inner sections close first and outer sections open first.
type event struct {
	offset int
	rank   int
	open   bool
	sec    section.Section
}

// RenderRange serializes the sections of st overlapping [start, end) to
// markup, interleaving escaped text from src with open and close tags.
// The range must lie within line and start must not exceed end. Styles
// that need no markup contribute text only.
func RenderRange(st *section.Store, src section.TextSource, line section.Line, start, end int, opts *Options) (string, error) {
	if src == nil {
		return "", fmt.Errorf("%w for line [%d,%d)", ErrNoSource, line.Offset, line.End())
	}
	if opts == nil {
		return "", ErrNoOptions
	}
	if end < start || start < line.Offset || end > line.End() {
		return "", fmt.Errorf("%w: [%d,%d) not within line [%d,%d)",
			ErrRange, start, end, line.Offset, line.End())
	}

	events := collectEvents(st, start, end)

	var b strings.Builder
	styler := opts.styler()
	tx := texter{esc: opts.escaper(), expand: opts.ExpandTabs, tabWidth: opts.tabWidth()}
	cur := start
	for _, ev := range events {
		if ev.offset > cur {
			if err := tx.write(&b, src, cur, ev.offset-cur); err != nil {
				return "", err
			}
			cur = ev.offset
		}
		if !styler.NeedsMarkup(ev.sec.Style) {
			continue
		}
		if ev.open {
			b.WriteString(`<span style="`)
			if err := styler.WriteStyleAttribute(&b, ev.sec.Style); err != nil {
				return "", err
			}
			b.WriteString(`">`)
		} else {
			b.WriteString("</span>")
		}
	}
	if end > cur {
		if err := tx.write(&b, src, cur, end-cur); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

// collectEvents clips every overlapping section to [start, end) and
// returns its boundary events in emission order. Sections whose clipped
// range is empty, zero-length sections included, contribute no events.
func collectEvents(st *section.Store, start, end int) []event {
	var events []event
	for i := 0; i < st.Len(); i++ {
		s := st.At(i)
		o := max(s.Offset, start)
		c := min(s.End(), end)
		if o >= c {
			// Nothing of s is visible in the range. An empty clipped
			// pair would sort close-before-open and orphan its tags.
			continue
		}
		events = append(events,
			event{offset: o, rank: i, open: true, sec: s},
			event{offset: c, rank: i, open: false, sec: s},
		)
	}
	sort.Slice(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.offset != b.offset {
			return a.offset < b.offset
		}
		if a.open != b.open {
			// Closes sort before opens so an inner tag never straddles
			// its neighbor.
			return !a.open
		}
		if a.open {
			return a.rank < b.rank // outer opens first
		}
		return a.rank > b.rank // inner closes first
	})
	return events
}

// texter emits literal text with tab expansion and escaping applied,
// tracking the visual column across segments.
type texter struct {
	esc      Escaper
	expand   bool
	tabWidth int
	col      int
}

func (t *texter) write(b *strings.Builder, src section.TextSource, offset, length int) error {
	text, err := src.Text(offset, length)
	if err != nil {
		return fmt.Errorf("text source failed at [%d,%d): %w", offset, offset+length, err)
	}
	if t.expand && len(text) > 0 {
		text = t.expandTabs(text)
	}
	b.WriteString(t.esc.Escape(text))
	return nil
}

func (t *texter) expandTabs(s string) string {
	if !strings.ContainsRune(s, '\t') {
		t.col += runewidth.StringWidth(s)
		return s
	}
	var out strings.Builder
	for _, r := range s {
		if r == '\t' {
			n := t.tabWidth - t.col%t.tabWidth
			out.WriteString(strings.Repeat(" ", n))
			t.col += n
			continue
		}
		out.WriteRune(r)
		t.col += runewidth.RuneWidth(r)
	}
	return out.String()
}
