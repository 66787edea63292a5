package section

import "github.com/dshills/hilite/internal/style"

// Precedence selects which store keeps its color where base and
// incoming sections overlap.
type Precedence int

const (
	// BaseWins keeps the base store's sections on overlap; incoming
	// sections contribute only in the gaps the base leaves open.
	BaseWins Precedence = iota
	// IncomingWins lets incoming sections override base coverage.
	IncomingWins
)

// Merge folds incoming into base in place, with base winning on
// overlap: a region already covered by a base section keeps that
// section's style, and each incoming section contributes one new
// section per uncovered gap inside its span, split wherever a gap would
// cross the end of an enclosing section.
//
// Both stores must already satisfy the ordering invariant over
// [0, lineEnd). An incoming section nested inside an earlier incoming
// section contributes nothing, since the earlier one has become part of
// base by the time it is reached.
func Merge(base, incoming *Store, lineEnd int) {
	if Debug {
		mustValid(base, lineEnd)
		mustValid(incoming, lineEnd)
	}

	pos := 0
	open := newEndStack(lineEnd)
	for _, ns := range incoming.sections {
		nsEnd := ns.End()

		// Reconstruct the nesting context at ns.Offset: consume every
		// base section starting at or before it, closing scopes that
		// ended and opening the section's own scope.
		for pos < len(base.sections) && base.sections[pos].Offset <= ns.Offset {
			s := base.sections[pos]
			open.closeThrough(s.Offset)
			open.push(s.End())
			pos++
		}

		cur := ns.Offset
		if cov, ok := open.outermostOpen(); ok && cov > cur {
			// ns starts inside base coverage; nothing to contribute
			// until the outermost enclosing section ends.
			cur = cov
		}

		ins := open.clone()

		// Walk the base sections overlapping the rest of ns, filling
		// the gap in front of each.
		p := pos
		for p < len(base.sections) && base.sections[p].Offset < nsEnd {
			s := base.sections[p]
			p = base.insertGap(p, cur, s.Offset, ns.Style, &ins)
			ins.closeThrough(s.Offset)
			ins.push(s.End())
			if e := s.End(); e > cur {
				cur = e
			}
			p++
		}

		// Trailing gap past the last overlapping base section.
		base.insertGap(p, cur, nsEnd, ns.Style, &ins)
	}

	if Debug {
		mustValid(base, lineEnd)
	}
}

// MergeWith is Merge with a configurable overlap precedence.
func MergeWith(base, incoming *Store, lineEnd int, p Precedence) {
	if p == IncomingWins {
		merged := incoming.Clone()
		Merge(merged, base, lineEnd)
		base.sections = merged.sections
		return
	}
	Merge(base, incoming, lineEnd)
}

// insertGap inserts sections styled sty covering [start, end) at
// position i, splitting the range at every enclosing end offset on ends
// so the pieces nest properly instead of spanning past an ancestor.
// Returns the position following the inserted pieces. Empty or
// already-covered gaps (start >= end) insert nothing.
func (st *Store) insertGap(i, start, end int, sty style.Style, ends *endStack) int {
	// Scopes that closed at or before the gap are irrelevant.
	for ends.size() > 1 && ends.top() <= start {
		ends.pop()
	}
	// Split at each enclosing boundary inside the gap.
	for ends.size() > 0 && ends.top() < end {
		e := ends.pop()
		if start < e {
			st.insertPiece(i, Section{Offset: start, Length: e - start, Style: sty})
			i++
			start = e
		}
	}
	if start < end {
		st.insertPiece(i, Section{Offset: start, Length: end - start, Style: sty})
		i++
	}
	return i
}

// insertPiece inserts s at position i, except that a zero-length
// section already sitting there with the same offset must follow s:
// ties order the longer section first, and a zero-width range nests in
// anything sharing its offset.
func (st *Store) insertPiece(i int, s Section) {
	for i > 0 && st.sections[i-1].Length == 0 && st.sections[i-1].Offset == s.Offset {
		i--
	}
	st.insertAt(i, s)
}

// endStack is a LIFO stack of enclosing end offsets, seeded with the
// line end. Entries are non-increasing from bottom to top: each pushed
// scope is nested in the one below it.
type endStack struct {
	ends []int
}

func newEndStack(lineEnd int) endStack {
	return endStack{ends: []int{lineEnd}}
}

func (k *endStack) size() int {
	return len(k.ends)
}

func (k *endStack) top() int {
	return k.ends[len(k.ends)-1]
}

func (k *endStack) pop() int {
	e := k.top()
	k.ends = k.ends[:len(k.ends)-1]
	return e
}

func (k *endStack) push(e int) {
	k.ends = append(k.ends, e)
}

// closeThrough pops scopes that end at or before offset. The line end
// seed is never popped.
func (k *endStack) closeThrough(offset int) {
	for len(k.ends) > 1 && k.top() <= offset {
		k.pop()
	}
}

// outermostOpen returns the largest open scope end beyond the line end
// seed, if any. Since entries are nested, that is the bottom-most
// section scope on the stack.
func (k *endStack) outermostOpen() (int, bool) {
	if len(k.ends) < 2 {
		return 0, false
	}
	return k.ends[1], true
}

func (k *endStack) clone() endStack {
	out := make([]int, len(k.ends))
	copy(out, k.ends)
	return endStack{ends: out}
}
