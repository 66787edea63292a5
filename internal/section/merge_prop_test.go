package section

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/dshills/hilite/internal/style"
)

const propLineEnd = 64

// drawSiblingStore generates a valid store of disjoint sections in
// offset order, all carrying sty.
func drawSiblingStore(t *rapid.T, label string, sty style.Style) *Store {
	st := NewStore()
	pos := 0
	n := rapid.IntRange(0, 6).Draw(t, label+"N")
	for i := 0; i < n; i++ {
		pos += rapid.IntRange(0, 8).Draw(t, label+"Gap")
		length := rapid.IntRange(1, 8).Draw(t, label+"Len")
		if pos+length > propLineEnd {
			break
		}
		st.Append(Section{Offset: pos, Length: length, Style: sty})
		pos += length
	}
	return st
}

// covered reports whether any section of st contains off.
func covered(st *Store, off int) bool {
	for _, s := range st.Sections() {
		if off >= s.Offset && off < s.End() {
			return true
		}
	}
	return false
}

// styleAt returns the style of the innermost section containing off.
func styleAt(st *Store, off int) (style.Style, bool) {
	var found style.Style
	ok := false
	for _, s := range st.Sections() {
		if off >= s.Offset && off < s.End() {
			found, ok = s.Style, true
		}
	}
	return found, ok
}

func TestMergePropertyInvariantsHold(t *testing.T) {
	enableDebug(t)

	rapid.Check(t, func(rt *rapid.T) {
		base := drawSiblingStore(rt, "base", styleX)
		incoming := drawSiblingStore(rt, "in", styleY)
		orig := base.Clone()

		Merge(base, incoming, propLineEnd)

		line := Line{Offset: 0, Length: propLineEnd}
		if err := base.Validate(line); err != nil {
			rt.Fatalf("merged store invalid: %v", err)
		}

		// Base sections survive untouched.
		want := orig.Sections()
		got := base.Sections()
		j := 0
		for _, s := range got {
			if j < len(want) && s == want[j] {
				j++
			}
		}
		if j != len(want) {
			rt.Fatalf("base sections not preserved: got %+v, want subsequence %+v", got, want)
		}

		// Per-offset coverage follows the base-wins policy.
		for off := 0; off < propLineEnd; off++ {
			sty, ok := styleAt(base, off)
			switch {
			case covered(orig, off):
				if !ok || sty != styleX {
					rt.Fatalf("offset %d: base-covered byte lost its style", off)
				}
			case covered(incoming, off):
				if !ok || sty != styleY {
					rt.Fatalf("offset %d: incoming-only byte not styled by incoming", off)
				}
			default:
				if ok {
					rt.Fatalf("offset %d: uncovered byte gained a section", off)
				}
			}
		}
	})
}

func TestMergePropertyIdempotentWhenCovered(t *testing.T) {
	enableDebug(t)

	rapid.Check(t, func(rt *rapid.T) {
		base := drawSiblingStore(rt, "base", styleX)
		incoming := drawSiblingStore(rt, "in", styleY)

		Merge(base, incoming, propLineEnd)
		after := base.Clone()
		// Everything incoming offers is already present, so a second
		// merge of the same store must change nothing.
		Merge(base, incoming, propLineEnd)

		if !base.Equal(after) {
			rt.Fatalf("second merge changed the store: %+v -> %+v",
				after.Sections(), base.Sections())
		}
	})
}
