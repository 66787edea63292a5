// Package section maintains the ordered colored highlight sections of a
// single line of text. A store holds sections that are pairwise disjoint
// or properly nested; Merge folds an independently produced store into
// an existing one without breaking that structure.
package section

import (
	"github.com/dshills/hilite/internal/style"
)

// Section is a styled half-open byte range [Offset, Offset+Length)
// within one line.
type Section struct {
	// Offset is the starting byte offset in the global text coordinate
	// space.
	Offset int

	// Length is the byte length of the section. Zero is legal and means
	// the section covers nothing.
	Length int

	// Style is the section's color and attributes.
	Style style.Style
}

// End returns the exclusive end offset of the section.
func (s Section) End() int {
	return s.Offset + s.Length
}

// Contains returns true if other lies fully within s.
func (s Section) Contains(other Section) bool {
	return s.Offset <= other.Offset && other.End() <= s.End()
}

// Line describes the bounds of the line being highlighted, as a
// half-open byte range [Offset, Offset+Length) in the global text
// coordinate space.
type Line struct {
	Offset int
	Length int
}

// End returns the exclusive end offset of the line.
func (l Line) End() int {
	return l.Offset + l.Length
}

// TextSource supplies raw text over the global offset space. Text must
// return exactly length bytes starting at offset. The renderer never
// requests ranges outside the line bounds it was given.
type TextSource interface {
	Text(offset, length int) (string, error)
}

// Store is the ordered sequence of sections belonging to one line.
//
// Invariants, assumed by Merge and the renderers and checked when Debug
// is set: every section lies within the line and has non-negative
// length; the sequence is sorted by offset, outer before inner on ties;
// any two sections are either disjoint or properly nested.
//
// A Store is not safe for concurrent mutation.
type Store struct {
	sections []Section
}

// NewStore creates a store pre-populated with the given sections, which
// must already respect the ordering invariant.
func NewStore(sections ...Section) *Store {
	st := &Store{}
	for _, s := range sections {
		st.Append(s)
	}
	return st
}

// Len returns the number of sections in the store.
func (st *Store) Len() int {
	return len(st.sections)
}

// At returns the section at position i.
func (st *Store) At(i int) Section {
	return st.sections[i]
}

// Sections returns a copy of the section sequence.
func (st *Store) Sections() []Section {
	out := make([]Section, len(st.sections))
	copy(out, st.sections)
	return out
}

// Append adds a section at the end of the sequence. Used during initial
// construction by highlighters; the caller is responsible for keeping
// the sequence ordered. Checked when Debug is set.
func (st *Store) Append(s Section) {
	st.sections = append(st.sections, s)
	if Debug {
		mustOrdered(st)
	}
}

// insertAt places s at position i, shifting later sections right.
func (st *Store) insertAt(i int, s Section) {
	st.sections = append(st.sections, Section{})
	copy(st.sections[i+1:], st.sections[i:])
	st.sections[i] = s
}

// Clone returns an independent copy of the store.
func (st *Store) Clone() *Store {
	return &Store{sections: st.Sections()}
}

// Equal reports whether two stores hold identical section sequences.
func (st *Store) Equal(other *Store) bool {
	if st.Len() != other.Len() {
		return false
	}
	for i, s := range st.sections {
		if s != other.sections[i] {
			return false
		}
	}
	return true
}
