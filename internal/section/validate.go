package section

import "fmt"

// Debug toggles the invariant assertion pass at the boundaries of
// mutating operations. Enabled by tests and debug builds; release
// builds leave it false and assume the invariants hold.
var Debug = false

// Validate checks the store against the invariants for the given line.
// It returns nil if every section lies within the line, the sequence is
// sorted by offset with outer sections before inner ones, and every
// pair of sections is either disjoint or properly nested.
func (st *Store) Validate(line Line) error {
	for i, s := range st.sections {
		if s.Length < 0 {
			return fmt.Errorf("%w: section %d has negative length %d", ErrInvariant, i, s.Length)
		}
		if s.Offset < line.Offset || s.End() > line.End() {
			return fmt.Errorf("%w: section %d [%d,%d) outside line [%d,%d)",
				ErrInvariant, i, s.Offset, s.End(), line.Offset, line.End())
		}
	}
	return st.validateOrder()
}

// validateEnd checks ordering and the line end bound only. Merge is
// handed a line end but not a line start, so this is the boundary check
// it can perform.
func (st *Store) validateEnd(lineEnd int) error {
	for i, s := range st.sections {
		if s.Length < 0 {
			return fmt.Errorf("%w: section %d has negative length %d", ErrInvariant, i, s.Length)
		}
		if s.Offset < 0 || s.End() > lineEnd {
			return fmt.Errorf("%w: section %d [%d,%d) outside [0,%d)",
				ErrInvariant, i, s.Offset, s.End(), lineEnd)
		}
	}
	return st.validateOrder()
}

func (st *Store) validateOrder() error {
	for i := 1; i < len(st.sections); i++ {
		prev, s := st.sections[i-1], st.sections[i]
		if s.Offset < prev.Offset {
			return fmt.Errorf("%w: section %d offset %d before section %d offset %d",
				ErrInvariant, i, s.Offset, i-1, prev.Offset)
		}
		if s.Offset == prev.Offset && s.End() > prev.End() {
			return fmt.Errorf("%w: section %d ends after section %d but shares its offset",
				ErrInvariant, i, i-1)
		}
	}
	// Each section must be disjoint from or nested in every earlier one.
	for i, s := range st.sections {
		for j := 0; j < i; j++ {
			earlier := st.sections[j]
			if s.Offset >= earlier.End() {
				continue // sibling after
			}
			if !earlier.Contains(s) {
				return fmt.Errorf("%w: section %d [%d,%d) overlaps section %d [%d,%d)",
					ErrInvariant, i, s.Offset, s.End(), j, earlier.Offset, earlier.End())
			}
		}
	}
	return nil
}

// mustValid panics on invariant violations. Debug-only; a failure is a
// programming-error signal, not a recoverable condition.
func mustValid(st *Store, lineEnd int) {
	if err := st.validateEnd(lineEnd); err != nil {
		panic(err)
	}
}

func mustOrdered(st *Store) {
	if err := st.validateOrder(); err != nil {
		panic(err)
	}
}
