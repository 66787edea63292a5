package section

import "errors"

// Package errors.
var (
	// ErrInvariant indicates the store invariant (in-bounds, sort order,
	// disjoint-or-nested) was broken by a caller-supplied input or an
	// algorithm defect.
	ErrInvariant = errors.New("section store invariant violated")
)
