package markup

import "errors"

// Package errors.
var (
	// ErrNoSource indicates the text source collaborator is absent.
	ErrNoSource = errors.New("markup: no text source")

	// ErrNoOptions indicates the render options are absent.
	ErrNoOptions = errors.New("markup: no render options")

	// ErrRange indicates the requested render range falls outside the
	// line bounds, or ends before it starts.
	ErrRange = errors.New("markup: range out of bounds")
)
