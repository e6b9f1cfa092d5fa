package render

import "errors"

var (
	// ErrFrame indicates a single frame could not be drawn or presented.
	ErrFrame = errors.New("render: frame failed")

	// ErrInterval indicates a negative frame interval.
	ErrInterval = errors.New("render: interval must not be negative")
)
