package domain

import "errors"

// Sentinel errors for frame operations.
var (
	// ErrMissingColumn is returned when a formula or chart references a
	// column that is not present in the frame. This is an assembly-time
	// configuration error, never a per-row condition.
	ErrMissingColumn = errors.New("missing column")

	// ErrEmptyFrame is returned when an operation requires at least one row.
	ErrEmptyFrame = errors.New("empty frame")
)
