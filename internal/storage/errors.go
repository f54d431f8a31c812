package storage

import "errors"

var (
	// ErrNotFound is returned when a requested table or report does not
	// exist, including Latest before the first completed run.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateKey is returned when a source table with the same name
	// was already put this run. Sources are fetched once per run.
	ErrDuplicateKey = errors.New("duplicate key: source already loaded")

	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
)
