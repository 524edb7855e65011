package store

import "errors"

var (
	// ErrInit marks a failure to open the database or create its schema.
	// A store that fails with ErrInit is never returned to the caller.
	ErrInit = errors.New("store initialization failed")

	// ErrStatement marks a failed prepare, bind or execute step.
	ErrStatement = errors.New("statement failed")
)
