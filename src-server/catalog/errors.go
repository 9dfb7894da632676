package catalog

import "errors"

var (
	// ErrNotArray means the feed payload was not a JSON array.
	ErrNotArray = errors.New("events payload is not an array")
	// ErrNoValidEvents means the array was there but every element failed
	// validation.
	ErrNoValidEvents = errors.New("no valid events in payload")
)
