package tagraph

import "errors"

// Sentinel errors for tagraph. Callers should branch with errors.Is, never
// string comparison.
var (
	// ErrEmptyLocation indicates an empty string was used as a location name.
	ErrEmptyLocation = errors.New("tagraph: location name is empty")

	// ErrLocationNotFound indicates an operation referenced a location that
	// was never added via AddLocation.
	ErrLocationNotFound = errors.New("tagraph: location not found")

	// ErrDuplicateTransitionID indicates AddTransition was called twice with
	// the same id within one Graph.
	ErrDuplicateTransitionID = errors.New("tagraph: transition id already used")
)
