package tatemplate

import "errors"

// Sentinel errors for tatemplate. Callers should branch with errors.Is.
var (
	// ErrEmptyName indicates an empty template or location name.
	ErrEmptyName = errors.New("tatemplate: name is empty")

	// ErrNoLocations indicates a template was created with no locations.
	ErrNoLocations = errors.New("tatemplate: template has no locations")

	// ErrInitialNotInLocations indicates the requested initial location is
	// not among the template's declared locations.
	ErrInitialNotInLocations = errors.New("tatemplate: initial location not declared")

	// ErrUnknownLocation indicates a transition, guard or invariant referenced
	// a location the template does not know about.
	ErrUnknownLocation = errors.New("tatemplate: unknown location")

	// ErrUnknownTransition indicates a guard referenced a transition id the
	// template never created.
	ErrUnknownTransition = errors.New("tatemplate: unknown transition")

	// ErrInvariantNotUpperBound indicates an invariant constraint was not
	// shaped as an upper bound ("<" or "<="). The front-end must have
	// already flipped the user's phrasing into the dual upper bound
	// before it reaches the builder.
	ErrInvariantNotUpperBound = errors.New("tatemplate: invariant constraint must be an upper bound")

	// ErrAlreadyFinalized indicates a mutating call was made after Finalize.
	ErrAlreadyFinalized = errors.New("tatemplate: template already finalized")

	// ErrNotFinalized indicates a read operation that requires Finalize was
	// called before Finalize completed.
	ErrNotFinalized = errors.New("tatemplate: template not finalized")
)
