package core

import "errors"

// Sentinel errors for the caller-input defect taxonomy. All failures in
// the engine are deterministic and surfaced immediately; wrap these with
// fmt.Errorf("%w: ...") and match with errors.Is.
var (
	// ErrInvalidParameter covers out-of-range k, r, sizes, timesteps and
	// probabilities, rejected before any computation starts.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrShapeMismatch is returned when a caller-supplied cell slice
	// disagrees with the declared grid dimensions.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrLookupFailure is returned when a rule table is missing an entry
	// for an observed neighbourhood. It is fatal to the evolve call.
	ErrLookupFailure = errors.New("neighbourhood not in rule table")
)
