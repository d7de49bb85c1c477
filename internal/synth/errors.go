package synth

import "errors"

// Error classes raised by the generation engine. Call sites wrap them with
// context using %w; callers branch with errors.Is.
var (
	// ErrConfiguration covers malformed weight vectors, invalid counts and
	// missing or unreadable reference data.
	ErrConfiguration = errors.New("synth: invalid configuration")

	// ErrCapacity means the identifier space minus exclusions cannot hold
	// the requested number of unique ids.
	ErrCapacity = errors.New("synth: identifier capacity exceeded")

	// ErrPrecondition means a generator was asked to run on input that
	// cannot satisfy its contract (e.g. transfers with fewer than 2 customers).
	ErrPrecondition = errors.New("synth: precondition not met")

	// ErrRange means a date or time draw received lower > upper.
	ErrRange = errors.New("synth: invalid range")
)
