package domain

import "errors"

var (
	// ErrInvalidParameter covers bad user input: non-positive investment
	// amounts, unknown risk tiers, horizons we don't offer, or a catalog
	// record missing the requested return tier. The calculation is not run.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDivisionUndefined is returned when an allocation is attempted over
	// an empty subset or one whose composite scores sum to zero. The shipped
	// catalog can't produce this, but callers must get a loud failure instead
	// of NaN if it ever happens.
	ErrDivisionUndefined = errors.New("division undefined")

	// ErrUpstreamUnavailable marks failures of external collaborators (the
	// narrative model or the quote source). The engine carries on with
	// last-known state when it sees this.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
