package ddr

import "errors"

// Fatal input errors. Both abort a conversion run; callers wrap them with
// the offending table, column, or identifier.
var (
	// ErrMissingColumn reports a required column absent from an input CSV.
	ErrMissingColumn = errors.New("required column missing")

	// ErrDuplicateIdentifier reports an entity identifier collision.
	// Downstream lookups would be ambiguous, so the run cannot continue.
	ErrDuplicateIdentifier = errors.New("duplicate entity identifier")
)
