package taxonomy

import "fmt"

// ValidationError reports a malformed or out-of-range input value, like a
// negative market value or an ownership percentage outside the bounds of
// its declared class. It is raised eagerly when the offending record is
// appended or aggregated, never clamped or silently reclassified, and it
// aborts the whole calculation.
type ValidationError struct {
	Ref    string // asset or investment identifier
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input for %q: %s", e.Ref, e.Reason)
}

// DataError reports a structurally inconsistent investment node: a
// participation carrying an asset list, a look-through node carrying
// reported figures, or a node carrying neither. The aggregation path is
// ambiguous, so the calculation aborts.
type DataError struct {
	Ref    string
	Reason string
}

func (e *DataError) Error() string {
	return fmt.Sprintf("inconsistent data for %q: %s", e.Ref, e.Reason)
}

func validationErrorf(ref, format string, args ...any) error {
	return &ValidationError{Ref: ref, Reason: fmt.Sprintf(format, args...)}
}

func dataErrorf(ref, format string, args ...any) error {
	return &DataError{Ref: ref, Reason: fmt.Sprintf(format, args...)}
}
