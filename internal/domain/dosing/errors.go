package dosing

import "errors"

// Sentinel kinds for dosing errors. ErrMissingField marks a request to skip,
// not a batch failure; callers must not mistake a skipped record for a
// zero-dosage one.
var (
	ErrMissingField = errors.New("missing required field")
)
