package recordfile

import "errors"

// Sentinel kinds for record file errors.
var (
	ErrNotFound = errors.New("record file not found")
	ErrDecode   = errors.New("record file decode failed")
)
