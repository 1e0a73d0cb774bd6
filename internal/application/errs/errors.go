package errs

import "errors"

// Common sentinel errors.
var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidRequest = errors.New("invalid request")
	ErrDataConflict   = errors.New("data conflict")

	// There are no done orders, print and reset has nothing to do.
	// Not a failure.
	ErrNothingToArchive = errors.New("nothing to archive")
	// Print and reset was rolled back, the active orders are untouched.
	ErrResetFailed = errors.New("reset failed")
)
