package gnuplot

import "errors"

// Error taxonomy for session and plotting failures. Every failure is
// recoverable at the API boundary: methods log, record the error on the
// session, and return without side effects. Use [Session.Err] together
// with errors.Is to distinguish the categories.
var (
	// ErrSessionUnavailable reports that the gnuplot executable could not
	// be located, the pipe to it could not be opened, or a required
	// display context is missing.
	ErrSessionUnavailable = errors.New("gnuplot: session unavailable")

	// ErrResourceExhausted reports that the process-wide scratch file cap
	// has been reached.
	ErrResourceExhausted = errors.New("gnuplot: scratch file limit reached")

	// ErrValidation reports empty or mismatched-length input series, or
	// malformed grid dimensions.
	ErrValidation = errors.New("gnuplot: invalid plot data")

	// ErrIO reports a scratch file write or flush failure.
	ErrIO = errors.New("gnuplot: scratch file write failed")
)
