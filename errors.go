package callbench

import "errors"

// Failure classes. Errors returned by this package wrap one of these and can
// be matched with errors.Is.
var (
	// ErrConfiguration reports invalid or missing options.
	ErrConfiguration = errors.New("configuration error")

	// ErrDomain reports a computation given values outside its domain,
	// such as a geometric mean over a non-positive duration.
	ErrDomain = errors.New("domain error")

	// ErrTimerSource reports a timer name that matches no available clock.
	ErrTimerSource = errors.New("timer source error")
)
