package route

import "errors"

// Configuration errors are fatal and surfaced to the caller synchronously.
// Empty results are not errors; adapter errors are propagated unchanged
// and are not wrapped into these sentinels.
var (
	// ErrZeroCapacity is returned when capacity == 0.
	ErrZeroCapacity = errors.New("route: capacity must be > 0")
	// ErrNegativeCredits is returned when credits < 0.
	ErrNegativeCredits = errors.New("route: credits must be >= 0")
	// ErrNoLink is returned when a requested destination has no direct
	// trade link from the source station.
	ErrNoLink = errors.New("route: source station has no link to destination")
)
