package layout

import "errors"

var (
	// ErrInvalidGeometry is returned when a Geometry violates its
	// invariants (overlapping columns, zero row height, ...).
	ErrInvalidGeometry = errors.New("invalid page geometry")

	// ErrPageLimitExceeded is returned when a configured MaxPages cap
	// would be exceeded. Never returned when MaxPages is 0 (unlimited).
	ErrPageLimitExceeded = errors.New("page limit exceeded")
)
