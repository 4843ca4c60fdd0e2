package usecase

import crerr "github.com/cockroachdb/errors"

var (
	ErrInvalidInput          = crerr.New("invalid input")
	ErrUnresolvedEntity      = crerr.New("unresolved entity")
	ErrDependencyUnavailable = crerr.New("dependency unavailable")
	ErrGameFailed            = crerr.New("game failed")
	// ErrDimensionWrite marks a sink failure on season level data such as
	// teams and franchises. It aborts the season rather than one game.
	ErrDimensionWrite = crerr.New("dimension write failed")
)
