package gomoku

import (
	"errors"
	"fmt"
)

// ErrIllegalMove covers out-of-bounds positions, occupied cells and
// undoing an empty cell. Callers recover by re-prompting; a bot producing
// one is an internal invariant violation.
var ErrIllegalMove = errors.New("illegal move")

// ErrInvalidConfiguration is returned at setup time and is never clamped
// away silently.
var ErrInvalidConfiguration = errors.New("invalid configuration")

func illegalMove(move Move, reason string) error {
	return fmt.Errorf("%w at (%d,%d): %s", ErrIllegalMove, move.X, move.Y, reason)
}

func invalidConfig(field string, value any) error {
	return fmt.Errorf("%w: %s=%v", ErrInvalidConfiguration, field, value)
}
