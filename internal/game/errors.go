package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration reports a thickness or width that fails its
	// parity/minimum constraint.
	ErrInvalidConfiguration = errors.New("invalid board configuration")

	// ErrInvalidEmptySlot reports an initial empty slot that is not a marble
	// cell of the freshly built board.
	ErrInvalidEmptySlot = errors.New("invalid empty slot")

	// ErrOutOfBounds reports a coordinate outside the addressable square.
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrIllegalMove reports a move whose preconditions do not hold.
	ErrIllegalMove = errors.New("illegal move")
)

// MoveError describes a rejected move. It unwraps to ErrIllegalMove.
type MoveError struct {
	FromRow, FromCol int
	ToRow, ToCol     int
	Reason           string
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("illegal move (%d,%d) -> (%d,%d): %s",
		e.FromRow, e.FromCol, e.ToRow, e.ToCol, e.Reason)
}

func (e *MoveError) Unwrap() error { return ErrIllegalMove }
