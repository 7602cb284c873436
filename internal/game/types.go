// internal/game/types.go
//
// Core type definitions for the peg solitaire engine.
// Defines:
//   - SlotState: what occupies a slot (marble/empty/invalid).
//   - Position: an immutable, non-negative (row, col) coordinate.
//   - Cell: a slot bound to a Position, the unit of the board arena.

package game

import "fmt"

// SlotState represents what a single board slot holds.
// Possible values:
//   - Marble:  a marble sits in the slot.
//   - Empty:   a playable slot with no marble.
//   - Invalid: a coordinate inside the bounding square that is not part of the board.
type SlotState int

const (
	Marble SlotState = iota
	Empty
	Invalid
)

// String returns the lowercase name of the state.
func (s SlotState) String() string {
	switch s {
	case Marble:
		return "marble"
	case Empty:
		return "empty"
	case Invalid:
		return "invalid"
	default:
		return fmt.Sprintf("SlotState(%d)", int(s))
	}
}

// Position is a (row, col) coordinate on the board. Both components are
// non-negative. Positions compare with == and are usable as map keys.
type Position struct {
	row, col int
}

// NewPosition returns the position at (row, col).
// Negative components are rejected with ErrOutOfBounds.
func NewPosition(row, col int) (Position, error) {
	if row < 0 || col < 0 {
		return Position{}, fmt.Errorf("%w: negative position (%d,%d)", ErrOutOfBounds, row, col)
	}
	return Position{row: row, col: col}, nil
}

func (p Position) Row() int { return p.row }
func (p Position) Col() int { return p.col }

// Compare orders positions row-major: -1 if p sorts before o, +1 if after, 0 if equal.
func (p Position) Compare(o Position) int {
	switch {
	case p.row < o.row:
		return -1
	case p.row > o.row:
		return 1
	case p.col < o.col:
		return -1
	case p.col > o.col:
		return 1
	}
	return 0
}

// IsTwoStepOrthogonal reports whether o lies exactly two slots away from p
// along a single axis.
func (p Position) IsTwoStepOrthogonal(o Position) bool {
	dr, dc := absInt(p.row-o.row), absInt(p.col-o.col)
	return (dr == 2 && dc == 0) || (dr == 0 && dc == 2)
}

// IsTwoStepOrthogonalOrDiagonal is IsTwoStepOrthogonal extended with
// two-step diagonals.
func (p Position) IsTwoStepOrthogonalOrDiagonal(o Position) bool {
	dr, dc := absInt(p.row-o.row), absInt(p.col-o.col)
	return p.IsTwoStepOrthogonal(o) || (dr == 2 && dc == 2)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.row, p.col)
}

// Cell is one slot of the board arena. Its position is fixed at creation;
// only the engine's commit step changes its state.
type Cell struct {
	pos   Position
	state SlotState
}

func (c Cell) Position() Position { return c.pos }
func (c Cell) State() SlotState   { return c.state }

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
