// internal/game/engine.go
//
// Core engine for a single peg solitaire board.
// Responsibilities:
//   - Own the flat cell arena built by the board builder.
//   - Validate and commit jump moves through the board's Topology.
//   - Report slot states, score and board size to collaborators.
//   - Decide whether any legal move remains (terminal-state search).
//
// Notes:
//   - Validation never mutates; commit touches exactly three cells.
//   - The engine is not safe for concurrent use; callers serialize Move.

package game

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Engine holds the state of one board.
type Engine struct {
	kind  Kind
	topo  Topology
	cells []Cell
	log   zerolog.Logger
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithLogger routes the engine's debug events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

func newEngine(kind Kind, topo Topology, cells []Cell, opts []Option) *Engine {
	e := &Engine{kind: kind, topo: topo, cells: cells, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.With().Str("board", kind.String()).Logger()
	return e
}

// NewEnglish builds a cross-shaped board with the given arm thickness and
// the slot at (emptyRow, emptyCol) left empty.
func NewEnglish(thickness, emptyRow, emptyCol int, opts ...Option) (*Engine, error) {
	cells, err := BuildRectangularBoard(thickness, emptyRow, emptyCol, true)
	if err != nil {
		return nil, err
	}
	return newEngine(English, newRectangular(thickness), cells, opts), nil
}

// NewEuropean builds an octagonal board with the given arm thickness and
// the slot at (emptyRow, emptyCol) left empty.
func NewEuropean(thickness, emptyRow, emptyCol int, opts ...Option) (*Engine, error) {
	cells, err := BuildRectangularBoard(thickness, emptyRow, emptyCol, false)
	if err != nil {
		return nil, err
	}
	return newEngine(European, newRectangular(thickness), cells, opts), nil
}

// NewTriangle builds a triangular board with width rows and the slot at
// (emptyRow, emptyCol) left empty.
func NewTriangle(width, emptyRow, emptyCol int, opts ...Option) (*Engine, error) {
	cells, err := BuildTriangularBoard(width, emptyRow, emptyCol)
	if err != nil {
		return nil, err
	}
	return newEngine(Triangle, newTriangle(width, cells), cells, opts), nil
}

// Kind reports the board topology.
func (e *Engine) Kind() Kind { return e.kind }

// BoardSize is the side of the square that SlotAt accepts.
func (e *Engine) BoardSize() int { return e.topo.Size() }

// SlotAt returns the state at (row, col). Coordinates outside
// [0, BoardSize())^2 yield ErrOutOfBounds; coordinates inside the square
// that are not part of the board report Invalid.
func (e *Engine) SlotAt(row, col int) (SlotState, error) {
	size := e.topo.Size()
	if row < 0 || col < 0 || row >= size || col >= size {
		return Invalid, fmt.Errorf("%w: (%d,%d) outside %dx%d board", ErrOutOfBounds, row, col, size, size)
	}
	i, ok := e.topo.IndexOf(row, col)
	if !ok {
		return Invalid, nil
	}
	return e.cells[i].state, nil
}

// Score counts the marbles left on the board.
func (e *Engine) Score() int {
	n := 0
	for _, c := range e.cells {
		if c.state == Marble {
			n++
		}
	}
	return n
}

// Move jumps the marble at (fromRow, fromCol) over its neighbour into the
// empty slot at (toRow, toCol), removing the neighbour. On any failed
// precondition it returns a *MoveError and leaves the board untouched.
func (e *Engine) Move(fromRow, fromCol, toRow, toCol int) error {
	from, over, to, err := e.check(fromRow, fromCol, toRow, toCol)
	if err != nil {
		e.log.Debug().Err(err).Msg("move rejected")
		return err
	}
	e.cells[from].state = Empty
	e.cells[over].state = Empty
	e.cells[to].state = Marble

	e.log.Debug().
		Stringer("from", e.cells[from].pos).
		Stringer("to", e.cells[to].pos).
		Int("score", e.Score()).
		Msg("move applied")
	return nil
}

// check validates a move without touching the board and returns the arena
// indices of the from, jumped-over and to cells.
func (e *Engine) check(fromRow, fromCol, toRow, toCol int) (from, over, to int, err error) {
	reject := func(reason string) (int, int, int, error) {
		return -1, -1, -1, &MoveError{
			FromRow: fromRow, FromCol: fromCol,
			ToRow: toRow, ToCol: toCol,
			Reason: reason,
		}
	}

	if fromRow == toRow && fromCol == toCol {
		return reject("from and to are the same slot")
	}
	from, ok := e.topo.IndexOf(fromRow, fromCol)
	if !ok {
		return reject("from is not on the board")
	}
	to, ok = e.topo.IndexOf(toRow, toCol)
	if !ok {
		return reject("to is not on the board")
	}

	src, dst := e.cells[from], e.cells[to]
	if src.state != Marble {
		return reject("from is " + src.state.String())
	}
	if dst.state != Empty {
		return reject("to is " + dst.state.String())
	}
	if !e.topo.IsValidJump(src.pos, dst.pos) {
		return reject("jump is not two slots away")
	}

	mid, ok := e.topo.Between(src.pos, dst.pos)
	if !ok {
		return reject("no slot between from and to")
	}
	over, ok = e.topo.IndexOf(mid.row, mid.col)
	if !ok {
		return reject("jumped slot is not on the board")
	}
	if e.cells[over].state != Marble {
		return reject("jumped slot is " + e.cells[over].state.String())
	}
	return from, over, to, nil
}

// IsGameOver reports whether no legal move remains. Every marble is probed
// in each of the topology's directions with the same checks Move uses.
func (e *Engine) IsGameOver() bool {
	if e.Score() == 0 {
		return true
	}
	size := e.topo.Size()
	for _, c := range e.cells {
		if c.state != Marble {
			continue
		}
		row, col := c.pos.row, c.pos.col
		edge := e.topo.EdgeOf(row, col)
		for _, d := range e.topo.Directions() {
			if edge&d.Blocked != 0 {
				continue
			}
			toRow, toCol := row+d.DRow, col+d.DCol
			if toRow < 0 || toCol < 0 || toRow >= size || toCol >= size {
				continue
			}
			if _, _, _, err := e.check(row, col, toRow, toCol); err == nil {
				return false
			}
		}
	}
	return true
}
