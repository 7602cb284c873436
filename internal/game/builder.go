// internal/game/builder.go
//
// Builds the initial cell arena for each board topology.
//
// Rectangular boards (English, European):
//   - boardSize = 3*thickness - 2; every (row, col) in [0, boardSize)^2 gets a cell.
//   - Cells are emitted column-major so that index = col*boardSize + row.
//   - Corner cut regions are Invalid, everything else starts as a Marble.
//
// Triangular boards:
//   - Row r holds columns 0..r, emitted row by row (width*(width+1)/2 cells).
//
// In both cases the requested empty slot must land on a Marble cell.
// The builders are pure: on error no cells are returned.

package game

import "fmt"

// RectangularBoardSize returns the side length of an English/European board.
func RectangularBoardSize(thickness int) int { return 3*thickness - 2 }

// BuildRectangularBoard returns the cells of an English (english == true)
// or European board with the given arm thickness and the slot at
// (emptyRow, emptyCol) left empty.
func BuildRectangularBoard(thickness, emptyRow, emptyCol int, english bool) ([]Cell, error) {
	if thickness < 3 || thickness%2 == 0 {
		return nil, fmt.Errorf("%w: arm thickness must be odd and >= 3, got %d",
			ErrInvalidConfiguration, thickness)
	}
	size := RectangularBoardSize(thickness)
	cells := make([]Cell, 0, size*size)
	for col := 0; col < size; col++ {
		for row := 0; row < size; row++ {
			state := Marble
			if isCornerCut(thickness, row, col, english) {
				state = Invalid
			}
			cells = append(cells, Cell{pos: Position{row: row, col: col}, state: state})
		}
	}
	if err := markEmpty(cells, emptyRow, emptyCol); err != nil {
		return nil, err
	}
	return cells, nil
}

// BuildTriangularBoard returns the cells of a triangle board with the given
// number of rows and the slot at (emptyRow, emptyCol) left empty.
func BuildTriangularBoard(width, emptyRow, emptyCol int) ([]Cell, error) {
	if width < 1 {
		return nil, fmt.Errorf("%w: triangle width must be >= 1, got %d",
			ErrInvalidConfiguration, width)
	}
	cells := make([]Cell, 0, width*(width+1)/2)
	for row := 0; row < width; row++ {
		for col := 0; col <= row; col++ {
			cells = append(cells, Cell{pos: Position{row: row, col: col}, state: Marble})
		}
	}
	if err := markEmpty(cells, emptyRow, emptyCol); err != nil {
		return nil, err
	}
	return cells, nil
}

// isCornerCut reports whether (row, col) falls in one of the four corner
// regions removed from a rectangular board.
//
// English corners are (thickness-1)^2 squares. European corners are the
// same squares with the triangle nearest the centre given back, which
// produces the octagon.
func isCornerCut(thickness, row, col int, english bool) bool {
	size := RectangularBoardSize(thickness)
	arm := thickness - 1    // width of a corner square
	far := size - thickness // last index before the far corner squares

	if english {
		outsideCols := col < arm || col > far
		outsideRows := row < arm || row > far
		return outsideCols && outsideRows
	}

	if row < arm {
		return col < arm-row || col > far+row
	}
	if row > far {
		return col < row-far || col >= 2*size-row-thickness
	}
	return false
}

// markEmpty flips the Marble cell at (row, col) to Empty.
func markEmpty(cells []Cell, row, col int) error {
	for i := range cells {
		if cells[i].pos.row != row || cells[i].pos.col != col {
			continue
		}
		if cells[i].state != Marble {
			return fmt.Errorf("%w: (%d,%d) is %s", ErrInvalidEmptySlot, row, col, cells[i].state)
		}
		cells[i].state = Empty
		return nil
	}
	return fmt.Errorf("%w: (%d,%d) is not on the board", ErrInvalidEmptySlot, row, col)
}
