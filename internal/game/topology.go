package game

// Edge is a set of board edges a coordinate touches.
type Edge uint8

const (
	EdgeTop Edge = 1 << iota
	EdgeRight
	EdgeLeft
	EdgeBottom
)

// Direction is a two-slot jump offset. Blocked lists the edges from which
// the jump can never start.
type Direction struct {
	DRow, DCol int
	Blocked    Edge
}

var (
	Up        = Direction{DRow: -2, Blocked: EdgeTop}
	Right     = Direction{DCol: 2, Blocked: EdgeRight}
	Left      = Direction{DCol: -2, Blocked: EdgeLeft}
	Down      = Direction{DRow: 2, Blocked: EdgeBottom}
	UpLeft    = Direction{DRow: -2, DCol: -2, Blocked: EdgeTop | EdgeLeft}
	DownRight = Direction{DRow: 2, DCol: 2, Blocked: EdgeBottom}
)

var (
	orthogonalDirections = []Direction{Up, Right, Left, Down}
	triangleDirections   = []Direction{Up, UpLeft, Right, DownRight, Left, Down}
)

// Topology bundles the geometry-specific hooks the Engine consults.
type Topology interface {
	// Size is the side of the addressable square.
	Size() int
	// IndexOf maps a coordinate to its index in the cell arena.
	IndexOf(row, col int) (int, bool)
	// IsValidJump reports whether from -> to has a legal jump length.
	IsValidJump(from, to Position) bool
	// Between returns the slot jumped over on from -> to.
	Between(from, to Position) (Position, bool)
	// EdgeOf reports the board edges (row, col) touches.
	EdgeOf(row, col int) Edge
	// Directions lists the jumps probed when searching for a legal move.
	Directions() []Direction
}

// rectangular serves both English and European boards: they share a dense
// column-major arena and differ only in which cells the builder marks Invalid.
type rectangular struct {
	size int
}

func newRectangular(thickness int) rectangular {
	return rectangular{size: RectangularBoardSize(thickness)}
}

func (t rectangular) Size() int { return t.size }

func (t rectangular) IndexOf(row, col int) (int, bool) {
	if row < 0 || col < 0 || row >= t.size || col >= t.size {
		return -1, false
	}
	return col*t.size + row, true
}

func (t rectangular) IsValidJump(from, to Position) bool {
	return from.IsTwoStepOrthogonal(to)
}

func (t rectangular) Between(from, to Position) (Position, bool) {
	if !from.IsTwoStepOrthogonal(to) {
		return Position{}, false
	}
	return midpoint(from, to), true
}

func (t rectangular) EdgeOf(row, col int) Edge {
	var e Edge
	if row == 0 {
		e |= EdgeTop
	}
	if col == t.size-1 {
		e |= EdgeRight
	}
	if col == 0 {
		e |= EdgeLeft
	}
	if row == t.size-1 {
		e |= EdgeBottom
	}
	return e
}

func (t rectangular) Directions() []Direction { return orthogonalDirections }

// triangle packs row r with columns 0..r, so storage order is not a
// closed-form function of the coordinate; lookups go through a map.
type triangle struct {
	width int
	index map[Position]int
}

func newTriangle(width int, cells []Cell) triangle {
	index := make(map[Position]int, len(cells))
	for i, c := range cells {
		index[c.pos] = i
	}
	return triangle{width: width, index: index}
}

func (t triangle) Size() int { return t.width }

func (t triangle) IndexOf(row, col int) (int, bool) {
	i, ok := t.index[Position{row: row, col: col}]
	if !ok {
		return -1, false
	}
	return i, true
}

func (t triangle) IsValidJump(from, to Position) bool {
	return from.IsTwoStepOrthogonalOrDiagonal(to)
}

// Between only accepts diagonals along the (+1,+1) axis. The other diagonal
// does not connect neighbouring holes on a triangle board.
func (t triangle) Between(from, to Position) (Position, bool) {
	dr, dc := to.row-from.row, to.col-from.col
	switch {
	case from.IsTwoStepOrthogonal(to):
		return midpoint(from, to), true
	case dr == dc && absInt(dr) == 2:
		return midpoint(from, to), true
	}
	return Position{}, false
}

func (t triangle) EdgeOf(row, col int) Edge {
	var e Edge
	if row == 0 {
		e |= EdgeTop
	}
	if col == row {
		e |= EdgeRight
	}
	if col == 0 {
		e |= EdgeLeft
	}
	if row == t.width-1 {
		e |= EdgeBottom
	}
	return e
}

func (t triangle) Directions() []Direction { return triangleDirections }

func midpoint(a, b Position) Position {
	return Position{row: (a.row + b.row) / 2, col: (a.col + b.col) / 2}
}
