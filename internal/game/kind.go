package game

import (
	"fmt"
	"strings"
)

// Kind names a board topology.
type Kind int

const (
	English Kind = iota
	European
	Triangle
)

func (k Kind) String() string {
	switch k {
	case English:
		return "english"
	case European:
		return "european"
	case Triangle:
		return "triangle"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind accepts the names produced by Kind.String, case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "english":
		return English, nil
	case "european":
		return European, nil
	case "triangle":
		return Triangle, nil
	}
	return 0, fmt.Errorf("%w: unknown board %q", ErrInvalidConfiguration, s)
}

// DefaultSize is the traditional size of each board: arm thickness 3 for
// the cross boards, five rows for the triangle.
func DefaultSize(k Kind) int {
	if k == Triangle {
		return 5
	}
	return 3
}

// DefaultEmptySlot is where the traditional game starts: the centre of a
// cross board, the apex of a triangle.
func DefaultEmptySlot(k Kind, size int) (row, col int) {
	if k == Triangle {
		return 0, 0
	}
	mid := 3 * (size - 1) / 2
	return mid, mid
}

// New builds a board of the given kind.
func New(k Kind, size, emptyRow, emptyCol int, opts ...Option) (*Engine, error) {
	switch k {
	case English:
		return NewEnglish(size, emptyRow, emptyCol, opts...)
	case European:
		return NewEuropean(size, emptyRow, emptyCol, opts...)
	case Triangle:
		return NewTriangle(size, emptyRow, emptyCol, opts...)
	}
	return nil, fmt.Errorf("%w: unknown board %v", ErrInvalidConfiguration, k)
}

// NewCentered builds a board of the given size with the traditional empty slot.
func NewCentered(k Kind, size int, opts ...Option) (*Engine, error) {
	row, col := DefaultEmptySlot(k, size)
	return New(k, size, row, col, opts...)
}

// NewDefault builds the traditional board of the given kind.
func NewDefault(k Kind, opts ...Option) (*Engine, error) {
	return NewCentered(k, DefaultSize(k), opts...)
}
