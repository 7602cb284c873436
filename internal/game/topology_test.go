package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectangularIndexOf(t *testing.T) {
	topo := newRectangular(3)
	require.Equal(t, 7, topo.Size())

	i, ok := topo.IndexOf(3, 1)
	assert.True(t, ok)
	assert.Equal(t, 1*7+3, i)

	i, ok = topo.IndexOf(0, 6)
	assert.True(t, ok)
	assert.Equal(t, 42, i)

	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {7, 0}, {0, 7}} {
		_, ok := topo.IndexOf(rc[0], rc[1])
		assert.False(t, ok, "IndexOf(%d,%d)", rc[0], rc[1])
	}
}

func TestRectangularBetween(t *testing.T) {
	topo := newRectangular(3)
	tests := []struct {
		from, to Position
		want     Position
	}{
		{pos(3, 1), pos(3, 3), pos(3, 2)},
		{pos(3, 5), pos(3, 3), pos(3, 4)},
		{pos(1, 3), pos(3, 3), pos(2, 3)},
		{pos(5, 3), pos(3, 3), pos(4, 3)},
	}
	for _, tt := range tests {
		got, ok := topo.Between(tt.from, tt.to)
		require.True(t, ok)
		assert.Equal(t, tt.want, got, "%v -> %v", tt.from, tt.to)
	}

	_, ok := topo.Between(pos(2, 2), pos(4, 4))
	assert.False(t, ok, "rectangular boards have no diagonal jumps")
	assert.False(t, topo.IsValidJump(pos(2, 2), pos(4, 4)))
	assert.True(t, topo.IsValidJump(pos(2, 2), pos(2, 4)))
}

func TestRectangularEdgeOf(t *testing.T) {
	topo := newRectangular(3)
	assert.Equal(t, EdgeTop|EdgeLeft, topo.EdgeOf(0, 0))
	assert.Equal(t, EdgeTop, topo.EdgeOf(0, 3))
	assert.Equal(t, EdgeRight, topo.EdgeOf(3, 6))
	assert.Equal(t, EdgeLeft, topo.EdgeOf(2, 0))
	assert.Equal(t, EdgeBottom|EdgeRight, topo.EdgeOf(6, 6))
	assert.Equal(t, Edge(0), topo.EdgeOf(3, 3))
	assert.Len(t, topo.Directions(), 4)
}

func TestTriangleIndexOf(t *testing.T) {
	cells, err := BuildTriangularBoard(4, 0, 0)
	require.NoError(t, err)
	topo := newTriangle(4, cells)

	for i, c := range cells {
		got, ok := topo.IndexOf(c.pos.row, c.pos.col)
		require.True(t, ok)
		assert.Equal(t, i, got)
	}
	for _, rc := range [][2]int{{0, 1}, {2, 3}, {4, 0}, {-1, 0}} {
		_, ok := topo.IndexOf(rc[0], rc[1])
		assert.False(t, ok, "IndexOf(%d,%d)", rc[0], rc[1])
	}
}

func TestTriangleBetween(t *testing.T) {
	topo := newTriangle(5, nil)
	tests := []struct {
		from, to Position
		want     Position
	}{
		{pos(2, 0), pos(0, 0), pos(1, 0)},
		{pos(4, 0), pos(4, 2), pos(4, 1)},
		{pos(2, 2), pos(0, 0), pos(1, 1)},
		{pos(1, 1), pos(3, 3), pos(2, 2)},
	}
	for _, tt := range tests {
		got, ok := topo.Between(tt.from, tt.to)
		require.True(t, ok)
		assert.Equal(t, tt.want, got, "%v -> %v", tt.from, tt.to)
	}

	assert.True(t, topo.IsValidJump(pos(4, 0), pos(2, 2)))
	_, ok := topo.Between(pos(4, 0), pos(2, 2))
	assert.False(t, ok, "anti-diagonal does not connect triangle holes")
	_, ok = topo.Between(pos(2, 2), pos(4, 0))
	assert.False(t, ok)
}

func TestTriangleEdgeOf(t *testing.T) {
	topo := newTriangle(5, nil)
	assert.Equal(t, EdgeTop|EdgeLeft|EdgeRight, topo.EdgeOf(0, 0))
	assert.Equal(t, EdgeRight, topo.EdgeOf(2, 2))
	assert.Equal(t, EdgeLeft, topo.EdgeOf(3, 0))
	assert.Equal(t, EdgeBottom, topo.EdgeOf(4, 2))
	assert.Equal(t, EdgeBottom|EdgeRight, topo.EdgeOf(4, 4))
	assert.Equal(t, Edge(0), topo.EdgeOf(3, 1))
	assert.Len(t, topo.Directions(), 6)
}
