package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{English, European, Triangle} {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	got, err := ParseKind("  European ")
	require.NoError(t, err)
	assert.Equal(t, European, got)

	_, err = ParseKind("hexagon")
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.Equal(t, "Kind(9)", Kind(9).String())
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, 3, DefaultSize(English))
	assert.Equal(t, 3, DefaultSize(European))
	assert.Equal(t, 5, DefaultSize(Triangle))

	row, col := DefaultEmptySlot(English, 3)
	assert.Equal(t, [2]int{3, 3}, [2]int{row, col})
	row, col = DefaultEmptySlot(European, 7)
	assert.Equal(t, [2]int{9, 9}, [2]int{row, col})
	row, col = DefaultEmptySlot(Triangle, 8)
	assert.Equal(t, [2]int{0, 0}, [2]int{row, col})
}

func TestNewDefault(t *testing.T) {
	tests := []struct {
		kind  Kind
		size  int
		score int
	}{
		{English, 7, 32},
		{European, 7, 36},
		{Triangle, 5, 14},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			e, err := NewDefault(tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, e.Kind())
			assert.Equal(t, tt.size, e.BoardSize())
			assert.Equal(t, tt.score, e.Score())
		})
	}
}

func TestNewCentered(t *testing.T) {
	e, err := NewCentered(English, 5)
	require.NoError(t, err)
	assert.Equal(t, 13, e.BoardSize())
	s, err := e.SlotAt(6, 6)
	require.NoError(t, err)
	assert.Equal(t, Empty, s)

	_, err = NewCentered(European, 4)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestNewUnknownKind(t *testing.T) {
	e, err := New(Kind(9), 3, 3, 3)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.Nil(t, e)
}
