package presets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shairomar-7/pegsolitaire/internal/game"
)

func TestInitEmbedded(t *testing.T) {
	t.Setenv("PEG_PRESETS_FILE", "")
	require.NoError(t, Init())

	assert.Contains(t, Names(), "english")
	assert.Contains(t, Names(), "european")
	assert.Contains(t, Names(), "triangle")
	assert.IsIncreasing(t, Names())

	p, ok := Lookup(" English ")
	require.True(t, ok)
	assert.Equal(t, Preset{Name: "english", Kind: game.English, Size: 3, EmptyRow: 3, EmptyCol: 3}, p)

	e, err := p.Engine()
	require.NoError(t, err)
	assert.Equal(t, 32, e.Score())

	p, ok = Lookup("triangle")
	require.True(t, ok)
	e, err = p.Engine()
	require.NoError(t, err)
	assert.Equal(t, 14, e.Score())

	_, ok = Lookup("hexagon")
	assert.False(t, ok)
}

func TestParse(t *testing.T) {
	table, err := Parse([]string{
		"small  triangle 3 0 0",
		"Wide   european 5 6 6",
	})
	require.NoError(t, err)
	assert.Len(t, table, 2)
	assert.Equal(t, game.European, table["wide"].Kind)
	assert.Equal(t, 5, table["wide"].Size)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		is    error
	}{
		{"too few fields", []string{"english english 3 3"}, nil},
		{"unknown kind", []string{"x hexagon 3 3 3"}, game.ErrInvalidConfiguration},
		{"bad number", []string{"x english three 3 3"}, nil},
		{"even thickness", []string{"x english 4 3 3"}, game.ErrInvalidConfiguration},
		{"corner slot", []string{"x english 3 0 0"}, game.ErrInvalidEmptySlot},
		{"duplicate", []string{"x english 3 3 3", "X european 3 3 3"}, nil},
		{"empty", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Parse(tt.lines)
			require.Error(t, err)
			assert.Nil(t, table)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}
