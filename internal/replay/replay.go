// Package replay applies a pre-recorded list of moves to a board.
package replay

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/shairomar-7/pegsolitaire/internal/game"
)

// Move is one jump in board coordinates.
type Move struct {
	FromRow, FromCol int
	ToRow, ToCol     int
}

func (m Move) String() string {
	return fmt.Sprintf("%d,%d->%d,%d", m.FromRow, m.FromCol, m.ToRow, m.ToCol)
}

// Result summarises a replay.
type Result struct {
	Applied  int  `json:"applied"`
	Rejected int  `json:"rejected"`
	Score    int  `json:"score"`
	GameOver bool `json:"gameOver"`
}

// ParseMoves reads "fromRow,fromCol,toRow,toCol" groups separated by ';'
// or newlines. Blank groups are skipped.
func ParseMoves(s string) ([]Move, error) {
	groups := strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == '\n' })
	out := make([]Move, 0, len(groups))
	for _, g := range groups {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		parts := strings.Split(g, ",")
		if len(parts) != 4 {
			return nil, fmt.Errorf("replay: move %q: want 4 coordinates, got %d", g, len(parts))
		}
		var n [4]int
		for i, p := range parts {
			v, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return nil, fmt.Errorf("replay: move %q: %w", g, err)
			}
			n[i] = v
		}
		out = append(out, Move{FromRow: n[0], FromCol: n[1], ToRow: n[2], ToCol: n[3]})
	}
	return out, nil
}

// Run applies moves in order. Illegal moves are logged and counted but do
// not stop the run; the run ends early once no legal move remains.
func Run(e *game.Engine, moves []Move, logger zerolog.Logger) Result {
	var res Result
	for i, m := range moves {
		if e.IsGameOver() {
			logger.Info().Int("skipped", len(moves)-i).Msg("game over, remaining moves skipped")
			break
		}
		if err := e.Move(m.FromRow, m.FromCol, m.ToRow, m.ToCol); err != nil {
			res.Rejected++
			logger.Warn().Err(err).Int("step", i+1).Stringer("move", m).Msg("move rejected")
			continue
		}
		res.Applied++
		logger.Info().Int("step", i+1).Stringer("move", m).Int("score", e.Score()).Msg("move applied")
	}
	res.Score = e.Score()
	res.GameOver = e.IsGameOver()
	return res
}
