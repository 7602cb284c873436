// internal/config/config.go
//
// Environment-driven settings for the solitaire runner.
// main loads a .env file (godotenv) before calling Load, so values may come
// from either the process environment or that file.
//
// Variables:
//   PEG_BOARD      english | european | triangle (default english)
//   PEG_PRESET     named preset; overrides board, size and empty slot
//   PEG_SIZE       arm thickness / triangle width (0 = board default)
//   PEG_EMPTY_ROW  initial empty row (-1 = board default)
//   PEG_EMPTY_COL  initial empty col (-1 = board default)
//   PEG_MOVES      scripted moves, "r,c,r,c; r,c,r,c"
//   LOG_LEVEL      zerolog level (default info)
//   LOG_PRETTY     human-readable console logs when true

package config

import (
	"os"
	"strconv"

	"github.com/shairomar-7/pegsolitaire/internal/game"
	"github.com/shairomar-7/pegsolitaire/internal/presets"
)

type Config struct {
	Board     string
	Preset    string
	Size      int
	EmptyRow  int
	EmptyCol  int
	Moves     string
	LogLevel  string
	LogPretty bool
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func Load() Config {
	return Config{
		Board:     getEnv("PEG_BOARD", "english"),
		Preset:    getEnv("PEG_PRESET", ""),
		Size:      getEnvInt("PEG_SIZE", 0),
		EmptyRow:  getEnvInt("PEG_EMPTY_ROW", -1),
		EmptyCol:  getEnvInt("PEG_EMPTY_COL", -1),
		Moves:     getEnv("PEG_MOVES", ""),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogPretty: getEnvBool("LOG_PRETTY", false),
	}
}

// Engine builds the configured board. A preset wins over the individual
// board settings; unset size and slot fall back to the board's defaults.
// presets.Init must have succeeded before a preset can be resolved.
func (c Config) Engine(opts ...game.Option) (*game.Engine, error) {
	if c.Preset != "" {
		p, ok := presets.Lookup(c.Preset)
		if !ok {
			return nil, &UnknownPresetError{Name: c.Preset}
		}
		return p.Engine(opts...)
	}

	kind, err := game.ParseKind(c.Board)
	if err != nil {
		return nil, err
	}
	size := c.Size
	if size <= 0 {
		size = game.DefaultSize(kind)
	}
	row, col := game.DefaultEmptySlot(kind, size)
	if c.EmptyRow >= 0 {
		row = c.EmptyRow
	}
	if c.EmptyCol >= 0 {
		col = c.EmptyCol
	}
	return game.New(kind, size, row, col, opts...)
}

// UnknownPresetError reports a PEG_PRESET name missing from the preset table.
type UnknownPresetError struct {
	Name string
}

func (e *UnknownPresetError) Error() string {
	return "config: unknown preset " + strconv.Quote(e.Name)
}

func (e *UnknownPresetError) Unwrap() error { return game.ErrInvalidConfiguration }
