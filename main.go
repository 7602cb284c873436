package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/shairomar-7/pegsolitaire/internal/config"
	"github.com/shairomar-7/pegsolitaire/internal/game"
	"github.com/shairomar-7/pegsolitaire/internal/presets"
	"github.com/shairomar-7/pegsolitaire/internal/replay"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	if err := presets.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load board presets")
	}

	moves, err := replay.ParseMoves(cfg.Moves)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid PEG_MOVES")
	}

	engine, err := cfg.Engine(game.WithLogger(log.Logger))
	if err != nil {
		log.Fatal().Err(err).
			Str("board", cfg.Board).
			Str("preset", cfg.Preset).
			Strs("presets", presets.Names()).
			Msg("failed to build board")
	}
	log.Info().
		Stringer("board", engine.Kind()).
		Int("size", engine.BoardSize()).
		Int("score", engine.Score()).
		Int("moves", len(moves)).
		Msg("board ready")

	res := replay.Run(engine, moves, log.Logger)
	log.Info().
		Int("applied", res.Applied).
		Int("rejected", res.Rejected).
		Int("score", res.Score).
		Bool("gameOver", res.GameOver).
		Msg("replay finished")
}
