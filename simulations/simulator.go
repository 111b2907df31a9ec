// Package simulations plays batches of self-play games and exports their
// move logs for downstream dataset building and training.
package simulations

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"buffalo/bots"
	"buffalo/engine"
	"buffalo/game"
)

// ReasonMaxMoves is the record sentinel for a game stopped at the move cap
// without a verdict.
const ReasonMaxMoves = "max_moves"

// Config describes one simulation run.
type Config struct {
	Games     int
	OutputDir string
	Name      string
	MaxMoves  int
	Seed      uint64
	Parquet   bool
}

// Result summarizes a completed run.
type Result struct {
	Games     int
	OutputDir string
	Summaries []GameSummary
}

// GameSummary is the run-level record of one game.
type GameSummary struct {
	Game     int32  `parquet:"name=game, type=INT32"`
	Winner   string `parquet:"name=winner, type=BYTE_ARRAY, convertedtype=UTF8"`
	Reason   string `parquet:"name=reason, type=BYTE_ARRAY, convertedtype=UTF8"`
	Moves    int32  `parquet:"name=moves, type=INT32"`
	Captures int32  `parquet:"name=captures, type=INT32"`
	Millis   int64  `parquet:"name=millis, type=INT64"`
}

// Simulator generates random self-play games and exports move logs.
type Simulator struct {
	config Config
}

// NewSimulator validates the config and returns a runner.
func NewSimulator(config Config) (*Simulator, error) {
	if config.Games <= 0 {
		return nil, fmt.Errorf("invalid config: games must be positive, got %d", config.Games)
	}
	if config.MaxMoves <= 0 {
		return nil, fmt.Errorf("invalid config: max moves must be positive, got %d", config.MaxMoves)
	}
	if config.Name == "" {
		config.Name = "random"
	}
	if config.OutputDir == "" {
		config.OutputDir = "simulated_games"
	}
	return &Simulator{config: config}, nil
}

// Run plays the configured number of games, writing one CSV move log per
// game plus a run-level summary (CSV, and parquet when enabled).
func (s *Simulator) Run() (Result, error) {
	dir := filepath.Join(s.config.OutputDir, s.config.Name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Result{}, fmt.Errorf("failed to create output directory: %w", err)
	}

	log.Info().Msgf("starting simulation %q: %d games, max %d moves each...", s.config.Name, s.config.Games, s.config.MaxMoves)

	summaries := make([]GameSummary, 0, s.config.Games)
	for i := 1; i <= s.config.Games; i++ {
		summary, err := s.playGame(i, dir)
		if err != nil {
			return Result{}, fmt.Errorf("game %d: %w", i, err)
		}
		summaries = append(summaries, summary)
	}

	if err := writeSummaryCSV(filepath.Join(dir, "summary.csv"), summaries); err != nil {
		return Result{}, err
	}
	if s.config.Parquet {
		if err := writeSummaryParquet(filepath.Join(dir, "summary.parquet"), summaries); err != nil {
			return Result{}, err
		}
	}

	log.Info().Msgf("finished simulation %q: %d games written to %s", s.config.Name, s.config.Games, dir)
	return Result{Games: s.config.Games, OutputDir: dir, Summaries: summaries}, nil
}

func (s *Simulator) playGame(number int, dir string) (GameSummary, error) {
	// Distinct per-game, per-side streams keep runs reproducible.
	seed := s.config.Seed + uint64(number)
	g := engine.NewGame(bots.NewRandom(seed), bots.NewRandom(seed+uint64(s.config.Games)))

	start := time.Now()
	for !g.Over() && g.Board().MoveNumber() < s.config.MaxMoves {
		if _, err := g.Step(); err != nil {
			return GameSummary{}, err
		}
	}
	elapsed := time.Since(start)

	records := g.History()
	captures := 0
	for _, r := range records {
		if r.Captured != game.NoPiece {
			captures++
		}
	}

	summary := GameSummary{
		Game:     int32(number),
		Moves:    int32(g.Board().MoveNumber()),
		Captures: int32(captures),
		Millis:   elapsed.Milliseconds(),
	}
	if winner, ok := g.Winner(); ok {
		summary.Winner = winner.String()
	}
	summary.Reason = g.Reason()
	if !g.Over() {
		log.Info().Msgf("game %d reached the cap of %d moves without a winner", number, s.config.MaxMoves)
		summary.Reason = ReasonMaxMoves
	}

	path := filepath.Join(dir, fmt.Sprintf("%s-game-%d.csv", s.config.Name, number))
	if err := writeGameCSV(path, g, records, s.config.MaxMoves); err != nil {
		return GameSummary{}, err
	}
	return summary, nil
}
