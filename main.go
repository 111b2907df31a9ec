package main

import (
	"flag"

	"github.com/rs/zerolog/log"

	"buffalo/simulations"
)

var (
	numGames  = flag.Int("games", 10, "Number of games to simulate")
	outputDir = flag.String("output-dir", "simulated_games", "Directory for game logs")
	name      = flag.String("name", "random", "Simulation name, used in file names")
	maxMoves  = flag.Int("max-moves", 500, "Stop a game after this many moves")
	seed      = flag.Uint64("seed", 1, "Base seed for reproducible runs")
	asParquet = flag.Bool("parquet", false, "Also write the run summary as parquet")
)

func main() {
	flag.Parse()

	sim, err := simulations.NewSimulator(simulations.Config{
		Games:     *numGames,
		OutputDir: *outputDir,
		Name:      *name,
		MaxMoves:  *maxMoves,
		Seed:      *seed,
		Parquet:   *asParquet,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("invalid simulation config")
	}

	result, err := sim.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("simulation failed")
	}

	wins := map[string]int{}
	for _, s := range result.Summaries {
		wins[s.Winner]++
	}
	log.Info().Msgf("wrote %d games to %s (buffalo wins: %d, hunter wins: %d)",
		result.Games, result.OutputDir, wins["BUFFALO"], wins["HUNTERS"])
}
