package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/plus3/tetrimino/bot"
	"github.com/plus3/tetrimino/game"
	"github.com/plus3/tetrimino/render"
	"github.com/plus3/tetrimino/tetris"
)

func main() {
	defaults := game.DefaultConfig()
	games := flag.Int("games", 10, "Number of games to play.")
	width := flag.Int("width", defaults.Width, "Board width in cells.")
	height := flag.Int("height", defaults.Height, "Board height in cells.")
	maxPieces := flag.Int("max-pieces", 1000, "Stop a game after locking this many pieces.")
	randomizer := flag.String("randomizer", defaults.Randomizer, "Piece randomizer: bag, uniform or fixed.")
	piece := flag.Int("piece", 0, "Catalog index dealt by the fixed randomizer.")
	seed := flag.Uint64("seed", 1, "Seed of the first game; game i uses seed+i.")
	policyName := flag.String("policy", "greedy", "Placement policy: greedy or drop.")
	output := flag.String("output", "", "Write one parquet row per game to this path.")
	dump := flag.Bool("dump", false, "Print the final board of every game.")
	flag.Parse()

	policy, err := newPolicy(*policyName)
	if err != nil {
		log.Fatalf("Invalid policy: %v", err)
	}

	cfg := game.Config{
		Width:      *width,
		Height:     *height,
		Gravity:    defaults.Gravity,
		Randomizer: *randomizer,
		Piece:      *piece,
	}
	catalog := tetris.Standard()
	if err := cfg.Validate(catalog); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	log.Printf("Playing %d games on a %dx%d board with the %s policy...\n", *games, cfg.Width, cfg.Height, *policyName)

	report := &Report{
		Games:      *games,
		Width:      cfg.Width,
		Height:     cfg.Height,
		MaxPieces:  *maxPieces,
		Randomizer: cfg.Randomizer,
		Policy:     *policyName,
		GameTime: Stats{
			Samples: make([]time.Duration, 0, *games),
		},
	}

	records := make([]GameRecord, 0, *games)
	startTime := time.Now()
	for i := 0; i < *games; i++ {
		cfg.Seed = *seed + uint64(i)
		result, err := play(cfg, catalog, policy, *maxPieces)
		if err != nil {
			log.Fatalf("Game %d failed: %v", i, err)
		}

		if *dump {
			fmt.Printf("game %d (seed %d): %d pieces, %d lines\n", i, cfg.Seed, result.Pieces, result.Lines)
			if err := render.DefaultText().Render(os.Stdout, result.Board); err != nil {
				log.Fatalf("Failed to print board: %v", err)
			}
		}

		report.Add(result)
		records = append(records, result.Record(i))
	}
	report.TotalTime = time.Since(startTime)
	report.GameTime.Finalize()

	log.Println("Simulation finished.")

	if *output != "" {
		if err := WriteParquet(*output, records); err != nil {
			log.Fatalf("Failed to write results: %v", err)
		}
		log.Printf("Wrote %d results to %s\n", len(records), *output)
	}

	fmt.Println("\n\n--- Simulation Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

func newPolicy(name string) (bot.Policy, error) {
	switch name {
	case "greedy":
		return bot.NewGreedy(), nil
	case "drop":
		return bot.Drop{}, nil
	default:
		return nil, fmt.Errorf("unknown policy %q", name)
	}
}
