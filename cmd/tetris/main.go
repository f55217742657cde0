package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tetrimino/debugui"
	"github.com/plus3/tetrimino/game"
	"github.com/plus3/tetrimino/tetris"
)

const (
	cellSize     = 30
	margin       = 40
	sidebarWidth = 160
	// room for the debug windows left of the board
	debugPanelWidth = 340
)

func main() {
	defaults := game.DefaultConfig()
	width := flag.Int("width", defaults.Width, "Board width in cells.")
	height := flag.Int("height", defaults.Height, "Board height in cells.")
	gravity := flag.Duration("gravity", defaults.Gravity, "Time the falling piece takes to drop one row.")
	randomizer := flag.String("randomizer", defaults.Randomizer, "Piece randomizer: bag, uniform or fixed.")
	piece := flag.Int("piece", 0, "Catalog index dealt by the fixed randomizer.")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Randomizer seed.")
	debug := flag.Bool("debug", false, "Show the Dear ImGui inspector overlay.")
	flag.Parse()

	cfg := game.Config{
		Width:      *width,
		Height:     *height,
		Gravity:    *gravity,
		Randomizer: *randomizer,
		Piece:      *piece,
		Seed:       *seed,
	}
	session, err := game.NewSession(cfg, tetris.Standard())
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	scheduler := game.NewScheduler(session)
	scheduler.RegisterDefaults()

	g := &Game{
		session:   session,
		scheduler: scheduler,
		left:      margin,
	}

	screenWidth := margin*2 + cfg.Width*cellSize + sidebarWidth
	screenHeight := margin*2 + cfg.Height*cellSize
	if *debug {
		g.left += debugPanelWidth
		g.overlay = debugui.NewOverlay("Tetrimino", screenWidth+debugPanelWidth, max(screenHeight, 560))
		g.ui = debugui.Install(scheduler, session)
	} else {
		ebiten.SetWindowSize(screenWidth, screenHeight)
		ebiten.SetWindowTitle("Tetrimino")
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Printf("Starting %dx%d game with %s randomizer, seed %d", cfg.Width, cfg.Height, cfg.Randomizer, cfg.Seed)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("Game failed: %v", err)
	}
	log.Printf("Locked %d pieces, cleared %d lines", session.Stats.Pieces, session.Stats.Lines)
}
