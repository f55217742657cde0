package main

import (
	"time"

	"github.com/plus3/tetrimino/bot"
	"github.com/plus3/tetrimino/game"
	"github.com/plus3/tetrimino/tetris"
)

// Result is the outcome of one simulated game.
type Result struct {
	Seed      uint64
	Pieces    int
	Lines     int
	Clears    [game.MaxClear + 1]int
	ToppedOut bool
	Duration  time.Duration
	Board     *tetris.Board
}

// play runs one game until it tops out or maxPieces pieces are locked. Each
// frame plays exactly one piece, so gravity never matters.
func play(cfg game.Config, catalog *tetris.Catalog, policy bot.Policy, maxPieces int) (Result, error) {
	session, err := game.NewSession(cfg, catalog)
	if err != nil {
		return Result{}, err
	}

	scheduler := game.NewScheduler(session)
	scheduler.RegisterDefaults()
	scheduler.Register(&bot.Controller{Policy: policy})

	start := time.Now()
	for !session.State.Over && session.Stats.Pieces < maxPieces {
		scheduler.Once(0)
	}

	result := Result{
		Seed:      cfg.Seed,
		Pieces:    session.Stats.Pieces,
		Lines:     session.Stats.Lines,
		ToppedOut: session.State.Over,
		Duration:  time.Since(start),
		Board:     session.Board,
	}
	for rows := 1; rows <= game.MaxClear; rows++ {
		result.Clears[rows] = session.Stats.Clears(rows)
	}
	return result, nil
}
