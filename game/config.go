package game

import (
	"fmt"
	"time"

	"github.com/plus3/tetrimino/tetris"
)

// Config describes a session. Gravity is the time the falling piece takes to
// drop one row; it does not change during a game.
type Config struct {
	Width      int
	Height     int
	Gravity    time.Duration
	Randomizer string
	Piece      int
	Seed       uint64
}

// DefaultConfig returns a 10x20 board with one row per second of gravity and
// a 7-bag randomizer.
func DefaultConfig() Config {
	return Config{
		Width:      10,
		Height:     20,
		Gravity:    time.Second,
		Randomizer: RandomizerBag,
	}
}

// Validate checks the config against the catalog it will be played with.
func (c Config) Validate(catalog *tetris.Catalog) error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("%w: board size %dx%d", tetris.ErrConfig, c.Width, c.Height)
	}
	if c.Gravity <= 0 {
		return fmt.Errorf("%w: gravity interval %v must be positive", tetris.ErrConfig, c.Gravity)
	}
	if catalog.Len() == 0 {
		return fmt.Errorf("%w: empty catalog", tetris.ErrConfig)
	}
	for _, shape := range catalog.All() {
		if shape.Width() > c.Width || shape.Height() > c.Height {
			return fmt.Errorf("%w: shape %v does not fit a %dx%d board", tetris.ErrConfig, shape, c.Width, c.Height)
		}
	}
	switch c.Randomizer {
	case RandomizerBag, RandomizerUniform:
	case RandomizerFixed:
		if c.Piece < 0 || c.Piece >= catalog.Len() {
			return fmt.Errorf("%w: fixed piece %d not in catalog of %d", tetris.ErrConfig, c.Piece, catalog.Len())
		}
	default:
		return fmt.Errorf("%w: unknown randomizer %q", tetris.ErrConfig, c.Randomizer)
	}
	return nil
}
