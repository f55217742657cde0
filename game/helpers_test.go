package game_test

import (
	"testing"
	"time"

	"github.com/plus3/tetrimino/game"
	"github.com/plus3/tetrimino/tetris"
	"github.com/stretchr/testify/require"
)

func oOnly() *tetris.Catalog {
	return tetris.MustCatalog(tetris.ShapeDef{
		Name: "O", Color: tetris.Yellow, Width: 2, Height: 2,
		Rotations: [tetris.Rotations][]int{{1, 1, 1, 1}, {1, 1, 1, 1}, {1, 1, 1, 1}, {1, 1, 1, 1}},
	})
}

func newSession(t *testing.T, width, height int, catalog *tetris.Catalog) *game.Session {
	t.Helper()
	cfg := game.DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	cfg.Gravity = time.Second
	cfg.Randomizer = game.RandomizerFixed
	cfg.Piece = 0

	session, err := game.NewSession(cfg, catalog)
	require.NoError(t, err)
	return session
}

func newScheduler(session *game.Session) *game.Scheduler {
	scheduler := game.NewScheduler(session)
	scheduler.RegisterDefaults()
	return scheduler
}
