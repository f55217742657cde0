package tetris_test

import (
	"testing"

	"github.com/plus3/tetrimino/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	b := tetris.NewBoard(10, 20)
	assert.Equal(t, 10, b.Width())
	assert.Equal(t, 20, b.Height())
	assert.False(t, b.HasPiece())
	assert.Nil(t, b.FallingShape())
	assert.Equal(t, 0, lockedCount(b))

	assertPanicsWith(t, tetris.ErrConfig, func() { tetris.NewBoard(0, 20) })
	assertPanicsWith(t, tetris.ErrConfig, func() { tetris.NewBoard(10, -1) })
}

func TestSpawnCentersPiece(t *testing.T) {
	catalog := testCatalog(t)

	tests := []struct {
		shape      string
		wantX      int
		wantY      int
		boardWidth int
	}{
		{"O", 4, 0, 10},
		{"T", 3, 0, 10},
		{"J", 3, -1, 10},
		{"I", 3, -2, 10},
		{"I", 0, -2, 4},
		{"O", 0, 0, 2},
		{"dot", 4, 0, 9},
	}

	for _, tt := range tests {
		t.Run(tt.shape, func(t *testing.T) {
			b := tetris.NewBoard(tt.boardWidth, 20)
			require.True(t, b.Spawn(shape(t, catalog, tt.shape)))

			x, y := b.Position()
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
			assert.Equal(t, 0, b.FallingRotation())
			assert.Equal(t, tt.shape, b.FallingShape().Name())
		})
	}
}

func TestSpawnRejectsOversizedShape(t *testing.T) {
	catalog := testCatalog(t)

	b := tetris.NewBoard(3, 20)
	assertPanicsWith(t, tetris.ErrConfig, func() { b.Spawn(shape(t, catalog, "I")) })

	b = tetris.NewBoard(10, 1)
	assertPanicsWith(t, tetris.ErrConfig, func() { b.Spawn(shape(t, catalog, "O")) })

	assertPanicsWith(t, tetris.ErrConfig, func() { b.Spawn(nil) })
}

func TestFixLocksAtFloor(t *testing.T) {
	catalog := testCatalog(t)
	o := shape(t, catalog, "O")

	b := tetris.NewBoard(10, 20)
	require.True(t, b.Spawn(o))
	x, y := b.Position()
	assert.Equal(t, 4, x)
	assert.Equal(t, 0, y)

	b.Fix()
	assert.False(t, b.HasPiece())
	x, y = b.Position()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)

	assert.Equal(t, 4, lockedCount(b))
	for _, cell := range [][2]int{{4, 18}, {5, 18}, {4, 19}, {5, 19}} {
		color, ok := b.FixedColor(cell[0], cell[1])
		assert.True(t, ok, "cell %v", cell)
		assert.Equal(t, tetris.Yellow, color, "cell %v", cell)
	}
}

func TestFixWithoutRoomToFall(t *testing.T) {
	catalog := testCatalog(t)

	b := tetris.NewBoard(10, 2)
	require.True(t, b.Spawn(shape(t, catalog, "O")))
	b.Fix()

	assert.Equal(t, 4, lockedCount(b))
	for _, cell := range [][2]int{{4, 0}, {5, 0}, {4, 1}, {5, 1}} {
		color, ok := b.FixedColor(cell[0], cell[1])
		assert.True(t, ok, "cell %v", cell)
		assert.Equal(t, tetris.Yellow, color, "cell %v", cell)
	}
}

func TestFixStacksWithoutOverwriting(t *testing.T) {
	catalog := testCatalog(t)
	o := shape(t, catalog, "O")

	b := tetris.NewBoard(10, 20)
	for i := 1; i <= 5; i++ {
		require.True(t, b.Spawn(o))
		b.Fix()
		assert.Equal(t, 4*i, lockedCount(b))
	}

	for y := 10; y < 20; y++ {
		for x := 0; x < 10; x++ {
			_, ok := b.FixedColor(x, y)
			assert.Equal(t, x == 4 || x == 5, ok, "cell (%d, %d)", x, y)
		}
	}
}

func TestSpawnLocksFallingPiece(t *testing.T) {
	catalog := testCatalog(t)
	o := shape(t, catalog, "O")

	b := tetris.NewBoard(10, 20)
	require.True(t, b.Spawn(o))
	require.True(t, b.MoveLeft())
	require.True(t, b.Spawn(o))

	assert.True(t, b.HasPiece())
	assert.Equal(t, 4, lockedCount(b))
	color, ok := b.FixedColor(3, 19)
	assert.True(t, ok)
	assert.Equal(t, tetris.Yellow, color)

	x, y := b.Position()
	assert.Equal(t, 4, x)
	assert.Equal(t, 0, y)
}

func TestMoveBlockedAtWalls(t *testing.T) {
	catalog := testCatalog(t)

	b := tetris.NewBoard(10, 20)
	require.True(t, b.Spawn(shape(t, catalog, "O")))

	for i := 0; i < 4; i++ {
		require.True(t, b.MoveLeft())
	}
	assert.False(t, b.MoveLeft())
	x, y := b.Position()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)

	for i := 0; i < 8; i++ {
		require.True(t, b.MoveRight())
	}
	assert.False(t, b.MoveRight())
	x, _ = b.Position()
	assert.Equal(t, 8, x)

	assert.False(t, b.MoveUp())
	for i := 0; i < 18; i++ {
		require.True(t, b.MoveDown())
	}
	assert.False(t, b.MoveDown())
	x, y = b.Position()
	assert.Equal(t, 8, x)
	assert.Equal(t, 18, y)
}

func TestMoveBlockedByStack(t *testing.T) {
	catalog := testCatalog(t)
	dot := shape(t, catalog, "dot")

	b := tetris.NewBoard(10, 20)
	dropAt(t, b, dot, 3)

	require.True(t, b.Spawn(dot))
	for i := 0; i < 19; i++ {
		require.True(t, b.MoveDown())
	}
	assert.False(t, b.MoveLeft(), "column 3 is occupied at the floor")
	x, y := b.Position()
	assert.Equal(t, 4, x)
	assert.Equal(t, 19, y)
}

func TestCanMoveTo(t *testing.T) {
	catalog := testCatalog(t)

	b := tetris.NewBoard(10, 20)
	require.True(t, b.Spawn(shape(t, catalog, "O")))

	assert.True(t, b.CanMoveTo(3, 0))
	assert.True(t, b.CanMoveTo(4, 1))
	assert.False(t, b.CanMoveTo(4, 0), "no movement")
	assert.False(t, b.CanMoveTo(6, 0), "two columns")
	assert.False(t, b.CanMoveTo(5, 1), "diagonal")
	assert.False(t, b.CanMoveTo(4, -1), "above the board")

	x, y := b.Position()
	assert.Equal(t, 4, x)
	assert.Equal(t, 0, y)
}

func TestRotateRoundTrip(t *testing.T) {
	catalog := testCatalog(t)

	for _, name := range []string{"T", "J", "L", "S", "Z", "O"} {
		t.Run(name, func(t *testing.T) {
			b := tetris.NewBoard(10, 20)
			require.True(t, b.Spawn(shape(t, catalog, name)))
			require.True(t, b.MoveDown())
			require.True(t, b.MoveDown())

			for start := 0; start < tetris.Rotations; start++ {
				before := falling(b)
				rotation := b.FallingRotation()

				require.True(t, b.RotateLeft())
				require.True(t, b.RotateRight())
				assert.Equal(t, before, falling(b))
				assert.Equal(t, rotation, b.FallingRotation())

				require.True(t, b.RotateRight())
				require.True(t, b.RotateLeft())
				assert.Equal(t, before, falling(b))

				require.True(t, b.RotateRight())
				assert.Equal(t, (rotation+1)%tetris.Rotations, b.FallingRotation())
			}
		})
	}
}

func TestRotateRejectedKeepsState(t *testing.T) {
	catalog := testCatalog(t)

	b := tetris.NewBoard(10, 20)
	require.True(t, b.Spawn(shape(t, catalog, "I")))
	before := falling(b)

	// the vertical bar would poke above row 0
	assert.False(t, b.RotateRight())
	assert.False(t, b.RotateLeft())
	assert.Equal(t, 0, b.FallingRotation())
	assert.Equal(t, before, falling(b))
	x, y := b.Position()
	assert.Equal(t, 3, x)
	assert.Equal(t, -2, y)

	require.True(t, b.MoveDown())
	require.True(t, b.MoveDown())
	assert.True(t, b.RotateRight())
	assert.Equal(t, 1, b.FallingRotation())
	assert.True(t, b.IsFallingBlockHere(5, 3))
	assert.False(t, b.IsFallingBlockHere(4, 2))
}

func TestShadowDistance(t *testing.T) {
	catalog := testCatalog(t)
	o := shape(t, catalog, "O")

	b := tetris.NewBoard(10, 20)
	require.True(t, b.Spawn(o))
	assert.Equal(t, 18, b.ShadowDistance())

	for i := 0; i < 3; i++ {
		require.True(t, b.MoveDown())
	}
	assert.Equal(t, 15, b.ShadowDistance())
	_, y := b.Position()
	assert.Equal(t, 3, y, "shadow query must not move the piece")

	b.Fix()
	require.True(t, b.Spawn(o))
	assert.Equal(t, 16, b.ShadowDistance())
	require.True(t, b.MoveLeft())
	require.True(t, b.MoveLeft())
	assert.Equal(t, 18, b.ShadowDistance())
}

func TestIsFallingBlockHere(t *testing.T) {
	catalog := testCatalog(t)

	b := tetris.NewBoard(10, 20)
	require.True(t, b.Spawn(shape(t, catalog, "T")))
	assert.Equal(t, tetris.Purple, b.FallingColor())

	want := map[[2]int]bool{{4, 0}: true, {3, 1}: true, {4, 1}: true, {5, 1}: true}
	for y := 0; y < 20; y++ {
		for x := 0; x < 10; x++ {
			assert.Equal(t, want[[2]int{x, y}], b.IsFallingBlockHere(x, y), "cell (%d, %d)", x, y)
		}
	}

	assertPanicsWith(t, tetris.ErrRange, func() { b.IsFallingBlockHere(10, 0) })
	assertPanicsWith(t, tetris.ErrRange, func() { b.IsFallingBlockHere(0, -1) })
}

func TestClearBottomLine(t *testing.T) {
	catalog := testCatalog(t)
	dot := shape(t, catalog, "dot")
	o := shape(t, catalog, "O")

	b := tetris.NewBoard(10, 20)
	for _, x := range []int{0, 1, 2, 3, 6, 7, 8, 9} {
		dropAt(t, b, dot, x)
	}
	assert.Empty(t, b.FullLines())

	require.True(t, b.Spawn(o))
	b.Fix()

	assert.Equal(t, []int{19}, b.FullLines())
	assert.Equal(t, []int{19}, b.ClearLines())

	assert.Equal(t, 2, lockedCount(b))
	for x := 0; x < 10; x++ {
		color, ok := b.FixedColor(x, 19)
		if x == 4 || x == 5 {
			assert.True(t, ok)
			assert.Equal(t, tetris.Yellow, color)
		} else {
			assert.False(t, ok, "column %d", x)
		}
		_, ok = b.FixedColor(x, 0)
		assert.False(t, ok)
		_, ok = b.FixedColor(x, 18)
		assert.False(t, ok)
	}
}

func TestClearSeveralLines(t *testing.T) {
	catalog := testCatalog(t)
	dot := shape(t, catalog, "dot")

	b := tetris.NewBoard(2, 4)
	for i := 0; i < 3; i++ {
		dropAt(t, b, dot, 0)
	}
	for i := 0; i < 2; i++ {
		dropAt(t, b, dot, 1)
	}
	require.Equal(t, "..\n#.\n##\n##\n", snapshot(b))

	assert.Equal(t, []int{2, 3}, b.FullLines())
	assert.Equal(t, []int{2, 3}, b.ClearLines())
	assert.Equal(t, "..\n..\n..\n#.\n", snapshot(b))
}

func TestClearLinesIdempotent(t *testing.T) {
	catalog := testCatalog(t)
	dot := shape(t, catalog, "dot")

	b := tetris.NewBoard(3, 3)
	for _, x := range []int{0, 1, 2, 0} {
		dropAt(t, b, dot, x)
	}

	assert.Equal(t, []int{2}, b.ClearLines())
	after := snapshot(b)
	assert.Equal(t, "...\n...\n#..\n", after)

	assert.Nil(t, b.ClearLines())
	assert.Equal(t, after, snapshot(b))
	assert.Nil(t, b.ClearLines())
	assert.Equal(t, after, snapshot(b))
}

func TestRemoveLinesShiftsColors(t *testing.T) {
	catalog := testCatalog(t)
	dot := shape(t, catalog, "dot")
	other := shape(t, catalog, "other")

	b := tetris.NewBoard(1, 3)
	dropAt(t, b, dot, 0)
	dropAt(t, b, other, 0)
	dropAt(t, b, dot, 0)

	b.RemoveLines([]int{1, 1})

	_, ok := b.FixedColor(0, 0)
	assert.False(t, ok)
	for _, y := range []int{1, 2} {
		color, ok := b.FixedColor(0, y)
		assert.True(t, ok)
		assert.Equal(t, dotColor, color)
	}

	b.RemoveLines(nil)
	assert.Equal(t, ".\n#\n#\n", snapshot(b))

	assertPanicsWith(t, tetris.ErrRange, func() { b.RemoveLines([]int{3}) })
	assertPanicsWith(t, tetris.ErrRange, func() { b.RemoveLines([]int{-1}) })
}

func TestToppedOut(t *testing.T) {
	catalog := testCatalog(t)
	dot := shape(t, catalog, "dot")

	b := tetris.NewBoard(4, 3)
	assert.False(t, b.IsFullStacked())
	for _, x := range []int{3, 2, 0, 1} {
		for i := 0; i < 3; i++ {
			dropAt(t, b, dot, x)
		}
	}
	// every row is full, nothing has been cleared
	require.Equal(t, "####\n####\n####\n", snapshot(b))
	assert.True(t, b.IsFullStacked())

	assert.False(t, b.Spawn(shape(t, catalog, "O")))
	assert.False(t, b.HasPiece(), "a rejected piece is discarded")
	x, y := b.Position()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
	assert.Equal(t, 12, lockedCount(b))
}

func TestSpawnFailsOnOccupiedTopRow(t *testing.T) {
	catalog := testCatalog(t)
	dot := shape(t, catalog, "dot")

	b := tetris.NewBoard(10, 20)
	for y := 0; y < 20; y++ {
		dropAt(t, b, dot, 4)
	}
	assert.True(t, b.IsFullStacked())
	assert.False(t, b.Spawn(dot))
	assert.False(t, b.Spawn(shape(t, catalog, "O")))
	assert.False(t, b.Spawn(shape(t, catalog, "J")))
	assert.False(t, b.HasPiece())
	assert.Equal(t, 20, lockedCount(b))
}

func TestPreconditions(t *testing.T) {
	catalog := testCatalog(t)

	empty := tetris.NewBoard(10, 20)
	for name, fn := range map[string]func(){
		"Fix":             empty.Fix,
		"FallingColor":    func() { empty.FallingColor() },
		"FallingRotation": func() { empty.FallingRotation() },
		"ShadowDistance":  func() { empty.ShadowDistance() },
		"MoveLeft":        func() { empty.MoveLeft() },
		"MoveDown":        func() { empty.MoveDown() },
		"RotateRight":     func() { empty.RotateRight() },
		"CanMoveTo":       func() { empty.CanMoveTo(1, 0) },
		"IsFallingBlock":  func() { empty.IsFallingBlockHere(0, 0) },
	} {
		t.Run("empty/"+name, func(t *testing.T) {
			assertPanicsWith(t, tetris.ErrInvalidState, fn)
		})
	}

	falling := tetris.NewBoard(10, 20)
	require.True(t, falling.Spawn(shape(t, catalog, "O")))
	for name, fn := range map[string]func(){
		"FullLines":     func() { falling.FullLines() },
		"RemoveLines":   func() { falling.RemoveLines([]int{19}) },
		"ClearLines":    func() { falling.ClearLines() },
		"IsFullStacked": func() { falling.IsFullStacked() },
	} {
		t.Run("falling/"+name, func(t *testing.T) {
			assertPanicsWith(t, tetris.ErrInvalidState, fn)
		})
	}

	assertPanicsWith(t, tetris.ErrRange, func() { empty.FixedColor(-1, 0) })
	assertPanicsWith(t, tetris.ErrRange, func() { empty.FixedColor(0, 20) })
}

func TestClone(t *testing.T) {
	catalog := testCatalog(t)
	o := shape(t, catalog, "O")

	b := tetris.NewBoard(10, 20)
	require.True(t, b.Spawn(o))
	b.Fix()
	require.True(t, b.Spawn(o))

	c := b.Clone()
	require.True(t, c.MoveLeft())
	c.Fix()

	assert.Equal(t, 4, lockedCount(b))
	assert.Equal(t, 8, lockedCount(c))
	assert.True(t, b.HasPiece())
	x, _ := b.Position()
	assert.Equal(t, 4, x)
}

// falling collects the cells occupied by the falling piece.
func falling(b *tetris.Board) map[[2]int]bool {
	cells := make(map[[2]int]bool)
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.IsFallingBlockHere(x, y) {
				cells[[2]int{x, y}] = true
			}
		}
	}
	return cells
}

func BenchmarkSpawnFixClear(b *testing.B) {
	catalog := tetris.Standard()
	board := tetris.NewBoard(10, 20)

	for i := 0; i < b.N; i++ {
		if !board.Spawn(catalog.Get(i % catalog.Len())) {
			board = tetris.NewBoard(10, 20)
			continue
		}
		board.Fix()
		board.ClearLines()
	}
}
