package tetris_test

import (
	"strings"
	"testing"

	"github.com/plus3/tetrimino/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	dotColor   tetris.Color = 8
	otherColor tetris.Color = 9
)

func dotDef(name string, color tetris.Color) tetris.ShapeDef {
	return tetris.ShapeDef{
		Name: name, Color: color, Width: 1, Height: 1,
		Rotations: [tetris.Rotations][]int{{1}, {1}, {1}, {1}},
	}
}

// testCatalog is the standard set followed by two single-cell shapes.
func testCatalog(t *testing.T) *tetris.Catalog {
	t.Helper()
	defs := append(tetris.StandardShapes(), dotDef("dot", dotColor), dotDef("other", otherColor))
	catalog, err := tetris.NewCatalog(defs...)
	require.NoError(t, err)
	return catalog
}

func shape(t *testing.T, catalog *tetris.Catalog, name string) *tetris.Shape {
	t.Helper()
	i, ok := catalog.Index(name)
	require.True(t, ok, "shape %q not registered", name)
	return catalog.Get(i)
}

// dropAt spawns s, slides it to column x and locks it.
func dropAt(t *testing.T, b *tetris.Board, s *tetris.Shape, x int) {
	t.Helper()
	require.True(t, b.Spawn(s), "spawn %v", s)
	for {
		px, _ := b.Position()
		if px == x {
			break
		}
		if px < x {
			require.True(t, b.MoveRight(), "move %v right to column %d", s, x)
		} else {
			require.True(t, b.MoveLeft(), "move %v left to column %d", s, x)
		}
	}
	b.Fix()
}

// snapshot renders locked cells as '#' and empty cells as '.', one row per line.
func snapshot(b *tetris.Board) string {
	var sb strings.Builder
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if _, ok := b.FixedColor(x, y); ok {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func lockedCount(b *tetris.Board) int {
	n := 0
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if _, ok := b.FixedColor(x, y); ok {
				n++
			}
		}
	}
	return n
}

// assertPanicsWith checks that fn panics with an error wrapping kind.
func assertPanicsWith(t *testing.T, kind error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !assert.True(t, ok, "expected panic with an error value, got %v", r) {
			return
		}
		assert.ErrorIs(t, err, kind)
	}()
	fn()
}
