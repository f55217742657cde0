// Package render turns a board into something a person can look at: a
// classified cell grid, a color palette, and a plain text view.
package render

import (
	"image/color"

	"github.com/plus3/tetrimino/tetris"
)

// Kind classifies one cell of a rendered board.
type Kind uint8

const (
	Empty Kind = iota
	Locked
	Falling
	// Ghost marks where the falling piece would lock
	Ghost
)

type Cell struct {
	Kind  Kind
	Color tetris.Color
}

// Grid classifies every cell of board in row-major order. The falling piece
// wins over its own ghost.
func Grid(board *tetris.Board) []Cell {
	w, h := board.Width(), board.Height()
	cells := make([]Cell, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if c, ok := board.FixedColor(x, y); ok {
				cells[y*w+x] = Cell{Kind: Locked, Color: c}
			}
		}
	}

	shape := board.FallingShape()
	if shape == nil {
		return cells
	}

	bits := shape.Bits(board.FallingRotation())
	px, py := board.Position()
	drop := board.ShadowDistance()
	mark := func(kind Kind, oy int) {
		for dy := 0; dy < shape.Height(); dy++ {
			for dx := 0; dx < shape.Width(); dx++ {
				if !bits.At(dx, dy, shape.Width()) {
					continue
				}
				x, y := px+dx, py+dy+oy
				if x < 0 || y < 0 || x >= w || y >= h {
					continue
				}
				cells[y*w+x] = Cell{Kind: kind, Color: shape.Color()}
			}
		}
	}
	mark(Ghost, drop)
	mark(Falling, 0)
	return cells
}

// Palette maps block colors to screen colors. Colors past the end fall back
// to gray.
type Palette []color.RGBA

// StandardPalette colors the seven standard shapes, indexed by tetris.Color.
var StandardPalette = Palette{
	tetris.NoColor: {0, 0, 0, 255},
	tetris.Cyan:    {20, 143, 119, 255},
	tetris.Yellow:  {183, 149, 11, 255},
	tetris.Green:   {30, 132, 73, 255},
	tetris.Red:     {176, 58, 46, 255},
	tetris.Blue:    {31, 97, 141, 255},
	tetris.Orange:  {185, 119, 14, 255},
	tetris.Purple:  {118, 68, 138, 255},
}

var gray = color.RGBA{64, 64, 64, 255}

func (p Palette) Color(c tetris.Color) color.RGBA {
	if int(c) >= len(p) {
		return gray
	}
	return p[c]
}

// Ghost returns a translucent version of the block color
func (p Palette) Ghost(c tetris.Color) color.RGBA {
	rgba := p.Color(c)
	return color.RGBA{rgba.R / 3, rgba.G / 3, rgba.B / 3, 80}
}
