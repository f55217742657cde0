package render

import (
	"bufio"
	"io"

	"github.com/plus3/tetrimino/tetris"
)

// Text draws a board with one character per cell.
type Text struct {
	Empty   byte
	Locked  byte
	Falling byte
	Ghost   byte
	// Border frames the board with walls and a floor
	Border bool
}

func DefaultText() Text {
	return Text{
		Empty:   '.',
		Locked:  '#',
		Falling: '@',
		Ghost:   '+',
		Border:  true,
	}
}

func (t Text) Render(w io.Writer, board *tetris.Board) error {
	bw := bufio.NewWriter(w)
	cells := Grid(board)
	width := board.Width()

	for y := 0; y < board.Height(); y++ {
		if t.Border {
			bw.WriteByte('|')
		}
		for _, cell := range cells[y*width : (y+1)*width] {
			bw.WriteByte(t.glyph(cell.Kind))
		}
		if t.Border {
			bw.WriteByte('|')
		}
		bw.WriteByte('\n')
	}
	if t.Border {
		bw.WriteByte('+')
		for x := 0; x < width; x++ {
			bw.WriteByte('-')
		}
		bw.WriteString("+\n")
	}
	return bw.Flush()
}

func (t Text) glyph(kind Kind) byte {
	switch kind {
	case Locked:
		return t.Locked
	case Falling:
		return t.Falling
	case Ghost:
		return t.Ghost
	default:
		return t.Empty
	}
}
