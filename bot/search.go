package bot

import (
	"iter"

	"github.com/plus3/tetrimino/tetris"
)

// Placements yields every placement reachable by lowering and rotating the
// falling piece and then sliding it sideways. board is not modified.
func Placements(board *tetris.Board) iter.Seq[Placement] {
	return func(yield func(Placement) bool) {
		if !board.HasPiece() {
			return
		}

		for turns := 0; turns < tetris.Rotations; turns++ {
			rotated, down, ok := turn(board, turns)
			if !ok {
				continue
			}

			for rotated.MoveLeft() {
			}
			for {
				x, _ := rotated.Position()
				if !yield(Placement{Down: down, Turns: turns, X: x}) {
					return
				}
				if !rotated.MoveRight() {
					break
				}
			}
		}
	}
}

// turn rotates a copy of board clockwise turns times, first lowering the
// piece as few rows as every rotation needs to fit. A piece spawned above the
// board often cannot turn until it has dropped.
func turn(board *tetris.Board, turns int) (*tetris.Board, int, bool) {
	lowered := board.Clone()
	for down := 0; ; down++ {
		c := lowered.Clone()
		ok := true
		for i := 0; i < turns && ok; i++ {
			ok = c.RotateRight()
		}
		if ok {
			return c, down, true
		}
		if !lowered.MoveDown() {
			return nil, 0, false
		}
	}
}
