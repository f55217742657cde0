package tetris_test

import (
	"fmt"

	"github.com/plus3/tetrimino/tetris"
)

// ExampleBoard plays one turn: spawn a piece, steer it, lock it and clear
// whatever rows it completed.
func ExampleBoard() {
	catalog := tetris.Standard()
	board := tetris.NewBoard(10, 20)

	i, _ := catalog.Index("T")
	if !board.Spawn(catalog.Get(i)) {
		fmt.Println("game over")
		return
	}

	board.MoveLeft()
	board.RotateRight()
	x, y := board.Position()
	fmt.Printf("falling %v at (%d, %d), rotation %d, %d rows above the stack\n",
		board.FallingShape(), x, y, board.FallingRotation(), board.ShadowDistance())

	board.Fix()
	fmt.Println("cleared:", board.ClearLines())
	fmt.Println("topped out:", board.IsFullStacked())

	// Output:
	// falling T at (2, 0), rotation 1, 17 rows above the stack
	// cleared: []
	// topped out: false
}

func ExampleNormalize() {
	for _, counter := range []int{-5, -1, 0, 3, 6} {
		fmt.Print(tetris.Normalize(counter, tetris.Rotations), " ")
	}
	fmt.Println()

	// Output:
	// 3 3 0 3 2
}
