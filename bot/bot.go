// Package bot plays a session by searching every placement of the falling
// piece on a copy of the board and keeping the best scoring one.
package bot

import (
	"math"

	"github.com/plus3/tetrimino/game"
	"github.com/plus3/tetrimino/tetris"
)

// Placement is a final resting spot for the falling piece: lower it Down
// rows, turn it clockwise Turns times, then slide it to column X and drop it.
type Placement struct {
	Down  int
	Turns int
	X     int
	Score float64
}

// Actions returns the session actions that perform p for a piece whose origin
// is currently at column x.
func (p Placement) Actions(x int) []game.Action {
	actions := make([]game.Action, 0, p.Down+p.Turns+abs(p.X-x)+1)
	for i := 0; i < p.Down; i++ {
		actions = append(actions, game.SoftDrop)
	}
	for i := 0; i < p.Turns; i++ {
		actions = append(actions, game.RotateRight)
	}
	for ; x > p.X; x-- {
		actions = append(actions, game.MoveLeft)
	}
	for ; x < p.X; x++ {
		actions = append(actions, game.MoveRight)
	}
	return append(actions, game.HardDrop)
}

// Apply moves the falling piece into position without locking it. It returns
// false if any step is blocked.
func Apply(board *tetris.Board, p Placement) bool {
	for i := 0; i < p.Down; i++ {
		if !board.MoveDown() {
			return false
		}
	}
	for i := 0; i < p.Turns; i++ {
		if !board.RotateRight() {
			return false
		}
	}
	for {
		x, _ := board.Position()
		switch {
		case x > p.X:
			if !board.MoveLeft() {
				return false
			}
		case x < p.X:
			if !board.MoveRight() {
				return false
			}
		default:
			return true
		}
	}
}

// Policy chooses where the falling piece goes. ok is false when the board has
// no falling piece.
type Policy interface {
	Place(board *tetris.Board) (p Placement, ok bool)
}

// Weights scale each feature into a placement score.
type Weights struct {
	Lines           float64
	AggregateHeight float64
	MaxHeight       float64
	Holes           float64
	Bumpiness       float64
	RowTransitions  float64
	ColTransitions  float64
	WellCells       float64
}

// DefaultWeights favors low, flat stacks without holes.
var DefaultWeights = Weights{
	Lines:           0.76,
	AggregateHeight: -0.51,
	MaxHeight:       -0.05,
	Holes:           -0.36,
	Bumpiness:       -0.18,
	RowTransitions:  -0.12,
	ColTransitions:  -0.25,
	WellCells:       -0.08,
}

func (w Weights) Score(f Features) float64 {
	return w.Lines*float64(f.Lines) +
		w.AggregateHeight*float64(f.AggregateHeight) +
		w.MaxHeight*float64(f.MaxHeight) +
		w.Holes*float64(f.Holes) +
		w.Bumpiness*float64(f.Bumpiness) +
		w.RowTransitions*float64(f.RowTransitions) +
		w.ColTransitions*float64(f.ColTransitions) +
		w.WellCells*float64(f.WellCells)
}

// toppedOut is added to placements that leave a block in the top row.
const toppedOut = -1e6

// Greedy scores every reachable placement of the current piece one move deep.
type Greedy struct {
	Weights Weights
}

func NewGreedy() *Greedy {
	return &Greedy{Weights: DefaultWeights}
}

func (g *Greedy) Place(board *tetris.Board) (Placement, bool) {
	if !board.HasPiece() {
		return Placement{}, false
	}

	best := Placement{Score: math.Inf(-1)}
	for placement := range Placements(board) {
		c := board.Clone()
		Apply(c, placement)
		c.Fix()
		f := Measure(c)
		f.Lines = len(c.ClearLines())

		placement.Score = g.Weights.Score(f)
		if c.IsFullStacked() {
			placement.Score += toppedOut
		}
		if placement.Score > best.Score {
			best = placement
		}
	}
	return best, true
}

// Drop leaves the piece where it spawned.
type Drop struct{}

func (Drop) Place(board *tetris.Board) (Placement, bool) {
	if !board.HasPiece() {
		return Placement{}, false
	}
	x, _ := board.Position()
	return Placement{X: x}, true
}
