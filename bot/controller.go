package bot

import "github.com/plus3/tetrimino/game"

// Controller is a game.System that plans a placement for every new piece and
// queues the actions to reach it. Register it after the default systems so
// the plan is made in the frame the piece spawns and played in the next one.
type Controller struct {
	Policy Policy

	// Planned counts the placements queued so far
	Planned int
}

func (c *Controller) Execute(frame *game.Frame) {
	session := frame.Session
	if session.State.Over || session.Pending() > 0 {
		return
	}

	placement, ok := c.Policy.Place(session.Board)
	if !ok {
		return
	}
	x, _ := session.Board.Position()
	for _, action := range placement.Actions(x) {
		session.Push(action)
	}
	c.Planned++
}
