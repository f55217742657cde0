package game

// InputSystem applies the actions pushed since the last frame.
type InputSystem struct{}

func (s *InputSystem) Execute(frame *Frame) {
	session := frame.Session
	actions := session.actions
	session.actions = session.actions[:0]

	if session.State.Over {
		return
	}

	board := session.Board
	for _, action := range actions {
		if !board.HasPiece() {
			return
		}

		switch action {
		case MoveLeft:
			board.MoveLeft()
		case MoveRight:
			board.MoveRight()
		case RotateLeft:
			board.RotateLeft()
		case RotateRight:
			board.RotateRight()
		case SoftDrop:
			if board.MoveDown() {
				session.State.gravity = 0
			}
		case HardDrop:
			session.lock()
		}
	}
}

// GravitySystem moves the falling piece down one row per gravity interval and
// locks it once it cannot fall any further.
type GravitySystem struct{}

func (s *GravitySystem) Execute(frame *Frame) {
	session := frame.Session
	if session.State.Over || !session.Board.HasPiece() {
		return
	}

	interval := session.Config.Gravity.Seconds()
	session.State.gravity += frame.DeltaTime
	for session.State.gravity >= interval {
		session.State.gravity -= interval
		if !session.Board.MoveDown() {
			session.lock()
			session.State.gravity = 0
			return
		}
	}
}

// LineClearSystem removes full rows after a piece has been locked.
type LineClearSystem struct {
	// rows removed by the most recent clear
	LastCleared []int
}

func (s *LineClearSystem) Execute(frame *Frame) {
	session := frame.Session
	if session.State.Over || session.Board.HasPiece() {
		return
	}

	rows := session.Board.ClearLines()
	if len(rows) == 0 {
		return
	}
	s.LastCleared = rows
	session.Stats.RecordClear(len(rows))
}

// SpawnSystem puts the next piece into play when the board is empty, and ends
// the game when the stack reaches the top row or the new piece overlaps it.
type SpawnSystem struct{}

func (s *SpawnSystem) Execute(frame *Frame) {
	session := frame.Session
	if session.State.Over || session.Board.HasPiece() {
		return
	}

	if session.Board.IsFullStacked() || !session.spawn() {
		session.State.Over = true
	}
}
