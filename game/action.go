package game

// Action is a player command applied to the falling piece.
type Action uint8

const (
	MoveLeft Action = iota
	MoveRight
	SoftDrop
	HardDrop
	RotateLeft
	RotateRight
)

var actionNames = [...]string{
	MoveLeft:    "MoveLeft",
	MoveRight:   "MoveRight",
	SoftDrop:    "SoftDrop",
	HardDrop:    "HardDrop",
	RotateLeft:  "RotateLeft",
	RotateRight: "RotateRight",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Action(?)"
}
