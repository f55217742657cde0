package game

import (
	"github.com/plus3/tetrimino/tetris"
)

// State is the progress of the current game.
type State struct {
	Over   bool
	Frames int64

	// seconds accumulated towards the next gravity step
	gravity float64
}

// Session owns one board and everything a frame needs to advance it.
type Session struct {
	Config     Config
	Catalog    *tetris.Catalog
	Board      *tetris.Board
	Randomizer Randomizer
	State      State
	Stats      *Stats

	next    int
	actions []Action
}

// NewSession validates cfg and prepares an empty board. No piece is in play
// until the first frame runs the SpawnSystem.
func NewSession(cfg Config, catalog *tetris.Catalog) (*Session, error) {
	if err := cfg.Validate(catalog); err != nil {
		return nil, err
	}

	s := &Session{
		Config:     cfg,
		Catalog:    catalog,
		Board:      tetris.NewBoard(cfg.Width, cfg.Height),
		Randomizer: newRandomizer(cfg, catalog.Len()),
		Stats:      NewStats(),
	}
	s.next = s.Randomizer.Next()
	return s, nil
}

// Push queues an action for the next frame.
func (s *Session) Push(action Action) {
	s.actions = append(s.actions, action)
}

// Pending returns the number of actions queued for the next frame
func (s *Session) Pending() int {
	return len(s.actions)
}

// Next returns the shape that will spawn after the falling one
func (s *Session) Next() *tetris.Shape {
	return s.Catalog.Get(s.next)
}

// Reset starts a new game on an empty board. The randomizer keeps its
// sequence.
func (s *Session) Reset() {
	s.Board = tetris.NewBoard(s.Config.Width, s.Config.Height)
	s.State = State{}
	s.Stats.Reset()
	s.actions = s.actions[:0]
}

// spawn puts the queued next shape into play. It returns false when the board
// has topped out.
func (s *Session) spawn() bool {
	shape := s.Catalog.Get(s.next)
	s.next = s.Randomizer.Next()
	s.State.gravity = 0
	return s.Board.Spawn(shape)
}

// lock drops and locks the falling piece.
func (s *Session) lock() {
	color := s.Board.FallingColor()
	s.Board.Fix()
	s.Stats.RecordLock(color)
}
