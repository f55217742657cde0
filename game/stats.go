package game

import (
	"github.com/kamstrup/intmap"
	"github.com/plus3/tetrimino/tetris"
)

// MaxClear is the most rows a single lock can complete with the standard
// shapes. Larger clears from custom shapes are still counted.
const MaxClear = 4

// Stats accumulates per-game counters.
type Stats struct {
	// locked pieces keyed by color
	pieces *intmap.Map[int, int]
	// clear events keyed by the number of rows removed at once
	clears *intmap.Map[int, int]

	Pieces int
	Lines  int
}

func NewStats() *Stats {
	return &Stats{
		pieces: intmap.New[int, int](16),
		clears: intmap.New[int, int](8),
	}
}

// RecordLock counts a piece of the given color being locked.
func (s *Stats) RecordLock(color tetris.Color) {
	n, _ := s.pieces.Get(int(color))
	s.pieces.Put(int(color), n+1)
	s.Pieces++
}

// RecordClear counts rows removed by one lock.
func (s *Stats) RecordClear(rows int) {
	if rows <= 0 {
		return
	}
	n, _ := s.clears.Get(rows)
	s.clears.Put(rows, n+1)
	s.Lines += rows
}

// PiecesOf returns how many pieces of color have been locked
func (s *Stats) PiecesOf(color tetris.Color) int {
	n, _ := s.pieces.Get(int(color))
	return n
}

// Clears returns how many locks removed exactly rows rows
func (s *Stats) Clears(rows int) int {
	n, _ := s.clears.Get(rows)
	return n
}

// Reset zeroes every counter.
func (s *Stats) Reset() {
	s.pieces.Clear()
	s.clears.Clear()
	s.Pieces = 0
	s.Lines = 0
}
