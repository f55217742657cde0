package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/tetrimino/game"
)

// binding maps keys to a session action. Held keys repeat after delay ticks,
// then every rate ticks; a zero rate never repeats.
type binding struct {
	keys   []ebiten.Key
	action game.Action
	delay  int
	rate   int
}

var bindings = []binding{
	{keys: []ebiten.Key{ebiten.KeyLeft}, action: game.MoveLeft, delay: 10, rate: 3},
	{keys: []ebiten.Key{ebiten.KeyRight}, action: game.MoveRight, delay: 10, rate: 3},
	{keys: []ebiten.Key{ebiten.KeyDown}, action: game.SoftDrop, delay: 1, rate: 3},
	{keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyX}, action: game.RotateRight},
	{keys: []ebiten.Key{ebiten.KeyZ}, action: game.RotateLeft},
	{keys: []ebiten.Key{ebiten.KeySpace}, action: game.HardDrop},
}

// fire reports whether any of the binding's keys fires this tick.
func (b binding) fire() bool {
	for _, key := range b.keys {
		if repeats(inpututil.KeyPressDuration(key), b.delay, b.rate) {
			return true
		}
	}
	return false
}

// repeats reports whether a key held for ticks ticks fires this tick.
func repeats(ticks, delay, rate int) bool {
	switch {
	case ticks == 1:
		return true
	case rate <= 0 || ticks <= delay:
		return false
	default:
		return (ticks-delay)%rate == 0
	}
}
