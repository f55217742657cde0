package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/tetrimino/debugui"
	"github.com/plus3/tetrimino/game"
	"github.com/plus3/tetrimino/render"
)

var (
	background = color.RGBA{16, 16, 16, 255}
	wall       = color.RGBA{128, 128, 128, 255}
	outline    = color.RGBA{0, 0, 0, 255}
)

// Game implements ebiten.Game on top of a session.
type Game struct {
	session   *game.Session
	scheduler *game.Scheduler
	paused    bool
	reported  bool

	// x offset of the board
	left int

	// only set with -debug
	overlay *debugui.Overlay
	ui      *debugui.System
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.overlay != nil {
		g.overlay.BeginFrame()
	}

	if g.ui == nil || !g.ui.Input.WantCaptureKeyboard {
		g.handleKeys()
	}

	dt := 1.0 / float64(ebiten.TPS())
	if g.paused {
		dt = 0
	}
	g.scheduler.Once(dt)

	if g.session.State.Over && !g.reported {
		g.reported = true
		log.Printf("Game over after %d pieces and %d lines", g.session.Stats.Pieces, g.session.Stats.Lines)
	}

	if g.overlay != nil {
		g.overlay.EndFrame()
	}
	return nil
}

func (g *Game) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.session.Reset()
		g.paused = false
		g.reported = false
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.paused = !g.paused
	}
	if g.paused {
		return
	}

	for _, binding := range bindings {
		if binding.fire() {
			g.session.Push(binding.action)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	board := g.session.Board
	left, top := float32(g.left), float32(margin)
	w, h := board.Width(), board.Height()
	vector.StrokeRect(screen, left-2, top-2, float32(w*cellSize)+4, float32(h*cellSize)+4, 2, wall, false)

	palette := render.StandardPalette
	for i, cell := range render.Grid(board) {
		if cell.Kind == render.Empty {
			continue
		}
		x := left + float32((i%w)*cellSize)
		y := top + float32((i/w)*cellSize)
		if cell.Kind == render.Ghost {
			vector.DrawFilledRect(screen, x, y, cellSize, cellSize, palette.Ghost(cell.Color), false)
			continue
		}
		vector.DrawFilledRect(screen, x, y, cellSize, cellSize, palette.Color(cell.Color), false)
		vector.StrokeRect(screen, x, y, cellSize, cellSize, 1, outline, false)
	}

	stats := g.session.Stats
	textX := g.left + w*cellSize + 20
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("NEXT   %v", g.session.Next()), textX, margin)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("PIECES %d", stats.Pieces), textX, margin+30)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LINES  %d", stats.Lines), textX, margin+50)
	switch {
	case g.session.State.Over:
		ebitenutil.DebugPrintAt(screen, "GAME OVER\nR to restart", textX, margin+90)
	case g.paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED", textX, margin+90)
	}

	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
