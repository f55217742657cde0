package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetrimino/game"
	"github.com/plus3/tetrimino/render"
	"github.com/plus3/tetrimino/tetris"
)

// BoardInspector shows the falling piece, the upcoming shape and the session
// counters, and offers buttons that drive the session directly.
type BoardInspector struct {
	session *game.Session
	palette render.Palette
}

func NewBoardInspector(session *game.Session) *BoardInspector {
	return &BoardInspector{
		session: session,
		palette: render.StandardPalette,
	}
}

func (bi *BoardInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 260), imgui.CondOnce)
	if !imgui.BeginV("Board Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	session := bi.session
	board := session.Board
	imgui.Text(fmt.Sprintf("Board: %dx%d", board.Width(), board.Height()))
	imgui.Text(fmt.Sprintf("Seed: %d (%s)", session.Config.Seed, session.Config.Randomizer))
	imgui.Text(fmt.Sprintf("Frames: %d", session.State.Frames))
	if session.State.Over {
		imgui.PushStyleColorVec4(imgui.ColText, imgui.NewVec4(1, 0.3, 0.3, 1))
		imgui.Text("GAME OVER")
		imgui.PopStyleColor()
	}

	imgui.Separator()
	if shape := board.FallingShape(); shape != nil {
		x, y := board.Position()
		bi.shapeText("Falling", shape)
		imgui.Text(fmt.Sprintf("Origin: (%d, %d)", x, y))
		imgui.Text(fmt.Sprintf("Rotation: %d", board.FallingRotation()))
		imgui.Text(fmt.Sprintf("Shadow: %d rows", board.ShadowDistance()))
	} else {
		imgui.Text("Falling: none")
	}
	bi.shapeText("Next", session.Next())

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Pieces: %d", session.Stats.Pieces))
	imgui.Text(fmt.Sprintf("Lines: %d", session.Stats.Lines))

	if imgui.TreeNodeStr("Clears") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("ClearsTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Rows")
			imgui.TableSetupColumn("Count")
			imgui.TableHeadersRow()
			for rows := 1; rows <= game.MaxClear; rows++ {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", rows))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", session.Stats.Clears(rows)))
			}
			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Shapes") {
		for _, shape := range session.Catalog.All() {
			imgui.BulletText(fmt.Sprintf("%v: %d locked", shape, session.Stats.PiecesOf(shape.Color())))
		}
		imgui.TreePop()
	}

	imgui.Separator()
	if imgui.Button("Reset") {
		session.Reset()
	}
	imgui.SameLine()
	if imgui.Button("Drop") {
		session.Push(game.HardDrop)
	}

	imgui.End()
}

func (bi *BoardInspector) shapeText(label string, shape *tetris.Shape) {
	c := bi.palette.Color(shape.Color())
	imgui.PushStyleColorVec4(imgui.ColText, imgui.NewVec4(
		float32(c.R)/255.0,
		float32(c.G)/255.0,
		float32(c.B)/255.0,
		1.0,
	))
	imgui.Text(fmt.Sprintf("%s: %v", label, shape))
	imgui.PopStyleColor()
}
