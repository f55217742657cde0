// Package debugui provides Dear ImGui inspector windows for a running game
// session. Windows are drawn through a game.System that defers their render
// functions to the end of the frame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetrimino/game"
)

// Item holds a Dear ImGui render function drawn once per frame.
type Item struct {
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Drivers check it before forwarding keys to the session.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// System updates InputState and queues every item's render function.
type System struct {
	Items []Item
	Input InputState
}

// Add registers a render function
func (s *System) Add(render func()) {
	s.Items = append(s.Items, Item{Render: render})
}

func (s *System) Execute(frame *game.Frame) {
	io := imgui.CurrentIO()
	s.Input.WantCaptureMouse = io.WantCaptureMouse()
	s.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range s.Items {
		frame.Defer(item.Render)
	}
}

// Install adds the standard windows for session to a new System and
// registers it with scheduler.
func Install(scheduler *game.Scheduler, session *game.Session) *System {
	system := &System{}

	inspector := NewBoardInspector(session)
	perf := NewPerformanceStats(scheduler, 120)
	system.Add(inspector.Render)
	system.Add(perf.Render)

	scheduler.Register(system)
	return system
}
