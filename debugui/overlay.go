package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
)

// Overlay wraps the Ebiten Dear ImGui backend. Call BeginFrame before the
// scheduler runs and EndFrame after it, then Draw on top of the game.
type Overlay struct {
	*ebitenbackend.EbitenBackend
}

// NewOverlay creates the backend and its window. The imgui.ini file is
// disabled.
func NewOverlay(title string, width, height int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &Overlay{EbitenBackend: backend}
}
