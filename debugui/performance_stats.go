package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetrimino/game"
)

// PerformanceStats plots frame times and the scheduler's per-system timings.
type PerformanceStats struct {
	scheduler     *game.Scheduler
	timer         *FrameTimer
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewPerformanceStats(scheduler *game.Scheduler, historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		scheduler:     scheduler,
		timer:         NewFrameTimer(),
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

func (ps *PerformanceStats) Render() {
	deltaTime := ps.timer.GetDeltaTime()

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 280), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 260), imgui.CondOnce)
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames

	stats := ps.scheduler.GetStats()
	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("Systems: %d", stats.SystemCount))

	var avgFrameTime float32
	for _, ft := range ps.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(ps.historyFrames)
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("System Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, system := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(system.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", system.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(system.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(system.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
