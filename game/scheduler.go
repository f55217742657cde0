package game

import (
	"context"
	"reflect"
	"time"
)

// System is one step of a frame. Systems run in registration order and may
// keep their own state between frames.
type System interface {
	Execute(frame *Frame)
}

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount int
	Frames      int64
	Systems     []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler runs systems against a session, one frame at a time.
type Scheduler struct {
	session     *Session
	systems     []System
	systemStats []*systemStatsInternal
	frames      int64
}

// NewScheduler creates a new scheduler for the given session.
func NewScheduler(session *Session) *Scheduler {
	return &Scheduler{
		session: session,
		systems: make([]System, 0),
	}
}

// Register appends a system to the frame.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// RegisterDefaults registers the rule systems in the order a frame needs them:
// input, gravity, line clearing, then spawning.
func (s *Scheduler) RegisterDefaults() {
	s.Register(&InputSystem{})
	s.Register(&GravitySystem{})
	s.Register(&LineClearSystem{})
	s.Register(&SpawnSystem{})
}

// Once executes all registered systems once with the given delta time, then
// runs the functions they deferred.
func (s *Scheduler) Once(dt float64) {
	frame := newFrame(dt, s.session)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	frame.flush()
	s.frames++
	s.session.State.Frames++
}

// Run executes all systems repeatedly at the given interval until the context
// is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
	}

	return stats
}
