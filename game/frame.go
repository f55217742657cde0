package game

// Frame is handed to every system during one scheduler step.
type Frame struct {
	DeltaTime float64
	Session   *Session
	defers    []func()
}

func newFrame(dt float64, session *Session) *Frame {
	return &Frame{
		DeltaTime: dt,
		Session:   session,
	}
}

// Defer queues fn to run after every system of the frame has executed.
func (f *Frame) Defer(fn func()) {
	f.defers = append(f.defers, fn)
}

func (f *Frame) flush() {
	for _, fn := range f.defers {
		fn()
	}
	f.defers = f.defers[:0]
}
