package tetris

// Piece binds a shape to a rotation counter. The counter is never bounded;
// it is normalized whenever a bitmap is read.
type Piece struct {
	shape    *Shape
	rotation int
}

// Attach binds the piece to shape and resets its rotation
func (p *Piece) Attach(shape *Shape) {
	p.shape = shape
	p.rotation = 0
}

// Detach unbinds the piece
func (p *Piece) Detach() {
	p.shape = nil
	p.rotation = 0
}

// Attached reports whether a shape is bound
func (p *Piece) Attached() bool {
	return p.shape != nil
}

func (p *Piece) RotateLeft() {
	p.mustAttached()
	p.rotation--
}

func (p *Piece) RotateRight() {
	p.mustAttached()
	p.rotation++
}

// Rotation returns the normalized rotation state in [0, Rotations)
func (p *Piece) Rotation() int {
	return Normalize(p.rotation, Rotations)
}

// Shape returns the bound shape
func (p *Piece) Shape() *Shape {
	p.mustAttached()
	return p.shape
}

// Bits returns the bitmap of the current rotation
func (p *Piece) Bits() Bitmap {
	p.mustAttached()
	return p.shape.Bits(p.rotation)
}

func (p *Piece) Color() Color {
	p.mustAttached()
	return p.shape.Color()
}

func (p *Piece) Width() int {
	p.mustAttached()
	return p.shape.Width()
}

func (p *Piece) Height() int {
	p.mustAttached()
	return p.shape.Height()
}

func (p *Piece) mustAttached() {
	if p.shape == nil {
		misuse(ErrInvalidState, "no piece attached")
	}
}
