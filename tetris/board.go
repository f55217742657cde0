// Package tetris implements the rules of a falling-block puzzle: piece
// geometry, a grid of locked cells, movement and rotation of a single falling
// piece, locking, and line clearing.
//
// Misuse of the API (a query that needs a falling piece while none is in play,
// an out-of-range coordinate, a shape that does not fit) panics with an error
// wrapping ErrInvalidState, ErrRange or ErrConfig. Blocked moves, rejected
// rotations and failed spawns are ordinary boolean results.
package tetris

import "fmt"

// Board is the grid of locked cells plus the falling piece. A Board is not
// safe for concurrent use.
type Board struct {
	width  int
	height int
	cells  []Color

	// origin of the falling piece's bounding box
	x, y  int
	piece Piece
}

// NewBoard creates an empty board of the given dimensions.
func NewBoard(width, height int) *Board {
	if width < 1 || height < 1 {
		misuse(ErrConfig, "board size %dx%d", width, height)
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Color, width*height),
	}
}

// Width returns the number of columns
func (b *Board) Width() int { return b.width }

// Height returns the number of rows
func (b *Board) Height() int { return b.height }

// HasPiece reports whether a piece is falling
func (b *Board) HasPiece() bool { return b.piece.Attached() }

// Position returns the origin of the falling piece's bounding box. It is
// (0, 0) while no piece is falling.
func (b *Board) Position() (x, y int) { return b.x, b.y }

// FallingShape returns the shape of the falling piece, or nil
func (b *Board) FallingShape() *Shape {
	if !b.piece.Attached() {
		return nil
	}
	return b.piece.Shape()
}

// FallingRotation returns the rotation state of the falling piece
func (b *Board) FallingRotation() int {
	b.mustPiece()
	return b.piece.Rotation()
}

// Clone returns a deep copy of the board, including the falling piece.
func (b *Board) Clone() *Board {
	c := *b
	c.cells = make([]Color, len(b.cells))
	copy(c.cells, b.cells)
	return &c
}

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

func (b *Board) mustInBounds(x, y int) {
	if !b.inBounds(x, y) {
		misuse(ErrRange, "cell (%d, %d) outside %dx%d board", x, y, b.width, b.height)
	}
}

func (b *Board) mustPiece() {
	if !b.piece.Attached() {
		misuse(ErrInvalidState, "no falling piece")
	}
}

func (b *Board) mustNoPiece() {
	if b.piece.Attached() {
		misuse(ErrInvalidState, "a piece is still falling")
	}
}

// mask builds the collision mask of the falling piece's bounding box placed
// at (px, py): a bit is set for every cell that is out of bounds or locked.
func (b *Board) mask(px, py int) Bitmap {
	w, h := b.piece.Width(), b.piece.Height()

	var m Bitmap
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			x, y := px+dx, py+dy
			if !b.inBounds(x, y) || b.cells[y*b.width+x] != NoColor {
				m |= 1 << uint(dy*w+dx)
			}
		}
	}
	return m
}

// fits reports whether the falling piece, in its current rotation, can sit
// with its origin at (px, py).
func (b *Board) fits(px, py int) bool {
	return b.mask(px, py)&b.piece.Bits() == 0
}

// Spawn puts shape into play, locking the current falling piece first if
// there is one. The piece starts horizontally centered on row 0 and is then
// raised while its top rows are blank. Spawn returns false when the piece
// overlaps the stack; the board is topped out and the piece is discarded.
func (b *Board) Spawn(shape *Shape) bool {
	if shape == nil {
		misuse(ErrConfig, "nil shape")
	}
	if b.piece.Attached() {
		b.Fix()
	}
	if shape.Width() > b.width || shape.Height() > b.height {
		misuse(ErrConfig, "shape %v (%dx%d) does not fit %dx%d board", shape, shape.Width(), shape.Height(), b.width, b.height)
	}

	b.x = (b.width - shape.Width()) / 2
	b.y = 0
	b.piece.Attach(shape)

	for b.MoveUp() {
	}

	if b.overlapsStack() {
		b.discard()
		return false
	}
	return true
}

// overlapsStack reports whether any occupied cell of the falling piece lies
// on a locked cell.
func (b *Board) overlapsStack() bool {
	bits := b.piece.Bits()
	w, h := b.piece.Width(), b.piece.Height()
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			x, y := b.x+dx, b.y+dy
			if !bits.At(dx, dy, w) || !b.inBounds(x, y) {
				continue
			}
			if b.cells[y*b.width+x] != NoColor {
				return true
			}
		}
	}
	return false
}

func (b *Board) discard() {
	b.piece.Detach()
	b.x, b.y = 0, 0
}

// Fix drops the falling piece as far as it goes and locks it into the grid.
func (b *Board) Fix() {
	b.mustPiece()

	for b.MoveDown() {
	}

	bits := b.piece.Bits()
	color := b.piece.Color()
	w, h := b.piece.Width(), b.piece.Height()
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			if !bits.At(dx, dy, w) {
				continue
			}
			x, y := b.x+dx, b.y+dy
			if !b.inBounds(x, y) {
				panic(fmt.Sprintf("tetris: locking block at (%d, %d) outside the board", x, y))
			}
			i := y*b.width + x
			if b.cells[i] != NoColor {
				panic(fmt.Sprintf("tetris: locking block over occupied cell (%d, %d)", x, y))
			}
			b.cells[i] = color
		}
	}

	b.discard()
}

// CanMoveTo reports whether the falling piece can move to origin (x, y).
// Only targets one step away along one axis are reachable.
func (b *Board) CanMoveTo(x, y int) bool {
	b.mustPiece()

	dx, dy := x-b.x, y-b.y
	if dx*dx+dy*dy != 1 {
		return false
	}
	return b.fits(x, y)
}

func (b *Board) move(dx, dy int) bool {
	if !b.CanMoveTo(b.x+dx, b.y+dy) {
		return false
	}
	b.x += dx
	b.y += dy
	return true
}

func (b *Board) MoveUp() bool    { return b.move(0, -1) }
func (b *Board) MoveDown() bool  { return b.move(0, 1) }
func (b *Board) MoveLeft() bool  { return b.move(-1, 0) }
func (b *Board) MoveRight() bool { return b.move(1, 0) }

// RotateLeft turns the falling piece counter-clockwise in place, keeping the
// previous rotation if the new one collides.
func (b *Board) RotateLeft() bool {
	b.mustPiece()

	b.piece.RotateLeft()
	if b.fits(b.x, b.y) {
		return true
	}
	b.piece.RotateRight()
	return false
}

// RotateRight turns the falling piece clockwise in place, keeping the
// previous rotation if the new one collides.
func (b *Board) RotateRight() bool {
	b.mustPiece()

	b.piece.RotateRight()
	if b.fits(b.x, b.y) {
		return true
	}
	b.piece.RotateLeft()
	return false
}

// IsFallingBlockHere reports whether the falling piece occupies cell (x, y).
func (b *Board) IsFallingBlockHere(x, y int) bool {
	b.mustPiece()
	b.mustInBounds(x, y)

	w, h := b.piece.Width(), b.piece.Height()
	if x < b.x || y < b.y || x >= b.x+w || y >= b.y+h {
		return false
	}
	return b.piece.Bits().At(x-b.x, y-b.y, w)
}

// FallingColor returns the color of the falling piece
func (b *Board) FallingColor() Color {
	b.mustPiece()
	return b.piece.Color()
}

// FixedColor returns the color locked at (x, y); ok is false for an empty cell.
func (b *Board) FixedColor(x, y int) (color Color, ok bool) {
	b.mustInBounds(x, y)
	color = b.cells[y*b.width+x]
	return color, color != NoColor
}

// ShadowDistance returns how many rows the falling piece can still drop.
func (b *Board) ShadowDistance() int {
	b.mustPiece()

	n := 0
	for b.fits(b.x, b.y+n+1) {
		n++
	}
	return n
}

// IsFullStacked reports whether any block is locked in the top row
func (b *Board) IsFullStacked() bool {
	b.mustNoPiece()

	for x := 0; x < b.width; x++ {
		if b.cells[x] != NoColor {
			return true
		}
	}
	return false
}

func (b *Board) rowFull(y int) bool {
	row := b.cells[y*b.width : (y+1)*b.width]
	for _, c := range row {
		if c == NoColor {
			return false
		}
	}
	return true
}

// FullLines returns the indices of every completely filled row, top to bottom.
func (b *Board) FullLines() []int {
	b.mustNoPiece()

	var rows []int
	for y := 0; y < b.height; y++ {
		if b.rowFull(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// RemoveLines deletes the given rows and shifts everything above them down,
// filling the top with empty rows. Row indices refer to the grid before any
// removal; duplicates are ignored.
func (b *Board) RemoveLines(rows []int) {
	b.mustNoPiece()

	remove := make([]bool, b.height)
	for _, y := range rows {
		if y < 0 || y >= b.height {
			misuse(ErrRange, "row %d outside %d-row board", y, b.height)
		}
		remove[y] = true
	}

	dst := b.height - 1
	for src := b.height - 1; src >= 0; src-- {
		if remove[src] {
			continue
		}
		if dst != src {
			copy(b.cells[dst*b.width:(dst+1)*b.width], b.cells[src*b.width:(src+1)*b.width])
		}
		dst--
	}
	clear(b.cells[:(dst+1)*b.width])
}

// ClearLines removes every full row and returns the rows it removed.
func (b *Board) ClearLines() []int {
	rows := b.FullLines()
	if len(rows) == 0 {
		return nil
	}
	b.RemoveLines(rows)
	return rows
}
