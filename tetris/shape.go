package tetris

import (
	"fmt"
	"iter"
	"math/bits"
)

// Color identifies the color of a block. NoColor marks an empty cell and is
// never a valid shape color.
type Color uint8

const NoColor Color = 0

// Bitmap holds one rotation state of a shape. Bit r*width+c is set when the
// block occupies row r, column c of the bounding box.
type Bitmap uint64

// At reports whether the cell at column x, row y of a width-wide bounding box is set
func (b Bitmap) At(x, y, width int) bool {
	return b&(1<<uint(y*width+x)) != 0
}

// Count returns the number of occupied cells
func (b Bitmap) Count() int {
	return bits.OnesCount64(uint64(b))
}

// maxCells is the largest bounding box a Bitmap can describe.
const maxCells = 64

// Shape is an immutable piece geometry with four authored rotation states.
type Shape struct {
	name   string
	color  Color
	width  int
	height int
	bitmap [Rotations]Bitmap
}

// Name returns the label the shape was registered with (may be empty)
func (s *Shape) Name() string { return s.name }

// Color returns the color of every block of the shape
func (s *Shape) Color() Color { return s.color }

// Width returns the bounding box width
func (s *Shape) Width() int { return s.width }

// Height returns the bounding box height
func (s *Shape) Height() int { return s.height }

// Bits returns the bitmap of the given rotation; any counter value is accepted.
func (s *Shape) Bits(rotation int) Bitmap {
	return s.bitmap[Normalize(rotation, Rotations)]
}

func (s *Shape) String() string {
	if s.name != "" {
		return s.name
	}
	return fmt.Sprintf("shape(%dx%d color=%d)", s.width, s.height, s.color)
}

// ShapeDef is the authored form of a shape. Each rotation is a flattened
// row-major list of Width*Height cells; any non-zero cell is occupied.
type ShapeDef struct {
	Name      string
	Color     Color
	Width     int
	Height    int
	Rotations [Rotations][]int
}

func (d ShapeDef) build() (*Shape, error) {
	if d.Width < 1 || d.Height < 1 {
		return nil, fmt.Errorf("%w: shape %q has empty bounding box %dx%d", ErrConfig, d.Name, d.Width, d.Height)
	}
	if d.Width*d.Height > maxCells {
		return nil, fmt.Errorf("%w: shape %q bounding box %dx%d exceeds %d cells", ErrConfig, d.Name, d.Width, d.Height, maxCells)
	}
	if d.Color == NoColor {
		return nil, fmt.Errorf("%w: shape %q has no color", ErrConfig, d.Name)
	}

	s := &Shape{
		name:   d.Name,
		color:  d.Color,
		width:  d.Width,
		height: d.Height,
	}
	for r, raw := range d.Rotations {
		if len(raw) != d.Width*d.Height {
			return nil, fmt.Errorf("%w: shape %q rotation %d has %d cells, want %d", ErrConfig, d.Name, r, len(raw), d.Width*d.Height)
		}
		var b Bitmap
		for i, cell := range raw {
			if cell != 0 {
				b |= 1 << uint(i)
			}
		}
		if b == 0 {
			return nil, fmt.Errorf("%w: shape %q rotation %d has no blocks", ErrConfig, d.Name, r)
		}
		s.bitmap[r] = b
	}
	return s, nil
}

// Catalog is an immutable, ordered table of shapes. Build one with NewCatalog
// and share it between any number of boards.
type Catalog struct {
	shapes []*Shape
	byName map[string]int
}

// NewCatalog validates and builds every definition. The returned error wraps
// ErrConfig.
func NewCatalog(defs ...ShapeDef) (*Catalog, error) {
	c := &Catalog{
		shapes: make([]*Shape, 0, len(defs)),
		byName: make(map[string]int, len(defs)),
	}
	for _, def := range defs {
		shape, err := def.build()
		if err != nil {
			return nil, err
		}
		if def.Name != "" {
			if _, dup := c.byName[def.Name]; dup {
				return nil, fmt.Errorf("%w: duplicate shape name %q", ErrConfig, def.Name)
			}
			c.byName[def.Name] = len(c.shapes)
		}
		c.shapes = append(c.shapes, shape)
	}
	return c, nil
}

// MustCatalog is like NewCatalog but panics on error
func MustCatalog(defs ...ShapeDef) *Catalog {
	c, err := NewCatalog(defs...)
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns the shape at index, panicking with ErrRange when out of bounds.
func (c *Catalog) Get(index int) *Shape {
	if index < 0 || index >= len(c.shapes) {
		misuse(ErrRange, "shape index %d not in [0, %d)", index, len(c.shapes))
	}
	return c.shapes[index]
}

// Len returns the number of shapes
func (c *Catalog) Len() int {
	return len(c.shapes)
}

// Index looks up a shape by name
func (c *Catalog) Index(name string) (int, bool) {
	i, ok := c.byName[name]
	return i, ok
}

// All iterates over the shapes in registration order
func (c *Catalog) All() iter.Seq2[int, *Shape] {
	return func(yield func(int, *Shape) bool) {
		for i, s := range c.shapes {
			if !yield(i, s) {
				return
			}
		}
	}
}
