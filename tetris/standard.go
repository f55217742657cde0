package tetris

// Colors of the standard shapes.
const (
	Cyan Color = iota + 1
	Yellow
	Green
	Red
	Blue
	Orange
	Purple
)

// StandardShapes returns the seven tetrominoes in catalog order I, O, S, Z,
// J, L, T. Rotation states are authored individually rather than derived, so
// the I, S and Z pieces only alternate between two positions.
func StandardShapes() []ShapeDef {
	return []ShapeDef{
		{
			Name: "I", Color: Cyan, Width: 4, Height: 4,
			Rotations: [Rotations][]int{
				{
					0, 0, 0, 0,
					0, 0, 0, 0,
					1, 1, 1, 1,
					0, 0, 0, 0,
				},
				{
					0, 0, 1, 0,
					0, 0, 1, 0,
					0, 0, 1, 0,
					0, 0, 1, 0,
				},
				{
					0, 0, 0, 0,
					0, 0, 0, 0,
					1, 1, 1, 1,
					0, 0, 0, 0,
				},
				{
					0, 0, 1, 0,
					0, 0, 1, 0,
					0, 0, 1, 0,
					0, 0, 1, 0,
				},
			},
		},
		{
			Name: "O", Color: Yellow, Width: 2, Height: 2,
			Rotations: [Rotations][]int{
				{1, 1, 1, 1},
				{1, 1, 1, 1},
				{1, 1, 1, 1},
				{1, 1, 1, 1},
			},
		},
		{
			Name: "S", Color: Green, Width: 3, Height: 3,
			Rotations: [Rotations][]int{
				{
					0, 0, 0,
					0, 1, 1,
					1, 1, 0,
				},
				{
					1, 0, 0,
					1, 1, 0,
					0, 1, 0,
				},
				{
					0, 0, 0,
					0, 1, 1,
					1, 1, 0,
				},
				{
					1, 0, 0,
					1, 1, 0,
					0, 1, 0,
				},
			},
		},
		{
			Name: "Z", Color: Red, Width: 3, Height: 3,
			Rotations: [Rotations][]int{
				{
					0, 0, 0,
					1, 1, 0,
					0, 1, 1,
				},
				{
					0, 1, 0,
					1, 1, 0,
					1, 0, 0,
				},
				{
					0, 0, 0,
					1, 1, 0,
					0, 1, 1,
				},
				{
					0, 1, 0,
					1, 1, 0,
					1, 0, 0,
				},
			},
		},
		{
			Name: "J", Color: Blue, Width: 3, Height: 3,
			Rotations: [Rotations][]int{
				{
					0, 0, 0,
					1, 0, 0,
					1, 1, 1,
				},
				{
					1, 1, 0,
					1, 0, 0,
					1, 0, 0,
				},
				{
					0, 0, 0,
					1, 1, 1,
					0, 0, 1,
				},
				{
					0, 1, 0,
					0, 1, 0,
					1, 1, 0,
				},
			},
		},
		{
			Name: "L", Color: Orange, Width: 3, Height: 3,
			Rotations: [Rotations][]int{
				{
					0, 0, 0,
					0, 0, 1,
					1, 1, 1,
				},
				{
					1, 0, 0,
					1, 0, 0,
					1, 1, 0,
				},
				{
					0, 0, 0,
					1, 1, 1,
					1, 0, 0,
				},
				{
					1, 1, 0,
					0, 1, 0,
					0, 1, 0,
				},
			},
		},
		{
			Name: "T", Color: Purple, Width: 3, Height: 3,
			Rotations: [Rotations][]int{
				{
					0, 1, 0,
					1, 1, 1,
					0, 0, 0,
				},
				{
					0, 1, 0,
					0, 1, 1,
					0, 1, 0,
				},
				{
					0, 0, 0,
					1, 1, 1,
					0, 1, 0,
				},
				{
					0, 1, 0,
					1, 1, 0,
					0, 1, 0,
				},
			},
		},
	}
}

// Standard builds a catalog of the seven standard tetrominoes.
func Standard() *Catalog {
	return MustCatalog(StandardShapes()...)
}
