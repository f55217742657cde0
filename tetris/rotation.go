package tetris

// Rotations is the number of rotation states every shape carries.
const Rotations = 4

// Normalize maps an unbounded rotation counter onto [0, n) using floor
// modulo, so negative counters wrap the same way positive ones do.
// It panics if n is not positive.
func Normalize(i, n int) int {
	if n <= 0 {
		misuse(ErrConfig, "rotation cardinality %d must be positive", n)
	}
	r := i % n
	if r < 0 {
		r += n
	}
	return r
}
