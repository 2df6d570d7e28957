// Package core provides UI-agnostic types shared by the game and the
// platform layers. It has no external dependencies (especially no Bubble Tea)
// so game logic stays pure and testable.
package core

// Pos is a character cell position on a Screen.
type Pos struct {
	X, Y int
}

// Add returns p offset by (dx, dy).
func (p Pos) Add(dx, dy int) Pos {
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
