// Package hexchess implements the rules of hexagonal chess on an axial hex grid.
//
// The package is pure: it holds board state, generates legal destinations per
// piece kind, detects threats for king moves and drives the select/move/turn
// state machine. Rendering, persistence and transport live elsewhere.
//
// A Board is not safe for concurrent use. Callers confine each board to one
// goroutine or guard it with a single mutex.
package hexchess

import "fmt"

// Coord is an axial hex coordinate. The third cube component is derived, so
// q + r + s == 0 always holds.
type Coord struct {
	Q int `json:"q" yaml:"q"`
	R int `json:"r" yaml:"r"`
}

// Hex returns the coordinate (q, r).
func Hex(q, r int) Coord {
	return Coord{Q: q, R: r}
}

// S returns the derived cube component.
func (c Coord) S() int {
	return -c.Q - c.R
}

// Add returns c offset by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Q: c.Q + d.Q, R: c.R + d.R}
}

// Scale returns c multiplied by k.
func (c Coord) Scale(k int) Coord {
	return Coord{Q: c.Q * k, R: c.R * k}
}

// Distance returns the hex distance between two coordinates.
func (c Coord) Distance(o Coord) int {
	dq := abs(c.Q - o.Q)
	dr := abs(c.R - o.R)
	ds := abs(c.S() - o.S())
	return max(dq, dr, ds)
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Q, c.R)
}

// StraightDirections are the six edge-adjacent steps used by rooks and kings.
var StraightDirections = [6]Coord{
	{0, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, 0}, {-1, 1},
}

// DiagonalDirections are the six vertex-adjacent steps used by bishops and kings.
var DiagonalDirections = [6]Coord{
	{1, 1}, {-1, 2}, {-2, 1}, {-1, -1}, {1, -2}, {2, -1},
}

// KnightLeaps are the twelve knight jumps.
var KnightLeaps = [12]Coord{
	{2, 1}, {3, -1}, {3, -2}, {2, -3}, {1, -3}, {-1, -2},
	{-2, -1}, {-3, 1}, {-2, 3}, {-3, 2}, {-1, 3}, {1, 2},
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
