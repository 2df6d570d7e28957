package game

import (
	"github.com/vovakirdan/tui-hexchess/internal/core"
	"github.com/vovakirdan/tui-hexchess/internal/hexchess"
)

// screenDelta is the character offset a straight step produces on screen.
func (g *Game) screenDelta(d hexchess.Coord) core.Pos {
	dy := -(2*d.R + d.Q)
	if g.flipped {
		dy = -dy
	}
	return core.Pos{X: 4 * d.Q, Y: dy}
}

var cursorDeltas = map[core.Action]core.Pos{
	core.ActionUp:        {X: 0, Y: -2},
	core.ActionDown:      {X: 0, Y: 2},
	core.ActionUpRight:   {X: 4, Y: -1},
	core.ActionDownRight: {X: 4, Y: 1},
	core.ActionUpLeft:    {X: -4, Y: -1},
	core.ActionDownLeft:  {X: -4, Y: 1},
}

// moveCursor steps the cursor to the neighbor in the on-screen direction of
// a. Left and right zigzag between the two half-row neighbors so repeated
// presses stay on one visual row.
func (g *Game) moveCursor(a core.Action) {
	switch a {
	case core.ActionRight:
		first, second := core.ActionUpRight, core.ActionDownRight
		if g.cursor.Q&1 != 0 {
			first, second = second, first
		}
		if !g.stepCursor(first) {
			g.stepCursor(second)
		}
	case core.ActionLeft:
		first, second := core.ActionUpLeft, core.ActionDownLeft
		if g.cursor.Q&1 != 0 {
			first, second = second, first
		}
		if !g.stepCursor(first) {
			g.stepCursor(second)
		}
	default:
		g.stepCursor(a)
	}
}

func (g *Game) stepCursor(a core.Action) bool {
	want, ok := cursorDeltas[a]
	if !ok {
		return false
	}
	for _, d := range hexchess.StraightDirections {
		if g.screenDelta(d) != want {
			continue
		}
		next := g.cursor.Add(d)
		if !g.board.InBounds(next) {
			return false
		}
		g.cursor = next
		return true
	}
	return false
}
