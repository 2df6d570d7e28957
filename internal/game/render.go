package game

import (
	"fmt"

	"github.com/vovakirdan/tui-hexchess/internal/core"
	"github.com/vovakirdan/tui-hexchess/internal/hexchess"
)

var zoneColors = map[hexchess.Zone]core.Color{
	0: core.ColorMaroon,
	1: core.ColorNavajoWhite,
	2: core.ColorGray,
}

var pieceColors = map[hexchess.Color]core.Color{
	hexchess.White: core.ColorBrightWhite,
	hexchess.Black: core.ColorOrange,
}

// origin returns the screen cell of hex (0,0). Row 0 is the title line.
func (g *Game) origin(width int) core.Pos {
	return core.Pos{X: width / 2, Y: 1 + 2*g.board.Radius()}
}

// cellOf projects a hex onto the screen. Unflipped, White sits at the bottom.
func (g *Game) cellOf(c hexchess.Coord, width int) core.Pos {
	o := g.origin(width)
	d := g.screenDelta(c)
	return o.Add(d.X, d.Y)
}

// HexAt maps a screen cell to the hex drawn there. Each hex covers three
// characters centered on its projected cell.
func (g *Game) HexAt(x, y int) (hexchess.Coord, bool) {
	for _, t := range g.board.Tiles() {
		p := g.cellOf(t.Coord, g.screenW)
		if p.Y == y && core.Abs(p.X-x) <= 1 {
			return t.Coord, true
		}
	}
	return hexchess.Coord{}, false
}

// Render draws the board, a title line and a status line into dst.
func (g *Game) Render(dst *core.Screen) {
	g.screenW, g.screenH = dst.Width(), dst.Height()
	dst.Clear()

	dst.DrawTextCentered(0, g.Title(), core.ColorBrightCyan)

	for _, t := range g.board.Tiles() {
		g.renderTile(dst, t)
	}

	statusY := core.Clamp(2+4*g.board.Radius(), 0, dst.Height()-1)
	dst.DrawTextCentered(statusY, g.statusLine(), core.ColorDefault)
}

func (g *Game) renderTile(dst *core.Screen, t hexchess.Tile) {
	p := g.cellOf(t.Coord, dst.Width())

	center, centerColor := '·', zoneColors[t.Zone]
	if t.Occupied {
		center, centerColor = t.Piece.Letter(), pieceColors[t.Piece.Color]
	}
	dst.SetColored(p.X, p.Y, center, centerColor)

	left, right, bracket := ' ', ' ', core.ColorDefault
	switch {
	case t.Coord == g.cursor:
		left, right, bracket = '<', '>', core.ColorBrightYellow
	case t.Selected:
		left, right, bracket = '{', '}', core.ColorBrightCyan
	case t.Highlighted && t.Occupied:
		left, right, bracket = '[', ']', core.ColorBrightRed
	case t.Highlighted:
		left, right, bracket = '[', ']', core.ColorBrightGreen
	}
	dst.SetColored(p.X-1, p.Y, left, bracket)
	dst.SetColored(p.X+1, p.Y, right, bracket)
}

func (g *Game) statusLine() string {
	s := g.State()
	line := fmt.Sprintf("%s to move · ply %d", colorName(s.Turn), s.Ply)
	if s.LastMove != nil {
		line += " · last " + s.LastMove.String()
	}
	if g.showCoords {
		line += " · cursor " + s.Cursor.String()
	}
	if g.recErr != nil {
		line += " · not recording"
	}
	return line
}

func colorName(c hexchess.Color) string {
	if c == hexchess.White {
		return "White"
	}
	return "Black"
}
