package hexchess

import (
	"math"
	"strconv"
	"strings"
)

// Layout positions hexes in pixel space for a renderer.
type Layout struct {
	Size    float64 `json:"size" yaml:"size"`
	CenterX float64 `json:"center_x" yaml:"center_x"`
	CenterY float64 `json:"center_y" yaml:"center_y"`
}

// DefaultLayout matches a 30px hex centered on an 800x800 canvas.
func DefaultLayout() Layout {
	return Layout{Size: 30, CenterX: 400, CenterY: 400}
}

// Point is a pixel position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Polygon is the six corners of a flat-topped hex.
type Polygon []Point

// SVG renders the polygon as an SVG points attribute: "x,y x,y ...".
func (p Polygon) SVG() string {
	var sb strings.Builder
	for i, pt := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(pt.X, 'f', 2, 64))
		sb.WriteByte(',')
		sb.WriteString(strconv.FormatFloat(pt.Y, 'f', 2, 64))
	}
	return sb.String()
}

// Center returns the pixel center of c. Flipped boards mirror the y axis
// around the layout center so Black sits at the bottom.
func (l Layout) Center(c Coord, flipped bool) Point {
	x := l.CenterX + 1.5*l.Size*float64(c.Q)
	dy := math.Sqrt(3) * l.Size * (float64(c.R) + float64(c.Q)/2)
	if flipped {
		return Point{X: x, Y: l.CenterY - dy}
	}
	return Point{X: x, Y: l.CenterY + dy}
}

// Corners returns the hex polygon around center.
func (l Layout) Corners(center Point) Polygon {
	pts := make(Polygon, 6)
	for i := range pts {
		a := float64(i) * math.Pi / 3
		pts[i] = Point{X: center.X + l.Size*math.Cos(a), Y: center.Y + l.Size*math.Sin(a)}
	}
	return pts
}

// PieceView describes the occupant of a tile.
type PieceView struct {
	Kind  string `json:"type"`
	Color string `json:"color"`
}

// TileView is a read-only, render-ready projection of one tile.
type TileView struct {
	Q             int        `json:"q"`
	R             int        `json:"r"`
	X             float64    `json:"x"`
	Y             float64    `json:"y"`
	Center        Point      `json:"center"`
	FlippedCenter Point      `json:"flipped_center"`
	Points        string     `json:"points"`
	FlippedPoints string     `json:"flipped_points"`
	Piece         *PieceView `json:"piece,omitempty"`
	Asset         string     `json:"piece_path,omitempty"`
	Zone          string     `json:"color"`
	Selected      bool       `json:"selected"`
	Highlighted   bool       `json:"highlighted"`
}

// Snapshot projects every tile into pixel space, ordered by q then r. X and Y
// are the top-left anchor of the piece image in the requested orientation.
func (b *Board) Snapshot(l Layout, flipped bool) []TileView {
	tiles := b.Tiles()
	out := make([]TileView, 0, len(tiles))
	for _, t := range tiles {
		normal := l.Center(t.Coord, false)
		mirrored := l.Center(t.Coord, true)
		active := normal
		if flipped {
			active = mirrored
		}

		v := TileView{
			Q:             t.Coord.Q,
			R:             t.Coord.R,
			X:             active.X - l.Size/2,
			Y:             active.Y - l.Size/2,
			Center:        normal,
			FlippedCenter: mirrored,
			Points:        l.Corners(normal).SVG(),
			FlippedPoints: l.Corners(mirrored).SVG(),
			Zone:          t.Zone.String(),
			Selected:      t.Selected,
			Highlighted:   t.Highlighted,
		}
		if t.Occupied {
			v.Piece = &PieceView{Kind: t.Piece.Kind.String(), Color: t.Piece.Color.String()}
			v.Asset = t.Piece.Asset()
		}
		out = append(out, v)
	}
	return out
}
