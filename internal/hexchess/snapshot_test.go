package hexchess

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLayoutCenter(t *testing.T) {
	l := DefaultLayout()
	h := math.Sqrt(3) * 30

	tests := []struct {
		c       Coord
		flipped bool
		want    Point
	}{
		{Hex(0, 0), false, Point{400, 400}},
		{Hex(0, 0), true, Point{400, 400}},
		{Hex(0, 1), false, Point{400, 400 + h}},
		{Hex(0, 1), true, Point{400, 400 - h}},
		{Hex(2, -1), false, Point{490, 400}},
		{Hex(1, 0), false, Point{445, 400 + h/2}},
	}
	for _, tc := range tests {
		got := l.Center(tc.c, tc.flipped)
		if !near(got.X, tc.want.X) || !near(got.Y, tc.want.Y) {
			t.Errorf("Center(%s, %v) = %+v, expected %+v", tc.c, tc.flipped, got, tc.want)
		}
	}
}

func TestLayoutCorners(t *testing.T) {
	l := DefaultLayout()
	pts := l.Corners(Point{400, 400})
	if len(pts) != 6 {
		t.Fatalf("Corners() returned %d points", len(pts))
	}
	if !near(pts[0].X, 430) || !near(pts[0].Y, 400) {
		t.Errorf("first corner = %+v, expected (430,400)", pts[0])
	}
	if !near(pts[3].X, 370) || math.Abs(pts[3].Y-400) > 1e-9 {
		t.Errorf("fourth corner = %+v, expected (370,400)", pts[3])
	}
	svg := pts.SVG()
	if !strings.HasPrefix(svg, "430.00,400.00 415.00,425.98 ") {
		t.Errorf("SVG() = %q", svg)
	}
	if n := len(strings.Fields(svg)); n != 6 {
		t.Errorf("SVG() has %d points, expected 6", n)
	}
}

func TestSnapshot(t *testing.T) {
	b := NewStandardBoard()
	b.HandleClick(Hex(1, -2))

	views := b.Snapshot(DefaultLayout(), false)
	if len(views) != 91 {
		t.Fatalf("Snapshot() has %d tiles, expected 91", len(views))
	}
	for i := 1; i < len(views); i++ {
		prev, cur := views[i-1], views[i]
		if prev.Q > cur.Q || (prev.Q == cur.Q && prev.R >= cur.R) {
			t.Fatalf("Snapshot() not ordered at %d", i)
		}
	}

	byCoord := map[Coord]TileView{}
	for _, v := range views {
		byCoord[Hex(v.Q, v.R)] = v
	}

	origin := byCoord[Hex(0, 0)]
	if !near(origin.X, 385) || !near(origin.Y, 385) {
		t.Errorf("origin anchor = (%v,%v), expected (385,385)", origin.X, origin.Y)
	}
	if origin.Piece != nil || origin.Asset != "" {
		t.Error("origin should be empty")
	}
	if origin.Zone != "maroon" {
		t.Errorf("origin zone = %q", origin.Zone)
	}

	pawn := byCoord[Hex(1, -2)]
	if pawn.Piece == nil || pawn.Piece.Kind != "pawn" || pawn.Piece.Color != "white" {
		t.Errorf("pawn view = %+v", pawn.Piece)
	}
	if pawn.Asset != "w_pawn.png" {
		t.Errorf("pawn asset = %q", pawn.Asset)
	}
	if !pawn.Selected {
		t.Error("pawn should be selected")
	}
	if !byCoord[Hex(1, 0)].Highlighted || !byCoord[Hex(1, -1)].Highlighted {
		t.Error("pawn destinations should be highlighted")
	}
}

func TestSnapshotFlipped(t *testing.T) {
	b := NewStandardBoard()
	normal := b.Snapshot(DefaultLayout(), false)
	flipped := b.Snapshot(DefaultLayout(), true)

	for i := range normal {
		n, f := normal[i], flipped[i]
		if n.Center != f.Center || n.FlippedCenter != f.FlippedCenter {
			t.Fatalf("centers differ between orientations at (%d,%d)", n.Q, n.R)
		}
		if !near(n.Y+f.Y+30, 800) {
			t.Errorf("(%d,%d) anchors %v and %v are not mirrored", n.Q, n.R, n.Y, f.Y)
		}
		if n.Points != f.Points || n.FlippedPoints != f.FlippedPoints {
			t.Errorf("(%d,%d) polygons differ between orientations", n.Q, n.R)
		}
	}
}

func TestSnapshotJSON(t *testing.T) {
	b := NewStandardBoard()
	data, err := json.Marshal(b.Snapshot(DefaultLayout(), false)[0])
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	for _, key := range []string{`"q":`, `"r":`, `"x":`, `"y":`, `"points":`, `"color":`, `"selected":`, `"highlighted":`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("JSON %s missing %s", data, key)
		}
	}
}
