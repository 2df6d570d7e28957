package hexchess

import (
	"errors"
	"sort"
	"testing"
)

func boardWith(t *testing.T, pieces map[Coord]Piece) *Board {
	t.Helper()
	p := NewPlacement()
	for c, piece := range pieces {
		p.Put(c, piece)
	}
	b, err := NewBoard(DefaultRadius, p)
	if err != nil {
		t.Fatalf("NewBoard() error = %v", err)
	}
	return b
}

func sortCoords(cs []Coord) []Coord {
	out := append([]Coord(nil), cs...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Q != out[j].Q {
			return out[i].Q < out[j].Q
		}
		return out[i].R < out[j].R
	})
	return out
}

func sameCoords(a, b []Coord) bool {
	if len(a) != len(b) {
		return false
	}
	a, b = sortCoords(a), sortCoords(b)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func contains(cs []Coord, c Coord) bool {
	for _, x := range cs {
		if x == c {
			return true
		}
	}
	return false
}

func TestNewBoardTileCount(t *testing.T) {
	tests := []struct {
		radius int
		want   int
	}{
		{1, 7},
		{2, 19},
		{5, 91},
	}

	for _, tc := range tests {
		b, err := NewBoard(tc.radius, NewPlacement())
		if err != nil {
			t.Fatalf("NewBoard(%d) error = %v", tc.radius, err)
		}
		if b.Len() != tc.want {
			t.Errorf("NewBoard(%d).Len() = %d, expected %d", tc.radius, b.Len(), tc.want)
		}
	}
}

func TestNewBoardErrors(t *testing.T) {
	if _, err := NewBoard(0, NewPlacement()); !errors.Is(err, ErrInvalidRadius) {
		t.Errorf("radius 0: error = %v, expected ErrInvalidRadius", err)
	}

	p := NewPlacement()
	p.Put(Hex(6, 0), Piece{Rook, White})
	if _, err := NewBoard(5, p); !errors.Is(err, ErrInvalidPlacement) {
		t.Errorf("off-board piece: error = %v, expected ErrInvalidPlacement", err)
	}

	p = NewPlacement()
	p.AddPawnHome(Black, Hex(3, 3))
	if _, err := NewBoard(5, p); !errors.Is(err, ErrInvalidPlacement) {
		t.Errorf("off-board pawn home: error = %v, expected ErrInvalidPlacement", err)
	}
}

func TestTileAt(t *testing.T) {
	b := NewStandardBoard()

	tile, ok := b.TileAt(Hex(1, -5))
	if !ok {
		t.Fatal("TileAt(1,-5) should exist")
	}
	if !tile.Occupied || tile.Piece != (Piece{King, White}) {
		t.Errorf("TileAt(1,-5) piece = %v, expected white king", tile.Piece)
	}

	if _, ok := b.TileAt(Hex(3, 3)); ok {
		t.Error("TileAt(3,3) should be out of bounds")
	}
	if _, ok := b.TileAt(Hex(0, 0)); !ok {
		t.Error("TileAt(0,0) should exist")
	}

	// Mutating the copy must not affect the board.
	tile.Occupied = false
	if p, ok := b.PieceAt(Hex(1, -5)); !ok || p.Kind != King {
		t.Error("TileAt should return a copy")
	}
}

func TestStandardPlacementCounts(t *testing.T) {
	b := NewStandardBoard()
	counts := map[Color]int{}
	for _, tile := range b.Tiles() {
		if tile.Occupied {
			counts[tile.Piece.Color]++
		}
	}
	if counts[White] != 18 || counts[Black] != 18 {
		t.Errorf("piece counts = %v, expected 18 each", counts)
	}
}

func TestCubeInvariantAfterMoves(t *testing.T) {
	b := NewStandardBoard()
	clicks := []Coord{Hex(0, -1), Hex(0, 0), Hex(1, 1), Hex(1, 0), Hex(-2, -3), Hex(-1, -1)}
	for _, c := range clicks {
		b.HandleClick(c)
	}

	for _, tile := range b.Tiles() {
		c := tile.Coord
		if c.Q+c.R+c.S() != 0 {
			t.Errorf("tile %s violates q+r+s=0", c)
		}
		if c.Distance(Hex(0, 0)) > b.Radius() {
			t.Errorf("tile %s outside radius", c)
		}
	}
	if b.Len() != 91 {
		t.Errorf("Len() = %d after moves, expected 91", b.Len())
	}
}

func TestZone(t *testing.T) {
	tests := []struct {
		c    Coord
		want string
	}{
		{Hex(0, 0), "maroon"},
		{Hex(0, 1), "navajowhite"},
		{Hex(0, -1), "gray"},
		{Hex(1, 0), "gray"},
		{Hex(-5, 0), "gray"},
		{Hex(3, 0), "maroon"},
	}
	for _, tc := range tests {
		if got := ZoneOf(tc.c).String(); got != tc.want {
			t.Errorf("ZoneOf(%s) = %q, expected %q", tc.c, got, tc.want)
		}
	}
}

func TestResetRestoresOpening(t *testing.T) {
	b := NewStandardBoard()
	b.HandleClick(Hex(0, -1))
	b.HandleClick(Hex(0, 0))
	b.HandleClick(Hex(1, 1))

	b.Reset()

	if b.Turn() != White {
		t.Errorf("Turn() after Reset = %v, expected white", b.Turn())
	}
	if _, ok := b.Selected(); ok {
		t.Error("Reset should clear the selection")
	}
	if len(b.History()) != 0 {
		t.Error("Reset should clear history")
	}
	if p, ok := b.PieceAt(Hex(0, -1)); !ok || p != (Piece{Pawn, White}) {
		t.Error("Reset should put the white pawn back on (0,-1)")
	}
	if _, ok := b.PieceAt(Hex(0, 0)); ok {
		t.Error("Reset should empty (0,0)")
	}
	for _, tile := range b.Tiles() {
		if tile.Selected || tile.Highlighted {
			t.Errorf("tile %s still marked after Reset", tile.Coord)
		}
	}
}

func TestApplyMoveDoesNotToggleTurn(t *testing.T) {
	b := NewStandardBoard()

	if b.ApplyMove(Hex(0, -1), Hex(0, 2)) {
		t.Error("ApplyMove to an unreachable hex should fail")
	}
	if !b.ApplyMove(Hex(1, -2), Hex(1, 0)) {
		t.Fatal("ApplyMove((1,-2),(1,0)) should succeed")
	}
	if b.Turn() != White {
		t.Errorf("Turn() = %v, ApplyMove must not toggle", b.Turn())
	}
	if _, ok := b.PieceAt(Hex(1, -2)); ok {
		t.Error("source tile should be empty after move")
	}
	if p, ok := b.PieceAt(Hex(1, 0)); !ok || p != (Piece{Pawn, White}) {
		t.Error("destination should hold the white pawn")
	}

	m, ok := b.LastMove()
	if !ok || m.From != Hex(1, -2) || m.To != Hex(1, 0) || m.HasCapture {
		t.Errorf("LastMove() = %+v, %v", m, ok)
	}
}

func TestApplyMoveRecordsCapture(t *testing.T) {
	b := boardWith(t, map[Coord]Piece{
		Hex(0, 0): {Rook, White},
		Hex(0, 3): {Knight, Black},
	})

	if !b.ApplyMove(Hex(0, 0), Hex(0, 3)) {
		t.Fatal("rook should capture the knight")
	}
	m, _ := b.LastMove()
	if !m.HasCapture || m.Captured != (Piece{Knight, Black}) {
		t.Errorf("LastMove() capture = %+v", m)
	}
}

func TestNewBoardZeroPlacement(t *testing.T) {
	b, err := NewBoard(DefaultRadius, Placement{})
	if err != nil {
		t.Fatalf("NewBoard() error = %v", err)
	}
	if p, ok := b.PieceAt(Hex(1, -5)); !ok || p != (Piece{King, White}) {
		t.Error("zero placement on the default radius should give the standard opening")
	}

	small, err := NewBoard(2, Placement{})
	if err != nil {
		t.Fatalf("NewBoard(2) error = %v", err)
	}
	for _, tile := range small.Tiles() {
		if tile.Occupied {
			t.Fatalf("radius 2 board should be empty, found %v at %s", tile.Piece, tile.Coord)
		}
	}
}

func TestZeroPlacementIsUsable(t *testing.T) {
	var p Placement
	p.Put(Hex(0, 0), Piece{Pawn, White})
	p.AddPawnHome(White, Hex(0, 0))

	if !p.IsPawnHome(White, Hex(0, 0)) {
		t.Error("AddPawnHome on a zero placement should record the home")
	}
	b, err := NewBoard(DefaultRadius, p)
	if err != nil {
		t.Fatalf("NewBoard() error = %v", err)
	}
	if got := b.LegalDestinations(Hex(0, 0)); len(got) != 2 {
		t.Errorf("pawn destinations = %v, expected two steps", got)
	}
}
