package hexchess

import "testing"

func TestIsThreatened(t *testing.T) {
	tests := []struct {
		name   string
		pieces map[Coord]Piece
		at     Coord
		color  Color
		want   bool
	}{
		{"empty board", nil, Hex(0, 0), White, false},
		{"knight leap", map[Coord]Piece{Hex(2, 1): {Knight, Black}}, Hex(0, 0), White, true},
		{"own knight", map[Coord]Piece{Hex(2, 1): {Knight, White}}, Hex(0, 0), White, false},
		{"rook ray", map[Coord]Piece{Hex(0, 4): {Rook, Black}}, Hex(0, 0), White, true},
		{"queen straight", map[Coord]Piece{Hex(-4, 0): {Queen, Black}}, Hex(0, 0), White, true},
		{"bishop ray", map[Coord]Piece{Hex(2, 2): {Bishop, Black}}, Hex(0, 0), White, true},
		{"queen diagonal", map[Coord]Piece{Hex(-2, 4): {Queen, Black}}, Hex(0, 0), White, true},
		{"rook on diagonal", map[Coord]Piece{Hex(2, 2): {Rook, Black}}, Hex(0, 0), White, false},
		{"bishop on straight", map[Coord]Piece{Hex(0, 3): {Bishop, Black}}, Hex(0, 0), White, false},
		{
			"blocked ray",
			map[Coord]Piece{Hex(0, 4): {Rook, Black}, Hex(0, 2): {Pawn, White}},
			Hex(0, 0), White, false,
		},
		{"black pawn attacks white", map[Coord]Piece{Hex(1, 0): {Pawn, Black}}, Hex(0, 0), White, true},
		{"black pawn second offset", map[Coord]Piece{Hex(-1, 1): {Pawn, Black}}, Hex(0, 0), White, true},
		{"black pawn in front", map[Coord]Piece{Hex(0, 1): {Pawn, Black}}, Hex(0, 0), White, false},
		{"white pawn attacks black", map[Coord]Piece{Hex(-1, 0): {Pawn, White}}, Hex(0, 0), Black, true},
		{"white pawn second offset", map[Coord]Piece{Hex(1, -1): {Pawn, White}}, Hex(0, 0), Black, true},
		{"enemy king is not an attacker", map[Coord]Piece{Hex(1, 0): {King, Black}}, Hex(0, 0), White, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := boardWith(t, tc.pieces)
			if got := b.IsThreatened(tc.at, tc.color); got != tc.want {
				t.Errorf("IsThreatened(%s, %v) = %v, expected %v", tc.at, tc.color, got, tc.want)
			}
		})
	}
}

func TestPawnThreatMatchesCaptures(t *testing.T) {
	for _, color := range []Color{White, Black} {
		b := boardWith(t, map[Coord]Piece{Hex(0, 0): {Pawn, color}})
		for _, d := range pawnCaptures[color] {
			if !b.IsThreatened(d, color.Opponent()) {
				t.Errorf("%v pawn capture hex %s should be threatened", color, d)
			}
		}
	}
}

func TestKingAvoidsThreatenedHexes(t *testing.T) {
	b := boardWith(t, map[Coord]Piece{
		Hex(0, 0): {King, White},
		Hex(3, 0): {Rook, Black},
	})

	got := b.LegalDestinations(Hex(0, 0))
	if len(got) != 11 {
		t.Errorf("king destinations = %d (%v), expected 11", len(got), got)
	}
	if contains(got, Hex(1, 0)) {
		t.Error("king should not step onto the rook's ray")
	}
	// The king itself blocks the ray, so the hex behind it stays open.
	if !contains(got, Hex(-1, 0)) {
		t.Error("king should be allowed to retreat behind itself")
	}
	if b.IsThreatened(Hex(-1, 0), White) {
		t.Error("(-1,0) is shielded by the king")
	}
}

func TestKingShieldsHexBehindIt(t *testing.T) {
	b := boardWith(t, map[Coord]Piece{
		Hex(0, 0): {King, White},
		Hex(0, 3): {Rook, Black},
	})

	if b.IsThreatened(Hex(0, -1), White) {
		t.Fatal("(0,-1) should be shielded by the king")
	}
	got := b.LegalDestinations(Hex(0, 0))
	if !contains(got, Hex(0, -1)) {
		t.Errorf("king destinations %v should include (0,-1)", got)
	}
	if contains(got, Hex(0, 1)) {
		t.Errorf("king destinations %v should exclude (0,1)", got)
	}
}

func TestKingCapturesUndefended(t *testing.T) {
	b := boardWith(t, map[Coord]Piece{
		Hex(0, 0): {King, White},
		Hex(1, 1): {Pawn, Black},
	})
	got := b.LegalDestinations(Hex(0, 0))
	if !contains(got, Hex(1, 1)) {
		t.Error("king should capture the pawn on (1,1)")
	}
	if contains(got, Hex(0, 1)) {
		t.Error("(0,1) is attacked by the pawn")
	}

	b = boardWith(t, map[Coord]Piece{
		Hex(0, 0): {King, White},
		Hex(1, 1): {Pawn, Black},
		Hex(1, 4): {Rook, Black},
	})
	if contains(b.LegalDestinations(Hex(0, 0)), Hex(1, 1)) {
		t.Error("king should not capture a defended pawn")
	}
}

func TestKingDestinationsNeverThreatened(t *testing.T) {
	boards := []*Board{
		NewStandardBoard(),
		boardWith(t, map[Coord]Piece{
			Hex(0, 0):  {King, White},
			Hex(2, 1):  {Knight, Black},
			Hex(-3, 0): {Queen, Black},
			Hex(1, 2):  {Pawn, Black},
			Hex(0, 4):  {King, Black},
		}),
	}

	for i, b := range boards {
		for _, tile := range b.Tiles() {
			if !tile.Occupied || tile.Piece.Kind != King {
				continue
			}
			for _, to := range b.LegalDestinations(tile.Coord) {
				if b.IsThreatened(to, tile.Piece.Color) {
					t.Errorf("board %d: king %s may move to threatened %s", i, tile.Coord, to)
				}
			}
		}
	}
}
