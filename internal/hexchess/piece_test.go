package hexchess

import (
	"errors"
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		token string
		want  Kind
	}{
		{"Rook", Rook}, {"R", Rook}, {"r", Rook},
		{"Knight", Knight}, {"N", Knight}, {"n", Knight},
		{"Bishop", Bishop}, {"B", Bishop}, {"b", Bishop},
		{"Queen", Queen}, {"Q", Queen}, {"q", Queen},
		{"King", King}, {"K", King}, {"k", King},
		{"Pawn", Pawn}, {"P", Pawn}, {"p", Pawn},
	}
	for _, tc := range tests {
		got, err := ParseKind(tc.token)
		if err != nil {
			t.Errorf("ParseKind(%q) error = %v", tc.token, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseKind(%q) = %v, expected %v", tc.token, got, tc.want)
		}
	}

	for _, bad := range []string{"", "X", "rook", "KING", "Kn"} {
		if _, err := ParseKind(bad); !errors.Is(err, ErrInvalidPieceSpec) {
			t.Errorf("ParseKind(%q) error = %v, expected ErrInvalidPieceSpec", bad, err)
		}
	}
}

func TestParseColor(t *testing.T) {
	for _, tok := range []string{"white", "White", "w", "0"} {
		if c, err := ParseColor(tok); err != nil || c != White {
			t.Errorf("ParseColor(%q) = %v, %v", tok, c, err)
		}
	}
	for _, tok := range []string{"black", "BLACK", "b", "1"} {
		if c, err := ParseColor(tok); err != nil || c != Black {
			t.Errorf("ParseColor(%q) = %v, %v", tok, c, err)
		}
	}
	if _, err := ParseColor("red"); !errors.Is(err, ErrInvalidPieceSpec) {
		t.Errorf("ParseColor(red) error = %v", err)
	}
}

func TestPieceAssetAndLetter(t *testing.T) {
	tests := []struct {
		p      Piece
		asset  string
		letter rune
	}{
		{Piece{Pawn, White}, "w_pawn.png", 'P'},
		{Piece{Knight, Black}, "b_knight.png", 'n'},
		{Piece{Queen, Black}, "b_queen.png", 'q'},
		{Piece{King, White}, "w_king.png", 'K'},
	}
	for _, tc := range tests {
		if got := tc.p.Asset(); got != tc.asset {
			t.Errorf("%v Asset() = %q, expected %q", tc.p, got, tc.asset)
		}
		if got := tc.p.Letter(); got != tc.letter {
			t.Errorf("%v Letter() = %q, expected %q", tc.p, got, tc.letter)
		}
	}
}

func TestColorOpponent(t *testing.T) {
	if White.Opponent() != Black || Black.Opponent() != White {
		t.Error("Opponent() should swap colors")
	}
}

func TestCoordDistance(t *testing.T) {
	if d := Hex(0, 0).Distance(Hex(5, -5)); d != 5 {
		t.Errorf("Distance = %d, expected 5", d)
	}
	if d := Hex(-2, 1).Distance(Hex(1, 1)); d != 3 {
		t.Errorf("Distance = %d, expected 3", d)
	}
	if s := Hex(2, -5).S(); s != 3 {
		t.Errorf("S() = %d, expected 3", s)
	}
}
