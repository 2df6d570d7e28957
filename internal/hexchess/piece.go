package hexchess

import (
	"fmt"
	"strings"
)

// Kind is the closed set of piece kinds.
type Kind uint8

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindNames = [...]string{"pawn", "knight", "bishop", "rook", "queen", "king"}

var kindLetters = [...]byte{'P', 'N', 'B', 'R', 'Q', 'K'}

// String returns the lowercase kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Kinds lists every piece kind in declaration order.
func Kinds() []Kind {
	return []Kind{Pawn, Knight, Bishop, Rook, Queen, King}
}

// ParseKind maps a placement token to a kind. Full names and both cases of
// the single letter are accepted ("Rook", "R", "r").
func ParseKind(token string) (Kind, error) {
	switch token {
	case "Pawn", "P", "p":
		return Pawn, nil
	case "Knight", "N", "n":
		return Knight, nil
	case "Bishop", "B", "b":
		return Bishop, nil
	case "Rook", "R", "r":
		return Rook, nil
	case "Queen", "Q", "q":
		return Queen, nil
	case "King", "K", "k":
		return King, nil
	}
	return 0, fmt.Errorf("%w: unknown kind %q", ErrInvalidPieceSpec, token)
}

// Color is the side a piece belongs to.
type Color uint8

const (
	White Color = iota
	Black
)

// Opponent returns the other color.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// ParseColor accepts "white", "w", "0", "black", "b" and "1" in any case.
func ParseColor(token string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "white", "w", "0":
		return White, nil
	case "black", "b", "1":
		return Black, nil
	}
	return 0, fmt.Errorf("%w: unknown color %q", ErrInvalidPieceSpec, token)
}

// Piece is an immutable kind and color pair.
type Piece struct {
	Kind  Kind
	Color Color
}

// Asset returns the image reference for the piece, e.g. "w_pawn.png".
func (p Piece) Asset() string {
	prefix := "w_"
	if p.Color == Black {
		prefix = "b_"
	}
	return prefix + p.Kind.String() + ".png"
}

// Letter returns the FEN-style letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() rune {
	l := rune(kindLetters[p.Kind])
	if p.Color == Black {
		l += 'a' - 'A'
	}
	return l
}

func (p Piece) String() string {
	return p.Color.String() + " " + p.Kind.String()
}
