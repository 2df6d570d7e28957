package hexchess

import "fmt"

// DefaultRadius is the radius of the standard 91-hex board.
const DefaultRadius = 5

// Placement is an initial arrangement of pieces plus the pawn home hexes from
// which a two-step advance is permitted.
type Placement struct {
	Pieces    map[Coord]Piece
	PawnHomes [2]map[Coord]bool
}

// NewPlacement returns an empty placement.
func NewPlacement() Placement {
	return Placement{
		Pieces:    make(map[Coord]Piece),
		PawnHomes: [2]map[Coord]bool{make(map[Coord]bool), make(map[Coord]bool)},
	}
}

// Put places a piece, replacing any previous one on that hex. A zero
// Placement is usable.
func (p *Placement) Put(c Coord, piece Piece) {
	if p.Pieces == nil {
		p.Pieces = make(map[Coord]Piece)
	}
	p.Pieces[c] = piece
}

// AddPawnHome marks c as a two-step origin for color.
func (p *Placement) AddPawnHome(color Color, c Coord) {
	if p.PawnHomes[color] == nil {
		p.PawnHomes[color] = make(map[Coord]bool)
	}
	p.PawnHomes[color][c] = true
}

// IsPawnHome reports whether a pawn of color standing on c may advance two steps.
func (p Placement) IsPawnHome(color Color, c Coord) bool {
	return p.PawnHomes[color][c]
}

// Clone returns a deep copy.
func (p Placement) Clone() Placement {
	out := NewPlacement()
	for c, piece := range p.Pieces {
		out.Pieces[c] = piece
	}
	for color := range p.PawnHomes {
		for c := range p.PawnHomes[color] {
			out.PawnHomes[color][c] = true
		}
	}
	return out
}

// Validate checks every piece and pawn home lies within a board of the given radius.
func (p Placement) Validate(radius int) error {
	for c := range p.Pieces {
		if !withinRadius(c, radius) {
			return fmt.Errorf("%w: piece at %s outside radius %d", ErrInvalidPlacement, c, radius)
		}
	}
	for color := range p.PawnHomes {
		for c := range p.PawnHomes[color] {
			if !withinRadius(c, radius) {
				return fmt.Errorf("%w: pawn home %s outside radius %d", ErrInvalidPlacement, c, radius)
			}
		}
	}
	return nil
}

var (
	whitePawnHomes = []Coord{
		{-4, -1}, {-3, -1}, {-2, -1}, {-1, -1}, {0, -1}, {1, -2}, {2, -3}, {3, -4}, {4, -5},
	}
	blackPawnHomes = []Coord{
		{0, 1}, {1, 1}, {2, 1}, {3, 1}, {4, 1}, {-1, 2}, {-2, 3}, {-3, 4}, {-4, 5},
	}
)

// StandardPlacement returns the 18-piece-per-side opening for a radius 5 board.
func StandardPlacement() Placement {
	p := NewPlacement()

	for _, c := range whitePawnHomes {
		p.Put(c, Piece{Pawn, White})
		p.AddPawnHome(White, c)
	}
	for _, c := range blackPawnHomes {
		p.Put(c, Piece{Pawn, Black})
		p.AddPawnHome(Black, c)
	}

	back := []struct {
		c     Coord
		piece Piece
	}{
		{Hex(1, -5), Piece{King, White}},
		{Hex(-1, -4), Piece{Queen, White}},
		{Hex(0, -5), Piece{Bishop, White}},
		{Hex(0, -4), Piece{Bishop, White}},
		{Hex(0, -3), Piece{Bishop, White}},
		{Hex(3, -5), Piece{Rook, White}},
		{Hex(-3, -2), Piece{Rook, White}},
		{Hex(-2, -3), Piece{Knight, White}},
		{Hex(2, -5), Piece{Knight, White}},

		{Hex(1, 4), Piece{King, Black}},
		{Hex(-1, 5), Piece{Queen, Black}},
		{Hex(0, 5), Piece{Bishop, Black}},
		{Hex(0, 4), Piece{Bishop, Black}},
		{Hex(0, 3), Piece{Bishop, Black}},
		{Hex(-3, 5), Piece{Rook, Black}},
		{Hex(3, 2), Piece{Rook, Black}},
		{Hex(2, 3), Piece{Knight, Black}},
		{Hex(-2, 5), Piece{Knight, Black}},
	}
	for _, b := range back {
		p.Put(b.c, b.piece)
	}
	return p
}

func withinRadius(c Coord, radius int) bool {
	return abs(c.Q) <= radius && abs(c.R) <= radius && abs(c.S()) <= radius
}
