package hexchess

import (
	"fmt"
	"sort"
)

// Move is one applied piece transfer.
type Move struct {
	From       Coord
	To         Coord
	Piece      Piece
	Captured   Piece
	HasCapture bool
}

func (m Move) String() string {
	sep := "-"
	if m.HasCapture {
		sep = "x"
	}
	return fmt.Sprintf("%c%s%s%s", m.Piece.Letter(), m.From, sep, m.To)
}

// Board is a hex chess position together with its interaction state.
type Board struct {
	radius    int
	placement Placement
	tiles     map[Coord]*Tile

	turn        Color
	selected    Coord
	hasSelected bool

	history []Move
}

// NewBoard builds a hexagonal board of the given radius and places pieces.
// The placement is copied, so later changes to p do not affect the board.
// A zero Placement on the default radius yields the standard opening; on any
// other radius it yields an empty board.
func NewBoard(radius int, p Placement) (*Board, error) {
	if radius < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRadius, radius)
	}
	if p.Pieces == nil {
		if radius == DefaultRadius {
			p = StandardPlacement()
		} else {
			p = NewPlacement()
		}
	}
	if err := p.Validate(radius); err != nil {
		return nil, err
	}

	b := &Board{
		radius:    radius,
		placement: p.Clone(),
	}
	b.build()
	return b, nil
}

// NewStandardBoard returns the radius 5 board with the standard opening.
func NewStandardBoard() *Board {
	b, err := NewBoard(DefaultRadius, StandardPlacement())
	if err != nil {
		panic(err) // standard placement is always valid
	}
	return b
}

func (b *Board) build() {
	b.tiles = make(map[Coord]*Tile, 3*b.radius*(b.radius+1)+1)
	for q := -b.radius; q <= b.radius; q++ {
		for r := -b.radius; r <= b.radius; r++ {
			c := Coord{q, r}
			if !withinRadius(c, b.radius) {
				continue
			}
			b.tiles[c] = &Tile{Coord: c, Zone: ZoneOf(c)}
		}
	}
	for c, piece := range b.placement.Pieces {
		b.tiles[c].place(piece)
	}
	b.turn = White
	b.hasSelected = false
	b.selected = Coord{}
	b.history = nil
}

// Reset restores the initial placement. Turn goes back to White, the
// selection and move history are cleared.
func (b *Board) Reset() {
	b.build()
}

// Radius returns the board radius.
func (b *Board) Radius() int {
	return b.radius
}

// Placement returns a copy of the placement the board was built from.
func (b *Board) Placement() Placement {
	return b.placement.Clone()
}

// InBounds reports whether c is a tile of this board.
func (b *Board) InBounds(c Coord) bool {
	_, ok := b.tiles[c]
	return ok
}

// TileAt returns a copy of the tile at c. The second result is false when c
// lies outside the board.
func (b *Board) TileAt(c Coord) (Tile, bool) {
	t, ok := b.tiles[c]
	if !ok {
		return Tile{}, false
	}
	return *t, true
}

// PieceAt returns the piece on c, if any.
func (b *Board) PieceAt(c Coord) (Piece, bool) {
	t, ok := b.tiles[c]
	if !ok || !t.Occupied {
		return Piece{}, false
	}
	return t.Piece, true
}

// Len returns the number of tiles.
func (b *Board) Len() int {
	return len(b.tiles)
}

// Tiles returns copies of every tile ordered by q, then r.
func (b *Board) Tiles() []Tile {
	out := make([]Tile, 0, len(b.tiles))
	for _, t := range b.tiles {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Coord.Q != out[j].Coord.Q {
			return out[i].Coord.Q < out[j].Coord.Q
		}
		return out[i].Coord.R < out[j].Coord.R
	})
	return out
}

// Turn returns the color to move.
func (b *Board) Turn() Color {
	return b.turn
}

// Selected returns the selected coordinate, if any.
func (b *Board) Selected() (Coord, bool) {
	return b.selected, b.hasSelected
}

// History returns the applied moves in order.
func (b *Board) History() []Move {
	out := make([]Move, len(b.history))
	copy(out, b.history)
	return out
}

// LastMove returns the most recent move.
func (b *Board) LastMove() (Move, bool) {
	if len(b.history) == 0 {
		return Move{}, false
	}
	return b.history[len(b.history)-1], true
}

// ApplyMove moves the piece on from to to if to is a legal destination.
// It clears any selection on success but does not change the turn.
func (b *Board) ApplyMove(from, to Coord) bool {
	_, ok := b.applyMove(from, to)
	return ok
}

func (b *Board) applyMove(from, to Coord) (Move, bool) {
	if !b.isLegal(from, to) {
		return Move{}, false
	}
	src := b.tiles[from]
	dst := b.tiles[to]

	m := Move{From: from, To: to, Piece: src.Piece}
	if dst.Occupied {
		m.Captured = dst.Piece
		m.HasCapture = true
	}
	dst.place(src.Piece)
	src.clear()
	b.clearSelection()
	b.history = append(b.history, m)
	return m, true
}

func (b *Board) isLegal(from, to Coord) bool {
	for _, d := range b.LegalDestinations(from) {
		if d == to {
			return true
		}
	}
	return false
}
