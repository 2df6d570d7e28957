package hexchess

// LegalDestinations returns the hexes the piece on from may move to. The
// result is empty when from is off the board or holds no piece. Order follows
// generation and carries no meaning.
func (b *Board) LegalDestinations(from Coord) []Coord {
	t, ok := b.tiles[from]
	if !ok || !t.Occupied {
		return nil
	}

	switch t.Piece.Kind {
	case Pawn:
		return b.pawnMoves(from, t.Piece.Color)
	case Knight:
		return b.leapMoves(from, t.Piece.Color, KnightLeaps[:])
	case Bishop:
		return b.slideMoves(from, t.Piece.Color, DiagonalDirections[:])
	case Rook:
		return b.slideMoves(from, t.Piece.Color, StraightDirections[:])
	case Queen:
		moves := b.slideMoves(from, t.Piece.Color, StraightDirections[:])
		return append(moves, b.slideMoves(from, t.Piece.Color, DiagonalDirections[:])...)
	case King:
		return b.kingMoves(from, t.Piece.Color)
	}
	return nil
}

// AllLegalMoves returns every from/to pair available to color.
func (b *Board) AllLegalMoves(color Color) []Move {
	var out []Move
	for _, t := range b.Tiles() {
		if !t.Occupied || t.Piece.Color != color {
			continue
		}
		for _, to := range b.LegalDestinations(t.Coord) {
			m := Move{From: t.Coord, To: to, Piece: t.Piece}
			if p, ok := b.PieceAt(to); ok {
				m.Captured = p
				m.HasCapture = true
			}
			out = append(out, m)
		}
	}
	return out
}

func (b *Board) slideMoves(from Coord, color Color, dirs []Coord) []Coord {
	var out []Coord
	for _, d := range dirs {
		cur := from.Add(d)
		for {
			t, ok := b.tiles[cur]
			if !ok {
				break
			}
			if t.Occupied {
				if t.Piece.Color != color {
					out = append(out, cur)
				}
				break
			}
			out = append(out, cur)
			cur = cur.Add(d)
		}
	}
	return out
}

func (b *Board) leapMoves(from Coord, color Color, leaps []Coord) []Coord {
	var out []Coord
	for _, d := range leaps {
		to := from.Add(d)
		t, ok := b.tiles[to]
		if !ok {
			continue
		}
		if !t.Occupied || t.Piece.Color != color {
			out = append(out, to)
		}
	}
	return out
}

func (b *Board) kingMoves(from Coord, color Color) []Coord {
	var out []Coord
	for _, dirs := range [2][6]Coord{StraightDirections, DiagonalDirections} {
		for _, d := range dirs {
			to := from.Add(d)
			t, ok := b.tiles[to]
			if !ok {
				continue
			}
			if b.IsThreatened(to, color) {
				continue
			}
			if !t.Occupied || t.Piece.Color != color {
				out = append(out, to)
			}
		}
	}
	return out
}

// pawnForward is the single-step advance per color.
var pawnForward = [2]Coord{White: {0, 1}, Black: {0, -1}}

// pawnCaptures are the two capture offsets per color.
var pawnCaptures = [2][2]Coord{
	White: {{1, 0}, {-1, 1}},
	Black: {{-1, 0}, {1, -1}},
}

func (b *Board) pawnMoves(from Coord, color Color) []Coord {
	var out []Coord

	fwd := pawnForward[color]
	one := from.Add(fwd)
	if t, ok := b.tiles[one]; ok && !t.Occupied {
		out = append(out, one)
		if b.placement.IsPawnHome(color, from) {
			two := one.Add(fwd)
			if t2, ok := b.tiles[two]; ok && !t2.Occupied {
				out = append(out, two)
			}
		}
	}

	for _, d := range pawnCaptures[color] {
		to := from.Add(d)
		if t, ok := b.tiles[to]; ok && t.Occupied && t.Piece.Color != color {
			out = append(out, to)
		}
	}
	return out
}
