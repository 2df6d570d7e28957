package hexchess

// IsThreatened reports whether an opponent of color could reach at, ignoring
// whose turn it is. Kings are never counted as attackers, and rays stop at
// the first occupied hex, including the hex of the king being tested.
func (b *Board) IsThreatened(at Coord, color Color) bool {
	enemy := color.Opponent()

	for _, d := range KnightLeaps {
		if b.holds(at.Add(d), Piece{Knight, enemy}) {
			return true
		}
	}

	if b.rayHits(at, StraightDirections[:], enemy, Rook) {
		return true
	}
	if b.rayHits(at, DiagonalDirections[:], enemy, Bishop) {
		return true
	}

	// An enemy pawn attacks at when at is one of its capture offsets away.
	for _, d := range pawnCaptures[enemy] {
		if b.holds(at.Add(d.Scale(-1)), Piece{Pawn, enemy}) {
			return true
		}
	}
	return false
}

// rayHits walks each direction from at and reports whether the first piece
// met is an enemy slider of kind or a queen.
func (b *Board) rayHits(at Coord, dirs []Coord, enemy Color, kind Kind) bool {
	for _, d := range dirs {
		cur := at.Add(d)
		for {
			t, ok := b.tiles[cur]
			if !ok {
				break
			}
			if t.Occupied {
				if t.Piece.Color == enemy && (t.Piece.Kind == kind || t.Piece.Kind == Queen) {
					return true
				}
				break
			}
			cur = cur.Add(d)
		}
	}
	return false
}

func (b *Board) holds(c Coord, p Piece) bool {
	t, ok := b.tiles[c]
	return ok && t.Occupied && t.Piece == p
}
