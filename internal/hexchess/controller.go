package hexchess

// HandleClick feeds one click into the selection state machine. It returns
// true only when the click completed a move and the turn passed to the
// other side.
//
// With nothing selected, clicking a piece of the side to move selects it and
// highlights its destinations; anything else is ignored. With a piece
// selected, clicking a highlighted hex moves there, clicking another own
// piece reselects, and any other click clears the selection.
func (b *Board) HandleClick(c Coord) bool {
	_, moved := b.HandleClickMove(c)
	return moved
}

// HandleClickMove is HandleClick that also returns the applied move.
func (b *Board) HandleClickMove(c Coord) (Move, bool) {
	if !b.hasSelected {
		b.trySelect(c)
		return Move{}, false
	}

	from := b.selected
	if m, ok := b.applyMove(from, c); ok {
		b.turn = b.turn.Opponent()
		return m, true
	}

	b.clearSelection()
	b.trySelect(c)
	return Move{}, false
}

// CanSelect reports whether a click on c would select a piece.
func (b *Board) CanSelect(c Coord) bool {
	t, ok := b.tiles[c]
	return ok && t.Occupied && t.Piece.Color == b.turn
}

func (b *Board) trySelect(c Coord) {
	if !b.CanSelect(c) {
		return
	}
	b.selected = c
	b.hasSelected = true
	b.tiles[c].Selected = true
	for _, d := range b.LegalDestinations(c) {
		b.tiles[d].Highlighted = true
	}
}

func (b *Board) clearSelection() {
	if b.hasSelected {
		if t, ok := b.tiles[b.selected]; ok {
			t.Selected = false
		}
	}
	for _, t := range b.tiles {
		t.Highlighted = false
	}
	b.hasSelected = false
	b.selected = Coord{}
}
