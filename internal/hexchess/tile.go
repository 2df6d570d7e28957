package hexchess

// Zone is the cosmetic tile shade, (r - q) mod 3.
type Zone uint8

var zoneNames = [...]string{"maroon", "navajowhite", "gray"}

// ZoneOf returns the zone of a coordinate using a non-negative modulus.
func ZoneOf(c Coord) Zone {
	return Zone(((c.R-c.Q)%3 + 3) % 3)
}

func (z Zone) String() string {
	if int(z) < len(zoneNames) {
		return zoneNames[z]
	}
	return "unknown"
}

// Tile is one hex of the board. Board methods hand out copies; the board owns
// the originals.
type Tile struct {
	Coord       Coord
	Piece       Piece
	Occupied    bool
	Zone        Zone
	Selected    bool
	Highlighted bool
}

// PieceAt returns the tile's piece, if any.
func (t Tile) PieceAt() (Piece, bool) {
	return t.Piece, t.Occupied
}

func (t *Tile) place(p Piece) {
	t.Piece = p
	t.Occupied = true
}

func (t *Tile) clear() {
	t.Piece = Piece{}
	t.Occupied = false
}
