package formats

import (
	"sort"

	"github.com/vovakirdan/tui-hexchess/internal/hexchess"
)

func piecesSet(p hexchess.Placement) map[hexchess.Coord]bool {
	out := make(map[hexchess.Coord]bool, len(p.Pieces))
	for c := range p.Pieces {
		out[c] = true
	}
	return out
}

func sortedCoords(set map[hexchess.Coord]bool) []hexchess.Coord {
	out := make([]hexchess.Coord, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Q != out[j].Q {
			return out[i].Q < out[j].Q
		}
		return out[i].R < out[j].R
	})
	return out
}
