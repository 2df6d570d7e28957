// Package formats provides setup file format parsers.
package formats

import (
	"fmt"

	"github.com/vovakirdan/tui-hexchess/internal/hexchess"
	"gopkg.in/yaml.v3"
)

// YAMLSetup is the on-disk structure of a setup file.
type YAMLSetup struct {
	ID        string         `yaml:"id"`
	Name      string         `yaml:"name"`
	Radius    int            `yaml:"radius,omitempty"`
	Pieces    []YAMLPiece    `yaml:"pieces"`
	PawnHomes *YAMLPawnHomes `yaml:"pawn_homes,omitempty"`
}

// YAMLPiece places one piece. Piece takes a kind token such as "Rook", "R"
// or "r"; Color takes "white"/"black" or 0/1.
type YAMLPiece struct {
	Q     int    `yaml:"q"`
	R     int    `yaml:"r"`
	Piece string `yaml:"piece"`
	Color string `yaml:"color"`
}

// YAMLPawnHomes lists the hexes from which pawns may advance two steps.
type YAMLPawnHomes struct {
	White []hexchess.Coord `yaml:"white"`
	Black []hexchess.Coord `yaml:"black"`
}

// Setup is a parsed setup ready for use.
type Setup struct {
	ID        string
	Name      string
	Radius    int
	Placement hexchess.Placement
}

// ParseYAML parses a setup file. Unknown piece or color tokens are errors;
// a setup with a typo must not silently lose pieces.
func ParseYAML(data []byte) (Setup, error) {
	var ys YAMLSetup
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return Setup{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if ys.ID == "" {
		return Setup{}, fmt.Errorf("setup has no id")
	}

	radius := ys.Radius
	if radius == 0 {
		radius = hexchess.DefaultRadius
	}

	p := hexchess.NewPlacement()
	for i, yp := range ys.Pieces {
		kind, err := hexchess.ParseKind(yp.Piece)
		if err != nil {
			return Setup{}, fmt.Errorf("piece %d: %w", i, err)
		}
		color, err := hexchess.ParseColor(yp.Color)
		if err != nil {
			return Setup{}, fmt.Errorf("piece %d: %w", i, err)
		}
		c := hexchess.Hex(yp.Q, yp.R)
		if _, taken := p.Pieces[c]; taken {
			return Setup{}, fmt.Errorf("piece %d: %w: duplicate hex %s", i, hexchess.ErrInvalidPlacement, c)
		}
		p.Put(c, hexchess.Piece{Kind: kind, Color: color})

		// Without explicit homes every pawn may double-step from where it starts.
		if ys.PawnHomes == nil && kind == hexchess.Pawn {
			p.AddPawnHome(color, c)
		}
	}

	if ys.PawnHomes != nil {
		for _, c := range ys.PawnHomes.White {
			p.AddPawnHome(hexchess.White, c)
		}
		for _, c := range ys.PawnHomes.Black {
			p.AddPawnHome(hexchess.Black, c)
		}
	}

	if err := p.Validate(radius); err != nil {
		return Setup{}, err
	}

	return Setup{
		ID:        ys.ID,
		Name:      ys.Name,
		Radius:    radius,
		Placement: p,
	}, nil
}

// MarshalYAML renders a placement back into the file format.
func MarshalYAML(s Setup) ([]byte, error) {
	ys := YAMLSetup{
		ID:     s.ID,
		Name:   s.Name,
		Radius: s.Radius,
		PawnHomes: &YAMLPawnHomes{
			White: sortedCoords(s.Placement.PawnHomes[hexchess.White]),
			Black: sortedCoords(s.Placement.PawnHomes[hexchess.Black]),
		},
	}
	for _, c := range sortedCoords(piecesSet(s.Placement)) {
		piece := s.Placement.Pieces[c]
		ys.Pieces = append(ys.Pieces, YAMLPiece{
			Q:     c.Q,
			R:     c.R,
			Piece: string(piece.Letter()),
			Color: piece.Color.String(),
		})
	}
	return yaml.Marshal(ys)
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
