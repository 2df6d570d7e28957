package hexchess

import "errors"

var (
	// ErrInvalidPieceSpec is returned when a piece kind or color token is not recognized.
	ErrInvalidPieceSpec = errors.New("hexchess: invalid piece spec")
	// ErrInvalidRadius is returned for a board radius below one.
	ErrInvalidRadius = errors.New("hexchess: invalid board radius")
	// ErrInvalidPlacement is returned when a placement refers to a hex outside the board.
	ErrInvalidPlacement = errors.New("hexchess: invalid placement")
)
