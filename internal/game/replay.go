package game

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-hexchess/internal/hexchess"
)

// ErrReplayRejected is returned when a stored move is not legal on the board.
var ErrReplayRejected = errors.New("game: replay move rejected")

// Replay plays moves onto b through the click path, so turns alternate as
// they did when the game was recorded. It stops at the first move the board
// rejects and returns how many moves were applied.
func Replay(b *hexchess.Board, moves []hexchess.Move) (int, error) {
	for i, m := range moves {
		p, ok := b.PieceAt(m.From)
		if !ok || p != m.Piece {
			return i, fmt.Errorf("%w: ply %d %s: piece mismatch", ErrReplayRejected, i+1, m)
		}
		b.HandleClick(m.From)
		if !b.HandleClick(m.To) {
			return i, fmt.Errorf("%w: ply %d %s", ErrReplayRejected, i+1, m)
		}
	}
	return len(moves), nil
}
