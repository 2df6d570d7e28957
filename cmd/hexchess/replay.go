package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hexchess/internal/core"
	"github.com/vovakirdan/tui-hexchess/internal/game"
	"github.com/vovakirdan/tui-hexchess/internal/hexchess"
	"github.com/vovakirdan/tui-hexchess/internal/setups"
	"github.com/vovakirdan/tui-hexchess/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay <game-id>",
	Short: "Re-apply a recorded game and print the final board",
	Long: `Load a recorded game, replay every move through the rules engine and
print the resulting position. A move the engine rejects stops the replay
with an error, so this also checks a database for corruption.

Examples:
  hexchess history
  hexchess replay 3f1c2a9e-5b7d-4e21-9a0c-1d2e3f4a5b6c`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(_ *cobra.Command, args []string) {
	cfg := loadConfig()

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fatal(fmt.Errorf("opening games database: %w", err))
	}
	err = replayGame(os.Stdout, store, args[0], terminalConfig().ScreenW)
	store.Close()
	if err != nil {
		fatal(err)
	}
}

// replayGame re-applies a stored game and prints the board it reaches. The
// board and a summary are printed even when a move is rejected.
func replayGame(w io.Writer, store *storage.Store, id string, width int) error {
	rec, err := store.GameByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("no game with ID %q", id)
	}

	setup, err := setups.Get(rec.SetupID)
	if err != nil {
		return fmt.Errorf("game %s: %w", rec.ID, err)
	}
	records, err := store.Moves(rec.ID)
	if err != nil {
		return err
	}
	moves := make([]hexchess.Move, len(records))
	for i, r := range records {
		moves[i] = r.Move()
	}

	g, err := game.New(game.Options{Setup: setup})
	if err != nil {
		return err
	}
	applied, replayErr := game.Replay(g.Board(), moves)

	screen := core.NewScreen(width, 3+4*setup.Radius)
	g.Render(screen)
	fmt.Fprintln(w, screen.String())
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Game %s · %s · %d of %d moves applied\n", rec.ID, rec.Status, applied, len(moves))

	if errors.Is(replayErr, game.ErrReplayRejected) {
		return fmt.Errorf("stored game diverges from the rules: %w", replayErr)
	}
	return replayErr
}
