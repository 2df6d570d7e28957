package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hexchess/internal/platform/tui"
	"github.com/vovakirdan/tui-hexchess/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryTUI   bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded games",
	Long: `Display the most recently played games from the database.

Examples:
  hexchess history
  hexchess history --limit 50
  hexchess history --tui`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of games to show")
	historyCmd.Flags().BoolVar(&flagHistoryTUI, "tui", false, "Browse interactively")
}

func runHistory(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fatal(fmt.Errorf("opening games database: %w", err))
	}
	err = showHistory(os.Stdout, store)
	store.Close()
	if err != nil {
		fatal(err)
	}
}

func showHistory(w io.Writer, store *storage.Store) error {
	if flagHistoryTUI {
		rc := terminalConfig()
		_, err := tui.RunHistory(store, rc.ScreenW, rc.ScreenH)
		return err
	}

	games, err := store.RecentGames(flagHistoryLimit)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Recent games")
	fmt.Fprintln(w)

	if len(games) == 0 {
		fmt.Fprintln(w, "No games recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'hexchess play' to start one!")
		return nil
	}

	fmt.Fprintf(w, "  %-36s  %-12s  %-4s  %5s  %-7s  %s\n", "Game", "Setup", "From", "Moves", "Status", "Last played")
	fmt.Fprintf(w, "  %-36s  %-12s  %-4s  %5s  %-7s  %s\n", "----", "-----", "----", "-----", "------", "-----------")
	for _, g := range games {
		fmt.Fprintf(w, "  %-36s  %-12s  %-4s  %5d  %-7s  %s\n",
			g.ID, g.SetupID, g.Source, g.MoveCount, g.Status,
			g.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetStats(); err == nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%d games, %d moves, %d captures\n", stats.Games, stats.Moves, stats.Captures)
	}
	return nil
}
