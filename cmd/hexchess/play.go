package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hexchess/internal/config"
	"github.com/vovakirdan/tui-hexchess/internal/platform/tui"
	"github.com/vovakirdan/tui-hexchess/internal/setups"
	"github.com/vovakirdan/tui-hexchess/internal/storage"
)

var (
	flagPlaySetup string
	flagNoFlip    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play hex chess in this terminal",
	Long: `Start a hot-seat game in this terminal.

Without --setup a menu lists every registered setup; after a game you
return to the menu. Tab in the menu opens the game history.

Controls:
  Mouse click        - Select a piece / move it
  Arrows, WASD       - Move the cursor (y/u/b/n for diagonals)
  Enter/Space        - Select or move at the cursor
  F                  - Flip the board
  R                  - Restart
  ?                  - Toggle full help
  Ctrl+S             - Save a text screenshot
  Esc                - Back to menu
  Q/Ctrl+C           - Quit

Examples:
  hexchess play
  hexchess play --setup skirmish
  hexchess play --no-flip`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlaySetup, "setup", "", "Setup ID to play directly")
	playCmd.Flags().BoolVar(&flagNoFlip, "no-flip", false, "Do not flip the board after each move")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	if flagPlaySetup != "" && !setups.Exists(flagPlaySetup) {
		fmt.Fprintf(os.Stderr, "Error: unknown setup %q\n", flagPlaySetup)
		fmt.Fprintln(os.Stderr, "Run 'hexchess setups' to see available setups.")
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open games database, not recording", "error", err)
		store = nil
	}

	play := playConfig(cfg, store, "tui")
	if flagPlaySetup != "" {
		err = playOne(play, flagPlaySetup)
	} else {
		err = playMenu(play, cfg.Board.Setup, store)
	}

	if store != nil {
		store.Close()
	}
	if err != nil {
		fatal(err)
	}
}

func playConfig(cfg config.Config, store *storage.Store, source string) tui.PlayConfig {
	p := tui.PlayConfig{
		Source:     source,
		AutoFlip:   cfg.View.AutoFlip && !flagNoFlip,
		ShowCoords: cfg.View.ShowCoords,
	}
	if store != nil {
		p.Recorder = store
	}
	return p
}

func playOne(play tui.PlayConfig, setupID string) error {
	g, err := play.NewGame(setupID)
	if err != nil {
		return err
	}
	if err := tui.Run(g, terminalConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	if recErr := g.RecorderErr(); recErr != nil {
		logger.Warn("game was not fully recorded", "error", recErr)
	}
	return nil
}

func playMenu(play tui.PlayConfig, initial string, store *storage.Store) error {
	rc := terminalConfig()
	for {
		res, err := tui.RunMenu(rc, initial)
		if err != nil {
			return err
		}
		rc = res.Config

		switch {
		case res.Quit:
			return nil
		case res.WantsHistory:
			goBack, err := tui.RunHistory(store, rc.ScreenW, rc.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		initial = res.SetupID
		g, err := play.NewGame(res.SetupID)
		if err != nil {
			logger.Error("cannot start game", "setup", res.SetupID, "error", err)
			continue
		}
		if err := tui.Run(g, rc); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
	}
}
