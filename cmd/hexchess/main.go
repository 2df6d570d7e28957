// hexchess is a hex chess board for the terminal, SSH and the browser.
//
// Usage:
//
//	hexchess play                - Pick a setup and play in this terminal
//	hexchess play --setup <id>   - Play a setup directly
//	hexchess serve               - Start SSH server for remote play
//	hexchess web                 - Start the HTTP board
//	hexchess setups              - List available setups
//	hexchess history             - Show recorded games
//	hexchess replay <game-id>    - Re-apply a recorded game and print the board
//
// Global flags:
//
//	--config <path>  - Config file (default: ~/.hexchess/config.yaml)
//	--db <path>      - Games database (overrides storage.db_path)
//	--setups <dir>   - Extra directory of setup files
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hexchess/internal/config"
	"github.com/vovakirdan/tui-hexchess/internal/core"
	"github.com/vovakirdan/tui-hexchess/internal/setups"
)

var (
	// Global flags
	flagConfigPath string
	flagDBPath     string
	flagSetupsDir  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hexchess",
	Short: "Hex chess - hexagonal chess in your terminal",
	Long: `hexchess is a two-player hexagonal chess board on a 91-tile hex grid.

Available commands:
  play     - Play in this terminal (mouse or keyboard)
  serve    - Start SSH server for remote play
  web      - Start the HTTP board
  setups   - List starting positions
  history  - Show recorded games
  replay   - Re-apply a recorded game

Examples:
  hexchess play
  hexchess play --setup skirmish
  hexchess serve --ssh :2323
  hexchess web --addr :8080
  hexchess replay 3f1c2a9e-...`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to games database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagSetupsDir, "setups", "", "Extra directory of setup files")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(setupsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(replayCmd)
}

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "hexchess"})

// loadConfig loads the configuration, applies global flag overrides and
// registers setup files. Errors are fatal: a broken setup file must not
// silently drop pieces.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		fatal(err)
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}

	dirs := []string{setups.DefaultDir(), config.ExpandPath(cfg.Board.SetupsDir), config.ExpandPath(flagSetupsDir)}
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		n, err := setups.NewLoader(dir).RegisterAll()
		if err != nil {
			fatal(fmt.Errorf("setups in %s: %w", dir, err))
		}
		if n > 0 {
			logger.Debug("registered setups", "dir", dir, "count", n)
		}
	}
	return cfg
}

// terminalConfig returns the size of the controlling terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
