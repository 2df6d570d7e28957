package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hexchess/internal/setups"
)

var setupsCmd = &cobra.Command{
	Use:   "setups",
	Short: "List available setups",
	Long: `Display all registered starting positions.

Setups come from the built-in set, ~/.hexchess/setups, board.setups_dir
in the config and the --setups directory.`,
	Run: runSetups,
}

var setupsExportCmd = &cobra.Command{
	Use:   "export <setup>",
	Short: "Print a setup in the YAML file format",
	Long: `Print a setup as YAML, ready to copy into ~/.hexchess/setups and edit.

Examples:
  hexchess setups export standard > ~/.hexchess/setups/mine.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runSetupsExport,
}

func init() {
	setupsCmd.AddCommand(setupsExportCmd)
}

func runSetups(_ *cobra.Command, _ []string) {
	loadConfig()

	list := setups.List()
	fmt.Println("Available setups:")
	fmt.Println()
	for _, s := range list {
		fmt.Printf("  %-14s %-24s radius %d, %d pieces\n", s.ID, s.Name, s.Radius, s.Pieces)
	}
	fmt.Println()
	fmt.Println("Play with: hexchess play --setup <id>")
}

func runSetupsExport(_ *cobra.Command, args []string) {
	loadConfig()

	s, err := setups.Get(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'hexchess setups' to see available setups.")
		os.Exit(1)
	}
	data, err := s.Encode()
	if err != nil {
		fatal(err)
	}
	os.Stdout.Write(data)
}
