package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hexchess/internal/config"
	"github.com/vovakirdan/tui-hexchess/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the hex chess SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own board and setup menu. Every game is
recorded in the server's database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise uses ssh.host_key from the config (generated if missing)

Examples:
  hexchess serve                           # Listen on the configured address
  hexchess serve --ssh :2222               # Listen on port 2222
  hexchess serve --host-key ./my_host_key  # Use specific host key
  hexchess serve --db ./games.db           # Use specific database

Users can connect with:
  ssh localhost -p 2323`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH listen address (default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to SSH host key")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (default from config)")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	sshCfg := tui.SSHServerConfig{
		Address:     cfg.SSH.Address,
		HostKeyPath: config.ExpandPath(cfg.SSH.HostKey),
		DBPath:      cfg.Storage.DBPath,
		IdleTimeout: cfg.SSH.IdleTimeout(),
		Setup:       cfg.Board.Setup,
		AutoFlip:    cfg.View.AutoFlip,
		ShowCoords:  cfg.View.ShowCoords,
	}
	if flagSSHAddr != "" {
		sshCfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		sshCfg.HostKeyPath = config.ExpandPath(flagHostKey)
	}
	if flagIdleTimeout > 0 {
		sshCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	server, err := tui.NewSSHServer(sshCfg)
	if err != nil {
		fatal(err)
	}

	if err := server.ListenAndServe(); err != nil {
		fatal(err)
	}
}
