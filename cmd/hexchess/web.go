package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hexchess/internal/platform/web"
	"github.com/vovakirdan/tui-hexchess/internal/storage"
)

var flagWebAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Start the HTTP board",
	Long: `Start an HTTP server with a browser board and a JSON API.

Each browser gets its own table, kept by a cookie and dropped after
web.session_idle_minutes without requests.

API:
  GET  /api/board   - Board snapshot (tiles, polygons, pieces, turn)
  POST /api/click   - {"q":0,"r":-1}; answers {"moved":bool,"board":...}
  POST /api/flip    - Mirror the view
  POST /api/reset   - Start over from the setup
  GET  /api/setups  - Registered setups
  GET  /healthz     - Liveness

Examples:
  hexchess web
  hexchess web --addr 127.0.0.1:9000`,
	Run: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", "", "HTTP listen address (default from config)")
}

func runWeb(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	webCfg := web.Config{
		Address:     cfg.Web.Address,
		Setup:       cfg.Board.Setup,
		Layout:      cfg.HexLayout(),
		SessionIdle: cfg.Web.SessionIdle(),
		AutoFlip:    cfg.View.AutoFlip,
	}
	if flagWebAddr != "" {
		webCfg.Address = flagWebAddr
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open games database, not recording", "error", err)
		store = nil
	}

	if err := serveWeb(webCfg, store); err != nil {
		fatal(err)
	}
}

// serveWeb runs the HTTP board until an interrupt. The store, when given,
// records every game and is closed before serveWeb returns.
func serveWeb(webCfg web.Config, store *storage.Store) error {
	if store != nil {
		defer store.Close()
		webCfg.Recorder = store
	}

	srv, err := web.NewServer(webCfg)
	if err != nil {
		return err
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)
	go func() {
		<-done
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Close(ctx); err != nil {
			logger.Error("shutdown", "error", err)
		}
	}()

	return srv.Listen()
}
