// Package web serves hex chess over HTTP. Each browser gets its own table,
// identified by a cookie; the page draws the board from the JSON snapshot
// and posts clicks back.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hexchess/internal/game"
	"github.com/vovakirdan/tui-hexchess/internal/hexchess"
	"github.com/vovakirdan/tui-hexchess/internal/session"
	"github.com/vovakirdan/tui-hexchess/internal/setups"
)

const (
	cookieName             = "hexchess_table"
	maxJSONBodyBytes int64 = 1 << 16
	htmlCSP                = "default-src 'self'; script-src 'self'; style-src 'self'; img-src 'self' data:; connect-src 'self'; frame-ancestors 'none'; base-uri 'none'; form-action 'self'"
	apiCSP                 = "default-src 'none'; frame-ancestors 'none'; base-uri 'none'"
)

//go:embed static
var staticFS embed.FS

// Config holds configuration for the HTTP server.
type Config struct {
	Address     string
	Setup       string // setup every new table starts from
	Layout      hexchess.Layout
	SessionIdle time.Duration
	AutoFlip    bool
	Recorder    game.Recorder // nil disables recording
	Logger      *log.Logger   // nil uses a "hexchess-web" logger on stderr
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address:     ":8080",
		Setup:       setups.StandardID,
		Layout:      hexchess.DefaultLayout(),
		SessionIdle: time.Hour,
		AutoFlip:    true,
	}
}

// Server wires the HTTP layer to per-browser tables.
type Server struct {
	config Config
	tables *session.Manager
	logger *log.Logger

	srvMu sync.Mutex
	srv   *http.Server
}

// NewServer creates a server. The setup is resolved up front so a typo
// fails at startup rather than on the first request.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Setup == "" {
		cfg.Setup = setups.StandardID
	}
	if cfg.Layout.Size <= 0 {
		cfg.Layout = hexchess.DefaultLayout()
	}
	setup, err := setups.Get(cfg.Setup)
	if err != nil {
		return nil, fmt.Errorf("web: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "hexchess-web",
		})
	}

	factory := func() (*game.Game, error) {
		return game.New(game.Options{
			Setup:    setup,
			Source:   "web",
			AutoFlip: cfg.AutoFlip,
			Recorder: cfg.Recorder,
		})
	}

	tables := session.NewManager(session.ManagerConfig{
		IdleTimeout:   cfg.SessionIdle,
		CleanupPeriod: time.Minute,
	}, factory)
	tables.OnExpire(func(id string) {
		logger.Info("table expired", "table", id)
	})

	return &Server{
		config: cfg,
		tables: tables,
		logger: logger,
	}, nil
}

// Tables exposes the table manager.
func (s *Server) Tables() *session.Manager {
	return s.tables
}

// Listen starts the HTTP server and blocks until it is closed.
func (s *Server) Listen() error {
	srv := &http.Server{
		Addr:              s.config.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	s.srvMu.Lock()
	s.srv = srv
	s.srvMu.Unlock()
	defer func() {
		s.srvMu.Lock()
		s.srv = nil
		s.srvMu.Unlock()
	}()

	s.tables.Start()
	s.logger.Info("HTTP listening", "address", s.config.Address, "setup", s.config.Setup)
	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close gracefully shuts down the HTTP server and closes every table.
func (s *Server) Close(ctx context.Context) error {
	s.srvMu.Lock()
	srv := s.srv
	s.srvMu.Unlock()

	var err error
	if srv != nil {
		err = srv.Shutdown(ctx)
	}
	s.tables.Stop()
	return err
}

// Handler returns the routes of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	mux.HandleFunc("/", s.handleIndex(static))
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	mux.HandleFunc("/api/board", s.withJSON(s.handleBoard))
	mux.HandleFunc("/api/click", s.withJSON(s.handleClick))
	mux.HandleFunc("/api/reset", s.withJSON(s.handleReset))
	mux.HandleFunc("/api/flip", s.withJSON(s.handleFlip))
	mux.HandleFunc("/api/setups", s.withJSON(s.handleSetups))

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

func (s *Server) handleIndex(static fs.FS) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		page, err := fs.ReadFile(static, "index.html")
		if err != nil {
			http.Error(w, "page missing", http.StatusInternalServerError)
			return
		}
		applySecurityHeaders(w.Header(), htmlCSP)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(page)
	}
}

// table returns the caller's table, opening one and setting the cookie
// when the request carries no live table ID.
func (s *Server) table(w http.ResponseWriter, r *http.Request) (*session.Table, error) {
	var id string
	if c, err := r.Cookie(cookieName); err == nil {
		id = c.Value
	}

	t, created, err := s.tables.GetOrCreate(id)
	if err != nil {
		return nil, err
	}
	if created {
		s.logger.Info("table opened", "table", t.ID(), "remote", r.RemoteAddr)
		http.SetCookie(w, &http.Cookie{
			Name:     cookieName,
			Value:    t.ID(),
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return t, nil
}
