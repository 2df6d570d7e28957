package main

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hexchess/internal/game"
	"github.com/vovakirdan/tui-hexchess/internal/hexchess"
	"github.com/vovakirdan/tui-hexchess/internal/platform/web"
	"github.com/vovakirdan/tui-hexchess/internal/setups"
	"github.com/vovakirdan/tui-hexchess/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "games.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	return store
}

func TestServeWebClosesStoreOnError(t *testing.T) {
	store := openTestStore(t)

	cfg := web.DefaultConfig()
	cfg.Setup = "no-such-setup"
	cfg.Logger = log.New(io.Discard)
	if err := serveWeb(cfg, store); err == nil {
		t.Fatal("serveWeb() should fail for an unknown setup")
	}

	if _, err := store.RecentGames(1); err == nil {
		t.Error("store should be closed after serveWeb returns")
	}
}

func TestReplayGame(t *testing.T) {
	store := openTestStore(t)
	defer store.Close()

	s, err := setups.Get(setups.StandardID)
	if err != nil {
		t.Fatal(err)
	}
	g, err := game.New(game.Options{Setup: s, Source: "tui", Recorder: store})
	if err != nil {
		t.Fatalf("game.New() failed: %v", err)
	}
	g.Click(hexchess.Hex(0, -1))
	g.Click(hexchess.Hex(0, 0))
	g.Close()

	var out bytes.Buffer
	if err := replayGame(&out, store, g.ID(), 60); err != nil {
		t.Fatalf("replayGame() error = %v", err)
	}
	if !strings.Contains(out.String(), "1 of 1 moves applied") {
		t.Errorf("summary missing from output:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Black to move") {
		t.Errorf("board should show Black to move:\n%s", out.String())
	}
}

func TestReplayGameUnknownID(t *testing.T) {
	store := openTestStore(t)
	defer store.Close()

	var out bytes.Buffer
	if err := replayGame(&out, store, "missing", 60); err == nil {
		t.Error("replayGame() should fail for an unknown game")
	}
}

func TestShowHistory(t *testing.T) {
	store := openTestStore(t)
	defer store.Close()

	var out bytes.Buffer
	if err := showHistory(&out, store); err != nil {
		t.Fatalf("showHistory() error = %v", err)
	}
	if !strings.Contains(out.String(), "No games recorded yet.") {
		t.Errorf("empty history output:\n%s", out.String())
	}

	if err := store.StartGame(game.Info{ID: "g-1", SetupID: setups.StandardID, Source: "web"}); err != nil {
		t.Fatal(err)
	}
	out.Reset()
	if err := showHistory(&out, store); err != nil {
		t.Fatalf("showHistory() error = %v", err)
	}
	if !strings.Contains(out.String(), "g-1") || !strings.Contains(out.String(), "1 games") {
		t.Errorf("history output:\n%s", out.String())
	}
}
