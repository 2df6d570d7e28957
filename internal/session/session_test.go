package session

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/tui-hexchess/internal/game"
	"github.com/vovakirdan/tui-hexchess/internal/hexchess"
	"github.com/vovakirdan/tui-hexchess/internal/setups"
)

func standardFactory(t *testing.T) Factory {
	t.Helper()
	s, err := setups.Get(setups.StandardID)
	if err != nil {
		t.Fatal(err)
	}
	return func() (*game.Game, error) {
		return game.New(game.Options{Setup: s, Source: "web"})
	}
}

func TestManagerCreateGetRemove(t *testing.T) {
	m := NewManager(DefaultManagerConfig(), standardFactory(t))
	defer m.Stop()

	tbl, err := m.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if got, ok := m.Get(tbl.ID()); !ok || got != tbl {
		t.Fatal("Get() should return the created table")
	}
	if m.Count() != 1 {
		t.Errorf("Count() = %d, expected 1", m.Count())
	}

	if err := m.Remove(tbl.ID()); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, ok := m.Get(tbl.ID()); ok {
		t.Error("removed table should be gone")
	}
	if err := m.Remove(tbl.ID()); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Remove() error = %v", err)
	}
	if err := tbl.Do(func(*game.Game) {}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Do() on closed table error = %v", err)
	}
}

func TestManagerGetOrCreate(t *testing.T) {
	m := NewManager(DefaultManagerConfig(), standardFactory(t))
	defer m.Stop()

	tbl, created, err := m.GetOrCreate("unknown")
	if err != nil || !created {
		t.Fatalf("GetOrCreate(unknown) = %v, %v", created, err)
	}
	again, created, err := m.GetOrCreate(tbl.ID())
	if err != nil || created || again != tbl {
		t.Errorf("GetOrCreate(existing) = %v, %v, %v", again, created, err)
	}
}

func TestTablesAreIndependent(t *testing.T) {
	m := NewManager(DefaultManagerConfig(), standardFactory(t))
	defer m.Stop()

	a, _ := m.Create()
	b, _ := m.Create()

	a.Do(func(g *game.Game) {
		g.Click(hexchess.Hex(0, -1))
		g.Click(hexchess.Hex(0, 0))
	})

	var turnA, turnB hexchess.Color
	a.Do(func(g *game.Game) { turnA = g.Board().Turn() })
	b.Do(func(g *game.Game) { turnB = g.Board().Turn() })
	if turnA != hexchess.Black || turnB != hexchess.White {
		t.Errorf("turns = %v, %v; tables must not share boards", turnA, turnB)
	}
}

func TestTableSerializesClicks(t *testing.T) {
	m := NewManager(DefaultManagerConfig(), standardFactory(t))
	defer m.Stop()
	tbl, _ := m.Create()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tbl.Do(func(g *game.Game) {
				if i%2 == 0 {
					g.Click(hexchess.Hex(0, -1))
				} else {
					g.Click(hexchess.Hex(2, 0))
				}
			})
		}(i)
	}
	wg.Wait()

	tbl.Do(func(g *game.Game) {
		if g.Board().Turn() != hexchess.White {
			t.Error("no sequence of these clicks can complete a move")
		}
		if g.Board().Len() != 91 {
			t.Error("board corrupted")
		}
	})
}

func TestCleanupIdle(t *testing.T) {
	m := NewManager(ManagerConfig{IdleTimeout: time.Minute, CleanupPeriod: time.Hour}, standardFactory(t))
	defer m.Stop()

	var expired []string
	m.OnExpire(func(id string) { expired = append(expired, id) })

	stale, _ := m.Create()
	fresh, _ := m.Create()

	n := m.cleanupIdle(time.Now().Add(30 * time.Second))
	if n != 0 {
		t.Fatalf("cleanupIdle() expired %d tables too early", n)
	}

	fresh.Do(func(*game.Game) {})
	fresh.mu.Lock()
	fresh.lastUsed = time.Now().Add(2 * time.Minute)
	fresh.mu.Unlock()

	n = m.cleanupIdle(time.Now().Add(2 * time.Minute))
	if n != 1 {
		t.Fatalf("cleanupIdle() expired %d tables, expected 1", n)
	}
	if len(expired) != 1 || expired[0] != stale.ID() {
		t.Errorf("expired = %v, expected [%s]", expired, stale.ID())
	}
	if _, ok := m.Get(fresh.ID()); !ok {
		t.Error("recently used table should survive")
	}
}

func TestStopClosesTables(t *testing.T) {
	m := NewManager(DefaultManagerConfig(), standardFactory(t))
	m.Start()
	tbl, _ := m.Create()

	m.Stop()
	m.Stop()

	if m.Count() != 0 {
		t.Errorf("Count() after Stop = %d", m.Count())
	}
	if err := tbl.Do(func(*game.Game) {}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Do() after Stop error = %v", err)
	}
}
