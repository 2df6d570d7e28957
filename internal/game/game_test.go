package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-hexchess/internal/core"
	"github.com/vovakirdan/tui-hexchess/internal/hexchess"
	"github.com/vovakirdan/tui-hexchess/internal/setups"
)

type fakeRecorder struct {
	started  []Info
	moves    map[string][]hexchess.Move
	plies    []int
	finished map[string]string
	failOn   string
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{moves: map[string][]hexchess.Move{}, finished: map[string]string{}}
}

func (f *fakeRecorder) StartGame(info Info) error {
	if f.failOn == "start" {
		return errors.New("disk full")
	}
	f.started = append(f.started, info)
	return nil
}

func (f *fakeRecorder) RecordMove(id string, ply int, m hexchess.Move) error {
	if f.failOn == "move" {
		return errors.New("disk full")
	}
	f.moves[id] = append(f.moves[id], m)
	f.plies = append(f.plies, ply)
	return nil
}

func (f *fakeRecorder) FinishGame(id, status string) error {
	f.finished[id] = status
	return nil
}

func newGame(t *testing.T, opts Options) *Game {
	t.Helper()
	if opts.Setup.ID == "" {
		s, err := setups.Get(setups.StandardID)
		if err != nil {
			t.Fatal(err)
		}
		opts.Setup = s
	}
	g, err := New(opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return g
}

func TestClickMoveRecordsAndAutoFlips(t *testing.T) {
	rec := newFakeRecorder()
	g := newGame(t, Options{Source: "tui", AutoFlip: true, Recorder: rec})

	if len(rec.started) != 1 || rec.started[0].ID != g.ID() || rec.started[0].SetupID != "standard" {
		t.Fatalf("StartGame calls = %+v", rec.started)
	}

	if g.Click(hexchess.Hex(0, -1)) {
		t.Fatal("selecting should not move")
	}
	if g.Flipped() {
		t.Error("selection should not flip")
	}
	if !g.Click(hexchess.Hex(0, 0)) {
		t.Fatal("second click should move")
	}
	if !g.Flipped() {
		t.Error("auto-flip should flip after a move")
	}
	if got := rec.moves[g.ID()]; len(got) != 1 || got[0].To != hexchess.Hex(0, 0) {
		t.Errorf("recorded moves = %+v", got)
	}
	if rec.plies[0] != 1 {
		t.Errorf("first ply = %d, expected 1", rec.plies[0])
	}

	s := g.State()
	if s.Turn != hexchess.Black || s.Ply != 1 || s.LastMove == nil {
		t.Errorf("State() = %+v", s)
	}
}

func TestNoAutoFlip(t *testing.T) {
	g := newGame(t, Options{})
	g.Click(hexchess.Hex(0, -1))
	g.Click(hexchess.Hex(0, 0))
	if g.Flipped() {
		t.Error("view should not flip without auto-flip")
	}
	g.Flip()
	if !g.Flipped() {
		t.Error("Flip() should mirror the view")
	}
}

func TestResetStartsNewGame(t *testing.T) {
	rec := newFakeRecorder()
	g := newGame(t, Options{AutoFlip: true, Recorder: rec})
	first := g.ID()

	g.Click(hexchess.Hex(0, -1))
	g.Click(hexchess.Hex(0, 0))
	g.Step(core.ActionRestart)

	if g.ID() == first {
		t.Error("Reset should assign a new game ID")
	}
	if rec.finished[first] != StatusReset {
		t.Errorf("first game status = %q, expected reset", rec.finished[first])
	}
	if len(rec.started) != 2 {
		t.Errorf("StartGame called %d times, expected 2", len(rec.started))
	}
	if g.Flipped() {
		t.Error("Reset should clear the flip")
	}
	if g.State().Ply != 0 || g.Board().Turn() != hexchess.White {
		t.Error("Reset should restore the opening")
	}

	g.Close()
	if rec.finished[g.ID()] != StatusClosed {
		t.Errorf("closed game status = %q", rec.finished[g.ID()])
	}
}

func TestRecorderFailureDisablesRecording(t *testing.T) {
	rec := newFakeRecorder()
	rec.failOn = "move"
	g := newGame(t, Options{Recorder: rec})

	g.Click(hexchess.Hex(0, -1))
	if !g.Click(hexchess.Hex(0, 0)) {
		t.Fatal("play must continue when recording fails")
	}
	if g.RecorderErr() == nil {
		t.Error("RecorderErr() should report the failure")
	}
	if g.State().Recording {
		t.Error("State().Recording should be false")
	}
}

func TestStepConfirmUsesCursor(t *testing.T) {
	g := newGame(t, Options{})
	// Cursor starts on (0,0); walk down to the white pawn on (0,-1).
	g.Step(core.ActionDown)
	if g.Cursor() != hexchess.Hex(0, -1) {
		t.Fatalf("Cursor() = %s, expected (0,-1)", g.Cursor())
	}
	g.Step(core.ActionConfirm)
	g.Step(core.ActionUp)
	res := g.Step(core.ActionConfirm)
	if !res.Moved {
		t.Fatal("Confirm on a destination should move")
	}
	if res.State.Turn != hexchess.Black {
		t.Errorf("Turn = %v, expected black", res.State.Turn)
	}
}

func TestCursorMovement(t *testing.T) {
	tests := []struct {
		name    string
		flipped bool
		actions []core.Action
		want    hexchess.Coord
	}{
		{"up", false, []core.Action{core.ActionUp}, hexchess.Hex(0, 1)},
		{"up flipped", true, []core.Action{core.ActionUp}, hexchess.Hex(0, -1)},
		{"up right", false, []core.Action{core.ActionUpRight}, hexchess.Hex(1, 0)},
		{"down right", false, []core.Action{core.ActionDownRight}, hexchess.Hex(1, -1)},
		{"up left", false, []core.Action{core.ActionUpLeft}, hexchess.Hex(-1, 1)},
		{"down left", false, []core.Action{core.ActionDownLeft}, hexchess.Hex(-1, 0)},
		{"right zigzag", false, []core.Action{core.ActionRight, core.ActionRight}, hexchess.Hex(2, -1)},
		{"right then left", false, []core.Action{core.ActionRight, core.ActionLeft}, hexchess.Hex(0, 0)},
		{"stops at edge", false, []core.Action{
			core.ActionUp, core.ActionUp, core.ActionUp, core.ActionUp, core.ActionUp, core.ActionUp,
		}, hexchess.Hex(0, 5)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newGame(t, Options{})
			if tc.flipped {
				g.Flip()
			}
			for _, a := range tc.actions {
				g.Step(a)
			}
			if g.Cursor() != tc.want {
				t.Errorf("Cursor() = %s, expected %s", g.Cursor(), tc.want)
			}
		})
	}
}

func TestRenderAndHitTest(t *testing.T) {
	g := newGame(t, Options{ShowCoords: true})
	scr := core.NewScreen(60, 24)
	g.Render(scr)

	// Origin at column 30, row 11; the white king (1,-5) sits 4 right, 9 down.
	if got := scr.Get(34, 20); got != 'K' {
		t.Errorf("white king cell = %q, expected 'K'", got)
	}
	if got := scr.Get(34, 2); got != 'k' {
		t.Errorf("black king cell = %q, expected 'k'", got)
	}
	if scr.Get(29, 11) != '<' || scr.Get(31, 11) != '>' {
		t.Error("cursor brackets should surround (0,0)")
	}
	if !strings.Contains(scr.Row(22), "White to move") {
		t.Errorf("status row = %q", scr.Row(22))
	}

	for _, x := range []int{33, 34, 35} {
		c, ok := g.HexAt(x, 20)
		if !ok || c != hexchess.Hex(1, -5) {
			t.Errorf("HexAt(%d, 20) = %s, %v", x, c, ok)
		}
	}
	if _, ok := g.HexAt(0, 0); ok {
		t.Error("HexAt(0,0) should miss the board")
	}

	// Mouse: select the pawn at (0,-1) then click (0,0).
	g.ClickAt(30, 13)
	if !g.ClickAt(30, 11) {
		t.Error("mouse clicks should move the pawn")
	}
}

func TestRenderClampsStatusRow(t *testing.T) {
	g := newGame(t, Options{})
	scr := core.NewScreen(60, 12)
	g.Render(scr)

	if !strings.Contains(scr.Row(11), "White to move") {
		t.Errorf("status should fall back to the last row, got %q", scr.Row(11))
	}
}

func TestClickAtOffBoardClearsSelection(t *testing.T) {
	g := newGame(t, Options{})
	scr := core.NewScreen(60, 24)
	g.Render(scr)

	g.ClickAt(30, 13)
	if g.State().Selected == nil {
		t.Fatal("pawn should be selected")
	}
	g.ClickAt(0, 0)
	if g.State().Selected != nil {
		t.Error("off-board click should clear the selection")
	}
}

func TestReplay(t *testing.T) {
	g := newGame(t, Options{})
	g.Click(hexchess.Hex(0, -1))
	g.Click(hexchess.Hex(0, 0))
	g.Click(hexchess.Hex(1, 1))
	g.Click(hexchess.Hex(1, 0))
	moves := g.Board().History()

	b := hexchess.NewStandardBoard()
	n, err := Replay(b, moves)
	if err != nil || n != 2 {
		t.Fatalf("Replay() = %d, %v", n, err)
	}
	if b.Turn() != hexchess.White {
		t.Errorf("Turn() after replay = %v", b.Turn())
	}
	if p, ok := b.PieceAt(hexchess.Hex(1, 0)); !ok || p.Color != hexchess.Black {
		t.Error("black pawn should be on (1,0)")
	}

	bad := []hexchess.Move{{From: hexchess.Hex(0, -1), To: hexchess.Hex(0, 3), Piece: hexchess.Piece{Kind: hexchess.Pawn}}}
	if _, err := Replay(hexchess.NewStandardBoard(), bad); !errors.Is(err, ErrReplayRejected) {
		t.Errorf("Replay() error = %v, expected ErrReplayRejected", err)
	}
}
