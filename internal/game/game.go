// Package game wraps a hexchess board for interactive play: a keyboard
// cursor, view orientation with optional auto-flip, terminal rendering and
// best-effort recording of every move.
//
// A Game is not safe for concurrent use; the platform confines it to one
// goroutine (a Bubble Tea program) or guards it with a mutex.
package game

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-hexchess/internal/core"
	"github.com/vovakirdan/tui-hexchess/internal/hexchess"
	"github.com/vovakirdan/tui-hexchess/internal/setups"
)

// Status values passed to Recorder.FinishGame.
const (
	StatusReset  = "reset"
	StatusClosed = "closed"
)

// Info identifies a recorded game.
type Info struct {
	ID      string
	SetupID string
	Source  string
}

// Recorder persists games as they are played.
type Recorder interface {
	StartGame(info Info) error
	RecordMove(gameID string, ply int, m hexchess.Move) error
	FinishGame(gameID, status string) error
}

// Options configures a new Game.
type Options struct {
	Setup      setups.Setup
	Source     string // where the game is played: "tui", "ssh", "web"
	AutoFlip   bool
	ShowCoords bool
	Recorder   Recorder // nil disables recording
}

// State is a summary of the game for the platform layer.
type State struct {
	ID        string
	Turn      hexchess.Color
	Ply       int
	Flipped   bool
	Cursor    hexchess.Coord
	Selected  *hexchess.Coord
	LastMove  *hexchess.Move
	Recording bool
	Message   string
}

// Result is returned by Step.
type Result struct {
	Moved bool
	State State
}

// Game is one hot-seat game on one board.
type Game struct {
	info  Info
	setup setups.Setup
	board *hexchess.Board

	cursor     hexchess.Coord
	flipped    bool
	autoFlip   bool
	showCoords bool

	recorder Recorder
	recErr   error
	message  string

	screenW, screenH int
}

// New creates a game from a setup and starts recording it.
func New(opts Options) (*Game, error) {
	b, err := opts.Setup.NewBoard()
	if err != nil {
		return nil, err
	}
	g := &Game{
		info:       Info{ID: uuid.NewString(), SetupID: opts.Setup.ID, Source: opts.Source},
		setup:      opts.Setup,
		board:      b,
		autoFlip:   opts.AutoFlip,
		showCoords: opts.ShowCoords,
		recorder:   opts.Recorder,
	}
	cfg := core.DefaultConfig()
	g.screenW, g.screenH = cfg.ScreenW, cfg.ScreenH
	g.start()
	return g, nil
}

// ID returns the current game ID. It changes on every Reset.
func (g *Game) ID() string {
	return g.info.ID
}

// Title returns a human-readable name for display.
func (g *Game) Title() string {
	return "Hex Chess · " + g.setup.Name
}

// Setup returns the setup the game was created from.
func (g *Game) Setup() setups.Setup {
	return g.setup
}

// Board exposes the underlying board for read access such as snapshots.
func (g *Game) Board() *hexchess.Board {
	return g.board
}

// Flipped reports whether the view is mirrored.
func (g *Game) Flipped() bool {
	return g.flipped
}

// Cursor returns the hex under the keyboard cursor.
func (g *Game) Cursor() hexchess.Coord {
	return g.cursor
}

// SetSize updates the terminal dimensions used for rendering and hit testing.
func (g *Game) SetSize(w, h int) {
	g.screenW, g.screenH = w, h
}

// Reset finishes the current game and starts a fresh one from the same
// setup. The view returns to its unflipped orientation.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.finish(StatusReset)
	g.board.Reset()
	g.info.ID = uuid.NewString()
	g.flipped = false
	g.message = ""
	if cfg.ScreenW > 0 && cfg.ScreenH > 0 {
		g.screenW, g.screenH = cfg.ScreenW, cfg.ScreenH
	}
	g.start()
}

// Close marks the game as finished in the recorder.
func (g *Game) Close() {
	g.finish(StatusClosed)
}

// Flip mirrors the view.
func (g *Game) Flip() {
	g.flipped = !g.flipped
}

// Click feeds a click on c to the board. It returns true when the click
// completed a move; the move is recorded and, with auto-flip enabled, the
// view flips to the side now to move.
func (g *Game) Click(c hexchess.Coord) bool {
	m, moved := g.board.HandleClickMove(c)
	if !moved {
		g.message = ""
		return false
	}
	g.message = m.String()
	g.record(m)
	if g.autoFlip {
		g.flipped = !g.flipped
	}
	return true
}

// ClickAt handles a mouse click at a screen cell. Clicks outside the board
// are treated as out-of-bounds clicks.
func (g *Game) ClickAt(x, y int) bool {
	c, ok := g.HexAt(x, y)
	if !ok {
		// Any coordinate off the board; clears a pending selection.
		return g.Click(hexchess.Hex(g.board.Radius()+1, 0))
	}
	g.cursor = c
	return g.Click(c)
}

// Step applies one platform action.
func (g *Game) Step(a core.Action) Result {
	moved := false
	switch a {
	case core.ActionConfirm:
		moved = g.Click(g.cursor)
	case core.ActionFlip:
		g.Flip()
	case core.ActionRestart:
		g.Reset(core.RuntimeConfig{})
	default:
		g.moveCursor(a)
	}
	return Result{Moved: moved, State: g.State()}
}

// State returns the current game summary.
func (g *Game) State() State {
	s := State{
		ID:        g.info.ID,
		Turn:      g.board.Turn(),
		Ply:       len(g.board.History()),
		Flipped:   g.flipped,
		Cursor:    g.cursor,
		Recording: g.recorder != nil && g.recErr == nil,
		Message:   g.message,
	}
	if c, ok := g.board.Selected(); ok {
		s.Selected = &c
	}
	if m, ok := g.board.LastMove(); ok {
		s.LastMove = &m
	}
	return s
}

// RecorderErr returns the error that disabled recording, if any.
func (g *Game) RecorderErr() error {
	return g.recErr
}

func (g *Game) start() {
	g.cursor = hexchess.Hex(0, 0)
	if !g.board.InBounds(g.cursor) {
		g.cursor = g.board.Tiles()[0].Coord
	}
	if g.recorder == nil || g.recErr != nil {
		return
	}
	if err := g.recorder.StartGame(g.info); err != nil {
		g.recErr = err
	}
}

func (g *Game) record(m hexchess.Move) {
	if g.recorder == nil || g.recErr != nil {
		return
	}
	if err := g.recorder.RecordMove(g.info.ID, len(g.board.History()), m); err != nil {
		g.recErr = err
	}
}

func (g *Game) finish(status string) {
	if g.recorder == nil || g.recErr != nil {
		return
	}
	if err := g.recorder.FinishGame(g.info.ID, status); err != nil {
		g.recErr = err
	}
}
