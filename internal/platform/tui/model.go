// Package tui provides the Bubble Tea integration for hex chess: the board
// model, the setup picker, the history browser and the SSH server.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hexchess/internal/core"
	"github.com/vovakirdan/tui-hexchess/internal/game"
	"github.com/vovakirdan/tui-hexchess/internal/setups"
)

// PlayConfig holds the options shared by every game a platform starts.
type PlayConfig struct {
	Source     string // "tui" or "ssh"
	AutoFlip   bool
	ShowCoords bool
	Recorder   game.Recorder // nil disables recording
}

// NewGame creates a game for the given setup ID.
func (p PlayConfig) NewGame(setupID string) (*game.Game, error) {
	s, err := setups.Get(setupID)
	if err != nil {
		return nil, err
	}
	return game.New(game.Options{
		Setup:      s,
		Source:     p.Source,
		AutoFlip:   p.AutoFlip,
		ShowCoords: p.ShowCoords,
		Recorder:   p.Recorder,
	})
}

// GameModel is the Bubble Tea model for one board.
type GameModel struct {
	game       *game.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	standalone bool // Esc quits instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for g sized to cfg.
func NewGameModel(g *game.Game, cfg core.RuntimeConfig, standalone bool) GameModel {
	h := help.New()
	h.Width = cfg.ScreenW
	m := GameModel{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       h,
		standalone: standalone,
	}
	m.layout()
	return m
}

// layout sizes the board area to the terminal minus the help bar.
func (m *GameModel) layout() {
	boardH := m.config.ScreenH - lipgloss.Height(m.helpView())
	if boardH < 1 {
		boardH = 1
	}
	m.screen.Resize(m.config.ScreenW, boardH)
	m.game.SetSize(m.config.ScreenW, boardH)
}

// Init implements tea.Model.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.game.ClickAt(msg.X, msg.Y)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "?":
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.game.Close()
		return m, tea.Quit
	}
	if action == core.ActionBack {
		m.game.Close()
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil
	}
	if action != core.ActionNone {
		m.game.Step(action)
	}
	return m, nil
}

// saveScreenshot saves the current board to a text file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".hexchess", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

func (m GameModel) helpView() string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Render(m.help.View(m.keyMapper.Keys()))
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.helpView()
}

// Game returns the game driven by the model.
func (m GameModel) Game() *game.Game {
	return m.game
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one game in the local terminal until the user quits.
func Run(g *game.Game, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewGameModel(g, cfg, true),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	g.Close()
	return err
}
