package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hexchess/internal/storage"
)

// History layout constants
const (
	minWidthForMoves = 96  // Minimum width to show the move list beside the table
	movesPaneWidth   = 24  // Width of the move list pane
	maxGames         = 100 // Max games to load
)

// HistoryKeyMap defines the key bindings for the history browser.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Reload key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Reload, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open, k.Reload},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "show moves"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for browsing recorded games.
type HistoryModel struct {
	store     *storage.Store
	games     []storage.GameRecord
	moves     []storage.MoveRecord
	movesFor  string // ID of the game whose moves are shown
	loadErr   error
	table     table.Model
	help      help.Model
	keys      HistoryKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
	sideMoves bool // Whether the move list fits beside the table
}

// NewHistoryModel creates a new history model.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	h := help.New()
	h.Width = width

	m := HistoryModel{
		store:     store,
		keys:      DefaultHistoryKeyMap(),
		help:      h,
		width:     width,
		height:    height,
		sideMoves: width >= minWidthForMoves,
	}
	m.table = m.createTable()
	m.loadGames()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Started", Width: 14},
		{Title: "Setup", Width: 12},
		{Title: "From", Width: 5},
		{Title: "Moves", Width: 6},
		{Title: "Status", Width: 8},
		{Title: "Game", Width: 10},
	}

	tableHeight := m.height - 8 // Leave room for header, help, and margins
	if !m.sideMoves && m.movesFor != "" {
		tableHeight /= 2
	}
	if tableHeight < 3 {
		tableHeight = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadGames reads the most recent games from the store.
func (m *HistoryModel) loadGames() {
	m.games, m.loadErr = nil, nil
	if m.store != nil {
		m.games, m.loadErr = m.store.RecentGames(maxGames)
	}
	m.updateTableRows()
}

// loadMoves reads the moves of the game under the table cursor.
func (m *HistoryModel) loadMoves() {
	i := m.table.Cursor()
	if m.store == nil || i < 0 || i >= len(m.games) {
		return
	}
	id := m.games[i].ID
	moves, err := m.store.Moves(id)
	if err != nil {
		m.loadErr = err
		return
	}
	m.moves, m.movesFor = moves, id
}

// updateTableRows updates the table with the loaded games.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.games))
	for i, g := range m.games {
		rows[i] = table.Row{
			g.StartedAt.Local().Format("Jan 02 15:04"),
			g.SetupID,
			g.Source,
			fmt.Sprintf("%d", g.MoveCount),
			g.Status,
			shortID(g.ID),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history browser.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			if m.movesFor != "" {
				m.moves, m.movesFor = nil, ""
				m.table = m.resized()
				return m, nil
			}
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Open):
			m.loadMoves()
			m.table = m.resized()
			return m, nil

		case key.Matches(msg, m.keys.Reload):
			m.moves, m.movesFor = nil, ""
			m.loadGames()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.sideMoves = m.width >= minWidthForMoves
		m.help.Width = msg.Width
		m.table = m.resized()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// resized rebuilds the table for the current size, keeping rows and cursor.
func (m HistoryModel) resized() table.Model {
	cursor := m.table.Cursor()
	t := m.createTable()
	m.table = t
	m.updateTableRows()
	m.table.SetCursor(cursor)
	return m.table
}

// View renders the history browser.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("GAME HISTORY", m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	tablePane := boxStyle.Render(m.renderTableContent())
	switch {
	case m.movesFor == "":
		b.WriteString(tablePane)
	case m.sideMoves:
		movesPane := boxStyle.Width(movesPaneWidth).Render(m.renderMoves(m.height - 8))
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tablePane, "  ", movesPane))
	default:
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, tablePane, boxStyle.Render(m.renderMoves(m.height/2-6))))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.loadErr != nil:
		return emptyStyle.Render("Could not read history:\n" + m.loadErr.Error())
	case m.store == nil:
		return emptyStyle.Render("History is unavailable.\nThe game database could not be opened.")
	case len(m.games) == 0:
		return emptyStyle.Render("No games recorded yet.\nPlay a game to start your history!")
	}
	return m.table.View()
}

// renderMoves renders the move list of the opened game, newest last.
func (m HistoryModel) renderMoves(lines int) string {
	var b strings.Builder
	b.WriteString("Moves · " + shortID(m.movesFor) + "\n")
	if len(m.moves) == 0 {
		b.WriteString("(none)")
		return b.String()
	}

	if lines < 2 {
		lines = 2
	}
	start := 0
	if len(m.moves) > lines-1 {
		start = len(m.moves) - (lines - 1)
	}
	for i, mv := range m.moves[start:] {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%3d. %s", mv.Ply, mv.Move()))
	}
	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// RunHistory runs the history browser.
// Returns true if user wants to go back to menu, false if quitting.
func RunHistory(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewHistoryModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(HistoryModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
