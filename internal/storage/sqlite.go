// Package storage provides SQLite-based persistence for played games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-hexchess/internal/game"
	"github.com/vovakirdan/tui-hexchess/internal/hexchess"
)

// Store manages the SQLite database connection for game history.
type Store struct {
	db *sql.DB
}

// GameRecord is one stored game.
type GameRecord struct {
	ID        string
	SetupID   string
	Source    string // "tui", "ssh" or "web"
	Status    string // "active", "reset" or "closed"
	MoveCount int
	StartedAt time.Time
	UpdatedAt time.Time
}

// MoveRecord is one stored move of a game.
type MoveRecord struct {
	GameID   string
	Ply      int
	From     hexchess.Coord
	To       hexchess.Coord
	Piece    hexchess.Piece
	Captured *hexchess.Piece
}

// Move converts the record back into an engine move.
func (m MoveRecord) Move() hexchess.Move {
	out := hexchess.Move{From: m.From, To: m.To, Piece: m.Piece}
	if m.Captured != nil {
		out.Captured = *m.Captured
		out.HasCapture = true
	}
	return out
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// One writer; SSH and web sessions record concurrently.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS games (
			id TEXT PRIMARY KEY,
			setup_id TEXT NOT NULL,
			source TEXT NOT NULL DEFAULT 'tui',
			status TEXT NOT NULL DEFAULT 'active',
			move_count INTEGER NOT NULL DEFAULT 0,
			started_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_updated ON games(updated_at DESC);

		CREATE TABLE IF NOT EXISTS moves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL REFERENCES games(id) ON DELETE CASCADE,
			ply INTEGER NOT NULL,
			from_q INTEGER NOT NULL,
			from_r INTEGER NOT NULL,
			to_q INTEGER NOT NULL,
			to_r INTEGER NOT NULL,
			piece TEXT NOT NULL,
			color TEXT NOT NULL,
			captured TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(game_id, ply)
		);
		CREATE INDEX IF NOT EXISTS idx_moves_game ON moves(game_id, ply);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// StartGame implements game.Recorder.
func (s *Store) StartGame(info game.Info) error {
	_, err := s.db.Exec(
		"INSERT INTO games (id, setup_id, source) VALUES (?, ?, ?)",
		info.ID, info.SetupID, info.Source,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save game: %w", err)
	}
	return nil
}

// RecordMove implements game.Recorder. Ply numbers start at 1.
func (s *Store) RecordMove(gameID string, ply int, m hexchess.Move) error {
	var captured any
	if m.HasCapture {
		captured = string(m.Captured.Letter())
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO moves (game_id, ply, from_q, from_r, to_q, to_r, piece, color, captured)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		gameID, ply, m.From.Q, m.From.R, m.To.Q, m.To.R,
		m.Piece.Kind.String(), m.Piece.Color.String(), captured,
	); err != nil {
		return fmt.Errorf("storage: cannot save move: %w", err)
	}

	if _, err := tx.Exec(
		`UPDATE games SET move_count = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		ply, gameID,
	); err != nil {
		return fmt.Errorf("storage: cannot update game: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit move: %w", err)
	}
	return nil
}

// FinishGame implements game.Recorder.
func (s *Store) FinishGame(gameID, status string) error {
	_, err := s.db.Exec(
		"UPDATE games SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		status, gameID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot finish game: %w", err)
	}
	return nil
}

// Ensure Store implements game.Recorder
var _ game.Recorder = (*Store)(nil)

// RecentGames retrieves the most recently updated games.
func (s *Store) RecentGames(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, setup_id, source, status, move_count, started_at, updated_at
		 FROM games
		 ORDER BY updated_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var games []GameRecord
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return games, nil
}

// GameByID retrieves a game. Returns nil if it does not exist.
func (s *Store) GameByID(id string) (*GameRecord, error) {
	row := s.db.QueryRow(
		`SELECT id, setup_id, source, status, move_count, started_at, updated_at
		 FROM games WHERE id = ?`,
		id,
	)
	g, err := scanGame(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// Moves returns the moves of a game in ply order.
func (s *Store) Moves(gameID string) ([]MoveRecord, error) {
	rows, err := s.db.Query(
		`SELECT game_id, ply, from_q, from_r, to_q, to_r, piece, color, captured
		 FROM moves
		 WHERE game_id = ?
		 ORDER BY ply`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		var kind, color string
		var captured sql.NullString
		if err := rows.Scan(
			&m.GameID, &m.Ply,
			&m.From.Q, &m.From.R, &m.To.Q, &m.To.R,
			&kind, &color, &captured,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		m.Piece, err = parsePiece(kind, color)
		if err != nil {
			return nil, fmt.Errorf("storage: game %s ply %d: %w", gameID, m.Ply, err)
		}
		if captured.Valid {
			p, err := parseLetter(captured.String)
			if err != nil {
				return nil, fmt.Errorf("storage: game %s ply %d: %w", gameID, m.Ply, err)
			}
			m.Captured = &p
		}
		moves = append(moves, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return moves, nil
}

// DeleteGame removes a game and its moves.
func (s *Store) DeleteGame(id string) error {
	if _, err := s.db.Exec("DELETE FROM moves WHERE game_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete moves: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM games WHERE id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete game: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics over all stored games.
type Stats struct {
	Games      int
	Moves      int
	Captures   int
	LastPlayed time.Time
}

// GetStats retrieves aggregated statistics.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(move_count), 0), MAX(updated_at) FROM games`,
	).Scan(&stats.Games, &stats.Moves, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	err = s.db.QueryRow(
		`SELECT COUNT(*) FROM moves WHERE captured IS NOT NULL`,
	).Scan(&stats.Captures)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count captures: %w", err)
	}
	return stats, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGame(row scanner) (GameRecord, error) {
	var g GameRecord
	var startedAt, updatedAt any
	err := row.Scan(&g.ID, &g.SetupID, &g.Source, &g.Status, &g.MoveCount, &startedAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return g, err
	}
	if err != nil {
		return g, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	g.StartedAt = parseTime(startedAt)
	g.UpdatedAt = parseTime(updatedAt)
	return g, nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func parsePiece(kind, color string) (hexchess.Piece, error) {
	var p hexchess.Piece
	for _, k := range hexchess.Kinds() {
		if k.String() == kind {
			c, err := hexchess.ParseColor(color)
			if err != nil {
				return p, err
			}
			return hexchess.Piece{Kind: k, Color: c}, nil
		}
	}
	return p, fmt.Errorf("%w: unknown kind %q", hexchess.ErrInvalidPieceSpec, kind)
}

// parseLetter decodes a captured piece letter: uppercase White, lowercase Black.
func parseLetter(letter string) (hexchess.Piece, error) {
	kind, err := hexchess.ParseKind(letter)
	if err != nil {
		return hexchess.Piece{}, err
	}
	color := hexchess.White
	if letter >= "a" {
		color = hexchess.Black
	}
	return hexchess.Piece{Kind: kind, Color: color}, nil
}
