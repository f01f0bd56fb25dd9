// Package storage provides SQLite-based persistence for session statistics.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultDBPath is where the CLI keeps its database unless --db is given.
const DefaultDBPath = "~/.jezzball/stats.db"

// ErrNoSessions is returned when a query needs at least one stored session.
var ErrNoSessions = errors.New("storage: no sessions recorded")

// Store manages the SQLite database connection for session statistics.
type Store struct {
	db *sql.DB
}

// Session is the outcome of one play session.
type Session struct {
	Seq       int64  // Insertion order
	ID        string // UUID assigned on save
	GameID    string
	Ticks     uint64 // Simulation ticks played
	Completed int    // Barriers that reached a boundary
	Destroyed int    // Barriers broken by the ball
	CreatedAt time.Time
}

// Totals aggregates all sessions of a game.
type Totals struct {
	Sessions  int
	Ticks     uint64
	Completed int
	Destroyed int
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
		CREATE TABLE IF NOT EXISTS sessions (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			barriers_completed INTEGER NOT NULL DEFAULT 0,
			barriers_destroyed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_game_id ON sessions(game_id);
		CREATE INDEX IF NOT EXISTS idx_sessions_best ON sessions(game_id, barriers_completed DESC, ticks DESC);
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

// SaveSession records a finished session and returns its assigned ID.
func (s *Store) SaveSession(sess Session) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO sessions (session_id, game_id, ticks, barriers_completed, barriers_destroyed)
		 VALUES (?, ?, ?, ?, ?)`,
		id, sess.GameID, int64(sess.Ticks), sess.Completed, sess.Destroyed, //#nosec G115 -- tick counts fit in int64
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save session: %w", err)
	}
	return id, nil
}

const sessionColumns = `seq, session_id, game_id, ticks, barriers_completed, barriers_destroyed, created_at`

// RecentSessions returns the latest sessions for a game, newest first.
func (s *Store) RecentSessions(gameID string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+sessionColumns+`
		 FROM sessions
		 WHERE game_id = ?
		 ORDER BY seq DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// BestSession returns the session with the most completed barriers,
// preferring longer sessions on ties. Returns ErrNoSessions if none exist.
func (s *Store) BestSession(gameID string) (Session, error) {
	row := s.db.QueryRow(
		`SELECT `+sessionColumns+`
		 FROM sessions
		 WHERE game_id = ?
		 ORDER BY barriers_completed DESC, ticks DESC, seq ASC
		 LIMIT 1`,
		gameID,
	)

	sess, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, ErrNoSessions
	}
	return sess, err
}

// Totals sums every session of a game.
func (s *Store) Totals(gameID string) (Totals, error) {
	var t Totals
	var ticks int64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(ticks), 0),
		        COALESCE(SUM(barriers_completed), 0), COALESCE(SUM(barriers_destroyed), 0)
		 FROM sessions WHERE game_id = ?`,
		gameID,
	).Scan(&t.Sessions, &ticks, &t.Completed, &t.Destroyed)
	if err != nil {
		return Totals{}, fmt.Errorf("storage: cannot query totals: %w", err)
	}
	t.Ticks = uint64(ticks) //#nosec G115 -- sums of non-negative values
	return t, nil
}

// ClearSessions deletes all sessions for the given game.
func (s *Store) ClearSessions(gameID string) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(r rowScanner) (Session, error) {
	var sess Session
	var ticks int64
	var createdAt any
	err := r.Scan(&sess.Seq, &sess.ID, &sess.GameID, &ticks, &sess.Completed, &sess.Destroyed, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return sess, err
	}
	if err != nil {
		return sess, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	sess.Ticks = uint64(ticks) //#nosec G115 -- stored from uint64

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		sess.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			sess.CreatedAt = parsed
		}
	}
	return sess, nil
}
