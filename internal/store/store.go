// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/mindgym/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// SnapshotKey is the fixed key the stats snapshot lives under.
const SnapshotKey = "mindgym_v1"

// Store wraps SQLite access for the stats snapshot and session log.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS snapshots (
			key TEXT PRIMARY KEY,
			data TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY,
			game TEXT NOT NULL,
			score INTEGER NOT NULL,
			ended_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_ended_at ON sessions(ended_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// GetSnapshot returns the raw snapshot payload for a key, or ("", false)
// when no snapshot has been saved yet.
func (s *Store) GetSnapshot(ctx context.Context, key string) (string, bool, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM snapshots WHERE key = ?`, key).Scan(&data)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return data, true, nil
}

// SetSnapshot overwrites the snapshot payload for a key wholesale.
func (s *Store) SetSnapshot(ctx context.Context, key, data string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO snapshots (key, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		key, data, time.Now().Format(time.RFC3339Nano))
	return err
}

// InsertSession appends a completed session to the log.
func (s *Store) InsertSession(ctx context.Context, game model.GameKey, score int, endedAt time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (game, score, ended_at) VALUES (?, ?, ?)`,
		string(game), score, endedAt.Format(time.RFC3339Nano))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListSessions returns logged sessions, oldest first, optionally filtered
// by game and limited to the most recent N.
func (s *Store) ListSessions(ctx context.Context, game model.GameKey, last int) ([]model.SessionRecord, error) {
	query := `SELECT id, game, score, ended_at FROM sessions
		WHERE (? = '' OR game = ?)
		ORDER BY ended_at ASC`
	rows, err := s.db.QueryContext(ctx, query, string(game), string(game))
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var records []model.SessionRecord
	for rows.Next() {
		var rec model.SessionRecord
		var game, endedAt string
		if err := rows.Scan(&rec.ID, &game, &rec.Score, &endedAt); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, endedAt)
		if err != nil {
			return nil, err
		}
		rec.Game = model.GameKey(game)
		rec.EndedAt = parsed
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if last > 0 && len(records) > last {
		records = records[len(records)-last:]
	}
	return records, nil
}
