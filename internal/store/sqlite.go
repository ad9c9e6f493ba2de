package store

import (
	"context"
	"database/sql"
	"encoding/json"

	"jot-cli/internal/model"

	_ "modernc.org/sqlite"
)

// The whole collection persists as one serialized value under a single key.
// There is no schema versioning and no partial write: every save is a full
// overwrite of that value.
const notesKey = "notes"

func (s Store) openSQLite(ctx context.Context) (*sql.DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.sqlitePath())
	if err != nil {
		return nil, err
	}
	// WAL + busy_timeout so a CLI invocation alongside an open TUI doesn't
	// hit "database is locked".
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS state (
		k TEXT PRIMARY KEY,
		v TEXT NOT NULL
	);`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Load reads the stored collection. Any failure (unreadable db, missing
// key, malformed JSON, a value that isn't an array) degrades to an empty
// collection: the editor must come up even when stored state is corrupt.
// Bootstrap then supplies the first blank note.
func (s Store) Load(ctx context.Context) []model.Note {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil
	}
	defer db.Close()

	var raw string
	if err := db.QueryRowContext(ctx, `SELECT v FROM state WHERE k = ?`, notesKey).Scan(&raw); err != nil {
		return nil
	}
	var notes []model.Note
	if err := json.Unmarshal([]byte(raw), &notes); err != nil {
		return nil
	}
	return notes
}

// Save serializes the full collection and overwrites the stored value.
func (s Store) Save(ctx context.Context, notes []model.Note) error {
	if notes == nil {
		notes = []model.Note{}
	}
	raw, err := json.Marshal(notes)
	if err != nil {
		return err
	}
	db, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.ExecContext(ctx, `INSERT OR REPLACE INTO state(k, v) VALUES(?, ?)`, notesKey, string(raw))
	return err
}

// SaveRaw overwrites the stored value with an arbitrary payload. Used by
// tests and doctor-style tooling to simulate corrupt state.
func (s Store) SaveRaw(ctx context.Context, raw string) error {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.ExecContext(ctx, `INSERT OR REPLACE INTO state(k, v) VALUES(?, ?)`, notesKey, raw)
	return err
}
