package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS code_explanations (
	id TEXT PRIMARY KEY,
	code TEXT NOT NULL,
	language TEXT NOT NULL,
	explanation TEXT NOT NULL,
	detected_language TEXT,
	response_time INTEGER,
	created_at TEXT NOT NULL
);`

// SQLiteStore persists history in a local SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create history dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// a single writer avoids SQLITE_BUSY between pooled connections
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init sqlite schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Create(ctx context.Context, rec Record) (Record, error) {
	_, err := s.db.ExecContext(ctx, `INSERT INTO code_explanations
		(id, code, language, explanation, detected_language, response_time, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.Code,
		rec.Language,
		rec.Explanation,
		rec.DetectedLanguage,
		rec.ResponseTimeMS,
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Record{}, fmt.Errorf("insert history record: %w", err)
	}
	return rec, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
