package history

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
)

const postgresSchema = `
create table if not exists code_explanations (
  id                uuid primary key,
  code              text not null,
  language          text not null,
  explanation       text not null,
  detected_language text,
  response_time     integer,
  created_at        timestamptz not null default now()
)`

// PostgresStore writes history into the code_explanations table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	if _, err := db.ExecContext(ctx, postgresSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init postgres schema: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (p *PostgresStore) Create(ctx context.Context, rec Record) (Record, error) {
	const q = `
insert into code_explanations (
  id, code, language, explanation, detected_language, response_time, created_at
) values ($1,$2,$3,$4,$5,$6,$7)
returning created_at`
	row := p.db.QueryRowContext(ctx, q,
		rec.ID, rec.Code, rec.Language, rec.Explanation,
		rec.DetectedLanguage, rec.ResponseTimeMS, rec.CreatedAt,
	)
	if err := row.Scan(&rec.CreatedAt); err != nil {
		return Record{}, fmt.Errorf("insert history record: %w", err)
	}
	return rec, nil
}

func (p *PostgresStore) Close() error {
	return p.db.Close()
}
