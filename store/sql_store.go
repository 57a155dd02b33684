package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const schemaDDL = `CREATE TABLE IF NOT EXISTS parse_runs (
	id TEXT PRIMARY KEY,
	file TEXT NOT NULL,
	kind TEXT NOT NULL,
	started_at TIMESTAMP NOT NULL,
	duration_ms BIGINT NOT NULL,
	token_count INTEGER NOT NULL,
	error_count INTEGER NOT NULL
)`

// sqlStore is the shared database/sql-backed Store implementation. The
// three registered backends differ only in driver name, dialect label,
// and placeholder style — everything else is identical, so it lives
// here once rather than three times.
type sqlStore struct {
	db       *sql.DB
	dialect  string
	numbered bool // true for postgres's $1, $2, ... placeholders
}

func openSQLStore(sqlDriverName, dialect, dsn string, numbered bool) (*sqlStore, error) {
	db, err := sql.Open(sqlDriverName, dsn)
	if err != nil {
		return nil, &StoreError{Driver: dialect, Message: "open", Cause: err}
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &StoreError{Driver: dialect, Message: "ping", Cause: err}
	}
	if err := execSchema(db, schemaDDL); err != nil {
		db.Close()
		return nil, &StoreError{Driver: dialect, Message: "create schema", Cause: err}
	}
	return &sqlStore{db: db, dialect: dialect, numbered: numbered}, nil
}

func (s *sqlStore) ph(n int) string {
	if s.numbered {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

func (s *sqlStore) RecordRun(ctx context.Context, run ParseRun) error {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	query := fmt.Sprintf(
		"INSERT INTO parse_runs (id, file, kind, started_at, duration_ms, token_count, error_count) VALUES (%s, %s, %s, %s, %s, %s, %s)",
		s.ph(1), s.ph(2), s.ph(3), s.ph(4), s.ph(5), s.ph(6), s.ph(7))
	_, err := s.db.ExecContext(ctx, query,
		run.ID.String(), run.File, run.Kind, run.StartedAt, run.Duration.Milliseconds(), run.TokenCount, run.ErrorCount)
	if err != nil {
		return &StoreError{Driver: s.dialect, Message: "insert run", Cause: err}
	}
	return nil
}

func (s *sqlStore) RunsForFile(ctx context.Context, file string) ([]ParseRun, error) {
	query := fmt.Sprintf(
		"SELECT id, file, kind, started_at, duration_ms, token_count, error_count FROM parse_runs WHERE file = %s ORDER BY started_at DESC",
		s.ph(1))
	rows, err := s.db.QueryContext(ctx, query, file)
	if err != nil {
		return nil, &StoreError{Driver: s.dialect, Message: "query runs", Cause: err}
	}
	defer rows.Close()

	var out []ParseRun
	for rows.Next() {
		var run ParseRun
		var id string
		var durationMs int64
		if err := rows.Scan(&id, &run.File, &run.Kind, &run.StartedAt, &durationMs, &run.TokenCount, &run.ErrorCount); err != nil {
			return nil, &StoreError{Driver: s.dialect, Message: "scan run", Cause: err}
		}
		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, &StoreError{Driver: s.dialect, Message: "parse run id", Cause: err}
		}
		run.ID = parsed
		run.Duration = time.Duration(durationMs) * time.Millisecond
		out = append(out, run)
	}
	if err := rows.Err(); err != nil {
		return nil, &StoreError{Driver: s.dialect, Message: "iterate runs", Cause: err}
	}
	return out, nil
}

func (s *sqlStore) Close() error { return s.db.Close() }
