// Package store is the corpus-persistence layer: it records one row
// per lex/parse run (file, duration, token/error counts, a UUID run
// ID) to a pluggable SQL backend, so batch or incremental tooling built
// on the core packages has somewhere to keep history without every
// caller reinventing a schema. It is adapted from the teacher's
// pkg/pdo driver/connection abstraction, stripped of the PHP value
// marshaling pdo.Stmt/pdo.Rows exist for — a parse run is a handful of
// scalar columns, not a general query result set.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ParseRun is one recorded lex or parse invocation.
type ParseRun struct {
	ID         uuid.UUID
	File       string
	Kind       string // "lex" or "parse"
	StartedAt  time.Time
	Duration   time.Duration
	TokenCount int
	ErrorCount int
}

// Store persists and queries ParseRun history. Implementations wrap a
// *sql.DB for one backend (sqlite/mysql/postgres).
type Store interface {
	// RecordRun inserts one completed run.
	RecordRun(ctx context.Context, run ParseRun) error

	// RunsForFile returns every recorded run for file, most recent first.
	RunsForFile(ctx context.Context, file string) ([]ParseRun, error)

	// Close releases the underlying connection.
	Close() error
}

// Driver opens a Store from a DSN. Every backend in this package
// registers itself under its scheme name in init().
type Driver interface {
	Open(dsn string) (Store, error)
	Name() string
}

// StoreError wraps a backend error with the driver name that produced
// it, mirroring the teacher's PDOError without the SQL-state field
// (that's a PDO/MySQL-ism with no equivalent across all three backends
// here).
type StoreError struct {
	Driver  string
	Message string
	Cause   error
}

func (e *StoreError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("store(%s): %s: %v", e.Driver, e.Message, e.Cause)
	}
	return fmt.Sprintf("store(%s): %s", e.Driver, e.Message)
}

func (e *StoreError) Unwrap() error { return e.Cause }

var driverRegistry = make(map[string]Driver)

// RegisterDriver makes a Driver available under name for Open to
// dispatch to. Called from each backend's init().
func RegisterDriver(name string, driver Driver) {
	driverRegistry[name] = driver
}

// Open parses dsn's leading "scheme:" and opens the matching
// registered Driver. Recognized schemes: "sqlite", "mysql", "pgsql"
// (and its alias "postgres").
func Open(dsn string) (Store, error) {
	scheme, _, ok := strings.Cut(dsn, ":")
	if !ok {
		return nil, fmt.Errorf("store: invalid DSN %q: missing \"scheme:\" prefix", dsn)
	}
	if scheme == "postgres" {
		scheme = "pgsql"
	}
	driver, ok := driverRegistry[scheme]
	if !ok {
		return nil, fmt.Errorf("store: no driver registered for scheme %q", scheme)
	}
	return driver.Open(dsn)
}

// execSchema runs the CREATE TABLE IF NOT EXISTS statement once per
// Open call; all three backends pass the same shared schema DDL.
func execSchema(db *sql.DB, ddl string) error {
	_, err := db.Exec(ddl)
	return err
}
