package store

import (
	_ "modernc.org/sqlite"
)

// sqliteDriver is the default, dependency-free corpus-store backend:
// a single file (or a shared-cache in-memory database for tests).
type sqliteDriver struct{}

func (sqliteDriver) Name() string { return "sqlite" }

func (sqliteDriver) Open(dsn string) (Store, error) {
	d, err := ParseDSN(dsn)
	if err != nil {
		return nil, err
	}
	return openSQLStore("sqlite", "sqlite", buildSQLiteDSN(d), false)
}

func init() { RegisterDriver("sqlite", sqliteDriver{}) }
