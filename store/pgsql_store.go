package store

import (
	_ "github.com/lib/pq"
)

// pgsqlDriver is the corpus-store backend for PostgreSQL. lib/pq
// registers its database/sql driver under the name "postgres"
// regardless of the DSN scheme this package uses to look it up.
type pgsqlDriver struct{}

func (pgsqlDriver) Name() string { return "pgsql" }

func (pgsqlDriver) Open(dsn string) (Store, error) {
	d, err := ParseDSN(dsn)
	if err != nil {
		return nil, err
	}
	return openSQLStore("postgres", "pgsql", buildPgsqlDSN(d), true)
}

func init() { RegisterDriver("pgsql", pgsqlDriver{}) }
