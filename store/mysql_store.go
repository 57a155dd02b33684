package store

import (
	_ "github.com/go-sql-driver/mysql"
)

// mysqlDriver is the corpus-store backend for teams already running a
// shared MySQL instance for other tooling.
type mysqlDriver struct{}

func (mysqlDriver) Name() string { return "mysql" }

func (mysqlDriver) Open(dsn string) (Store, error) {
	d, err := ParseDSN(dsn)
	if err != nil {
		return nil, err
	}
	return openSQLStore("mysql", "mysql", buildMySQLDSN(d), false)
}

func init() { RegisterDriver("mysql", mysqlDriver{}) }
