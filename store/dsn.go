package store

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// DSN is a parsed data source name, shared by all three backends.
// Mirrors the shape of the teacher's pdo.DSN; the Driver field also
// doubles as the scheme Open dispatches on.
type DSN struct {
	Driver   string // sqlite, mysql, pgsql
	Host     string
	Port     int
	Database string
	Username string
	Password string
	Options  map[string]string
}

// ParseDSN parses a DSN of the form:
//
//	sqlite:/path/to/corpus.db
//	mysql:host=localhost;port=3306;dbname=corpus;user=root;password=secret
//	pgsql:host=localhost;port=5432;dbname=corpus;user=postgres
func ParseDSN(dsn string) (*DSN, error) {
	driver, rest, ok := strings.Cut(dsn, ":")
	if !ok {
		return nil, fmt.Errorf("invalid DSN format: %s", dsn)
	}
	if driver == "postgres" {
		driver = "pgsql"
	}

	out := &DSN{Driver: driver, Options: make(map[string]string)}

	if driver == "sqlite" {
		out.Database = rest
		return out, nil
	}

	for _, pair := range strings.Split(rest, ";") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch key {
		case "host", "hostname":
			out.Host = value
		case "port":
			port, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("invalid port: %s", value)
			}
			out.Port = port
		case "dbname", "database":
			out.Database = value
		case "user", "username":
			out.Username = value
		case "password", "pass":
			out.Password = value
		default:
			out.Options[key] = value
		}
	}

	if out.Port == 0 {
		switch driver {
		case "mysql":
			out.Port = 3306
		case "pgsql":
			out.Port = 5432
		}
	}
	return out, nil
}

// buildMySQLDSN builds the go-sql-driver/mysql DSN string: user:pass@tcp(host:port)/db?opts
func buildMySQLDSN(d *DSN) string {
	var b strings.Builder
	if d.Username != "" {
		b.WriteString(d.Username)
		if d.Password != "" {
			b.WriteString(":")
			b.WriteString(d.Password)
		}
		b.WriteString("@")
	}
	b.WriteString("tcp(")
	host := d.Host
	if host == "" {
		host = "localhost"
	}
	b.WriteString(host)
	b.WriteString(":")
	b.WriteString(strconv.Itoa(d.Port))
	b.WriteString(")/")
	b.WriteString(d.Database)
	b.WriteString("?parseTime=true")
	for key, value := range d.Options {
		b.WriteString("&")
		b.WriteString(url.QueryEscape(key))
		b.WriteString("=")
		b.WriteString(url.QueryEscape(value))
	}
	return b.String()
}

// buildPgsqlDSN builds the lib/pq DSN string: host=... port=... ...
func buildPgsqlDSN(d *DSN) string {
	params := []string{}
	host := d.Host
	if host == "" {
		host = "localhost"
	}
	params = append(params, fmt.Sprintf("host=%s", host))
	params = append(params, fmt.Sprintf("port=%d", d.Port))
	if d.Username != "" {
		params = append(params, fmt.Sprintf("user=%s", d.Username))
	}
	if d.Password != "" {
		params = append(params, fmt.Sprintf("password=%s", d.Password))
	}
	if d.Database != "" {
		params = append(params, fmt.Sprintf("dbname=%s", d.Database))
	}
	sslModeSet := false
	for key, value := range d.Options {
		params = append(params, fmt.Sprintf("%s=%s", key, value))
		if key == "sslmode" {
			sslModeSet = true
		}
	}
	if !sslModeSet {
		params = append(params, "sslmode=disable")
	}
	return strings.Join(params, " ")
}

// buildSQLiteDSN returns the modernc.org/sqlite connection string,
// defaulting an empty/":memory:" database to a shared-cache in-memory
// database so multiple pooled connections see the same data.
func buildSQLiteDSN(d *DSN) string {
	if d.Database == "" || d.Database == ":memory:" {
		return "file::memory:?mode=memory&cache=shared"
	}
	return d.Database
}
