package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_DispatchesOnDSNScheme(t *testing.T) {
	s, err := Open("sqlite::memory:")
	require.NoError(t, err)
	defer s.Close()
	assert.IsType(t, &sqlStore{}, s)
}

func TestOpen_UnknownSchemeErrors(t *testing.T) {
	_, err := Open("oracle:host=localhost")
	assert.Error(t, err)
}

func TestOpen_PostgresIsAnAliasForPgsql(t *testing.T) {
	d, err := ParseDSN("postgres:host=localhost;dbname=corpus")
	require.NoError(t, err)
	assert.Equal(t, "pgsql", d.Driver)
}

func TestSQLiteStore_RecordAndQueryRuns(t *testing.T) {
	s, err := Open("sqlite::memory:")
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	run := ParseRun{
		File:       "example.c",
		Kind:       "parse",
		StartedAt:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Duration:   12 * time.Millisecond,
		TokenCount: 42,
		ErrorCount: 0,
	}
	require.NoError(t, s.RecordRun(ctx, run))

	second := run
	second.ErrorCount = 1
	second.StartedAt = run.StartedAt.Add(time.Hour)
	require.NoError(t, s.RecordRun(ctx, second))

	runs, err := s.RunsForFile(ctx, "example.c")
	require.NoError(t, err)
	require.Len(t, runs, 2)
	// most recent first
	assert.Equal(t, 1, runs[0].ErrorCount)
	assert.Equal(t, 0, runs[1].ErrorCount)
	assert.Equal(t, 42, runs[0].TokenCount)
}

func TestSQLiteStore_RunsForUnknownFileIsEmpty(t *testing.T) {
	s, err := Open("sqlite::memory:")
	require.NoError(t, err)
	defer s.Close()

	runs, err := s.RunsForFile(context.Background(), "nope.c")
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestParseDSN_SQLiteKeepsRawPath(t *testing.T) {
	d, err := ParseDSN("sqlite:/tmp/corpus.db")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/corpus.db", d.Database)
}

func TestParseDSN_MySQLDefaultsPort(t *testing.T) {
	d, err := ParseDSN("mysql:host=db.internal;dbname=corpus")
	require.NoError(t, err)
	assert.Equal(t, 3306, d.Port)
	assert.Equal(t, "db.internal", d.Host)
}
