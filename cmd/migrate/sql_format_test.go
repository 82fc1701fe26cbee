package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readMigrations(t *testing.T) map[string]string {
	t.Helper()
	dir := repoMigrationsDir(t)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	files := make(map[string]string)
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		b, err := os.ReadFile(filepath.Join(dir, e.Name()))
		require.NoError(t, err)
		files[e.Name()] = string(b)
	}
	return files
}

func TestSQLMigrations_HaveGooseDirectives(t *testing.T) {
	for name, sql := range readMigrations(t) {
		assert.Contains(t, sql, "-- +goose Up", name)
		assert.Contains(t, sql, "-- +goose Down", name)
	}
}

func TestSQLMigrations_CreateAppTables(t *testing.T) {
	var all strings.Builder
	for _, sql := range readMigrations(t) {
		all.WriteString(sql)
	}
	for _, table := range []string{"family_members", "read_stamps"} {
		assert.Contains(t, all.String(), "CREATE TABLE IF NOT EXISTS "+table)
	}
	assert.Contains(t, all.String(), "PRIMARY KEY (user_id, isbn, child_id)",
		"read_stamps must be keyed by (user_id, isbn, child_id)")
}
