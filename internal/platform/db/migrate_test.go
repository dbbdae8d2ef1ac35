package db

import (
	"os"
	"path/filepath"
	"testing"
)

func writeMigrations(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestLoadMigrations_SortedByVersion(t *testing.T) {
	dir := writeMigrations(t, map[string]string{
		"002_indexes.sql":      "CREATE INDEX idx_consultation_state ON consultation (state);",
		"001_consultation.sql": "CREATE TABLE consultation (id UUID PRIMARY KEY);",
	})

	m := NewMigrator(nil, dir)
	migrations, err := m.LoadMigrations()
	if err != nil {
		t.Fatalf("LoadMigrations: %v", err)
	}
	if len(migrations) != 2 {
		t.Fatalf("expected 2 migrations, got %d", len(migrations))
	}
	if migrations[0].Version != 1 || migrations[0].Name != "001_consultation.sql" {
		t.Errorf("unexpected first migration %+v", migrations[0])
	}
	if migrations[1].Version != 2 {
		t.Errorf("unexpected second migration %+v", migrations[1])
	}
	if migrations[0].SQL == "" {
		t.Error("migration SQL not loaded")
	}
}

func TestLoadMigrations_SkipsNonNumericFiles(t *testing.T) {
	dir := writeMigrations(t, map[string]string{
		"001_init.sql": "SELECT 1;",
		"notes.sql":    "SELECT 2;",
		"readme.md":    "not sql",
	})

	m := NewMigrator(nil, dir)
	migrations, err := m.LoadMigrations()
	if err != nil {
		t.Fatalf("LoadMigrations: %v", err)
	}
	if len(migrations) != 1 {
		t.Errorf("expected only the numbered sql file, got %d", len(migrations))
	}
}

func TestLoadMigrations_MissingDir(t *testing.T) {
	m := NewMigrator(nil, "/does/not/exist")
	if _, err := m.LoadMigrations(); err == nil {
		t.Error("expected error for missing directory")
	}
}
