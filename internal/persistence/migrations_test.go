package persistence

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestListMigrations(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"002_indexes.sql", "001_init.sql", "README.md", ".keep"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("-- x"), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "archive"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, err := listMigrations(dir)
	if err != nil {
		t.Fatalf("listMigrations returned error: %v", err)
	}

	want := []string{"001_init.sql", "002_indexes.sql"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestListMigrations_MissingDir(t *testing.T) {
	if _, err := listMigrations(filepath.Join(t.TempDir(), "no-existe")); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}
