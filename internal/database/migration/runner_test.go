package migration

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoad_OrdersAndFilters(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "V2__jobs.sql", "CREATE TABLE jobs (id int);")
	writeFile(t, dir, "V1__init.sql", "CREATE TABLE users (id int);")
	writeFile(t, dir, "README.md", "not a migration")

	migs, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(migs) != 2 {
		t.Fatalf("expected 2 migrations, got %d", len(migs))
	}
	if migs[0].Version != 1 || migs[1].Version != 2 {
		t.Fatalf("unexpected order %d,%d", migs[0].Version, migs[1].Version)
	}
	if migs[0].Name != "init" || migs[0].Checksum == "" {
		t.Fatalf("unexpected migration %+v", migs[0])
	}
}

func TestLoad_MissingDir(t *testing.T) {
	migs, err := Load(filepath.Join(t.TempDir(), "nope"))
	if err != nil || migs != nil {
		t.Fatalf("expected no migrations and no error, got %v %v", migs, err)
	}
}

func TestLoad_Rejects(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "V1__a.sql", "SELECT 1;")
	writeFile(t, dir, "V01__b.sql", "SELECT 2;")
	if _, err := Load(dir); err == nil {
		t.Fatalf("expected duplicate version error")
	}

	dir = t.TempDir()
	writeFile(t, dir, "V1__empty.sql", "   \n")
	if _, err := Load(dir); err == nil {
		t.Fatalf("expected empty file error")
	}
}

func TestPending(t *testing.T) {
	migs := []Migration{
		{Version: 1, Name: "init", Checksum: "aaa"},
		{Version: 2, Name: "jobs", Checksum: "bbb"},
	}

	pending, err := Pending(migs, map[int64]string{1: "aaa"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(pending) != 1 || pending[0].Version != 2 {
		t.Fatalf("unexpected pending %+v", pending)
	}

	if _, err := Pending(migs, map[int64]string{1: "changed"}); !errors.Is(err, ErrChecksumMismatch) {
		t.Fatalf("expected checksum mismatch, got %v", err)
	}
}
