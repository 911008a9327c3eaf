package db

import (
	"path/filepath"
	"testing"
)

func TestOpenMemory(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	// Verify tables exist by counting rows in each one.
	for _, table := range []string{"visitors", "preferences"} {
		var count int
		err := d.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
	if d.Path() != ":memory:" {
		t.Errorf("Path() = %q, want :memory:", d.Path())
	}
}

func TestMigrateIdempotent(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	// Running migrate again should not fail.
	if err := d.migrate(); err != nil {
		t.Fatalf("second migrate() error: %v", err)
	}
}

func TestPreferencesPrimaryKey(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	if _, err := d.Exec(`INSERT INTO preferences (visitor_id, key, value) VALUES ('v1', 'theme', 'dark')`); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if _, err := d.Exec(`INSERT INTO preferences (visitor_id, key, value) VALUES ('v1', 'theme', 'light')`); err == nil {
		t.Error("expected primary key conflict for duplicate visitor/key")
	}
	if _, err := d.Exec(`INSERT INTO preferences (visitor_id, key, value) VALUES ('v2', 'theme', 'light')`); err != nil {
		t.Errorf("different visitor should be allowed: %v", err)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "folio.db")
	d, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if _, err := d.Exec(`INSERT INTO visitors (id) VALUES ('v1')`); err != nil {
		t.Fatalf("insert: %v", err)
	}
	d.Close()

	// Reopening keeps data and re-runs migrations safely.
	d, err = Open(path)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer d.Close()
	var count int
	if err := d.QueryRow(`SELECT COUNT(*) FROM visitors`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("visitors = %d, want 1", count)
	}
}
