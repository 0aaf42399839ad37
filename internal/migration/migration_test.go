package migration

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"001_init.sql": &fstest.MapFile{
			Data: []byte("CREATE TABLE things (id TEXT PRIMARY KEY);"),
		},
		"002_add_label.sql": &fstest.MapFile{
			Data: []byte("ALTER TABLE things ADD COLUMN label TEXT NOT NULL DEFAULT '';"),
		},
	}
}

func TestApplyMigrations(t *testing.T) {
	t.Run("applies pending migrations in order", func(t *testing.T) {
		db := newTestDB(t)
		runner := NewRunner(db, testFS())

		applied, err := runner.ApplyMigrations(nil)
		if err != nil {
			t.Fatalf("ApplyMigrations failed: %v", err)
		}
		if applied != 2 {
			t.Errorf("applied = %d, want 2", applied)
		}

		version, err := runner.CurrentVersion()
		if err != nil {
			t.Fatalf("CurrentVersion failed: %v", err)
		}
		if version != 2 {
			t.Errorf("version = %d, want 2", version)
		}

		// Both migrations took effect.
		if _, err := db.Exec("INSERT INTO things (id, label) VALUES ('a', 'b')"); err != nil {
			t.Errorf("schema incomplete: %v", err)
		}
	})

	t.Run("reapplying is a no-op", func(t *testing.T) {
		db := newTestDB(t)
		runner := NewRunner(db, testFS())

		if _, err := runner.ApplyMigrations(nil); err != nil {
			t.Fatalf("first ApplyMigrations failed: %v", err)
		}
		applied, err := runner.ApplyMigrations(nil)
		if err != nil {
			t.Fatalf("second ApplyMigrations failed: %v", err)
		}
		if applied != 0 {
			t.Errorf("applied = %d on a migrated database, want 0", applied)
		}
	})

	t.Run("failed migration leaves the previous version", func(t *testing.T) {
		db := newTestDB(t)
		fs := testFS()
		fs["003_broken.sql"] = &fstest.MapFile{Data: []byte("NOT VALID SQL")}
		runner := NewRunner(db, fs)

		applied, err := runner.ApplyMigrations(nil)
		if err == nil {
			t.Fatal("expected the broken migration to fail")
		}
		if applied != 2 {
			t.Errorf("applied = %d before failing, want 2", applied)
		}

		version, err := runner.CurrentVersion()
		if err != nil {
			t.Fatalf("CurrentVersion failed: %v", err)
		}
		if version != 2 {
			t.Errorf("version = %d after failed migration, want 2", version)
		}
	})

	t.Run("fresh database is version zero", func(t *testing.T) {
		runner := NewRunner(newTestDB(t), testFS())
		version, err := runner.CurrentVersion()
		if err != nil {
			t.Fatalf("CurrentVersion failed: %v", err)
		}
		if version != 0 {
			t.Errorf("version = %d, want 0", version)
		}
	})
}

func TestReadMigrationFiles(t *testing.T) {
	t.Run("sorted by version", func(t *testing.T) {
		fs := fstest.MapFS{
			"010_later.sql":   &fstest.MapFile{Data: []byte("-- later")},
			"002_earlier.sql": &fstest.MapFile{Data: []byte("-- earlier")},
			"README.md":       &fstest.MapFile{Data: []byte("ignored")},
		}
		runner := NewRunner(newTestDB(t), fs)

		migrations, err := runner.ReadMigrationFiles()
		if err != nil {
			t.Fatalf("ReadMigrationFiles failed: %v", err)
		}
		if len(migrations) != 2 {
			t.Fatalf("got %d migrations, want 2", len(migrations))
		}
		if migrations[0].Version != 2 || migrations[1].Version != 10 {
			t.Errorf("order: %d, %d", migrations[0].Version, migrations[1].Version)
		}
		if migrations[1].Name != "later" {
			t.Errorf("name = %q, want later", migrations[1].Name)
		}
	})

	t.Run("rejects bad filenames", func(t *testing.T) {
		for _, name := range []string{"init.sql", "abc_init.sql", "000_zero.sql"} {
			fs := fstest.MapFS{name: &fstest.MapFile{Data: []byte("--")}}
			runner := NewRunner(newTestDB(t), fs)
			if _, err := runner.ReadMigrationFiles(); err == nil {
				t.Errorf("filename %q accepted", name)
			}
		}
	})

	t.Run("rejects duplicate versions", func(t *testing.T) {
		fs := fstest.MapFS{
			"001_one.sql":     &fstest.MapFile{Data: []byte("--")},
			"001_another.sql": &fstest.MapFile{Data: []byte("--")},
		}
		runner := NewRunner(newTestDB(t), fs)
		if _, err := runner.ReadMigrationFiles(); err == nil {
			t.Error("duplicate versions accepted")
		}
	})
}

func TestValidateVersion(t *testing.T) {
	db := newTestDB(t)
	runner := NewRunner(db, testFS())

	if _, err := runner.ApplyMigrations(nil); err != nil {
		t.Fatalf("ApplyMigrations failed: %v", err)
	}
	if err := runner.ValidateVersion(); err != nil {
		t.Errorf("ValidateVersion on current schema failed: %v", err)
	}

	// Simulate a database written by a newer build.
	if _, err := db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("failed to bump version: %v", err)
	}
	if err := runner.ValidateVersion(); err == nil {
		t.Error("newer schema version accepted")
	}
}
