package database

import (
	"context"
	"path/filepath"
	"testing"
)

// TestNameDB tests open, save, lookup, and refresh behavior.
func TestNameDB(t *testing.T) {
	t.Parallel()

	t.Run("open creates the database file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		db, err := Open(dir, DefaultOptions())
		if err != nil {
			t.Fatal(err)
		}
		defer db.Close()
	})

	t.Run("open without create fails on missing database", func(t *testing.T) {
		t.Parallel()

		opts := Options{CreateIfNotExists: false}
		if _, err := Open(t.TempDir(), opts); err == nil {
			t.Error("expected error for missing database")
		}
	})

	t.Run("lookup misses return not found without error", func(t *testing.T) {
		t.Parallel()

		db, err := Open(t.TempDir(), DefaultOptions())
		if err != nil {
			t.Fatal(err)
		}
		defer db.Close()

		name, ok, err := db.LookupName(context.Background(), "7018")
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			t.Errorf("expected miss, got %q", name)
		}
	})

	t.Run("saved names are looked up", func(t *testing.T) {
		t.Parallel()

		db, err := Open(t.TempDir(), DefaultOptions())
		if err != nil {
			t.Fatal(err)
		}
		defer db.Close()

		ctx := context.Background()
		if err := db.SaveName(ctx, "16509", "AMAZON-02"); err != nil {
			t.Fatal(err)
		}

		name, ok, err := db.LookupName(ctx, "16509")
		if err != nil {
			t.Fatal(err)
		}
		if !ok || name != "AMAZON-02" {
			t.Errorf("expected AMAZON-02, got %q (found=%v)", name, ok)
		}
	})

	t.Run("saving again refreshes the name", func(t *testing.T) {
		t.Parallel()

		db, err := Open(t.TempDir(), DefaultOptions())
		if err != nil {
			t.Fatal(err)
		}
		defer db.Close()

		ctx := context.Background()
		if err := db.SaveName(ctx, "174", "OLD-NAME"); err != nil {
			t.Fatal(err)
		}
		if err := db.SaveName(ctx, "174", "COGENT"); err != nil {
			t.Fatal(err)
		}

		name, ok, err := db.LookupName(ctx, "174")
		if err != nil {
			t.Fatal(err)
		}
		if !ok || name != "COGENT" {
			t.Errorf("expected refreshed name COGENT, got %q", name)
		}
	})

	t.Run("names persist across reopen", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		ctx := context.Background()

		db, err := Open(dir, DefaultOptions())
		if err != nil {
			t.Fatal(err)
		}
		if err := db.SaveName(ctx, "8075", "MICROSOFT"); err != nil {
			t.Fatal(err)
		}
		if err := db.Close(); err != nil {
			t.Fatal(err)
		}

		reopened, err := Open(dir, DefaultOptions())
		if err != nil {
			t.Fatal(err)
		}
		defer reopened.Close()

		name, ok, err := reopened.LookupName(ctx, "8075")
		if err != nil {
			t.Fatal(err)
		}
		if !ok || name != "MICROSOFT" {
			t.Errorf("expected MICROSOFT after reopen, got %q (found=%v)", name, ok)
		}

		if _, err := filepath.Glob(filepath.Join(dir, "*.db")); err != nil {
			t.Fatal(err)
		}
	})
}
