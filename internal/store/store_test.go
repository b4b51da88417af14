package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"calckit/internal/domain"
	"calckit/internal/store"
)

// setupSQLite opens a fresh database in a temp dir and closes it on cleanup.
func setupSQLite(t *testing.T) *store.SQLite {
	t.Helper()
	db, err := store.OpenSQLite(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// stores returns every HistoryStore implementation under test.
func stores(t *testing.T) map[string]domain.HistoryStore {
	t.Helper()
	return map[string]domain.HistoryStore{
		"sqlite": setupSQLite(t),
		"memory": store.NewMemory(),
	}
}

func entry(slug string, at time.Time, kv ...string) domain.HistoryEntry {
	in := domain.Inputs{}
	for i := 0; i+1 < len(kv); i += 2 {
		in[kv[i]] = kv[i+1]
	}
	return domain.HistoryEntry{Slug: domain.Slug(slug), Inputs: in, Summary: slug + " result", CreatedAt: at}
}

func TestHistoryStore_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			saved, err := s.SaveEntry(ctx, entry("bmi", at, "weight", "70", "height", "175"))
			if err != nil {
				t.Fatalf("SaveEntry: %v", err)
			}
			if saved.ID.String() == "00000000-0000-0000-0000-000000000000" {
				t.Fatal("expected an id to be assigned")
			}
			if saved.Fingerprint == "" {
				t.Fatal("expected a fingerprint to be assigned")
			}

			got, ok, err := s.GetEntry(ctx, saved.ID)
			if err != nil || !ok {
				t.Fatalf("GetEntry: ok=%v err=%v", ok, err)
			}
			if got.Slug != "bmi" || got.Inputs["weight"] != "70" || got.Summary != "bmi result" {
				t.Fatalf("wanted: %+v\ngot: %+v", saved, got)
			}
			if !got.CreatedAt.Equal(at) {
				t.Fatalf("wanted: %v\ngot: %v", at, got.CreatedAt)
			}
		})
	}
}

func TestHistoryStore_DeduplicatesByFingerprint(t *testing.T) {
	ctx := context.Background()
	first := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	later := first.Add(time.Hour)

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			a, err := s.SaveEntry(ctx, entry("tip", first, "bill", "50", "percent", "15"))
			if err != nil {
				t.Fatalf("SaveEntry: %v", err)
			}
			// Same inputs with padding and in a different order.
			again := entry("tip", later, "percent", " 15 ", "bill", "50")
			b, err := s.SaveEntry(ctx, again)
			if err != nil {
				t.Fatalf("SaveEntry: %v", err)
			}
			if a.ID != b.ID {
				t.Fatalf("should refresh the existing entry\nwanted: %s\ngot: %s", a.ID, b.ID)
			}
			if !b.CreatedAt.Equal(later) {
				t.Fatalf("should move the entry to the top\nwanted: %v\ngot: %v", later, b.CreatedAt)
			}

			list, err := s.ListEntries(ctx, domain.HistoryFilter{})
			if err != nil {
				t.Fatalf("ListEntries: %v", err)
			}
			if len(list) != 1 {
				t.Fatalf("wanted: 1 entry\ngot: %d", len(list))
			}
		})
	}
}

func TestHistoryStore_ListNewestFirstWithFilter(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			for i, slug := range []string{"tip", "bmi", "tip", "tip"} {
				e := entry(slug, base.Add(time.Duration(i)*time.Minute), "n", string(rune('a'+i)))
				if _, err := s.SaveEntry(ctx, e); err != nil {
					t.Fatalf("SaveEntry: %v", err)
				}
			}

			all, err := s.ListEntries(ctx, domain.HistoryFilter{})
			if err != nil {
				t.Fatalf("ListEntries: %v", err)
			}
			if len(all) != 4 {
				t.Fatalf("wanted: 4 entries\ngot: %d", len(all))
			}
			for i := 1; i < len(all); i++ {
				if all[i].CreatedAt.After(all[i-1].CreatedAt) {
					t.Fatalf("entries not newest first at %d", i)
				}
			}

			tips, err := s.ListEntries(ctx, domain.HistoryFilter{Slug: "tip", Limit: 2})
			if err != nil {
				t.Fatalf("ListEntries: %v", err)
			}
			if len(tips) != 2 {
				t.Fatalf("wanted: 2 entries\ngot: %d", len(tips))
			}
			if tips[0].Inputs["n"] != "d" || tips[1].Inputs["n"] != "c" {
				t.Fatalf("wanted: d, c\ngot: %s, %s", tips[0].Inputs["n"], tips[1].Inputs["n"])
			}
		})
	}
}

func TestHistoryStore_DeleteAndClear(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			a, _ := s.SaveEntry(ctx, entry("tip", at, "bill", "10"))
			b, _ := s.SaveEntry(ctx, entry("tip", at, "bill", "20"))

			if err := s.DeleteEntry(ctx, a.ID); err != nil {
				t.Fatalf("DeleteEntry: %v", err)
			}
			if _, ok, _ := s.GetEntry(ctx, a.ID); ok {
				t.Fatal("deleted entry still present")
			}
			if _, ok, _ := s.GetEntry(ctx, b.ID); !ok {
				t.Fatal("unrelated entry was removed")
			}
			// The fingerprint is free again after delete.
			if _, err := s.SaveEntry(ctx, entry("tip", at, "bill", "10")); err != nil {
				t.Fatalf("SaveEntry after delete: %v", err)
			}

			if err := s.ClearEntries(ctx); err != nil {
				t.Fatalf("ClearEntries: %v", err)
			}
			list, _ := s.ListEntries(ctx, domain.HistoryFilter{})
			if len(list) != 0 {
				t.Fatalf("wanted: empty history\ngot: %d entries", len(list))
			}
		})
	}
}

func TestHistoryStore_RejectsMissingSlug(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := s.SaveEntry(context.Background(), domain.HistoryEntry{}); err == nil {
				t.Fatal("expected error for entry without slug")
			}
		})
	}
}

func TestSQLite_ReopenKeepsHistory(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history.db")

	db, err := store.OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	saved, err := db.SaveEntry(ctx, entry("circle", time.Now(), "radius", "2"))
	if err != nil {
		t.Fatalf("SaveEntry: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	db, err = store.OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()
	if _, ok, err := db.GetEntry(ctx, saved.ID); err != nil || !ok {
		t.Fatalf("entry lost across reopen: ok=%v err=%v", ok, err)
	}
}

func TestExportImport_RoundTrip(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	path := filepath.Join(t.TempDir(), "history.json")

	src := store.NewMemory()
	for i, r := range []string{"1", "2", "3"} {
		if _, err := src.SaveEntry(ctx, entry("circle", base.Add(time.Duration(i)*time.Second), "radius", r)); err != nil {
			t.Fatalf("SaveEntry: %v", err)
		}
	}

	n, err := store.ExportJSON(ctx, src, path)
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	if n != 3 {
		t.Fatalf("wanted: 3 exported\ngot: %d", n)
	}

	dst := setupSQLite(t)
	n, err = store.ImportJSON(ctx, dst, path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if n != 3 {
		t.Fatalf("wanted: 3 imported\ngot: %d", n)
	}
	list, err := dst.ListEntries(ctx, domain.HistoryFilter{})
	if err != nil {
		t.Fatalf("ListEntries: %v", err)
	}
	if len(list) != 3 || list[0].Inputs["radius"] != "3" {
		t.Fatalf("unexpected imported history: %+v", list)
	}

	// Importing twice is idempotent.
	if _, err := store.ImportJSON(ctx, dst, path); err != nil {
		t.Fatalf("second ImportJSON: %v", err)
	}
	list, _ = dst.ListEntries(ctx, domain.HistoryFilter{})
	if len(list) != 3 {
		t.Fatalf("wanted: 3 entries after re-import\ngot: %d", len(list))
	}
}

func TestImportJSON_MissingFile(t *testing.T) {
	_, err := store.ImportJSON(context.Background(), store.NewMemory(), filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
