package main

import (
	"path/filepath"
	"testing"
)

func openTestDatabase(t *testing.T) {
	t.Helper()
	if err := initDatabase(filepath.Join(t.TempDir(), "harmony.db")); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
		db = nil
	})
}

func TestGetRecentLookupsLimit(t *testing.T) {
	openTestDatabase(t)
	for _, c := range []string{"#000000", "#111111", "#222222", "#333333"} {
		if err := insertLookup(c, "127.0.0.1"); err != nil {
			t.Fatal(err)
		}
	}

	records, err := getRecentLookups(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 || records[0].Color != "#333333" || records[1].Color != "#222222" {
		t.Fatalf("records = %+v", records)
	}

	all, err := getRecentLookups(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 4 {
		t.Fatalf("expected every record, got %d", len(all))
	}
}

func TestGetPopularColors(t *testing.T) {
	openTestDatabase(t)
	for _, c := range []string{"#aaaaaa", "#bbbbbb", "#aaaaaa", "#cccccc", "#bbbbbb", "#aaaaaa"} {
		if err := insertLookup(c, "127.0.0.1"); err != nil {
			t.Fatal(err)
		}
	}

	counts, err := getPopularColors(2)
	if err != nil {
		t.Fatal(err)
	}
	want := []colorCount{{"#aaaaaa", 3}, {"#bbbbbb", 2}}
	if len(counts) != len(want) || counts[0] != want[0] || counts[1] != want[1] {
		t.Fatalf("counts = %+v, want %+v", counts, want)
	}
}
