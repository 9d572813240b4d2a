package library

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadReader(t *testing.T) {
	data := `{
		"version": 2,
		"exportedAt": "2026-03-14T10:00:00Z",
		"entries": [
			{
				"id": "e1",
				"timestamp": "2026-03-14T09:30:00Z",
				"duration": 1500,
				"pieces": [{"title": "Für Elise", "composer": "Beethoven"}],
				"notes": "slow practice",
				"type": "practice",
				"instrument": "piano",
				"createdAt": "2026-03-14T09:55:00Z",
				"updatedAt": "2026-03-14T09:55:00Z"
			},
			{
				"timestamp": "2026-03-14T11:00:00Z",
				"duration": 600,
				"pieces": [{"title": "Nocturne", "composer": null}],
				"createdAt": "2026-03-14T11:10:00Z",
				"updatedAt": "2026-03-14T11:10:00Z"
			}
		],
		"repertoire": [
			{
				"scoreId": "für elise-beethoven",
				"title": "Für Elise",
				"composer": "Beethoven",
				"practiceCount": 3,
				"totalPracticeTime": 3600,
				"createdAt": "2026-02-01T00:00:00Z",
				"updatedAt": "2026-03-14T09:55:00Z"
			}
		]
	}`

	export, err := LoadReader(strings.NewReader(data))
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}

	if len(export.Entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(export.Entries))
	}
	if export.Entries[0].ID != "e1" {
		t.Errorf("entry id = %q, want e1", export.Entries[0].ID)
	}
	// missing id gets repaired with a fresh one
	if export.Entries[1].ID == "" {
		t.Errorf("entry without id was not assigned one")
	}
	// null composer reads as empty string
	if export.Entries[1].Pieces[0].Composer != "" {
		t.Errorf("null composer = %q, want empty", export.Entries[1].Pieces[0].Composer)
	}
	if len(export.Repertoire) != 1 || export.Repertoire[0].PracticeCount != 3 {
		t.Errorf("repertoire not parsed: %+v", export.Repertoire)
	}
}

func TestLoadReaderRejectsMalformed(t *testing.T) {
	if _, err := LoadReader(strings.NewReader("{not json")); err == nil {
		t.Fatal("expected error for malformed export")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	export := &Export{
		Version:    2,
		ExportedAt: ts,
		Entries: []LogbookEntry{
			{
				ID:        "e1",
				Timestamp: ts,
				Duration:  1500,
				Pieces:    []Piece{{Title: "Für Elise", Composer: "Beethoven"}},
				CreatedAt: ts,
				UpdatedAt: ts,
			},
		},
	}

	path := filepath.Join(t.TempDir(), "export.json")
	if err := Save(path, export); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded.Entries) != 1 || loaded.Entries[0].ID != "e1" {
		t.Fatalf("round trip lost entries: %+v", loaded.Entries)
	}
	if !loaded.Entries[0].Timestamp.Equal(ts) {
		t.Errorf("timestamp drifted: %v", loaded.Entries[0].Timestamp)
	}
}

func TestRenamePiece(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	entries := []LogbookEntry{
		{
			ID:        "e1",
			Timestamp: ts,
			Pieces: []Piece{
				{Title: "fur elise", Composer: "beethoven"},
				{Title: "Nocturne", Composer: "Chopin"},
			},
			UpdatedAt: ts,
		},
		{
			ID:        "e2",
			Timestamp: ts,
			Pieces:    []Piece{{Title: "FUR ELISE", Composer: "Beethoven"}},
			UpdatedAt: ts,
		},
		{
			ID:        "e3",
			Timestamp: ts,
			Pieces:    []Piece{{Title: "La Campanella", Composer: "Liszt"}},
			UpdatedAt: ts,
		},
	}

	out, renamed := RenamePiece(entries, "Fur Elise", "Beethoven", "Für Elise", "Ludwig van Beethoven")

	if renamed != 2 {
		t.Fatalf("renamed = %d, want 2", renamed)
	}
	if out[0].Pieces[0].Title != "Für Elise" || out[0].Pieces[0].Composer != "Ludwig van Beethoven" {
		t.Errorf("piece not renamed: %+v", out[0].Pieces[0])
	}
	if out[0].Pieces[1].Title != "Nocturne" {
		t.Errorf("unrelated piece touched: %+v", out[0].Pieces[1])
	}
	if out[1].Pieces[0].Title != "Für Elise" {
		t.Errorf("case variant not caught: %+v", out[1].Pieces[0])
	}
	if !out[0].UpdatedAt.After(ts) {
		t.Errorf("touched entry updatedAt not bumped")
	}
	if !out[2].UpdatedAt.Equal(ts) {
		t.Errorf("untouched entry updatedAt changed")
	}
	// the input stays as it was
	if entries[0].Pieces[0].Title != "fur elise" {
		t.Errorf("input slice mutated: %+v", entries[0].Pieces[0])
	}
}
