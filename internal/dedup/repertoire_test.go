package dedup

import (
	"testing"
	"time"

	"github.com/pezware/mirubato-tools/internal/library"
)

func item(scoreID string, count, totalTime int, lastPracticed time.Time) library.RepertoireItem {
	return library.RepertoireItem{
		ScoreID:           scoreID,
		Title:             "Für Elise",
		Composer:          "Beethoven",
		PracticeCount:     count,
		TotalPracticeTime: totalTime,
		LastPracticed:     lastPracticed,
		CreatedAt:         lastPracticed.Add(-30 * 24 * time.Hour),
		UpdatedAt:         lastPracticed,
	}
}

func TestCleanupRepertoireMergesAdditively(t *testing.T) {
	a := item("für elise-beethoven", 3, 3600, day)
	a.ReferenceLinks = []string{"https://example.com/score"}
	b := item("für elise||beethoven", 5, 7200, day.Add(48*time.Hour))
	b.ReferenceLinks = []string{"https://example.com/score", "https://example.com/video"}

	cleaned, duplicates := CleanupRepertoire([]library.RepertoireItem{a, b})

	if len(cleaned) != 1 || len(duplicates) != 1 {
		t.Fatalf("got %d cleaned, %d duplicates; want 1 and 1", len(cleaned), len(duplicates))
	}

	merged := cleaned[0]
	if merged.PracticeCount != 8 {
		t.Errorf("practiceCount = %d, want 3+5=8", merged.PracticeCount)
	}
	if merged.TotalPracticeTime != 10800 {
		t.Errorf("totalPracticeTime = %d, want 3600+7200=10800", merged.TotalPracticeTime)
	}
	if !merged.LastPracticed.Equal(b.LastPracticed) {
		t.Errorf("lastPracticed = %v, want the later %v", merged.LastPracticed, b.LastPracticed)
	}
	if !merged.CreatedAt.Equal(a.CreatedAt) {
		t.Errorf("createdAt = %v, want the earlier %v", merged.CreatedAt, a.CreatedAt)
	}
	if !merged.UpdatedAt.Equal(b.UpdatedAt) {
		t.Errorf("updatedAt = %v, want the later %v", merged.UpdatedAt, b.UpdatedAt)
	}
	if len(merged.ReferenceLinks) != 2 {
		t.Errorf("referenceLinks = %v, want the deduplicated union", merged.ReferenceLinks)
	}
}

func TestCleanupRepertoireKeeperSelection(t *testing.T) {
	// b has the most practice time and wins despite being listed second.
	a := item("für elise-beethoven", 9, 3600, day)
	b := item("für elise||beethoven", 2, 9000, day.Add(time.Hour))
	b.PersonalNotes = "memorized"

	cleaned, _ := CleanupRepertoire([]library.RepertoireItem{a, b})
	if len(cleaned) != 1 {
		t.Fatalf("got %d cleaned items, want 1", len(cleaned))
	}
	if cleaned[0].PersonalNotes != "memorized" {
		t.Errorf("keeper was not the item with the most practice time")
	}
}

func TestCleanupRepertoireNormalizesKeptScoreID(t *testing.T) {
	a := item("Für Elise-Beethoven", 1, 600, day)
	b := item("für elise-beethoven", 1, 300, day)

	cleaned, _ := CleanupRepertoire([]library.RepertoireItem{a, b})
	if len(cleaned) != 1 {
		t.Fatalf("got %d cleaned items, want 1", len(cleaned))
	}
	if cleaned[0].ScoreID != "für elise-beethoven" {
		t.Errorf("scoreId = %q, want normalized form", cleaned[0].ScoreID)
	}
}

func TestCleanupRepertoireLeavesDistinctWorks(t *testing.T) {
	a := item("für elise-beethoven", 1, 600, day)
	b := item("nocturne op. 9 no. 2-chopin", 2, 1200, day)

	cleaned, duplicates := CleanupRepertoire([]library.RepertoireItem{a, b})
	if len(cleaned) != 2 || len(duplicates) != 0 {
		t.Fatalf("distinct works were merged: cleaned=%d duplicates=%d", len(cleaned), len(duplicates))
	}
}
