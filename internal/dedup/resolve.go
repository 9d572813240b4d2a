package dedup

import "github.com/pezware/mirubato-tools/internal/library"

// Conflict records a duplicate-resolution step that could not be applied.
// Conflicts are returned to the caller for manual review, never dropped.
type Conflict struct {
	DuplicateID string
	OriginalID  string
	Reason      string
}

// Resolve applies a reviewed duplicate list to the entries: each duplicate
// whose original is present is removed. A duplicate pointing at an original
// id that no longer exists in the collection (stale review data, partial
// imports) becomes a Conflict instead of being removed blind.
func Resolve(entries []library.LogbookEntry, duplicates []EntryDuplicate) ([]library.LogbookEntry, []Conflict) {
	present := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		present[e.ID] = struct{}{}
	}

	remove := make(map[string]struct{})
	var conflicts []Conflict
	for _, d := range duplicates {
		if _, ok := present[d.OriginalID]; !ok {
			conflicts = append(conflicts, Conflict{
				DuplicateID: d.DuplicateID,
				OriginalID:  d.OriginalID,
				Reason:      "original entry not found",
			})
			continue
		}
		if d.DuplicateID == d.OriginalID {
			// same-id duplicates cannot be told apart by id; leave them to
			// RemoveDuplicates, which works positionally
			continue
		}
		remove[d.DuplicateID] = struct{}{}
	}

	out := make([]library.LogbookEntry, 0, len(entries))
	for _, e := range entries {
		if _, ok := remove[e.ID]; ok {
			continue
		}
		out = append(out, e)
	}
	return out, conflicts
}
