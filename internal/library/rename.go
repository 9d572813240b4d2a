package library

import (
	"time"

	"github.com/pezware/mirubato-tools/internal/textnorm"
)

// RenamePiece rewrites every occurrence of a piece across all entries,
// matching on the normalized (title, composer) pair so casing and
// punctuation variants of the same piece are all caught. Entries are never
// mutated in place; the returned slice holds copies of the touched entries.
// Returns the new entries and how many pieces were renamed.
func RenamePiece(entries []LogbookEntry, oldTitle, oldComposer, newTitle, newComposer string) ([]LogbookEntry, int) {
	wantTitle := textnorm.NormalizeTitle(oldTitle)
	wantComposer := textnorm.NormalizeComposer(oldComposer)

	out := make([]LogbookEntry, len(entries))
	renamed := 0
	now := time.Now()

	for i, entry := range entries {
		touched := false
		pieces := make([]Piece, len(entry.Pieces))
		for j, p := range entry.Pieces {
			if textnorm.NormalizeTitle(p.Title) == wantTitle &&
				textnorm.NormalizeComposer(p.Composer) == wantComposer {
				pieces[j] = Piece{Title: newTitle, Composer: newComposer}
				touched = true
				renamed++
				continue
			}
			pieces[j] = p
		}

		out[i] = entry
		out[i].Pieces = pieces
		if touched {
			out[i].UpdatedAt = now
		}
	}

	return out, renamed
}
