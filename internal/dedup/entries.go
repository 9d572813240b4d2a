// Package dedup collapses duplicate logbook entries and repertoire items.
// All functions are pure transforms over caller-supplied slices; inputs are
// never mutated.
package dedup

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pezware/mirubato-tools/internal/library"
	"github.com/pezware/mirubato-tools/internal/textnorm"
)

// Duplicate-detection reasons, surfaced in review output alongside the
// confidence so the two fuzzy paths stay distinguishable.
const (
	ReasonSameID        = "same-id"
	ReasonSignature     = "content-signature"
	ReasonNearTimestamp = "near-timestamp"
)

const (
	durationBucket  = 5 * 60 // signature rounding, seconds
	timestampBucket = 120    // near-duplicate window, seconds
	durationSlack   = 30     // near-duplicate duration tolerance, seconds

	confidenceID     = 1.0
	confidenceExact  = 0.95
	confidenceNearby = 0.85
)

// EntryDuplicate marks one entry as a probable duplicate of another.
// Transient, never persisted.
type EntryDuplicate struct {
	OriginalID  string
	DuplicateID string
	Confidence  float64
	Reason      string
}

type dupPair struct {
	original   int
	duplicate  int
	confidence float64
	reason     string
}

// pieceKey returns the normalized "title-composer" form of one piece.
func pieceKey(p library.Piece) string {
	return textnorm.NormalizeTitle(p.Title) + "-" + textnorm.NormalizeComposer(p.Composer)
}

// sortedPieceKeys returns the entry's piece keys in sorted order, so piece
// list comparisons are order-independent.
func sortedPieceKeys(e library.LogbookEntry) []string {
	keys := make([]string, len(e.Pieces))
	for i, p := range e.Pieces {
		keys[i] = pieceKey(p)
	}
	sort.Strings(keys)
	return keys
}

// roundDuration rounds seconds to the nearest 5-minute bucket.
func roundDuration(seconds int) int {
	return (seconds + durationBucket/2) / durationBucket * durationBucket
}

// Signature builds the content signature of an entry: sorted piece keys, day
// key, type, instrument, and the bucketed duration. Two entries with the
// same signature describe the same session regardless of their ids.
func Signature(e library.LogbookEntry) string {
	parts := append(sortedPieceKeys(e),
		e.Timestamp.Format("2006-01-02"),
		e.Type,
		e.Instrument,
		strconv.Itoa(roundDuration(e.Duration)),
	)
	return strings.Join(parts, "|")
}

func samePieceSet(a, b library.LogbookEntry) bool {
	ka := sortedPieceKeys(a)
	kb := sortedPieceKeys(b)
	if len(ka) != len(kb) {
		return false
	}
	for i := range ka {
		if ka[i] != kb[i] {
			return false
		}
	}
	return true
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// nearSimultaneous catches double-submissions the exact signature misses
// when the duration lands in a different 5-minute bucket but the absolute
// difference is small.
func nearSimultaneous(a, b library.LogbookEntry) bool {
	if a.Timestamp.Unix()/timestampBucket != b.Timestamp.Unix()/timestampBucket {
		return false
	}
	if !samePieceSet(a, b) {
		return false
	}
	return absInt(a.Duration-b.Duration) <= durationSlack
}

// detectPairs runs the three checks pairwise. For each pair the strongest
// applicable check wins: shared id (defensive, should not occur under
// correct operation), identical content signature, near-simultaneous
// submission. The signature and timestamp paths deliberately stay separate
// checks; their confidences are shown to users in review.
func detectPairs(entries []library.LogbookEntry) []dupPair {
	sigs := make([]string, len(entries))
	for i, e := range entries {
		sigs[i] = Signature(e)
	}

	var pairs []dupPair
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			switch {
			case entries[i].ID != "" && entries[i].ID == entries[j].ID:
				pairs = append(pairs, dupPair{i, j, confidenceID, ReasonSameID})
			case sigs[i] == sigs[j]:
				pairs = append(pairs, dupPair{i, j, confidenceExact, ReasonSignature})
			case nearSimultaneous(entries[i], entries[j]):
				pairs = append(pairs, dupPair{i, j, confidenceNearby, ReasonNearTimestamp})
			}
		}
	}
	return pairs
}

// DetectDuplicates reports all probable duplicate pairs. The earlier entry
// in the slice is reported as the original.
func DetectDuplicates(entries []library.LogbookEntry) []EntryDuplicate {
	pairs := detectPairs(entries)
	dups := make([]EntryDuplicate, len(pairs))
	for i, p := range pairs {
		dups[i] = EntryDuplicate{
			OriginalID:  entries[p.original].ID,
			DuplicateID: entries[p.duplicate].ID,
			Confidence:  p.confidence,
			Reason:      p.reason,
		}
	}
	return dups
}

// completenessScore rewards populated fields so RemoveDuplicates keeps the
// richer of two duplicate records.
func completenessScore(e library.LogbookEntry) float64 {
	score := 0.0
	if len(e.Pieces) > 0 {
		score += 2.0
	}
	for _, p := range e.Pieces {
		if strings.TrimSpace(p.Title) != "" {
			score += 0.5
		}
		if strings.TrimSpace(p.Composer) != "" {
			score += 0.5
		}
	}
	if e.Duration > 0 {
		score += 1.5
	}
	if strings.TrimSpace(e.Notes) != "" {
		score += 1.0
	}
	if e.Mood != "" {
		score += 0.5
	}
	if e.Type != "" {
		score += 0.5
	}
	if e.Instrument != "" {
		score += 0.5
	}
	if e.ScoreID != "" {
		score += 0.5
	}
	return score
}

// betterKeeper reports whether a should be kept over b: higher completeness,
// then the more recently updated (falling back to createdAt).
func betterKeeper(a, b library.LogbookEntry) bool {
	sa, sb := completenessScore(a), completenessScore(b)
	if sa != sb {
		return sa > sb
	}
	ua, ub := a.UpdatedAt, b.UpdatedAt
	if ua.IsZero() {
		ua = a.CreatedAt
	}
	if ub.IsZero() {
		ub = b.CreatedAt
	}
	return ua.After(ub)
}

// RemoveDuplicates returns the entries with mutual duplicates collapsed to a
// single kept entry each. Order of surviving entries follows the input; the
// input slice is left untouched.
func RemoveDuplicates(entries []library.LogbookEntry) []library.LogbookEntry {
	pairs := detectPairs(entries)
	if len(pairs) == 0 {
		out := make([]library.LogbookEntry, len(entries))
		copy(out, entries)
		return out
	}

	// Union duplicate pairs into groups.
	parent := make([]int, len(entries))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	for _, p := range pairs {
		parent[find(p.original)] = find(p.duplicate)
	}

	keeper := make(map[int]int)
	for i := range entries {
		root := find(i)
		best, ok := keeper[root]
		if !ok || betterKeeper(entries[i], entries[best]) {
			keeper[root] = i
		}
	}

	kept := make(map[int]struct{}, len(keeper))
	for _, i := range keeper {
		kept[i] = struct{}{}
	}

	out := make([]library.LogbookEntry, 0, len(keeper))
	for i, e := range entries {
		if _, ok := kept[i]; ok {
			out = append(out, e)
		}
	}
	return out
}
