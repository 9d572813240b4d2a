// Package match finds probable duplicate pieces by fuzzy comparison of
// normalized titles and composer names.
package match

import (
	"sort"

	"github.com/hbollon/go-edlib"

	"github.com/pezware/mirubato-tools/internal/textnorm"
)

// DefaultThreshold is the minimum overall similarity for a candidate to be
// reported.
const DefaultThreshold = 0.7

// Confidence bands surfaced in duplicate-review output.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// Candidate is one existing piece a query is compared against.
type Candidate struct {
	ScoreID  string
	Title    string
	Composer string
}

// Match is a candidate that scored at or above the threshold. Transient,
// never persisted.
type Match struct {
	ScoreID    string
	Title      string
	Composer   string
	Similarity float64
	Confidence string
}

// Similarity computes normalized Levenshtein similarity between two strings:
// (maxLen - distance) / maxLen over runes, 1.0 when both are empty.
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}

	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}

	distance := edlib.LevenshteinDistance(a, b)
	return float64(maxLen-distance) / float64(maxLen)
}

// PieceSimilarity scores two (title, composer) pairs. The title dominates at
// 70%: composer mismatches are more often missing data than disagreement.
// When exactly one composer is empty the composer score is fixed at 0.3
// instead of an edit distance against nothing; when both are empty it is 1.0.
func PieceSimilarity(title1, composer1, title2, composer2 string) float64 {
	t1 := textnorm.NormalizeTitle(title1)
	t2 := textnorm.NormalizeTitle(title2)
	c1 := textnorm.NormalizeComposer(composer1)
	c2 := textnorm.NormalizeComposer(composer2)

	titleSim := Similarity(t1, t2)

	var composerSim float64
	switch {
	case c1 == "" && c2 == "":
		composerSim = 1.0
	case c1 == "" || c2 == "":
		composerSim = 0.3
	default:
		composerSim = Similarity(c1, c2)
	}

	return 0.7*titleSim + 0.3*composerSim
}

func confidenceFor(similarity float64) string {
	switch {
	case similarity >= 0.95:
		return ConfidenceHigh
	case similarity >= 0.85:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// FindSimilarPieces returns the candidates whose overall similarity to the
// query reaches the threshold, sorted by descending similarity. A threshold
// of zero or less selects DefaultThreshold. Tie order among equal scores is
// not part of the contract.
func FindSimilarPieces(title, composer string, candidates []Candidate, threshold float64) []Match {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	matches := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		sim := PieceSimilarity(title, composer, c.Title, c.Composer)
		if sim < threshold {
			continue
		}
		matches = append(matches, Match{
			ScoreID:    c.ScoreID,
			Title:      c.Title,
			Composer:   c.Composer,
			Similarity: sim,
			Confidence: confidenceFor(sim),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	return matches
}
