package dedup

import (
	"github.com/pezware/mirubato-tools/internal/library"
	"github.com/pezware/mirubato-tools/internal/scoreid"
)

// pickRepertoireKeeper chooses the group member to keep: most total practice
// time, then practice count, then most recent lastPracticed, then earliest
// createdAt.
func pickRepertoireKeeper(group []library.RepertoireItem) int {
	best := 0
	for i := 1; i < len(group); i++ {
		a, b := group[i], group[best]
		switch {
		case a.TotalPracticeTime != b.TotalPracticeTime:
			if a.TotalPracticeTime > b.TotalPracticeTime {
				best = i
			}
		case a.PracticeCount != b.PracticeCount:
			if a.PracticeCount > b.PracticeCount {
				best = i
			}
		case !a.LastPracticed.Equal(b.LastPracticed):
			if a.LastPracticed.After(b.LastPracticed) {
				best = i
			}
		case a.CreatedAt.Before(b.CreatedAt):
			best = i
		}
	}
	return best
}

// mergeRepertoireGroup folds a duplicate group into the keeper: counts and
// practice time are summed, lastPracticed and updatedAt take the latest,
// createdAt the earliest, reference links the union. Merging is additive so
// no member's practice history is lost.
func mergeRepertoireGroup(group []library.RepertoireItem) library.RepertoireItem {
	merged := group[pickRepertoireKeeper(group)]
	merged.ScoreID = scoreid.NormalizeExisting(merged.ScoreID)

	links := make([]string, 0, len(merged.ReferenceLinks))
	seen := make(map[string]struct{})
	addLinks := func(ls []string) {
		for _, l := range ls {
			if _, ok := seen[l]; ok {
				continue
			}
			seen[l] = struct{}{}
			links = append(links, l)
		}
	}
	addLinks(merged.ReferenceLinks)

	merged.PracticeCount = 0
	merged.TotalPracticeTime = 0
	for _, item := range group {
		merged.PracticeCount += item.PracticeCount
		merged.TotalPracticeTime += item.TotalPracticeTime
		if item.LastPracticed.After(merged.LastPracticed) {
			merged.LastPracticed = item.LastPracticed
		}
		if item.UpdatedAt.After(merged.UpdatedAt) {
			merged.UpdatedAt = item.UpdatedAt
		}
		if !item.CreatedAt.IsZero() &&
			(merged.CreatedAt.IsZero() || item.CreatedAt.Before(merged.CreatedAt)) {
			merged.CreatedAt = item.CreatedAt
		}
		addLinks(item.ReferenceLinks)
	}
	merged.ReferenceLinks = links
	return merged
}

// CleanupRepertoire groups items whose score ids name the same work and
// merges each group into one item. Grouping is one pass per seed: items are
// compared directly to the seed, not chained transitively across the whole
// set. Returns the cleaned list and the members that were folded away.
func CleanupRepertoire(items []library.RepertoireItem) (cleaned, duplicates []library.RepertoireItem) {
	cleaned = make([]library.RepertoireItem, 0, len(items))
	used := make([]bool, len(items))

	for i := range items {
		if used[i] {
			continue
		}
		used[i] = true
		group := []library.RepertoireItem{items[i]}

		for j := i + 1; j < len(items); j++ {
			if used[j] {
				continue
			}
			if scoreid.SameScore(items[i].ScoreID, items[j].ScoreID) {
				used[j] = true
				group = append(group, items[j])
			}
		}

		if len(group) == 1 {
			cleaned = append(cleaned, items[i])
			continue
		}

		keeper := pickRepertoireKeeper(group)
		for k, item := range group {
			if k != keeper {
				duplicates = append(duplicates, item)
			}
		}
		cleaned = append(cleaned, mergeRepertoireGroup(group))
	}

	return cleaned, duplicates
}
