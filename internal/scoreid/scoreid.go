// Package scoreid builds and parses the string keys that identify a musical
// work across logbook entries and repertoire items.
//
// Two delimiter conventions coexist in persisted data. Legacy ids join the
// normalized title and composer with a single hyphen, which is ambiguous when
// the title itself contains one. Current ids use "||" whenever either half
// contains a hyphen. Both forms must keep parsing and comparing correctly.
package scoreid

import (
	"strings"

	"github.com/pezware/mirubato-tools/internal/textnorm"
)

// Delimiter is the unambiguous separator used by newly generated ids when
// either half contains a hyphen.
const Delimiter = "||"

const legacyDelimiter = "-"

// Generate derives a score id from a free-typed title and composer. The
// composer may be empty, in which case the id is just the normalized title.
// The legacy hyphen delimiter is kept for ids whose halves contain no hyphen
// so previously generated ids stay stable.
func Generate(title, composer string) string {
	t := textnorm.NormalizeTitle(title)
	c := textnorm.NormalizeComposer(composer)

	if c == "" {
		return t
	}
	if strings.Contains(t, "-") || strings.Contains(c, "-") {
		return t + Delimiter + c
	}
	return t + legacyDelimiter + c
}

// Parse splits a score id back into its title and composer halves. Ids using
// "||" split on its first occurrence; the composer half may legitimately
// contain hyphens. Legacy ids split on the LAST hyphen. That is a heuristic:
// a legacy title ending in a hyphenated suffix mis-parses, and this is
// accepted rather than silently reinterpreted, since changing it would
// reclassify persisted data.
func Parse(id string) (title, composer string) {
	if id == "" {
		return "", ""
	}
	if i := strings.Index(id, Delimiter); i >= 0 {
		return id[:i], id[i+len(Delimiter):]
	}
	if i := strings.LastIndex(id, legacyDelimiter); i >= 0 {
		return id[:i], id[i+1:]
	}
	return id, ""
}

// SameScore reports whether two ids refer to the same work. Besides direct
// comparison of the lowercased, trimmed ids, it compares the parsed halves,
// accepting the same pair in reversed order (legacy data entered as
// "Composer - Title" instead of "Title - Composer").
func SameScore(a, b string) bool {
	na := strings.ToLower(strings.TrimSpace(a))
	nb := strings.ToLower(strings.TrimSpace(b))
	if na == nb {
		return true
	}

	ta, ca := Parse(na)
	tb, cb := Parse(nb)
	ta, ca = strings.TrimSpace(ta), strings.TrimSpace(ca)
	tb, cb = strings.TrimSpace(tb), strings.TrimSpace(cb)
	if ca == "" || cb == "" {
		return false
	}
	if ta == tb && ca == cb {
		return true
	}

	// Legacy data sometimes holds "Composer - Title" instead of
	// "Title - Composer"; accept the same pair in reversed order.
	return ta == cb && ca == tb
}

// NormalizeExisting re-derives the current canonical form of a possibly
// legacy id. The composer half of a two-part legacy id is guessed as the
// shorter half with at most two words; ids with no recognizable two-part
// structure pass through lowercased and trimmed.
func NormalizeExisting(id string) string {
	n := strings.ToLower(strings.TrimSpace(id))
	if n == "" {
		return ""
	}

	if i := strings.Index(n, Delimiter); i >= 0 {
		return Generate(n[:i], n[i+len(Delimiter):])
	}

	i := strings.LastIndex(n, legacyDelimiter)
	if i <= 0 || i == len(n)-1 {
		return n
	}

	head := strings.TrimSpace(n[:i])
	tail := strings.TrimSpace(n[i+1:])
	if head == "" || tail == "" {
		return n
	}

	// The composer is usually the short half: "moonlight sonata-beethoven",
	// not "beethoven-moonlight sonata no. 14".
	if len(strings.Fields(tail)) <= 2 && len(tail) <= len(head) {
		return Generate(head, tail)
	}
	if len(strings.Fields(head)) <= 2 && len(head) < len(tail) {
		return Generate(tail, head)
	}
	return n
}
