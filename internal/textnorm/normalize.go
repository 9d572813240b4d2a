// Package textnorm normalizes free-typed piece titles and composer names
// into the lowercase forms used for score ids and duplicate matching.
package textnorm

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	reMultiSpace = regexp.MustCompile(`\s+`)

	// quoteReplacer folds curly quotes and unicode dashes to their ASCII
	// equivalents so "Für Elise’s" and "Für Elise's" produce the same key.
	quoteReplacer = strings.NewReplacer(
		"‘", "'", // left single quote
		"’", "'", // right single quote
		"‛", "'",
		"“", `"`, // left double quote
		"”", `"`, // right double quote
		"‟", `"`,
		"–", "-", // en dash
		"—", "-", // em dash
		"−", "-", // minus sign
	)
)

// Catalog-number patterns stripped from composer fields before lookup.
// Users paste "Beethoven Op. 27 No. 2" style strings into the composer box.
var catalogPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:op|opus)\.?\s*(?:posth\.?\s*)?\d+[a-z]?(?:[/,]\s*(?:no|nr)\.?\s*\d+)?`),
	regexp.MustCompile(`(?i)\b(?:no|nr)\.?\s*\d+`),
	regexp.MustCompile(`(?i)\bbwv\.?\s*\d+[a-z]?`),
	regexp.MustCompile(`(?i)\bk\.?v?\.?\s*\d+[a-z]?`),
	regexp.MustCompile(`(?i)\bhob\.?\s*[ivxl]+[:./]?\s*\d*`),
	regexp.MustCompile(`(?i)\bd\.\s*\d+[a-z]?`),
	regexp.MustCompile(`(?i)\brv\.?\s*\d+`),
	regexp.MustCompile(`(?i)\bhwv\.?\s*\d+`),
	regexp.MustCompile(`(?i)\bwoo\.?\s*\d+`),
	regexp.MustCompile(`(?i)\bs\.\s*\d+[a-z]?`),
	regexp.MustCompile(`(?i)\bsz\.?\s*\d+`),
	regexp.MustCompile(`(?i)\bl\.\s*\d+[a-z]?`),
}

// canonicalize applies the shared lowering pipeline: NFC so composed and
// decomposed accents compare equal, quote/dash folding, lowercase, and
// whitespace collapse. Accents themselves are kept; stripping them would
// change every persisted score id that contains one.
func canonicalize(s string) string {
	s = norm.NFC.String(s)
	s = quoteReplacer.Replace(s)
	s = strings.ToLower(s)
	s = reMultiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// NormalizeTitle normalizes a piece title for matching. Empty or
// whitespace-only input normalizes to the empty string; the function is
// idempotent.
func NormalizeTitle(s string) string {
	return canonicalize(s)
}

// NormalizeComposer normalizes a composer name for matching. Periods are
// stripped entirely so initials compress ("J.S. Bach" -> "js bach"); they
// carry no signal for identity.
func NormalizeComposer(s string) string {
	s = canonicalize(s)
	s = strings.ReplaceAll(s, ".", "")
	s = reMultiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// StripCatalogTokens removes catalog-number substrings (Op. 27, BWV 846,
// K. 331, Hob. XVI, ...) and collapses the leftover whitespace. Case is
// preserved; only the catalog tokens are removed.
func StripCatalogTokens(s string) string {
	for _, re := range catalogPatterns {
		s = re.ReplaceAllString(s, " ")
	}
	s = strings.Trim(s, " ,-")
	s = reMultiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
