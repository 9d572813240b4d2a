// Package composer renders user-typed composer names in display form and
// resolves surface variants ("js bach", "BACH, J.S.") to one canonical name.
package composer

import (
	"regexp"
	"strings"
	"unicode"
)

// Name particles rendered lowercase when they are not the leading word.
// Multi-word particles are listed so they can be matched longest-first.
var particles = map[string]struct{}{
	"van der": {},
	"van den": {},
	"van de":  {},
	"von der": {},
	"de la":   {},
	"van":     {},
	"von":     {},
	"de":      {},
	"del":     {},
	"della":   {},
	"di":      {},
	"da":      {},
	"la":      {},
	"le":      {},
	"ter":     {},
	"den":     {},
	"op":      {},
	"zu":      {},
}

var (
	reSingleInitial = regexp.MustCompile(`^(?i)[a-z]\.$`)
	reInitialsRun   = regexp.MustCompile(`^(?i)(?:[a-z]\.)+[a-z]?\.?$`)
)

type token struct {
	text  string
	space bool
}

func tokenize(s string) []token {
	var out []token
	var cur strings.Builder
	curSpace := false
	flush := func() {
		if cur.Len() > 0 {
			out = append(out, token{text: cur.String(), space: curSpace})
			cur.Reset()
		}
	}
	for _, r := range s {
		isSpace := unicode.IsSpace(r)
		if isSpace != curSpace {
			flush()
			curSpace = isSpace
		}
		cur.WriteRune(r)
	}
	flush()
	return out
}

func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

func hasDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	for i, r := range s {
		return string(unicode.ToUpper(r)) + strings.ToLower(s[i+len(string(r)):])
	}
	return s
}

// formatInitials uppercases every letter in a dotted-initial run ("j.s." ->
// "J.S.").
func formatInitials(s string) string {
	return strings.ToUpper(s)
}

// formatSegment handles one hyphen-free segment: apostrophes, acronyms, and
// plain capitalization.
func formatSegment(s string, firstWord bool) string {
	if s == "" {
		return s
	}
	if _, ok := particles[strings.ToLower(s)]; ok && !firstWord {
		return strings.ToLower(s)
	}
	if idx := strings.Index(s, "'"); idx >= 0 {
		parts := strings.Split(s, "'")
		for i, p := range parts {
			if i == 0 && len([]rune(p)) == 1 {
				// "d'indy" -> "D'Indy"
				parts[i] = strings.ToUpper(p)
				continue
			}
			parts[i] = capitalize(p)
		}
		return strings.Join(parts, "'")
	}
	if isAllUpper(s) && len([]rune(s)) > 1 && !hasDigit(s) {
		// deliberate acronym, leave untouched
		return s
	}
	return capitalize(s)
}

func formatWord(s string, firstWord bool) string {
	if reSingleInitial.MatchString(s) || reInitialsRun.MatchString(s) {
		return formatInitials(s)
	}
	if strings.Contains(s, "-") {
		segs := strings.Split(s, "-")
		for i, seg := range segs {
			segs[i] = formatSegment(seg, firstWord && i == 0)
		}
		return strings.Join(segs, "-")
	}
	return formatSegment(s, firstWord)
}

// FormatName renders a free-typed or normalized name in display
// capitalization: "ludwig van beethoven" -> "Ludwig van Beethoven",
// "j.s. bach" -> "J.S. Bach", "saint-saëns" -> "Saint-Saëns". ALL-CAPS input
// longer than two characters is treated as carrying no case information and
// is lowercased before formatting. Also works as a generic title-caser.
//
// Not fully idempotent: a mixed-case input containing an acronym keeps the
// acronym, but once an ALL-CAPS *input* has been lowercased that information
// is gone. Callers must not assume FormatName(FormatName(s)) == FormatName(s)
// for arbitrary strings.
func FormatName(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	if len([]rune(s)) > 2 && isAllUpper(s) {
		s = strings.ToLower(s)
	}

	tokens := tokenize(s)
	var b strings.Builder
	b.Grow(len(s))

	// Indexes of word tokens, for multi-word particle lookahead.
	var words []int
	for i, t := range tokens {
		if !t.space {
			words = append(words, i)
		}
	}

	wordPos := 0 // position within words, 0 = leading word
	for wi := 0; wi < len(words); wi++ {
		if wi > 0 {
			// reproduce the separators between the previous word and this one
			for ti := words[wi-1] + 1; ti < words[wi]; ti++ {
				b.WriteString(tokens[ti].text)
			}
		} else {
			for ti := 0; ti < words[0]; ti++ {
				b.WriteString(tokens[ti].text)
			}
		}

		// Longest-first particle match over this word plus the next one.
		if wordPos > 0 {
			matched := false
			for span := 2; span >= 1; span-- {
				if wi+span > len(words) {
					continue
				}
				joined := make([]string, 0, span)
				for k := 0; k < span; k++ {
					joined = append(joined, strings.ToLower(tokens[words[wi+k]].text))
				}
				if _, ok := particles[strings.Join(joined, " ")]; !ok {
					continue
				}
				// render the span lowercase with its original separators
				for k := 0; k < span; k++ {
					if k > 0 {
						for ti := words[wi+k-1] + 1; ti < words[wi+k]; ti++ {
							b.WriteString(tokens[ti].text)
						}
					}
					b.WriteString(strings.ToLower(tokens[words[wi+k]].text))
				}
				wi += span - 1
				wordPos += span
				matched = true
				break
			}
			if matched {
				continue
			}
		}

		b.WriteString(formatWord(tokens[words[wi]].text, wordPos == 0))
		wordPos++
	}

	// trailing separators
	if len(words) > 0 {
		for ti := words[len(words)-1] + 1; ti < len(tokens); ti++ {
			b.WriteString(tokens[ti].text)
		}
	}

	return b.String()
}
