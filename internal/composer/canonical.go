package composer

import (
	"regexp"
	"sort"
	"strings"

	"github.com/pezware/mirubato-tools/internal/textnorm"
)

var reCommaSpace = regexp.MustCompile(`\s*,\s*`)

// canonicalNames maps normalized surface variants to the canonical display
// name. Keys are in lookup form: lowercase, periods stripped, ", " comma
// spacing. Loaded once, read-only afterwards.
var canonicalNames = map[string]string{
	"bach":                      "J.S. Bach",
	"js bach":                   "J.S. Bach",
	"j s bach":                  "J.S. Bach",
	"johann sebastian bach":     "J.S. Bach",
	"bach, js":                  "J.S. Bach",
	"bach, johann sebastian":    "J.S. Bach",
	"cpe bach":                  "C.P.E. Bach",
	"carl philipp emanuel bach": "C.P.E. Bach",

	"beethoven":             "Ludwig van Beethoven",
	"ludwig van beethoven":  "Ludwig van Beethoven",
	"lv beethoven":          "Ludwig van Beethoven",
	"van beethoven":         "Ludwig van Beethoven",
	"beethoven, ludwig van": "Ludwig van Beethoven",

	"mozart":                   "Wolfgang Amadeus Mozart",
	"wa mozart":                "Wolfgang Amadeus Mozart",
	"wolfgang amadeus mozart":  "Wolfgang Amadeus Mozart",
	"mozart, wolfgang amadeus": "Wolfgang Amadeus Mozart",

	"chopin":           "Frédéric Chopin",
	"frederic chopin":  "Frédéric Chopin",
	"frédéric chopin":  "Frédéric Chopin",
	"fryderyk chopin":  "Frédéric Chopin",
	"chopin, frederic": "Frédéric Chopin",

	"debussy":        "Claude Debussy",
	"claude debussy": "Claude Debussy",

	"brahms":          "Johannes Brahms",
	"johannes brahms": "Johannes Brahms",

	"schubert":       "Franz Schubert",
	"franz schubert": "Franz Schubert",

	"liszt":       "Franz Liszt",
	"franz liszt": "Franz Liszt",

	"tchaikovsky":              "Pyotr Ilyich Tchaikovsky",
	"tchaikowsky":              "Pyotr Ilyich Tchaikovsky",
	"chaikovsky":               "Pyotr Ilyich Tchaikovsky",
	"pyotr ilyich tchaikovsky": "Pyotr Ilyich Tchaikovsky",

	"rachmaninoff":        "Sergei Rachmaninoff",
	"rachmaninov":         "Sergei Rachmaninoff",
	"sergei rachmaninoff": "Sergei Rachmaninoff",
	"sergei rachmaninov":  "Sergei Rachmaninoff",

	"saint-saens":         "Camille Saint-Saëns",
	"saint-saëns":         "Camille Saint-Saëns",
	"camille saint-saens": "Camille Saint-Saëns",
	"camille saint-saëns": "Camille Saint-Saëns",

	"dvorak":         "Antonín Dvořák",
	"dvořák":         "Antonín Dvořák",
	"antonin dvorak": "Antonín Dvořák",
	"antonín dvořák": "Antonín Dvořák",

	"handel":                 "George Frideric Handel",
	"händel":                 "George Frideric Handel",
	"george frideric handel": "George Frideric Handel",
	"georg friedrich händel": "George Frideric Handel",

	"haydn":        "Joseph Haydn",
	"joseph haydn": "Joseph Haydn",

	"schumann":        "Robert Schumann",
	"robert schumann": "Robert Schumann",
	"clara schumann":  "Clara Schumann",

	"mendelssohn":       "Felix Mendelssohn",
	"felix mendelssohn": "Felix Mendelssohn",

	"vivaldi":         "Antonio Vivaldi",
	"antonio vivaldi": "Antonio Vivaldi",

	"grieg":        "Edvard Grieg",
	"edvard grieg": "Edvard Grieg",

	"satie":      "Erik Satie",
	"erik satie": "Erik Satie",

	"ravel":         "Maurice Ravel",
	"maurice ravel": "Maurice Ravel",

	"scarlatti":          "Domenico Scarlatti",
	"domenico scarlatti": "Domenico Scarlatti",

	"clementi":       "Muzio Clementi",
	"muzio clementi": "Muzio Clementi",

	"czerny":      "Carl Czerny",
	"carl czerny": "Carl Czerny",

	"bartok":      "Béla Bartók",
	"bartók":      "Béla Bartók",
	"bela bartok": "Béla Bartók",
	"béla bartók": "Béla Bartók",

	"prokofiev":        "Sergei Prokofiev",
	"sergei prokofiev": "Sergei Prokofiev",

	"shostakovich":        "Dmitri Shostakovich",
	"dmitri shostakovich": "Dmitri Shostakovich",

	"scriabin":           "Alexander Scriabin",
	"alexander scriabin": "Alexander Scriabin",

	"verdi":          "Giuseppe Verdi",
	"giuseppe verdi": "Giuseppe Verdi",

	"puccini":         "Giacomo Puccini",
	"giacomo puccini": "Giacomo Puccini",

	"wagner":         "Richard Wagner",
	"richard wagner": "Richard Wagner",
}

// sortedVariantKeys keeps suffix matching deterministic regardless of map
// iteration order.
var sortedVariantKeys = func() []string {
	keys := make([]string, 0, len(canonicalNames))
	for k := range canonicalNames {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}()

// lookupKey normalizes a name for table lookup: lowercase, trimmed,
// quote/dash folded, periods stripped, ", " comma spacing.
func lookupKey(s string) string {
	s = textnorm.NormalizeComposer(s)
	s = reCommaSpace.ReplaceAllString(s, ", ")
	return strings.TrimSpace(s)
}

// CanonicalName maps the many ways users type a composer ("JS Bach",
// "bach, j.s.", "Beethoven Op. 27") to one canonical display name. Unknown
// names fall back to FormatName on the cleaned input. Never errors; empty
// input returns the empty string.
func CanonicalName(input string) string {
	cleaned := textnorm.StripCatalogTokens(input)
	key := lookupKey(cleaned)
	if key == "" {
		return ""
	}

	if canonical, ok := canonicalNames[key]; ok {
		return canonical
	}

	// Suffix match: a bare last name matches any table entry that ends with
	// it ("bach" -> the "js bach" entry when only a surname was given).
	fields := strings.Fields(key)
	last := fields[len(fields)-1]
	for _, k := range sortedVariantKeys {
		if k == last || strings.HasSuffix(k, " "+last) {
			return canonicalNames[k]
		}
	}

	return FormatName(cleaned)
}
