package cmd

import (
	"fmt"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"

	"github.com/pezware/mirubato-tools/internal/composer"
	"github.com/pezware/mirubato-tools/internal/library"
	"github.com/pezware/mirubato-tools/internal/textnorm"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy-search pieces in the log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch(args[0])
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVarP(
		&inputFile,
		"input",
		"i",
		"",
		"path to logbook export file",
	)
	searchCmd.MarkFlagRequired("input")
}

// collectPieces gathers the unique pieces across entries and repertoire,
// keyed by normalized title.
func collectPieces(export *library.Export) map[string]library.Piece {
	pieces := make(map[string]library.Piece)
	add := func(p library.Piece) {
		n := textnorm.NormalizeTitle(p.Title)
		if n == "" {
			return
		}
		if _, seen := pieces[n]; !seen {
			pieces[n] = p
		}
	}
	for _, e := range export.Entries {
		for _, p := range e.Pieces {
			add(p)
		}
	}
	for _, item := range export.Repertoire {
		add(library.Piece{Title: item.Title, Composer: item.Composer})
	}
	return pieces
}

// distanceThreshold scales the acceptable edit distance with the query
// length (~20%, clamped to 1..3).
func distanceThreshold(n int) int {
	th := n / 5
	if th < 1 {
		return 1
	}
	if th > 3 {
		return 3
	}
	return th
}

func runSearch(query string) error {
	fmt.Println("--- Reading Export ---")

	_, export, err := loadExport()
	if err != nil {
		return err
	}

	pieces := collectPieces(export)
	titles := make([]string, 0, len(pieces))
	for n := range pieces {
		titles = append(titles, n)
	}
	sort.Strings(titles)

	pat := textnorm.NormalizeTitle(query)
	thr := distanceThreshold(len(pat))

	ranks := fuzzy.RankFind(pat, titles)
	sort.Sort(ranks)

	shown := 0
	for _, r := range ranks {
		if r.Distance > thr {
			continue
		}
		p := pieces[r.Target]
		if p.Composer != "" {
			fmt.Printf("  %s (%s)\n", p.Title, composer.CanonicalName(p.Composer))
		} else {
			fmt.Printf("  %s\n", p.Title)
		}
		shown++
	}
	fmt.Printf("Found %d pieces.\n", shown)
	return nil
}
