package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pezware/mirubato-tools/internal/match"
	"github.com/pezware/mirubato-tools/internal/scoreid"
)

var (
	similarTitle     string
	similarComposer  string
	similarThreshold float64
)

var similarCmd = &cobra.Command{
	Use:   "similar",
	Short: "List pieces in the log that look like the given one",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSimilar()
	},
}

func init() {
	rootCmd.AddCommand(similarCmd)

	similarCmd.Flags().StringVarP(
		&inputFile,
		"input",
		"i",
		"",
		"path to logbook export file",
	)
	similarCmd.MarkFlagRequired("input")

	similarCmd.Flags().StringVar(&similarTitle, "title", "", "piece title to compare against")
	similarCmd.MarkFlagRequired("title")
	similarCmd.Flags().StringVar(&similarComposer, "composer", "", "composer to compare against")
	similarCmd.Flags().Float64VarP(&similarThreshold, "threshold", "t", 0, "minimum similarity (0..1)")
}

func runSimilar() error {
	fmt.Println("--- Reading Export ---")

	cfg, export, err := loadExport()
	if err != nil {
		return err
	}

	threshold := similarThreshold
	if threshold <= 0 {
		threshold = cfg.Threshold
	}

	pieces := collectPieces(export)
	candidates := make([]match.Candidate, 0, len(pieces))
	for _, p := range pieces {
		candidates = append(candidates, match.Candidate{
			ScoreID:  scoreid.Generate(p.Title, p.Composer),
			Title:    p.Title,
			Composer: p.Composer,
		})
	}

	matches := match.FindSimilarPieces(similarTitle, similarComposer, candidates, threshold)
	for _, m := range matches {
		fmt.Printf("  %.2f %-6s %s", m.Similarity, m.Confidence, m.Title)
		if m.Composer != "" {
			fmt.Printf(" (%s)", m.Composer)
		}
		fmt.Println()
	}
	fmt.Printf("Found %d similar pieces.\n", len(matches))
	return nil
}
