package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pezware/mirubato-tools/internal/dedup"
	"github.com/pezware/mirubato-tools/internal/library"
)

var repertoireCmd = &cobra.Command{
	Use:   "repertoire",
	Short: "Merge repertoire items that refer to the same work",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepertoire()
	},
}

func init() {
	rootCmd.AddCommand(repertoireCmd)

	repertoireCmd.Flags().StringVarP(
		&inputFile,
		"input",
		"i",
		"",
		"path to logbook export file",
	)
	repertoireCmd.MarkFlagRequired("input")

	repertoireCmd.Flags().StringVarP(
		&outputFile,
		"output",
		"o",
		"",
		"path to write the cleaned export",
	)
}

func runRepertoire() error {
	fmt.Println("--- Reading Export ---")

	cfg, export, err := loadExport()
	if err != nil {
		return err
	}

	fmt.Println("--- Merging Repertoire ---")

	cleaned, duplicates := dedup.CleanupRepertoire(export.Repertoire)
	for _, d := range duplicates {
		fmt.Printf("  merged %q (%s)\n", d.Title, d.ScoreID)
	}
	fmt.Printf("Merged %d duplicates, %d items remain.\n", len(duplicates), len(cleaned))

	if len(duplicates) == 0 {
		return nil
	}

	out := *export
	out.Repertoire = cleaned
	path := resolveOutputPath(cfg)
	if err := library.Save(path, &out); err != nil {
		return err
	}
	fmt.Printf("Wrote %s.\n", path)
	return nil
}
