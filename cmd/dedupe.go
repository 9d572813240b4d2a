package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pezware/mirubato-tools/internal/dedup"
	"github.com/pezware/mirubato-tools/internal/library"
)

var dryRun bool

var dedupeCmd = &cobra.Command{
	Use:   "dedupe",
	Short: "Find and remove duplicate log entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDedupe()
	},
}

func init() {
	rootCmd.AddCommand(dedupeCmd)

	dedupeCmd.Flags().StringVarP(
		&inputFile,
		"input",
		"i",
		"",
		"path to logbook export file",
	)
	dedupeCmd.MarkFlagRequired("input")

	dedupeCmd.Flags().StringVarP(
		&outputFile,
		"output",
		"o",
		"",
		"path to write the cleaned export",
	)

	dedupeCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"report duplicates without writing anything",
	)
}

func runDedupe() error {
	fmt.Println("--- Reading Export ---")

	cfg, export, err := loadExport()
	if err != nil {
		return err
	}

	fmt.Println("--- Detecting Duplicates ---")

	dups := dedup.DetectDuplicates(export.Entries)
	byReason := make(map[string]int)
	for _, d := range dups {
		byReason[d.Reason]++
		fmt.Printf("  %s duplicates %s (%.2f, %s)\n",
			d.DuplicateID, d.OriginalID, d.Confidence, d.Reason)
	}
	fmt.Printf("Found %d duplicate pairs (%d same-id, %d signature, %d near-timestamp).\n",
		len(dups), byReason[dedup.ReasonSameID], byReason[dedup.ReasonSignature],
		byReason[dedup.ReasonNearTimestamp])

	if dryRun || len(dups) == 0 {
		return nil
	}

	cleaned := dedup.RemoveDuplicates(export.Entries)
	fmt.Printf("Kept %d of %d entries.\n", len(cleaned), len(export.Entries))

	out := *export
	out.Entries = cleaned
	path := resolveOutputPath(cfg)
	if err := library.Save(path, &out); err != nil {
		return err
	}
	fmt.Printf("Wrote %s.\n", path)
	return nil
}
