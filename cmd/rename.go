package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pezware/mirubato-tools/internal/library"
)

var (
	fromTitle    string
	fromComposer string
	toTitle      string
	toComposer   string
)

var renameCmd = &cobra.Command{
	Use:   "rename",
	Short: "Rename a piece across all log entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRename()
	},
}

func init() {
	rootCmd.AddCommand(renameCmd)

	renameCmd.Flags().StringVarP(
		&inputFile,
		"input",
		"i",
		"",
		"path to logbook export file",
	)
	renameCmd.MarkFlagRequired("input")

	renameCmd.Flags().StringVarP(
		&outputFile,
		"output",
		"o",
		"",
		"path to write the renamed export",
	)

	renameCmd.Flags().StringVar(&fromTitle, "from-title", "", "current piece title")
	renameCmd.MarkFlagRequired("from-title")
	renameCmd.Flags().StringVar(&fromComposer, "from-composer", "", "current composer")
	renameCmd.Flags().StringVar(&toTitle, "to-title", "", "new piece title")
	renameCmd.MarkFlagRequired("to-title")
	renameCmd.Flags().StringVar(&toComposer, "to-composer", "", "new composer")
}

func runRename() error {
	fmt.Println("--- Reading Export ---")

	cfg, export, err := loadExport()
	if err != nil {
		return err
	}

	fmt.Println("--- Renaming ---")

	entries, renamed := library.RenamePiece(export.Entries, fromTitle, fromComposer, toTitle, toComposer)
	fmt.Printf("Renamed %d pieces.\n", renamed)

	if renamed == 0 {
		return nil
	}

	out := *export
	out.Entries = entries
	path := resolveOutputPath(cfg)
	if err := library.Save(path, &out); err != nil {
		return err
	}
	fmt.Printf("Wrote %s.\n", path)
	return nil
}
