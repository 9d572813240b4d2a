package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pezware/mirubato-tools/internal/config"
	"github.com/pezware/mirubato-tools/internal/library"
)

var (
	cfgFile    string
	inputFile  string
	outputFile string
)

var rootCmd = &cobra.Command{
	Use:   "mirubato-tools",
	Short: "Offline cleanup tools for a practice logbook export",
	Long: `mirubato-tools works on the JSON export of a music practice logbook:
it finds and removes duplicate log entries, merges duplicate repertoire
items, renames pieces across the whole log, and searches pieces by fuzzy
title match.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&cfgFile,
		"config",
		"c",
		"",
		"path to config file",
	)
}

// loadExport is the shared command preamble: read the config, read the
// export, report what was found.
func loadExport() (config.Config, *library.Export, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return cfg, nil, err
	}

	export, err := library.Load(inputFile)
	if err != nil {
		return cfg, nil, err
	}

	fmt.Printf("Got %d entries and %d repertoire items.\n",
		len(export.Entries), len(export.Repertoire))
	return cfg, export, nil
}

// resolveOutputPath picks the output file: the -o flag, then the config,
// then a dated default.
func resolveOutputPath(cfg config.Config) string {
	if outputFile != "" {
		return outputFile
	}
	if cfg.OutputPath != "" {
		return cfg.OutputPath
	}
	t := time.Now()
	return fmt.Sprintf("%d-%02d-%02d-cleaned.json", t.Year(), t.Month(), t.Day())
}
