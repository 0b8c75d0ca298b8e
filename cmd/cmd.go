// Package cmd defines the command-line interface for shoten.
package cmd

import (
	"github.com/adbar/shoten/internal/contract"
	"github.com/adbar/shoten/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(freqlistCmd)
	rootCmd.AddCommand(wordlistCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the runs subcommands to the parent runs command
	runsCmd.AddCommand(runsStatusCmd)
	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsClearCmd)
	runsCmd.AddCommand(runsExportCmd)
	runsCmd.AddCommand(runsMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("reference", "", "Reference date for day offsets in YYYY-MM-DD format (default: today)")
	rootCmd.PersistentFlags().Int("max-days", contract.DefaultMaxDiff, "Reject documents older than this many days")
	rootCmd.PersistentFlags().Int("min-days", contract.DefaultMinDiff, "Reject documents newer than this many days")
	rootCmd.PersistentFlags().IntP("interval", "i", contract.DefaultInterval, "Time bin width in days")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent document workers")
	rootCmd.PersistentFlags().String("suffix", ".xml", "File suffix filter for corpus discovery")
	rootCmd.PersistentFlags().StringP("langs", "l", "", "Comma-separated language codes for the linguistic resource")
	rootCmd.PersistentFlags().String("lang-data", "", "Directory holding per-language lemma dictionaries")
	rootCmd.PersistentFlags().Bool("lemma-filter", false, "Keep only word forms unknown to the dictionary before lemmatizing")
	rootCmd.PersistentFlags().Bool("no-dehyphen", false, "Disable merging of hyphenated variants into hyphen-free ones")
	rootCmd.PersistentFlags().String("author-filter", "", "Skip documents whose author matches this regular expression")
	rootCmd.PersistentFlags().Bool("details", true, "Collect source and heading metadata per occurrence")
	rootCmd.PersistentFlags().Float64("thres-a", contract.DefaultThresA, "Report threshold: mean ppm above this always passes")
	rootCmd.PersistentFlags().Float64("thres-b", contract.DefaultThresB, "Report threshold: mean ppm above this passes when dispersion is low")
	rootCmd.PersistentFlags().String("setting", string(schema.NormalFilter), "Significance filter strictness: loose or normal or strict")
	rootCmd.PersistentFlags().StringP("output", "o", string(schema.TSVOut), "Output format: tsv or text or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("snapshot", "", "Path of the compressed vocabulary snapshot to read or write")
	rootCmd.PersistentFlags().String("track-backend", string(schema.NoneBackend), "Run tracking backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("track-db-connect", "", "Database connection string for mysql/postgresql run tracking")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of runsListCmd to Viper
	runsListCmd.Flags().Int("limit", 10, "Number of runs to display")
	if err := viper.BindPFlags(runsListCmd.Flags()); err != nil {
		contract.LogFatal("Error binding runs list flags", err)
	}

	// Bind all flags of runsMigrateCmd to Viper
	runsMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(runsMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding runs migrate flags", err)
	}
}
