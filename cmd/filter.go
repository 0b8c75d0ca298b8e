package cmd

import (
	"github.com/adbar/shoten/core"
	"github.com/adbar/shoten/internal/contract"
	"github.com/adbar/shoten/internal/iocache"
	"github.com/spf13/cobra"
)

// filterCmd prints the words selected by the significance filter chain.
var filterCmd = &cobra.Command{
	Use:   "filter [corpus-dir]",
	Short: "Print the trending words selected by the significance filter.",
	Long: `Run the significance filter chain over a scored vocabulary and print
the surviving words, one per line, in alphabetical order.

The vocabulary comes from a saved snapshot when --snapshot is set,
otherwise the corpus directory is ingested and scored first. The
strictness setting tunes the thresholds; an unknown setting falls back
to 'normal' with a warning.

Examples:
  # Filter a previously saved vocabulary
  shoten filter --snapshot vocab.gz --setting strict

  # One-shot ingestion and filtering
  shoten filter corpus/ --setting loose`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteFilter(rootCtx, cfg, iocache.Manager.GetRunStore()); err != nil {
			contract.LogFatal("Cannot filter vocabulary", err)
		}
	},
}
