package cmd

import (
	"github.com/adbar/shoten/core"
	"github.com/adbar/shoten/internal/contract"
	"github.com/adbar/shoten/internal/iocache"
	"github.com/spf13/cobra"
)

// freqlistCmd runs the full analysis pipeline over a corpus directory.
var freqlistCmd = &cobra.Command{
	Use:   "freqlist [corpus-dir]",
	Short: "Compute time-binned frequency statistics for a corpus.",
	Long: `Ingest a directory of dated XML-TEI documents and compute long-term
frequency information per word: overall ppm, per-bin relative frequencies,
mean and standard deviation of the non-zero series.

The report lists only words above the significance thresholds, sorted
alphabetically. Words with zero dispersion carry no trend signal and are
never reported.

Examples:
  # Weekly bins over the last year, report as TSV on stdout
  shoten freqlist corpus/ --max-days 365

  # Monthly bins with German lemmatization
  shoten freqlist corpus/ --interval 30 --langs de --lang-data data/

  # Human-readable table with per-source details
  shoten freqlist corpus/ --details --output text

  # Deterministic run pinned to a fixed reference date
  shoten freqlist corpus/ --reference 2024-06-01 --output-file report.tsv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteFreqlist(rootCtx, cfg, iocache.Manager.GetRunStore()); err != nil {
			contract.LogFatal("Cannot compute frequency list", err)
		}
	},
}
