package cmd

import (
	"github.com/adbar/shoten/core"
	"github.com/adbar/shoten/internal/contract"
	"github.com/spf13/cobra"
)

// importCmd loads a pre-built TSV word list instead of parsing a corpus.
var importCmd = &cobra.Command{
	Use:   "import <wordlist.tsv>",
	Short: "Import a pre-built TSV word list.",
	Long: `Load occurrences from a tab-separated word list instead of parsing
corpus documents. Each line holds a token, a date in YYYY-MM-DD format and
an optional source identifier. Malformed lines are reported and skipped.

With --snapshot the normalized vocabulary is saved for later scoring;
without it the list is scored immediately and the frequency report written.

Examples:
  # Score an exported list directly
  shoten import occurrences.tsv

  # Convert a list into a snapshot for later use
  shoten import occurrences.tsv --snapshot vocab.gz`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		// The positional argument is the list path, not a corpus directory.
		return sharedSetup(rootCtx, cmd, nil)
	},
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteImport(rootCtx, cfg, args[0]); err != nil {
			contract.LogFatal("Cannot import word list", err)
		}
	},
}
