package cmd

import (
	"github.com/adbar/shoten/core"
	"github.com/adbar/shoten/internal/contract"
	"github.com/spf13/cobra"
)

// wordlistCmd ingests a corpus and saves the raw vocabulary.
var wordlistCmd = &cobra.Command{
	Use:   "wordlist [corpus-dir]",
	Short: "Ingest a corpus and store the raw vocabulary snapshot.",
	Long: `Build the normalized vocabulary of word occurrences from a corpus
directory and persist it as a compressed snapshot, without computing any
statistics. Use this to split ingestion from scoring: snapshots from
several corpora or time slices can be scored later with 'filter'.

Examples:
  # Ingest and save the vocabulary
  shoten wordlist corpus/ --snapshot vocab.gz

  # Restrict to recent documents with French lemmatization
  shoten wordlist corpus/ --snapshot vocab.gz --max-days 90 --langs fr`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteWordlist(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot build word list", err)
		}
	},
}
