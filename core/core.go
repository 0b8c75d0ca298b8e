package core

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/adbar/shoten/core/filters"
	"github.com/adbar/shoten/internal/contract"
	"github.com/adbar/shoten/internal/langres"
	"github.com/adbar/shoten/internal/outwriter"
	"github.com/adbar/shoten/internal/snapshot"
	"github.com/adbar/shoten/internal/teiparse"
	"github.com/adbar/shoten/schema"
)

// logRunHeader prints a short description of the run to stderr, so reports
// written to stdout stay machine-readable.
func logRunHeader(cfg *contract.Config) {
	fmt.Fprintf(os.Stderr, "Scanning %s (window %d-%d days before %s, interval %d)\n",
		cfg.InputDir, cfg.MinDiff, cfg.MaxDiff, cfg.Reference.Format(schema.DateFormat), cfg.Interval)
}

// buildResources assembles the parser and linguistic components for a run.
func buildResources(cfg *contract.Config) (contract.DocumentParser, contract.LangResource, contract.RelevanceFunc, error) {
	res, err := langres.Load(cfg.LangDataDir, cfg.Languages...)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load language data: %w", err)
	}
	return teiparse.New(), res, langres.IsRelevantInput, nil
}

// runScoredPipeline performs ingestion, normalization and scoring, with run
// tracking around the whole pass. The returned run ID is 0 when tracking is
// disabled or failed to start.
func runScoredPipeline(ctx context.Context, cfg *contract.Config, store contract.RunStore) (schema.Vocabulary, int64, error) {
	if !shouldSuppressHeader(ctx) {
		logRunHeader(cfg)
	}

	var runID int64
	if store != nil {
		var err error
		runID, err = store.BeginRun(time.Now(), cfg.ConfigParams())
		if err != nil {
			contract.LogWarn("Run tracking initialization failed", err)
			runID = 0
		}
	}

	parser, res, relevant, err := buildResources(cfg)
	if err != nil {
		return nil, runID, err
	}

	vocab, _, stats, err := GenFreqlist(cfg, parser, res, relevant)
	if err != nil {
		return nil, runID, err
	}

	if store != nil && runID > 0 {
		if err := store.EndRun(runID, time.Now(), stats.Documents, stats.Tokens, len(vocab)); err != nil {
			contract.LogWarn("Failed to finalize run tracking", err)
		}
	}

	return vocab, runID, nil
}

// GetFreqlistResults runs the full pipeline and returns the significant
// report rows together with the elapsed time.
func GetFreqlistResults(ctx context.Context, cfg *contract.Config, store contract.RunStore) ([]schema.FreqRow, time.Duration, error) {
	start := time.Now()

	vocab, runID, err := runScoredPipeline(ctx, cfg, store)
	if err != nil {
		return nil, time.Since(start), err
	}

	rows := outwriter.BuildRows(vocab, cfg.ThresholdA, cfg.ThresholdB)

	if store != nil && runID > 0 {
		if err := store.RecordWordStats(runID, rows); err != nil {
			contract.LogWarn("Failed to record word stats", err)
		}
	}

	return rows, time.Since(start), nil
}

// ExecuteFreqlist runs the pipeline and writes the frequency report.
// It serves as the main entry point for the 'freqlist' command.
func ExecuteFreqlist(ctx context.Context, cfg *contract.Config, store contract.RunStore) error {
	rows, duration, err := GetFreqlistResults(ctx, cfg, store)
	if err != nil {
		return err
	}
	return outwriter.WriteFreqlist(rows, cfg, duration)
}

// ExecuteWordlist ingests the corpus and saves the raw vocabulary snapshot.
// It serves as the main entry point for the 'wordlist' command.
func ExecuteWordlist(ctx context.Context, cfg *contract.Config) error {
	if cfg.SnapshotFile == "" {
		return fmt.Errorf("wordlist requires --snapshot to store the vocabulary")
	}
	if !shouldSuppressHeader(ctx) {
		logRunHeader(cfg)
	}

	parser, res, relevant, err := buildResources(cfg)
	if err != nil {
		return err
	}

	vocab, stats, err := GenWordlist(cfg, parser, res, relevant)
	if err != nil {
		return err
	}

	if err := snapshot.Save(vocab, cfg.SnapshotFile); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Saved %d vocabulary entries from %d documents to %s\n",
		len(vocab), stats.Documents, cfg.SnapshotFile)
	return nil
}

// ExecuteImport reads a TSV wordlist, normalizes it, and either saves a
// snapshot of it or scores it and writes the frequency report.
// It serves as the main entry point for the 'import' command.
func ExecuteImport(_ context.Context, cfg *contract.Config, listPath string) error {
	start := time.Now()

	file, err := os.Open(listPath)
	if err != nil {
		return fmt.Errorf("failed to open wordlist: %w", err)
	}
	defer func() { _ = file.Close() }()

	_, res, _, err := buildResources(cfg)
	if err != nil {
		return err
	}

	vocab, err := LoadWordlist(file, cfg, res)
	if err != nil {
		return err
	}

	if cfg.SnapshotFile != "" {
		if err := snapshot.Save(vocab, cfg.SnapshotFile); err != nil {
			return fmt.Errorf("failed to save snapshot: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Saved %d vocabulary entries to %s\n", len(vocab), cfg.SnapshotFile)
		return nil
	}

	scored, _ := ScoreVocab(vocab, cfg.MaxDiff, cfg.Interval)
	rows := outwriter.BuildRows(scored, cfg.ThresholdA, cfg.ThresholdB)
	return outwriter.WriteFreqlist(rows, cfg, time.Since(start))
}

// GetTrendingWords returns the words surviving the significance filter chain,
// in alphabetical order.
func GetTrendingWords(ctx context.Context, cfg *contract.Config, store contract.RunStore) ([]string, time.Duration, error) {
	start := time.Now()

	var vocab schema.Vocabulary
	if cfg.SnapshotFile != "" {
		loaded, err := snapshot.Load(cfg.SnapshotFile)
		if err != nil {
			return nil, time.Since(start), fmt.Errorf("failed to load snapshot: %w", err)
		}
		vocab, _ = ScoreVocab(loaded, cfg.MaxDiff, cfg.Interval)
	} else {
		var err error
		vocab, _, err = runScoredPipeline(ctx, cfg, store)
		if err != nil {
			return nil, time.Since(start), err
		}
	}

	words := filters.New().Filter(vocab, cfg.Setting)
	sort.Strings(words)
	return words, time.Since(start), nil
}

// ExecuteFilter prints the trending words selected by the filter chain.
// It serves as the main entry point for the 'filter' command.
func ExecuteFilter(ctx context.Context, cfg *contract.Config, store contract.RunStore) error {
	words, _, err := GetTrendingWords(ctx, cfg, store)
	if err != nil {
		return err
	}
	return outwriter.PrintTrendingWords(words, cfg)
}
