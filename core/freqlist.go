package core

import (
	"github.com/adbar/shoten/internal/contract"
	"github.com/adbar/shoten/schema"
)

// GenFreqlist computes long-term frequency info out of a directory of corpus
// documents: ingestion, normalization, binning and the two frequency passes.
// An empty vocabulary with nil bins means the corpus does not span a full
// interval — not enough data, not an error.
func GenFreqlist(cfg *contract.Config, parser contract.DocumentParser, res contract.LangResource, relevant contract.RelevanceFunc) (schema.Vocabulary, []int, *IngestStats, error) {
	vocab, stats, err := GenWordlist(cfg, parser, res, relevant)
	if err != nil {
		return nil, nil, nil, err
	}
	vocab, bins := ScoreVocab(vocab, cfg.MaxDiff, cfg.Interval)
	return vocab, bins, stats, nil
}

// ScoreVocab runs the statistics half of the pipeline over an already built
// vocabulary: bin derivation, range refinement and the absolute/relative
// frequency passes. Returns the empty vocabulary and nil bins when the
// observed span is too short for a single bin.
func ScoreVocab(vocab schema.Vocabulary, maxDiff, interval int) (schema.Vocabulary, []int) {
	oldestDay, newestDay := ObservedRange(vocab, maxDiff)
	bins := CalculateBins(oldestDay, newestDay, interval)
	if len(bins) == 0 {
		contract.LogWarn("not enough days to compute frequencies", nil)
		return schema.Vocabulary{}, nil
	}

	vocab = RefineFrequencies(vocab, bins)
	vocab, binTotals := ComputeFrequencies(vocab, bins)
	vocab = CombineFrequencies(vocab, bins, binTotals)
	return vocab, bins
}
