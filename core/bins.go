package core

import "github.com/adbar/shoten/schema"

// CalculateBins calculates time frame bins to fit the data (usually weeks).
// The result is a strictly decreasing list of day offsets, each a multiple of
// the interval and at least one full interval younger than the oldest observed
// day. An empty result signals that the observed span is shorter than one
// interval; callers must treat that as "not enough data", not as an error.
func CalculateBins(oldestDay, newestDay, interval int) []int {
	var bins []int
	for d := oldestDay; d >= newestDay; d-- {
		if oldestDay-d >= interval && d%interval == 0 {
			bins = append(bins, d)
		}
	}
	return bins
}

// ObservedRange scans the vocabulary for the oldest and newest recorded day
// offsets. The defaults cover an empty vocabulary: oldest 0, newest maxDiff.
func ObservedRange(vocab schema.Vocabulary, maxDiff int) (oldestDay, newestDay int) {
	oldestDay, newestDay = 0, maxDiff
	for _, entry := range vocab {
		for _, d := range entry.TimeSeries {
			if d > oldestDay {
				oldestDay = d
			}
			if d < newestDay {
				newestDay = d
			}
		}
	}
	return oldestDay, newestDay
}

// RefineFrequencies adjusts the occurrences to the bin range and removes
// words with too little data. Only day offsets within [bins[last], bins[0])
// survive; entries left with one occurrence or fewer are deleted.
func RefineFrequencies(vocab schema.Vocabulary, bins []int) schema.Vocabulary {
	if len(bins) == 0 {
		return vocab
	}
	newest, oldest := bins[len(bins)-1], bins[0]
	var deletions []string
	for word, entry := range vocab {
		kept := make([]int, 0, len(entry.TimeSeries))
		for _, d := range entry.TimeSeries {
			if newest <= d && d < oldest {
				kept = append(kept, d)
			}
		}
		if len(kept) <= 1 {
			deletions = append(deletions, word)
		} else {
			entry.TimeSeries = kept
		}
	}
	for _, word := range deletions {
		delete(vocab, word)
	}
	return vocab
}
