package core

import (
	"math"

	"github.com/adbar/shoten/internal/contract"
	"github.com/adbar/shoten/schema"
)

// ComputeFrequencies computes absolute frequencies of words. Each entry's day
// offsets are partitioned into the bins with half-open windows, walking the
// boundaries from the newest one: the newest bin takes everything at or below
// its boundary, every other bin takes the days in (next younger boundary, own
// boundary]. Counts saturate at MaxSeriesVal so they fit the uint16 series.
// Series are stored oldest to newest, and the raw time series is released
// afterwards. The returned slice holds the per-bin totals across all entries,
// same orientation.
func ComputeFrequencies(vocab schema.Vocabulary, bins []int) (schema.Vocabulary, []int) {
	n := len(bins)
	binTotals := make([]int, n)
	freqsum := vocab.TotalOccurrences()

	for _, entry := range vocab {
		// parts per million
		if freqsum > 0 {
			entry.Total = contract.Round3(float64(len(entry.TimeSeries)) / float64(freqsum) * 1_000_000)
		}

		days := make(map[int]int, len(entry.TimeSeries))
		for _, d := range entry.TimeSeries {
			days[d]++
		}

		series := make([]uint16, n)
		// bins run oldest boundary first; walk them newest first
		for i := range n {
			split := bins[n-1-i]
			var total int
			if i == 0 {
				for d, count := range days {
					if d <= split {
						total += count
					}
				}
			} else {
				younger := bins[n-i]
				for d, count := range days {
					if younger < d && d <= split {
						total += count
					}
				}
			}
			// saturate instead of overflowing the series representation
			total = min(total, schema.MaxSeriesVal)
			// the series runs oldest first
			series[n-1-i] = uint16(total)
			binTotals[n-1-i] += total
		}
		entry.SeriesAbs = series
		entry.TimeSeries = nil // spare memory
	}
	return vocab, binTotals
}

// CombineFrequencies computes relative frequencies and word statistics. Each
// relative value is the entry's share of the bin total in ppm, zero when the
// bin total is zero. Mean and population standard deviation are taken over
// the non-zero relative values, rounded to three decimals. The absolute
// series is released afterwards.
func CombineFrequencies(vocab schema.Vocabulary, bins []int, binTotals []int) schema.Vocabulary {
	for _, entry := range vocab {
		rel := make([]float64, len(bins))
		for i := range bins {
			if binTotals[i] == 0 {
				rel[i] = 0.0
			} else {
				rel[i] = float64(entry.SeriesAbs[i]) / float64(binTotals[i]) * 1_000_000
			}
		}
		entry.SeriesRel = rel

		nonzero := make([]float64, 0, len(rel))
		for _, f := range rel {
			if f != 0.0 {
				nonzero = append(nonzero, f)
			}
		}
		entry.Mean = contract.Round3(mean(nonzero))
		entry.Stddev = contract.Round3(stddevPop(nonzero))
		entry.SeriesAbs = nil // spare memory
	}
	return vocab
}

// mean returns the arithmetic mean, zero for an empty slice.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stddevPop returns the population standard deviation (divisor n, not n-1).
// The reporting thresholds depend on this convention, do not switch to the
// sample variant.
func stddevPop(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	var sum float64
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)))
}
