package outwriter

import (
	"github.com/adbar/shoten/schema"
)

// BuildRows selects the report rows from a scored vocabulary.
// A word is reported when its mean exceeds thresholdA, or when its mean
// exceeds thresholdB while its spread stays below half the mean. Words with
// zero spread carry no usable signal and are always skipped.
// Rows come out in alphabetical order.
func BuildRows(vocab schema.Vocabulary, thresholdA, thresholdB float64) []schema.FreqRow {
	rows := make([]schema.FreqRow, 0, len(vocab))
	for _, word := range vocab.SortedWords() {
		entry := vocab[word]
		if entry.Stddev == 0 {
			continue
		}
		if entry.Mean > thresholdA || (entry.Mean > thresholdB && entry.Stddev < entry.Mean/2) {
			rows = append(rows, schema.FreqRow{
				Word:      word,
				Total:     entry.Total,
				Mean:      entry.Mean,
				Stddev:    entry.Stddev,
				SeriesRel: entry.SeriesRel,
			})
		}
	}
	return rows
}
