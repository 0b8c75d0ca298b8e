package schema

import "sort"

// Merge concatenates another entry's raw state into e: time series appended,
// source counts summed, heading flag ORed. Merging is structural, no
// statistical recomputation happens here. The absorbed entry is left intact;
// deleting its key is the caller's responsibility.
func (e *Entry) Merge(other *Entry) {
	if other == nil {
		return
	}
	e.TimeSeries = append(e.TimeSeries, other.TimeSeries...)
	for source, count := range other.Sources {
		if e.Sources == nil {
			e.Sources = make(map[string]int)
		}
		e.Sources[source] += count
	}
	if other.Headings {
		e.Headings = true
	}
}

// SortedWords returns the vocabulary keys in alphabetical order.
func (v Vocabulary) SortedWords() []string {
	words := make([]string, 0, len(v))
	for word := range v {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}

// TotalOccurrences sums the raw occurrence counts across all entries.
func (v Vocabulary) TotalOccurrences() int {
	var sum int
	for _, entry := range v {
		sum += len(entry.TimeSeries)
	}
	return sum
}
