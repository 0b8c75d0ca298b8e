package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestEntryMerge verifies structural concatenation of two entries.
func TestEntryMerge(t *testing.T) {
	target := NewEntry()
	target.TimeSeries = []int{1, 5}
	target.AddSource("example.org")

	absorbed := NewEntry()
	absorbed.TimeSeries = []int{2, 9}
	absorbed.AddSource("example.org")
	absorbed.AddSource("other.net")
	absorbed.Headings = true

	target.Merge(absorbed)

	assert.Equal(t, []int{1, 5, 2, 9}, target.TimeSeries)
	assert.Equal(t, map[string]int{"example.org": 2, "other.net": 1}, target.Sources)
	assert.True(t, target.Headings)

	// absorbed entry is untouched
	assert.Equal(t, []int{2, 9}, absorbed.TimeSeries)
}

// TestEntryMergeNil ensures merging a nil entry is a no-op.
func TestEntryMergeNil(t *testing.T) {
	target := NewEntry()
	target.TimeSeries = []int{3}
	target.Merge(nil)
	assert.Equal(t, []int{3}, target.TimeSeries)
}

// TestAddSourceEmpty ensures empty source identifiers are ignored.
func TestAddSourceEmpty(t *testing.T) {
	entry := NewEntry()
	entry.AddSource("")
	assert.Empty(t, entry.Sources)
}

// TestSortedWords checks deterministic key ordering.
func TestSortedWords(t *testing.T) {
	vocab := Vocabulary{
		"zebra":    NewEntry(),
		"aardvark": NewEntry(),
		"mango":    NewEntry(),
	}
	assert.Equal(t, []string{"aardvark", "mango", "zebra"}, vocab.SortedWords())
}

// TestTotalOccurrences sums raw occurrences across entries.
func TestTotalOccurrences(t *testing.T) {
	first := NewEntry()
	first.TimeSeries = []int{1, 2, 3}
	second := NewEntry()
	second.TimeSeries = []int{4}
	vocab := Vocabulary{"a": first, "b": second}
	assert.Equal(t, 4, vocab.TotalOccurrences())
}
