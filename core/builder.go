// Package core has the vocabulary aggregation and time-binned statistics pipeline.
package core

import "github.com/adbar/shoten/schema"

// PutInVocab stores the word form in the vocabulary or adds a new occurrence
// to it. Callers are responsible for upstream relevance filtering; the day
// offset is appended unconditionally. Not safe for concurrent use: all merges
// go through the single aggregator loop in GenWordlist.
func PutInVocab(vocab schema.Vocabulary, wordform string, dayOffset int, source string, inHeading bool) {
	entry, ok := vocab[wordform]
	if !ok {
		entry = schema.NewEntry()
		vocab[wordform] = entry
	}
	entry.TimeSeries = append(entry.TimeSeries, dayOffset)
	entry.AddSource(source)
	if inHeading {
		entry.Headings = true
	}
}

// pruneVocab appends the characteristics of the word form scheduled for
// deletion to another one, creating the target entry when absent. Deleting
// the absorbed key stays with the caller.
func pruneVocab(vocab schema.Vocabulary, absorbed, target string) {
	entry, ok := vocab[target]
	if !ok {
		entry = schema.NewEntry()
		vocab[target] = entry
	}
	entry.Merge(vocab[absorbed])
}
