// Package schema has models, constants and shared types for all parts of shoten.
package schema

import "time"

// Entry holds the aggregate state for a single word form. It is created on the
// first observation of the word and mutated in stages: the builder appends to
// TimeSeries, the normalizer merges variants into it, the binning engine
// truncates it, and the calculator populates the statistical fields while
// releasing the raw data behind them.
type Entry struct {
	TimeSeries []int          // Day offsets, one per occurrence; released once SeriesAbs is derived
	Sources    map[string]int // Source identifier -> occurrence count
	Headings   bool           // True if the word ever occurred in a heading; never reset

	Total     float64   // Overall corpus frequency in parts per million
	SeriesAbs []uint16  // Per-bin absolute counts, oldest to newest; released once SeriesRel is derived
	SeriesRel []float64 // Per-bin relative frequencies in ppm, oldest to newest
	Mean      float64   // Mean of the non-zero relative series
	Stddev    float64   // Population standard deviation of the non-zero relative series
}

// NewEntry returns an Entry ready to receive observations.
func NewEntry() *Entry {
	return &Entry{Sources: make(map[string]int)}
}

// AddSource counts one occurrence of the word under the given source identifier.
// Empty identifiers are ignored.
func (e *Entry) AddSource(source string) {
	if source == "" {
		return
	}
	if e.Sources == nil {
		e.Sources = make(map[string]int)
	}
	e.Sources[source]++
}

// Vocabulary maps word forms to their aggregate entries. Keys are unique;
// deterministic output requires sorting them at export time.
type Vocabulary map[string]*Entry

// Observation is one (token, day offset, source, heading) tuple emitted by a
// document worker and consumed by the vocabulary builder.
type Observation struct {
	Token     string
	DayOffset int
	Source    string
	InHeading bool
}

// Document is the in-memory representation of a parsed input document.
// Fields that were absent from the source are left empty.
type Document struct {
	Date      string   // Publication date in YYYY-MM-DD format
	Author    string   // Author name, if any
	URL       string   // Source URL, preferred over Publisher for the source identifier
	Publisher string   // Publisher name fallback
	Headings  []string // Raw heading/title texts
	Body      string   // Full body text
}

// FreqRow is one record of the frequency report, derived from a scored Entry.
type FreqRow struct {
	Word      string    `json:"word"`
	Total     float64   `json:"total"`
	Mean      float64   `json:"mean"`
	Stddev    float64   `json:"stddev"`
	SeriesRel []float64 `json:"relfreqs"`
}

// RunSummary describes one tracked ingestion run.
type RunSummary struct {
	RunID        int64
	StartTime    time.Time
	EndTime      *time.Time
	Documents    int
	Tokens       int
	VocabSize    int
	ConfigParams string
}

// TrackingStatus reports the state of the run-tracking store.
type TrackingStatus struct {
	Backend    DatabaseBackend
	Location   string
	TotalRuns  int
	TableSizes map[string]int
}
