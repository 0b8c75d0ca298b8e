// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"time"

	"github.com/adbar/shoten/schema"
)

// DocumentParser extracts a structured document from raw file bytes.
// This allows the ingestion pipeline to be tested without real corpus files,
// and keeps the XML handling out of the core logic.
type DocumentParser interface {
	// Parse turns the raw bytes of one input file into a Document.
	// A structural defect in the file yields an error; callers skip the
	// document and continue with the batch.
	Parse(data []byte) (*schema.Document, error)
}

// LangResource bundles the linguistic operations the pipeline consumes.
type LangResource interface {
	// Tokenize splits raw text into word-form tokens.
	Tokenize(text string) []string

	// IsKnown reports whether the token is an established dictionary form.
	IsKnown(token string) bool

	// Lemmatize reduces a token to its canonical form. It returns an error
	// when no analysis exists; callers fall back to the original token.
	Lemmatize(token string) (string, error)

	// Empty reports whether any language data is loaded. With an empty
	// resource the lemmatization pass is skipped entirely.
	Empty() bool
}

// RelevanceFunc decides whether a token enters the vocabulary at all.
type RelevanceFunc func(token string) bool

// FilterChain selects the trending subset of a scored vocabulary.
type FilterChain interface {
	// Filter returns the word forms considered significant under the given
	// strictness setting, in no particular order.
	Filter(vocab schema.Vocabulary, setting schema.FilterSetting) []string
}

// RunStore tracks ingestion runs and the significant words they produced.
// This allows the tracking layer to be mocked for testing.
type RunStore interface {
	// BeginRun creates a new run record and returns its unique ID.
	BeginRun(startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the run record with completion data.
	EndRun(runID int64, endTime time.Time, documents, tokens, vocabSize int) error

	// RecordWordStats stores the significant rows of a finished run.
	RecordWordStats(runID int64, rows []schema.FreqRow) error

	// ListRuns returns the most recent runs, newest first.
	ListRuns(limit int) ([]schema.RunSummary, error)

	// GetStatus returns status information about the tracking store.
	GetStatus() (schema.TrackingStatus, error)

	// Close closes the underlying connection.
	Close() error
}
