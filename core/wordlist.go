package core

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adbar/shoten/internal/contract"
	"github.com/adbar/shoten/schema"
)

// IngestStats summarizes one ingestion pass for reporting and run tracking.
type IngestStats struct {
	Documents int // documents that contributed observations
	Tokens    int // observation tuples merged into the vocabulary
}

// FindFiles searches a directory recursively for corpus files with the given
// suffix. Unreadable subtrees abort the walk; an empty result is not an error.
func FindFiles(dir, suffix string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), suffix) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cannot scan corpus directory %s: %w", dir, err)
	}
	return files, nil
}

// readDocument extracts the observation tuples of a single parsed document.
// A nil slice with a nil error means the document was rejected (date outside
// the admissible window, or excluded author); structural defects come back as
// errors. Either way the caller skips the document and continues.
func readDocument(data []byte, cfg *contract.Config, parser contract.DocumentParser, res contract.LangResource, relevant contract.RelevanceFunc) ([]schema.Observation, error) {
	doc, err := parser.Parse(data)
	if err != nil {
		return nil, err
	}

	timediff, ok := contract.CalcTimediff(cfg.Reference, doc.Date)
	if !ok || timediff <= cfg.MinDiff || timediff > cfg.MaxDiff {
		return nil, nil
	}

	if cfg.AuthorRegex != nil && doc.Author != "" && cfg.AuthorRegex.MatchString(doc.Author) {
		return nil, nil
	}

	// source: domain derived from the URL first, publisher info as fallback
	var source string
	if cfg.Details {
		source = contract.ExtractDomain(doc.URL)
		if source == "" {
			source = doc.Publisher
		}
	}

	headwords := make(map[string]bool)
	if cfg.Details {
		for _, token := range res.Tokenize(strings.Join(doc.Headings, " ")) {
			if relevant(token) {
				headwords[token] = true
			}
		}
	}

	observations := []schema.Observation{}
	for _, token := range res.Tokenize(doc.Body) {
		if relevant(token) {
			observations = append(observations, schema.Observation{
				Token:     token,
				DayOffset: timediff,
				Source:    source,
				InHeading: headwords[token],
			})
		}
	}
	return observations, nil
}

// GenWordlist generates a vocabulary of occurrences from an input directory
// of corpus documents. Parsing and extraction run on a bounded worker pool;
// one aggregator loop performs every merge into the shared vocabulary, so no
// lock sits on the parsing hot path. Results are merged in completion order,
// which is fine: the statistics are commutative over observations.
func GenWordlist(cfg *contract.Config, parser contract.DocumentParser, res contract.LangResource, relevant contract.RelevanceFunc) (schema.Vocabulary, *IngestStats, error) {
	files, err := FindFiles(cfg.InputDir, cfg.Suffix)
	if err != nil {
		return nil, nil, err
	}

	fileCh := make(chan string, len(files))
	batchCh := make(chan []schema.Observation, len(files))
	var wg sync.WaitGroup

	// Start worker pool
	for range cfg.Workers {
		wg.Go(func() {
			for path := range fileCh {
				data, err := os.ReadFile(path)
				if err != nil {
					contract.LogWarn("cannot read document "+path, err)
					continue
				}
				observations, err := readDocument(data, cfg, parser, res, relevant)
				if err != nil {
					contract.LogWarn("skipping document "+path, err)
					continue
				}
				if observations != nil {
					batchCh <- observations
				}
			}
		})
	}

	for _, path := range files {
		fileCh <- path
	}
	close(fileCh)

	wg.Wait()
	close(batchCh)

	// Single aggregator: all vocabulary merges happen sequentially here.
	vocab := make(schema.Vocabulary)
	stats := &IngestStats{}
	for batch := range batchCh {
		stats.Documents++
		for _, o := range batch {
			PutInVocab(vocab, o.Token, o.DayOffset, o.Source, o.InHeading)
			stats.Tokens++
		}
	}

	vocab = RefineVocab(vocab, res, cfg.LemmaFilter, cfg.Dehyphenation)
	return vocab, stats, nil
}
