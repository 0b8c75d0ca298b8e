package core

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/adbar/shoten/internal/contract"
	"github.com/adbar/shoten/schema"
)

// LoadWordlist loads a pre-generated list of occurrences in TSV format:
// token, a date in YYYY-MM-DD format, and an optional source, tab-separated.
// Lines with the wrong column count are reported and skipped, not fatal.
// Occurrences older than the admissible window are dropped silently. The
// resulting vocabulary goes through the normalization pass before returning.
func LoadWordlist(r io.Reader, cfg *contract.Config, res contract.LangResource) (schema.Vocabulary, error) {
	vocab := make(schema.Vocabulary)
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}

		columns := strings.Split(line, "\t")
		var token, date, source string
		switch len(columns) {
		case 2:
			token, date = columns[0], columns[1]
		case 3:
			token, date, source = columns[0], columns[1], columns[2]
		default:
			contract.LogWarn(fmt.Sprintf("invalid line %d: %q", lineNum, line), nil)
			continue
		}

		timediff, ok := contract.CalcTimediff(cfg.Reference, date)
		if !ok || timediff > cfg.MaxDiff {
			continue
		}
		PutInVocab(vocab, token, timediff, source, false)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read word list: %w", err)
	}
	return RefineVocab(vocab, res, false, true), nil
}
