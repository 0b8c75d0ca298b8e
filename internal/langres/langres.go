// Package langres provides the default linguistic resource: per-language
// lemma dictionaries with a snowball stemmer fallback for languages that
// ship no dictionary data.
package langres

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adbar/shoten/internal/contract"
)

// ErrNoAnalysis is returned when no lemmatization analysis exists for a token.
var ErrNoAnalysis = errors.New("no analysis for token")

// snowballNames maps ISO 639-1 codes to the stemmer languages snowball supports.
var snowballNames = map[string]string{
	"en": "english",
	"es": "spanish",
	"fr": "french",
	"hu": "hungarian",
	"no": "norwegian",
	"ru": "russian",
	"sv": "swedish",
}

// Resource implements contract.LangResource over loaded dictionary data.
type Resource struct {
	lemmas    map[string]string   // word form -> lemma
	known     map[string]struct{} // established dictionary forms
	stemLangs []string            // snowball languages enabled as fallback
}

var _ contract.LangResource = (*Resource)(nil)

// Load reads per-language lemma dictionaries from the data directory, one
// TSV file per language code (<code>.tsv, lines of "form TAB lemma").
// A missing dictionary is not fatal: when snowball supports the language the
// stemmer serves as fallback, otherwise the code is skipped with a warning.
// No language codes at all yields an empty resource, which disables the
// lemmatization pass downstream.
func Load(dataDir string, langcodes ...string) (*Resource, error) {
	res := &Resource{
		lemmas: make(map[string]string),
		known:  make(map[string]struct{}),
	}
	for _, code := range langcodes {
		loaded := false
		if dataDir != "" {
			path := filepath.Join(dataDir, code+".tsv")
			if _, err := os.Stat(path); err == nil {
				if err := res.loadDictionary(path); err != nil {
					return nil, err
				}
				loaded = true
			}
		}
		if name, ok := snowballNames[code]; ok {
			res.stemLangs = append(res.stemLangs, name)
		} else if !loaded {
			contract.LogWarn("no language data for code "+code, nil)
		}
	}
	return res, nil
}

// loadDictionary merges one form/lemma TSV file into the resource. Both
// columns count as known dictionary forms.
func (r *Resource) loadDictionary(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot open language data %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		columns := strings.Split(line, "\t")
		if len(columns) != 2 {
			contract.LogWarn(fmt.Sprintf("invalid line %d in %s", lineNum, path), nil)
			continue
		}
		form, lemma := columns[0], columns[1]
		r.lemmas[form] = lemma
		r.known[form] = struct{}{}
		r.known[lemma] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("cannot read language data %s: %w", path, err)
	}
	return nil
}

// Empty reports whether any language data or fallback stemmer is available.
func (r *Resource) Empty() bool {
	return len(r.lemmas) == 0 && len(r.stemLangs) == 0
}

// IsKnown reports whether the token is an established dictionary form.
func (r *Resource) IsKnown(token string) bool {
	if _, ok := r.known[token]; ok {
		return true
	}
	_, ok := r.known[strings.ToLower(token)]
	return ok
}
