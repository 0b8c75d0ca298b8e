package core

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/adbar/shoten/internal/contract"
	"github.com/adbar/shoten/schema"
)

// filterLemmaform determines whether the token is kept and tries to reduce it
// to its canonical form. ok is false when the word should be dropped from the
// vocabulary entirely.
func filterLemmaform(token string, res contract.LangResource, lemmaFilter bool) (lemma string, ok bool) {
	// potential new words only
	if lemmaFilter && res.IsKnown(token) {
		return "", false
	}
	lemma, err := res.Lemmatize(token)
	if err != nil {
		// no analysis, keep the original token
		return token, true
	}
	if lemma == "" {
		return "", false
	}
	return lemma, true
}

// RefineVocab refines the word list: lemmatize variants into canonical
// entries, then regroup forms with and without hyphens. Merges concatenate
// raw state; no statistics are recomputed.
func RefineVocab(vocab schema.Vocabulary, res contract.LangResource, lemmaFilter, dehyphenation bool) schema.Vocabulary {
	if res != nil && !res.Empty() {
		type change struct{ token, lemma string }
		var changes []change
		var deletions []string
		for token := range vocab {
			lemma, ok := filterLemmaform(token, res, lemmaFilter)
			switch {
			case !ok:
				deletions = append(deletions, token)
			case lemma != token:
				changes = append(changes, change{token, lemma})
				deletions = append(deletions, token)
			}
		}
		for _, c := range changes {
			pruneVocab(vocab, c.token, c.lemma)
		}
		for _, token := range deletions {
			delete(vocab, token)
		}
	}
	if dehyphenation {
		dehyphenVocab(vocab)
	}
	return vocab
}

// dehyphenVocab removes hyphens in words if a variant without hyphens exists,
// fusing the occurrence lists of the two entries.
func dehyphenVocab(vocab schema.Vocabulary) {
	type merge struct{ hyphenated, candidate string }
	var merges []merge
	for wordform := range vocab {
		if !strings.Contains(wordform, "-") {
			continue
		}
		candidate := dehyphenCandidate(wordform)
		if candidate == wordform {
			continue
		}
		if _, exists := vocab[candidate]; exists {
			merges = append(merges, merge{wordform, candidate})
		}
	}
	for _, m := range merges {
		pruneVocab(vocab, m.hyphenated, m.candidate)
		delete(vocab, m.hyphenated)
	}
}

// dehyphenCandidate builds the hyphen-free variant: all hyphens removed,
// remaining characters lower-cased, with the leading capital restored when
// the original word form started uppercase.
func dehyphenCandidate(wordform string) string {
	var b strings.Builder
	b.Grow(len(wordform))
	for _, r := range wordform {
		if r == '-' {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	candidate := b.String()

	first, _ := utf8.DecodeRuneInString(wordform)
	if unicode.IsUpper(first) {
		r, size := utf8.DecodeRuneInString(candidate)
		if r != utf8.RuneError {
			candidate = string(unicode.ToUpper(r)) + candidate[size:]
		}
	}
	return candidate
}
