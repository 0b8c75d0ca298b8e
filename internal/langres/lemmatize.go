package langres

import (
	"strings"

	"github.com/kljensen/snowball"
)

// Lemmatize reduces a token to its canonical form: dictionary lookup first
// (exact, then lower-cased), snowball stemming as fallback. It returns
// ErrNoAnalysis when neither produces a result; callers keep the original
// token in that case.
func (r *Resource) Lemmatize(token string) (string, error) {
	if lemma, ok := r.lemmas[token]; ok {
		return lemma, nil
	}
	if lemma, ok := r.lemmas[strings.ToLower(token)]; ok {
		return lemma, nil
	}
	for _, lang := range r.stemLangs {
		stem, err := snowball.Stem(token, lang, false)
		if err == nil && stem != "" {
			return stem, nil
		}
	}
	return "", ErrNoAnalysis
}
