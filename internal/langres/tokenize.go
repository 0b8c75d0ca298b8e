package langres

import (
	"regexp"
	"strings"
	"unicode"
)

// tokenRE matches word forms: a letter or digit followed by letters, digits,
// hyphens or apostrophes. Punctuation splits tokens.
var tokenRE = regexp.MustCompile(`[\p{L}\p{N}][\p{L}\p{N}'’-]*`)

// SplitTokens splits raw text into word-form tokens, case preserved.
func SplitTokens(text string) []string {
	return tokenRE.FindAllString(text, -1)
}

// Tokenize splits raw text into word-form tokens, case preserved.
func (r *Resource) Tokenize(text string) []string {
	return SplitTokens(text)
}

// Relevance heuristics for vocabulary admission.
const (
	minTokenLen = 4
	maxTokenLen = 50
)

// IsRelevantInput decides whether a token is worth tracking at all: long
// enough to be a content word, short enough to be a word at all, letters and
// hyphens only, not all caps, and no leading or trailing hyphen.
func IsRelevantInput(token string) bool {
	runes := []rune(token)
	if len(runes) < minTokenLen || len(runes) > maxTokenLen {
		return false
	}
	if strings.HasPrefix(token, "-") || strings.HasSuffix(token, "-") {
		return false
	}
	allUpper := true
	for _, r := range runes {
		if r != '-' && !unicode.IsLetter(r) {
			return false
		}
		if !unicode.IsUpper(r) && r != '-' {
			allUpper = false
		}
	}
	return !allUpper
}
