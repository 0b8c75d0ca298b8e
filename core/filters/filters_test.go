package filters

import (
	"testing"

	"github.com/adbar/shoten/schema"
	"github.com/stretchr/testify/assert"
)

// scoredEntry builds an entry with the statistical fields populated.
func scoredEntry(total, mean, stddev float64) *schema.Entry {
	entry := schema.NewEntry()
	entry.Total = total
	entry.Mean = mean
	entry.Stddev = stddev
	return entry
}

func sampleVocab() schema.Vocabulary {
	return schema.Vocabulary{
		"flat":   scoredEntry(5, 2, 0),        // zero dispersion, never reported
		"steady": scoredEntry(3, 2, 0.5),      // low spread, passes everywhere
		"noisy":  scoredEntry(1, 0.6, 1.2),    // spread above mean
		"faint":  scoredEntry(0.05, 0.3, 0.1), // barely present
	}
}

// TestFilterSettings checks which words survive each strictness level.
func TestFilterSettings(t *testing.T) {
	chain := New()

	loose := chain.Filter(sampleVocab(), schema.LooseFilter)
	assert.ElementsMatch(t, []string{"steady", "noisy", "faint"}, loose)

	normal := chain.Filter(sampleVocab(), schema.NormalFilter)
	assert.ElementsMatch(t, []string{"steady"}, normal)

	strict := chain.Filter(sampleVocab(), schema.StrictFilter)
	assert.ElementsMatch(t, []string{"steady"}, strict)
}

// TestFilterStrictTotal verifies the corpus-frequency floor of strict mode.
func TestFilterStrictTotal(t *testing.T) {
	vocab := schema.Vocabulary{"marginal": scoredEntry(0.2, 1.5, 0.2)}
	assert.Empty(t, New().Filter(vocab, schema.StrictFilter))
	assert.NotEmpty(t, New().Filter(vocab, schema.NormalFilter))
}

// TestFilterUnknownSetting falls back to normal instead of failing.
func TestFilterUnknownSetting(t *testing.T) {
	got := New().Filter(sampleVocab(), schema.FilterSetting("draconian"))
	assert.ElementsMatch(t, []string{"steady"}, got)
}
