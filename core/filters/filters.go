// Package filters implements the default significance filter chain for trend
// detection. Each stage prunes the scored vocabulary further; the strictness
// setting tunes the thresholds.
package filters

import (
	"fmt"

	"github.com/adbar/shoten/internal/contract"
	"github.com/adbar/shoten/schema"
)

// profile bundles the thresholds of one strictness setting.
type profile struct {
	minMean   float64 // minimum mean relative frequency in ppm
	minTotal  float64 // minimum overall corpus frequency in ppm
	maxSpread float64 // stddev must stay below maxSpread * mean; 0 disables the cap
}

var profiles = map[schema.FilterSetting]profile{
	schema.LooseFilter:  {minMean: 0.2, minTotal: 0, maxSpread: 0},
	schema.NormalFilter: {minMean: 0.5, minTotal: 0.1, maxSpread: 1},
	schema.StrictFilter: {minMean: 1, minTotal: 0.5, maxSpread: 0.5},
}

// Chain is the default multi-stage significance filter.
type Chain struct{}

var _ contract.FilterChain = (*Chain)(nil)

// New returns the default filter chain.
func New() *Chain {
	return &Chain{}
}

// Filter returns the word forms considered significant under the given
// setting. An unknown setting falls back to normal with a warning, never an
// error. Words with zero dispersion carry no trend signal and are always
// dropped first.
func (c *Chain) Filter(vocab schema.Vocabulary, setting schema.FilterSetting) []string {
	p, ok := profiles[setting]
	if !ok {
		contract.LogWarn(fmt.Sprintf("invalid setting %q, using %q", setting, schema.NormalFilter), nil)
		p = profiles[schema.NormalFilter]
	}

	var words []string
	for word, entry := range vocab {
		if entry.Stddev == 0 {
			continue
		}
		if entry.Mean < p.minMean || entry.Total < p.minTotal {
			continue
		}
		if p.maxSpread > 0 && entry.Stddev >= entry.Mean*p.maxSpread {
			continue
		}
		words = append(words, word)
	}
	return words
}
