package snapshot

import (
	"path/filepath"
	"testing"

	"github.com/adbar/shoten/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRoundTrip verifies every entry field survives save/load exactly.
func TestRoundTrip(t *testing.T) {
	raw := schema.NewEntry()
	raw.TimeSeries = []int{14, 7, 7, 3}
	raw.AddSource("example.org")
	raw.AddSource("example.org")
	raw.Headings = true

	scored := schema.NewEntry()
	scored.AddSource("blog.example.net")
	scored.Total = 812.5
	scored.SeriesRel = []float64{0, 125.25, 310.777}
	scored.Mean = 218.014
	scored.Stddev = 92.763

	vocab := schema.Vocabulary{"cromulence": raw, "embiggen": scored}

	path := filepath.Join(t.TempDir(), "vocab.gz")
	require.NoError(t, Save(vocab, path))

	restored, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, vocab, restored)
}

// TestLoadMissing propagates the I/O failure.
func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.gz"))
	assert.Error(t, err)
}

// TestSaveBadPath propagates the I/O failure.
func TestSaveBadPath(t *testing.T) {
	err := Save(schema.Vocabulary{}, filepath.Join(t.TempDir(), "no", "such", "dir", "vocab.gz"))
	assert.Error(t, err)
}
