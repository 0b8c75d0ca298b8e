package core

import (
	"strings"
	"testing"
	"time"

	"github.com/adbar/shoten/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listConfig() *contract.Config {
	return &contract.Config{
		Reference: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		MaxDiff:   1000,
	}
}

func TestLoadWordlist(t *testing.T) {
	list := strings.Join([]string{
		"solidarity\t2024-06-01\tnews.example.org",
		"solidarity\t2024-05-20",
		"movement\t2024-06-10\tblog.example.net",
		"",
	}, "\n")

	vocab, err := LoadWordlist(strings.NewReader(list), listConfig(), nil)
	require.NoError(t, err)

	require.Len(t, vocab, 2)
	entry := vocab["solidarity"]
	assert.ElementsMatch(t, []int{14, 26}, entry.TimeSeries)
	assert.Equal(t, 1, entry.Sources["news.example.org"])
	assert.Equal(t, []int{5}, vocab["movement"].TimeSeries)
}

func TestLoadWordlistMalformedLines(t *testing.T) {
	list := strings.Join([]string{
		"solidarity\t2024-06-01",
		"toomany\t2024-06-01\tsrc\textra",
		"justoken",
		"baddate\t01.06.2024",
	}, "\n")

	vocab, err := LoadWordlist(strings.NewReader(list), listConfig(), nil)
	require.NoError(t, err)

	// malformed lines and unparseable dates are skipped, not fatal
	require.Len(t, vocab, 1)
	assert.Contains(t, vocab, "solidarity")
}

func TestLoadWordlistAgeLimit(t *testing.T) {
	cfg := listConfig()
	cfg.MaxDiff = 30

	list := strings.Join([]string{
		"recent\t2024-06-01",
		"ancient\t2020-01-01",
	}, "\n")

	vocab, err := LoadWordlist(strings.NewReader(list), cfg, nil)
	require.NoError(t, err)

	assert.Contains(t, vocab, "recent")
	assert.NotContains(t, vocab, "ancient")
}

func TestLoadWordlistDehyphenates(t *testing.T) {
	list := strings.Join([]string{
		"co-operate\t2024-06-01",
		"cooperate\t2024-06-10",
	}, "\n")

	vocab, err := LoadWordlist(strings.NewReader(list), listConfig(), nil)
	require.NoError(t, err)

	require.Len(t, vocab, 1)
	assert.ElementsMatch(t, []int{14, 5}, vocab["cooperate"].TimeSeries)
}
