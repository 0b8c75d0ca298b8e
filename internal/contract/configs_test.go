package contract

import (
	"testing"
	"time"

	"github.com/adbar/shoten/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInput returns a raw input that passes validation.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		InputDirStr: "corpus",
		MaxDiff:     DefaultMaxDiff,
		MinDiff:     DefaultMinDiff,
		Interval:    DefaultInterval,
		Workers:     4,
		ThresholdA:  DefaultThresA,
		ThresholdB:  DefaultThresB,
		Setting:     string(schema.NormalFilter),
		Output:      string(schema.TSVOut),
	}
}

// TestProcessAndValidateDefaults checks the happy path with defaults.
func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validInput()))

	assert.Equal(t, "corpus", cfg.InputDir)
	assert.Equal(t, ".xml", cfg.Suffix)
	assert.Equal(t, 1000, cfg.MaxDiff)
	assert.Equal(t, 7, cfg.Interval)
	assert.True(t, cfg.Dehyphenation)
	assert.Equal(t, schema.NormalFilter, cfg.Setting)
	assert.Equal(t, schema.NoneBackend, cfg.TrackBackend)
	assert.True(t, cfg.UseColors)
	// reference defaults to today at midnight UTC
	assert.Equal(t, TruncateToDay(time.Now()), cfg.Reference)
}

// TestProcessAndValidateReference parses an explicit reference date.
func TestProcessAndValidateReference(t *testing.T) {
	input := validInput()
	input.Reference = "2024-06-15"
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), cfg.Reference)

	input.Reference = "June 2024"
	assert.Error(t, ProcessAndValidate(&Config{}, input))
}

// TestProcessAndValidateErrors covers each rejection rule.
func TestProcessAndValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ConfigRawInput)
	}{
		{"negative min-days", func(in *ConfigRawInput) { in.MinDiff = -1 }},
		{"window inverted", func(in *ConfigRawInput) { in.MaxDiff = 0 }},
		{"zero interval", func(in *ConfigRawInput) { in.Interval = 0 }},
		{"zero workers", func(in *ConfigRawInput) { in.Workers = 0 }},
		{"bad author regex", func(in *ConfigRawInput) { in.AuthorFilter = "([" }},
		{"negative threshold", func(in *ConfigRawInput) { in.ThresholdA = -0.5 }},
		{"bad output", func(in *ConfigRawInput) { in.Output = "xml" }},
		{"bad backend", func(in *ConfigRawInput) { in.TrackBackend = "oracle" }},
		{"negative width", func(in *ConfigRawInput) { in.Width = -2 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)
			assert.Error(t, ProcessAndValidate(&Config{}, input))
		})
	}
}

// TestProcessAndValidateSettingFallback ensures an unknown filter setting is
// corrected to normal with a warning instead of failing the run.
func TestProcessAndValidateSettingFallback(t *testing.T) {
	input := validInput()
	input.Setting = "draconian"
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, schema.NormalFilter, cfg.Setting)
}

// TestProcessAndValidateLanguages splits and trims the language list.
func TestProcessAndValidateLanguages(t *testing.T) {
	input := validInput()
	input.Languages = "de, en,,fr "
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, []string{"de", "en", "fr"}, cfg.Languages)
}

// TestProcessAndValidateWorkersCap caps the pool size.
func TestProcessAndValidateWorkersCap(t *testing.T) {
	input := validInput()
	input.Workers = 64
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, MaxWorkers, cfg.Workers)
}

// TestProcessAndValidateSuffix normalizes the suffix filter.
func TestProcessAndValidateSuffix(t *testing.T) {
	input := validInput()
	input.Suffix = "tei"
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, ".tei", cfg.Suffix)
}
