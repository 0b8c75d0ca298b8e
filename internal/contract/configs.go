package contract

import (
	"fmt"
	"regexp"
	"runtime"
	"strings"
	"time"

	"github.com/adbar/shoten/schema"
)

// Default values for configuration.
const (
	DefaultMaxDiff  = 1000 // oldest admissible day offset
	DefaultMinDiff  = 0    // newest admissible day offset
	DefaultInterval = 7    // bin width in days, usually weeks
	DefaultThresA   = 1.0  // primary mean-ppm threshold for the report
	DefaultThresB   = 0.2  // secondary mean-ppm threshold for the report
	MaxWorkers      = 16
)

// DefaultWorkers is the default number of concurrent document workers.
var DefaultWorkers = min(runtime.GOMAXPROCS(0), MaxWorkers)

// Config holds the runtime configuration for a run.
// This struct remains the "final, validated" config.
type Config struct {
	InputDir  string    // Directory of input documents (positional arg)
	Reference time.Time // Reference date for all day-offset computations
	MaxDiff   int       // Documents older than this many days are rejected
	MinDiff   int       // Documents newer than this many days are rejected
	Interval  int       // Bin width in days
	Workers   int       // Number of concurrent document workers
	Suffix    string    // File suffix filter for corpus discovery

	Languages     []string       // Language codes for the linguistic resource
	LangDataDir   string         // Directory holding per-language lemma data
	LemmaFilter   bool           // Skip lemmatization of already-known forms
	Dehyphenation bool           // Merge hyphenated variants into hyphen-free ones
	AuthorRegex   *regexp.Regexp // Documents with a matching author are skipped
	Details       bool           // Collect source and heading metadata

	ThresholdA float64              // Report threshold: mean above this always passes
	ThresholdB float64              // Report threshold: mean above this passes when dispersion is low
	Setting    schema.FilterSetting // Significance filter strictness

	Output       schema.OutputMode
	OutputFile   string
	SnapshotFile string

	TrackBackend   schema.DatabaseBackend
	TrackDBConnect string // Please use env var as this is plaintext

	UseColors bool // Enable colored labels in table output
	Width     int  // Terminal width override (0 = auto-detect)
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	InputDirStr string

	Reference      string  `mapstructure:"reference"`
	MaxDiff        int     `mapstructure:"max-days"`
	MinDiff        int     `mapstructure:"min-days"`
	Interval       int     `mapstructure:"interval"`
	Workers        int     `mapstructure:"workers"`
	Suffix         string  `mapstructure:"suffix"`
	Languages      string  `mapstructure:"langs"`
	LangDataDir    string  `mapstructure:"lang-data"`
	LemmaFilter    bool    `mapstructure:"lemma-filter"`
	NoDehyphen     bool    `mapstructure:"no-dehyphen"`
	AuthorFilter   string  `mapstructure:"author-filter"`
	Details        bool    `mapstructure:"details"`
	ThresholdA     float64 `mapstructure:"thres-a"`
	ThresholdB     float64 `mapstructure:"thres-b"`
	Setting        string  `mapstructure:"setting"`
	Output         string  `mapstructure:"output"`
	OutputFile     string  `mapstructure:"output-file"`
	SnapshotFile   string  `mapstructure:"snapshot"`
	TrackBackend   string  `mapstructure:"track-backend"`
	TrackDBConnect string  `mapstructure:"track-db-connect"`
	Color          string  `mapstructure:"color"`
	Width          int     `mapstructure:"width"`
}

// ProcessAndValidate performs all complex parsing and validation on the raw
// inputs and populates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	cfg.InputDir = input.InputDirStr

	// --- 1. Reference date ---
	cfg.Reference = TruncateToDay(time.Now())
	if input.Reference != "" {
		t, err := time.Parse(schema.DateFormat, input.Reference)
		if err != nil {
			return fmt.Errorf("invalid reference date %q. must be YYYY-MM-DD: %v", input.Reference, err)
		}
		cfg.Reference = t
	}

	// --- 2. Day-offset window ---
	if input.MinDiff < 0 {
		return fmt.Errorf("min-days must be >= 0 (received %d)", input.MinDiff)
	}
	if input.MaxDiff <= input.MinDiff {
		return fmt.Errorf("max-days (%d) must be greater than min-days (%d)", input.MaxDiff, input.MinDiff)
	}
	cfg.MinDiff = input.MinDiff
	cfg.MaxDiff = input.MaxDiff

	// --- 3. Interval and workers ---
	if input.Interval <= 0 {
		return fmt.Errorf("interval must be greater than 0 (received %d)", input.Interval)
	}
	cfg.Interval = input.Interval
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = min(input.Workers, MaxWorkers)

	// --- 4. Corpus discovery ---
	cfg.Suffix = input.Suffix
	if cfg.Suffix == "" {
		cfg.Suffix = ".xml"
	}
	if !strings.HasPrefix(cfg.Suffix, ".") {
		cfg.Suffix = "." + cfg.Suffix
	}

	// --- 5. Linguistic resource ---
	if input.Languages != "" {
		for lang := range strings.SplitSeq(input.Languages, ",") {
			lang = strings.TrimSpace(lang)
			if lang != "" {
				cfg.Languages = append(cfg.Languages, lang)
			}
		}
	}
	cfg.LangDataDir = input.LangDataDir
	cfg.LemmaFilter = input.LemmaFilter
	cfg.Dehyphenation = !input.NoDehyphen
	cfg.Details = input.Details

	// --- 6. Author exclusion pattern ---
	if input.AuthorFilter != "" {
		re, err := regexp.Compile(input.AuthorFilter)
		if err != nil {
			return fmt.Errorf("invalid author-filter pattern %q: %v", input.AuthorFilter, err)
		}
		cfg.AuthorRegex = re
	}

	// --- 7. Report thresholds ---
	if input.ThresholdA < 0 || input.ThresholdB < 0 {
		return fmt.Errorf("thresholds must be >= 0 (received %v and %v)", input.ThresholdA, input.ThresholdB)
	}
	cfg.ThresholdA = input.ThresholdA
	cfg.ThresholdB = input.ThresholdB

	// --- 8. Filter setting ---
	// An unknown setting is corrected to the default with a warning, never an error.
	cfg.Setting = schema.FilterSetting(strings.ToLower(input.Setting))
	switch cfg.Setting {
	case schema.LooseFilter, schema.NormalFilter, schema.StrictFilter:
	default:
		LogWarn(fmt.Sprintf("invalid setting %q, falling back to %q", input.Setting, schema.NormalFilter), nil)
		cfg.Setting = schema.NormalFilter
	}

	// --- 9. Output ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	switch cfg.Output {
	case schema.TSVOut, schema.TextOut, schema.JSONOut, schema.ParquetOut:
	default:
		return fmt.Errorf("invalid output format %q. must be tsv, text, json or parquet", input.Output)
	}
	cfg.OutputFile = input.OutputFile
	cfg.SnapshotFile = input.SnapshotFile

	// --- 10. Run tracking ---
	cfg.TrackBackend = schema.DatabaseBackend(strings.ToLower(input.TrackBackend))
	switch cfg.TrackBackend {
	case schema.SQLiteBackend, schema.MySQLBackend, schema.PostgreSQLBackend, schema.NoneBackend:
	case "":
		cfg.TrackBackend = schema.NoneBackend
	default:
		return fmt.Errorf("invalid track backend %q. must be sqlite, mysql, postgresql or none", input.TrackBackend)
	}
	cfg.TrackDBConnect = input.TrackDBConnect

	// --- 11. Presentation ---
	cfg.UseColors = parseBoolish(input.Color, true)
	if input.Width < 0 {
		return fmt.Errorf("width must be >= 0 (received %d)", input.Width)
	}
	cfg.Width = input.Width

	return nil
}

// Clone returns a copy of the config that can be adjusted per request
// without touching the shared base configuration.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Languages = append([]string(nil), c.Languages...)
	return &clone
}

// ConfigParams returns the loggable subset of the config for run tracking.
func (c *Config) ConfigParams() map[string]any {
	return map[string]any{
		"input_dir": c.InputDir,
		"reference": c.Reference.Format(schema.DateFormat),
		"max_days":  c.MaxDiff,
		"min_days":  c.MinDiff,
		"interval":  c.Interval,
		"workers":   c.Workers,
		"langs":     strings.Join(c.Languages, ","),
		"setting":   string(c.Setting),
	}
}

// ValidateDatabaseConnectionString checks that a tracking backend has the
// connection string it needs. SQLite and None need nothing.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("track-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("track-db-connect is required when using %s backend", backend)
		}
	default:
		return fmt.Errorf("unsupported tracking backend: %s", backend)
	}
	return nil
}

// parseBoolish interprets yes/no/true/false/1/0 with a default for anything else.
func parseBoolish(value string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "true", "1", "on":
		return true
	case "no", "false", "0", "off":
		return false
	default:
		return fallback
	}
}
