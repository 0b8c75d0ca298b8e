package schema

import "math"

// Custom string types for type safety.
type (
	// OutputMode represents the format of the frequency report.
	OutputMode string

	// FilterSetting represents the strictness of the significance filter chain.
	FilterSetting string

	// DatabaseBackend represents the database backend for run tracking.
	DatabaseBackend string
)

// All output modes supported.
const (
	TSVOut     OutputMode = "tsv" // default
	TextOut    OutputMode = "text"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All filter settings supported.
const (
	LooseFilter  FilterSetting = "loose"
	NormalFilter FilterSetting = "normal" // default
	StrictFilter FilterSetting = "strict"
)

// All tracking backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite"
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none" // default
)

// MaxSeriesVal saturates a single bin count so it fits the uint16 series
// representation. Larger counts are capped, not treated as errors.
const MaxSeriesVal = math.MaxUint16

// DateFormat is the date representation used in documents and word lists.
const DateFormat = "2006-01-02"
