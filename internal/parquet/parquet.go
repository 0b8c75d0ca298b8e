// Package parquet exports shoten data to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/adbar/shoten/schema"
	"github.com/parquet-go/parquet-go"
)

// FreqRecord is one row of the frequency report in Parquet form.
// The relative series is flattened to a comma-separated string so the file
// stays readable by every Parquet consumer without nested-list support.
type FreqRecord struct {
	Word     string  `parquet:"word,snappy"`
	Total    float64 `parquet:"total,snappy"`
	Mean     float64 `parquet:"mean,snappy"`
	Stddev   float64 `parquet:"stddev,snappy"`
	RelFreqs string  `parquet:"relfreqs,snappy"`
	BinCount int32   `parquet:"bin_count,snappy"`
}

// RunRecord is one tracked ingestion run in Parquet form.
type RunRecord struct {
	RunID        int64      `parquet:"run_id,snappy"`
	StartTime    time.Time  `parquet:"start_time,snappy"`
	EndTime      *time.Time `parquet:"end_time,optional,snappy"`
	Documents    int32      `parquet:"documents,snappy"`
	Tokens       int64      `parquet:"tokens,snappy"`
	VocabSize    int32      `parquet:"vocab_size,snappy"`
	ConfigParams *string    `parquet:"config_params,optional,snappy"`
}

// ConvertFreqRows turns report rows into Parquet records.
func ConvertFreqRows(rows []schema.FreqRow) []FreqRecord {
	records := make([]FreqRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, FreqRecord{
			Word:     row.Word,
			Total:    row.Total,
			Mean:     row.Mean,
			Stddev:   row.Stddev,
			RelFreqs: joinFloats(row.SeriesRel),
			BinCount: int32(len(row.SeriesRel)),
		})
	}
	return records
}

// ConvertRunSummaries turns tracked runs into Parquet records.
func ConvertRunSummaries(runs []schema.RunSummary) []RunRecord {
	records := make([]RunRecord, 0, len(runs))
	for _, run := range runs {
		record := RunRecord{
			RunID:     run.RunID,
			StartTime: run.StartTime,
			EndTime:   run.EndTime,
			Documents: int32(run.Documents),
			Tokens:    int64(run.Tokens),
			VocabSize: int32(run.VocabSize),
		}
		if run.ConfigParams != "" {
			params := run.ConfigParams
			record.ConfigParams = &params
		}
		records = append(records, record)
	}
	return records
}

// WriteFreqRecords writes the frequency report to a Parquet file.
func WriteFreqRecords(records []FreqRecord, outputPath string) error {
	return writeRecords(records, outputPath)
}

// WriteRunRecords writes the run history to a Parquet file.
func WriteRunRecords(records []RunRecord, outputPath string) error {
	return writeRecords(records, outputPath)
}

// writeRecords writes any record slice using struct schema inference.
func writeRecords[T any](records []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(records); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finish parquet file: %w", err)
	}
	return nil
}

// joinFloats renders the relative series as a compact comma-separated string.
func joinFloats(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}
