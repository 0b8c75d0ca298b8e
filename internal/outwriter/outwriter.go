// Package outwriter has output and writer logic for frequency reports.
package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/adbar/shoten/internal/contract"
	pq "github.com/adbar/shoten/internal/parquet"
	"github.com/adbar/shoten/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/term"
)

// WriteFreqlist outputs the frequency report, dispatching based on the
// output format configured.
func WriteFreqlist(rows []schema.FreqRow, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, rows)
		}, "Wrote JSON")
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return errors.New("parquet output requires --output-file")
		}
		if err := pq.WriteFreqRecords(pq.ConvertFreqRows(rows), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote parquet to %s\n", cfg.OutputFile)
		return nil
	case schema.TextOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeFreqTable(rows, cfg, duration, w)
		}, "Wrote table")
	default:
		// Tab-separated values, the interchange format for wordlist tooling.
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return StoreFreqlist(w, rows)
		}, "Wrote TSV")
	}
}

// StoreFreqlist writes the report rows as tab-separated values. The relative
// series is flattened into a single space-separated column so a row stays one
// line regardless of bin count.
func StoreFreqlist(w io.Writer, rows []schema.FreqRow) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = '\t'
	defer csvWriter.Flush()

	if err := csvWriter.Write([]string{"word", "total", "mean", "stddev", "relfreqs"}); err != nil {
		return fmt.Errorf("failed to write TSV header: %w", err)
	}
	for _, row := range rows {
		rec := []string{
			row.Word,
			formatFloat(row.Total),
			formatFloat(row.Mean),
			formatFloat(row.Stddev),
			joinSeries(row.SeriesRel),
		}
		if err := csvWriter.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeFreqTable generates and writes the human-readable table.
func writeFreqTable(rows []schema.FreqRow, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "Word", "Total", "Mean", "Stddev", "Label", "Series"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	label := contract.GetColorLabel
	if !cfg.UseColors {
		label = contract.GetPlainLabel
	}
	seriesWidth := getMaxSeriesWidth(cfg)

	var data [][]string
	for i, row := range rows {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			row.Word,
			formatFloat(row.Total),
			formatFloat(row.Mean),
			formatFloat(row.Stddev),
			label(row.Mean),
			truncateSeries(joinSeries(row.SeriesRel), seriesWidth),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Showing %d trending words\n", len(rows)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v with %d workers\n", duration, cfg.Workers); err != nil {
		return err
	}
	return nil
}

// PrintTrendingWords writes one surviving word per line, for piping into
// other tools.
func PrintTrendingWords(words []string, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		for _, word := range words {
			if _, err := fmt.Fprintln(w, word); err != nil {
				return err
			}
		}
		return nil
	}, "Wrote wordlist")
}

// getMaxSeriesWidth calculates the column budget for the series column
// based on terminal width and the fixed columns of the table.
func getMaxSeriesWidth(cfg *contract.Config) int {
	termWidth := cfg.Width
	if termWidth == 0 {
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Rank, word, three numeric columns and the label, plus borders.
	baseWidth := 60
	available := termWidth - baseWidth
	if available < 12 {
		return 12
	}
	if available > 60 {
		return 60
	}
	return available
}

// truncateSeries shortens the rendered series to fit its column budget.
func truncateSeries(series string, maxWidth int) string {
	if len(series) <= maxWidth {
		return series
	}
	if maxWidth <= 3 {
		return series[:maxWidth]
	}
	return series[:maxWidth-3] + "..."
}

// joinSeries renders the relative series as one space-separated field.
func joinSeries(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatFloat(v)
	}
	return strings.Join(parts, " ")
}

// formatFloat renders values without trailing zeros, matching the three
// decimal places the statistics are rounded to.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
