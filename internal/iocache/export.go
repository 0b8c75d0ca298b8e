package iocache

import (
	"errors"
	"fmt"

	"github.com/adbar/shoten/internal/parquet"
)

// ExecuteRunsExport exports the tracked run history to a Parquet file.
func ExecuteRunsExport(outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	store := Manager.GetRunStore()
	if store == nil {
		return errors.New("run tracking is not initialized")
	}

	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get tracking status: %w", err)
	}
	if status.TotalRuns == 0 {
		return errors.New("no tracked runs found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total runs: %d\n", status.TotalRuns)

	runs, err := store.ListRuns(status.TotalRuns)
	if err != nil {
		return fmt.Errorf("failed to retrieve runs: %w", err)
	}

	records := parquet.ConvertRunSummaries(runs)
	if err := parquet.WriteRunRecords(records, outputFile); err != nil {
		return fmt.Errorf("failed to write run history: %w", err)
	}
	fmt.Printf("Exported %d runs to: %s\n", len(records), outputFile)

	return nil
}
