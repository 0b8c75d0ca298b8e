package iocache

import (
	"fmt"

	"github.com/adbar/shoten/schema"
)

// PrintTrackingStatus prints run-tracking status information.
func PrintTrackingStatus(status schema.TrackingStatus) {
	fmt.Printf("Tracking Backend: %s\n", status.Backend)
	if status.Backend == schema.NoneBackend {
		return
	}
	if status.Location != "" {
		fmt.Printf("Location: %s\n", status.Location)
	}
	fmt.Printf("Total Runs: %d\n", status.TotalRuns)
	fmt.Println("Table Sizes:")
	for table, size := range status.TableSizes {
		fmt.Printf("  %s: %d rows\n", table, size)
	}
}

// PrintRunSummaries prints a run history listing, newest first.
func PrintRunSummaries(runs []schema.RunSummary) {
	if len(runs) == 0 {
		fmt.Println("No tracked runs found.")
		return
	}
	for _, run := range runs {
		endTime := "running"
		if run.EndTime != nil {
			endTime = run.EndTime.Format("2006-01-02 15:04:05")
		}
		fmt.Printf("Run %d: started %s, finished %s\n", run.RunID, run.StartTime.Format("2006-01-02 15:04:05"), endTime)
		fmt.Printf("  documents: %d, tokens: %d, vocabulary size: %d\n", run.Documents, run.Tokens, run.VocabSize)
		if run.ConfigParams != "" {
			fmt.Printf("  config: %s\n", run.ConfigParams)
		}
	}
}
