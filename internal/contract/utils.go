package contract

import (
	"fmt"
	"math"
	"os"

	"github.com/fatih/color"
)

// Frequency label constants.
const (
	FrequentValue = "Frequent" // well-established high-frequency word
	CommonValue   = "Common"   // regular presence across the corpus
	NotableValue  = "Notable"  // above the reporting thresholds
	RareValue     = "Rare"     // barely above noise
)

// Color variables for console output.
var (
	FrequentColor = color.New(color.FgRed, color.Bold)
	CommonColor   = color.New(color.FgMagenta, color.Bold)
	NotableColor  = color.New(color.FgYellow)
	RareColor     = color.New(color.FgCyan)
)

// GetPlainLabel returns a plain text label for a word's mean relative
// frequency in ppm. This is the core logic used for TSV, JSON, and table
// printing.
func GetPlainLabel(mean float64) string {
	switch {
	case mean >= 100:
		return FrequentValue
	case mean >= 10:
		return CommonValue
	case mean >= 1:
		return NotableValue
	default:
		return RareValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
func GetColorLabel(mean float64) string {
	text := GetPlainLabel(mean)

	switch text {
	case FrequentValue:
		return FrequentColor.Sprint(text)
	case CommonValue:
		return CommonColor.Sprint(text)
	case NotableValue:
		return NotableColor.Sprint(text)
	default: // "Rare"
		return RareColor.Sprint(text)
	}
}

// Round3 rounds to three decimal places, the precision used throughout the
// frequency statistics.
func Round3(value float64) float64 {
	return math.Round(value*1000) / 1000
}

// SelectOutputFile returns the appropriate file handle for output based on
// the provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning %s: %v\n", msg, err)
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "Warning %s\n", msg)
}
