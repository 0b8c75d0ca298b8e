// main is the entry point for the shoten CLI.
package main

import (
	"github.com/adbar/shoten/cmd"
	"github.com/adbar/shoten/internal/contract"
	"github.com/adbar/shoten/internal/iocache"
)

func main() {
	err := cmd.Execute()
	// Close before exiting so LogFatal's os.Exit cannot skip the cleanup.
	iocache.CloseTracking()
	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
