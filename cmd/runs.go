package cmd

import (
	"fmt"

	"github.com/adbar/shoten/internal/contract"
	"github.com/adbar/shoten/internal/iocache"
	"github.com/adbar/shoten/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runsSetup loads minimal configuration needed for run-tracking operations.
// This is used by commands that need store access without full shared setup.
func runsSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get tracking-related config values
	backendStr := viper.GetString("track-backend")
	connStr := viper.GetString("track-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Initialize tracking with the loaded config
	if err := iocache.InitTracking(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize run tracking: %w", err)
	}

	cfg.TrackBackend = backend
	cfg.TrackDBConnect = connStr
	cfg.OutputFile = viper.GetString("output-file")

	return nil
}

// runsSetupWrapper wraps runsSetup to provide PreRunE for runs commands.
func runsSetupWrapper(_ *cobra.Command, _ []string) error {
	return runsSetup()
}

// runsMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize the store or create
// tables, allowing migrations to run on a fresh database.
func runsMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backendStr := viper.GetString("track-backend")
	connStr := viper.GetString("track-db-connect")

	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.TrackBackend = backend
	cfg.TrackDBConnect = connStr

	return nil
}

// runsCmd focused on run-tracking management.
//
// Note: Runs subcommands use minimal initialization (runsSetup) instead of
// the full sharedSetup used by analysis commands. This avoids corpus
// validation and linguistic-resource loading for simple store operations.
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Manage tracked ingestion runs",
	Long: `Manage the store that records ingestion runs and the significant
words each run produced.

Supported backends: SQLite (default file in the home directory), MySQL,
PostgreSQL, or None (tracking disabled)

Subcommands:
  status  - Show store statistics and connection info
  list    - Show the most recent tracked runs
  clear   - Remove all tracked run data
  export  - Export the run history to a Parquet file
  migrate - Run schema migrations on the tracking database

Examples:
  # Check tracking status
  shoten runs status --track-backend sqlite

  # Inspect recent runs
  shoten runs list --track-backend sqlite --limit 5`,
}

// runsStatusCmd shows run-tracking status.
var runsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display tracking store statistics and connection details",
	Long: `Show detailed information about the run-tracking store.

Displays:
- Backend type and location
- Total number of tracked runs
- Row counts per tracking table

Examples:
  # Check tracking status (SQLite default location)
  shoten runs status --track-backend sqlite`,
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := iocache.Manager.GetRunStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get tracking status", err)
		}
		iocache.PrintTrackingStatus(status)
	},
}

// runsListCmd lists recent tracked runs.
var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the most recent tracked runs, newest first",
	Long: `List tracked ingestion runs with their time range, document and
token counts and vocabulary size.

Examples:
  # Show the last ten runs
  shoten runs list --track-backend sqlite

  # Show more history
  shoten runs list --track-backend sqlite --limit 50`,
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runs, err := iocache.Manager.GetRunStore().ListRuns(viper.GetInt("limit"))
		if err != nil {
			contract.LogFatal("Failed to list runs", err)
		}
		iocache.PrintRunSummaries(runs)
	},
}

// runsClearCmd clears the tracked run data.
var runsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all tracked run data",
	Long: `Delete all tracked run data from the configured backend.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the tracking tables

Examples:
  # Clear the SQLite store
  shoten runs clear --track-backend sqlite

  # Clear a PostgreSQL store (set connection string via env variable)
  SHOTEN_TRACK_BACKEND=postgresql SHOTEN_TRACK_DB_CONNECT="..." shoten runs clear`,
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ClearRuns(cfg.TrackBackend, iocache.GetRunsDBFilePath(), cfg.TrackDBConnect); err != nil {
			contract.LogFatal("Failed to clear runs", err)
		}
		fmt.Println("Run data cleared successfully.")
	},
}

// runsExportCmd exports the run history.
var runsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the tracked run history to a Parquet file",
	Long: `Write all tracked runs to a Parquet file for analysis in external
tooling.

Examples:
  # Export the full run history
  shoten runs export --track-backend sqlite --output-file runs.parquet`,
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ExecuteRunsExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export runs", err)
		}
	},
}

// runsMigrateCmd runs schema migrations on the tracking database.
var runsMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run schema migrations on the tracking database",
	Long: `Apply or roll back the embedded SQL migrations for the run-tracking
schema.

The target version controls the direction:
  -1  migrate to the latest version (default)
   0  roll back all migrations
   N  migrate to version N

Examples:
  # Migrate to the latest schema
  shoten runs migrate --track-backend sqlite

  # Roll everything back
  shoten runs migrate --track-backend sqlite --target-version 0`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return runsMigrateSetup()
	},
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.MigrateTracking(cfg.TrackBackend, cfg.TrackDBConnect, viper.GetInt("target-version")); err != nil {
			contract.LogFatal("Failed to migrate tracking database", err)
		}
	},
}
