package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// statsSnapshot is the JSON shape of a metrics read: a flat view of
// the counters NovaMetrics tracks. The `nova stats` CLI subcommand
// reports this for a fresh, short-lived App — mainly useful to check
// the metrics wiring itself. The `run` protocol's "stats" verb reports
// it for the long-running daemon, where the numbers actually mean
// something.
type statsSnapshot struct {
	SearchQueries          int64 `json:"search_queries"`
	ExtensionExecutions    int64 `json:"extension_executions"`
	ExtensionExecErrors    int64 `json:"extension_execution_errors"`
	BackgroundTicks        int64 `json:"background_ticks"`
	BackgroundTickErrors   int64 `json:"background_tick_errors"`
	BackgroundCircuitTrips int64 `json:"background_circuit_trips"`
	ClipboardPolls         int64 `json:"clipboard_polls"`
}

func (a *App) statsSnapshot() statsSnapshot {
	return statsSnapshot{
		SearchQueries:          a.metrics.SearchQueries.Value(),
		ExtensionExecutions:    a.metrics.ExtensionExecs.Value(),
		ExtensionExecErrors:    a.metrics.ExtensionExecErrors.Value(),
		BackgroundTicks:        a.metrics.BackgroundTicks.Value(),
		BackgroundTickErrors:   a.metrics.BackgroundTickErrors.Value(),
		BackgroundCircuitTrips: a.metrics.BackgroundCircuitTrips.Value(),
		ClipboardPolls:         a.metrics.ClipboardPolls.Value(),
	}
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print a snapshot of the launcher's runtime metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			cfg := loadConfig()

			app, err := NewApp(cfg, flagExtensionsDir, log)
			if err != nil {
				return fmt.Errorf("start app: %w", err)
			}
			defer app.Close()

			encoded, err := json.MarshalIndent(app.statsSnapshot(), "", "  ")
			if err != nil {
				return fmt.Errorf("encode stats: %w", err)
			}
			fmt.Fprintln(os.Stdout, string(encoded))
			return nil
		},
	}
}
