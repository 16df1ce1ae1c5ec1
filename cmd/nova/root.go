package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nova-launcher/nova/pkg/config"
)

var (
	flagConfigPath   string
	flagExtensionsDir string
	flagLogLevel     string
)

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	switch flagLogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func loadConfig() config.Config {
	return config.LoadFrom(configPathInUse())
}

// configPathInUse resolves the --config flag against config.Path()'s
// XDG default, the single source of truth both loadConfig and the
// run command's config-file watcher consult.
func configPathInUse() string {
	if flagConfigPath != "" {
		return flagConfigPath
	}
	return config.Path()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "nova",
		Short: "Nova — a keyboard-driven productivity launcher",
		Long: `Nova indexes applications, custom scripts, quicklinks, and extension
commands into a single ranked search surface, and runs a sandboxed
extension runtime for background tasks and command output.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, args)
		},
	}

	root.PersistentFlags().StringVar(&flagConfigPath, "config", "", "path to config.toml (defaults to the XDG config location)")
	root.PersistentFlags().StringVar(&flagExtensionsDir, "extensions-dir", "", "extensions directory (defaults to <data dir>/nova/extensions)")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(
		newRunCmd(),
		newQueryCmd(),
		newExtensionsCmd(),
		newSetShortcutCmd(),
		newStatsCmd(),
	)

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
