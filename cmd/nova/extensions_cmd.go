package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExtensionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extensions",
		Short: "Inspect or rescan installed extensions",
	}
	cmd.AddCommand(newExtensionsListCmd(), newExtensionsReloadCmd())
	return cmd
}

func newExtensionsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every indexed extension id",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			cfg := loadConfig()

			app, err := NewApp(cfg, flagExtensionsDir, log)
			if err != nil {
				return fmt.Errorf("start app: %w", err)
			}
			defer app.Close()

			encoded, err := json.MarshalIndent(app.extHost.Extensions(), "", "  ")
			if err != nil {
				return fmt.Errorf("encode extensions: %w", err)
			}
			fmt.Fprintln(os.Stdout, string(encoded))
			return nil
		},
	}
}

func newExtensionsReloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reload",
		Short: "Rescan the extensions directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			cfg := loadConfig()

			app, err := NewApp(cfg, flagExtensionsDir, log)
			if err != nil {
				return fmt.Errorf("start app: %w", err)
			}
			defer app.Close()

			if err := app.ReloadExtensions(); err != nil {
				return fmt.Errorf("reload extensions: %w", err)
			}

			encoded, err := json.MarshalIndent(app.extHost.Extensions(), "", "  ")
			if err != nil {
				return fmt.Errorf("encode extensions: %w", err)
			}
			fmt.Fprintln(os.Stdout, string(encoded))
			return nil
		},
	}
}
