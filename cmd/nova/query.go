package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newQueryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query <text>",
		Short: "Run a one-shot search and print ranked results as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			cfg := loadConfig()

			app, err := NewApp(cfg, flagExtensionsDir, log)
			if err != nil {
				return fmt.Errorf("start app: %w", err)
			}
			defer app.Close()

			text := strings.Join(args, " ")
			results := app.Query(text)

			encoded, err := json.MarshalIndent(encodeResults(results), "", "  ")
			if err != nil {
				return fmt.Errorf("encode results: %w", err)
			}
			fmt.Fprintln(os.Stdout, string(encoded))
			return nil
		},
	}
}
