package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nova-launcher/nova/pkg/audit"
	"github.com/nova-launcher/nova/pkg/platform"
	"github.com/nova-launcher/nova/pkg/platform/linuxplatform"
)

// registerShortcut hands the binding to an external "nova-bind-hotkey"
// hook script via the platform's shell-out, rather than talking to a
// specific desktop environment's keybinding mechanism directly — that
// mechanism is the caller's to provide; Nova only needs to persist the
// binding and invoke whatever hook is installed.
func registerShortcut(plat platform.Platform, binding string) error {
	return plat.RunShellCommand(fmt.Sprintf("nova-bind-hotkey %q", binding))
}

func newSetShortcutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-shortcut <binding>",
		Short: "Persist the launch hotkey and hand it off to the desktop environment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			binding := args[0]

			cfg := loadConfig()
			cfg.General.Hotkey = binding
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("save config: %w", err)
			}

			log := newLogger()
			plat := linuxplatform.New(log)

			auditStore := audit.NewFileStore(filepath.Join(plat.ConfigDir(), "nova", "audit"))
			auditLog := audit.NewLogger(auditStore, "local")

			if err := registerShortcut(plat, binding); err != nil {
				auditLog.LogShortcutChange(context.Background(), binding, &audit.EventResult{Status: "failure", Error: err.Error()})
				fmt.Fprintf(os.Stderr, "shortcut registration failed: %v\n", err)
				os.Exit(1)
			}

			auditLog.LogShortcutChange(context.Background(), binding, &audit.EventResult{Status: "success"})
			fmt.Fprintf(os.Stdout, "shortcut %q saved\n", binding)
			return nil
		},
	}
}
