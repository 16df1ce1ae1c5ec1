// Package executor turns a selected search result into a concrete
// platform action and reports what the UI should do afterward: hide
// the window, keep it open, open settings, quit, show an error, or
// wait for more input.
package executor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/nova-launcher/nova/pkg/platform"
	"github.com/nova-launcher/nova/pkg/search"
)

// scriptTimeout bounds a custom script's run so a hung script can't
// wedge the launcher.
const scriptTimeout = 30 * time.Second

// Outcome is what the UI does after an action runs.
type Outcome int

const (
	Success Outcome = iota
	SuccessKeepOpen
	OpenSettings
	Quit
	NeedsInput
	ActionError
)

// Result is the full outcome of an Execute call: the UI verb plus an
// optional error message when Outcome is ActionError.
type Result struct {
	Outcome Outcome
	Message string
}

func ok() Result                  { return Result{Outcome: Success} }
func okKeepOpen() Result          { return Result{Outcome: SuccessKeepOpen} }
func failed(err error) Result     { return Result{Outcome: ActionError, Message: err.Error()} }
func failedMsg(msg string) Result { return Result{Outcome: ActionError, Message: msg} }
func needsInput() Result          { return Result{Outcome: NeedsInput} }

// ExtensionRunner is the slice of an extension host Execute needs to
// run an extension command, kept narrow so this package doesn't import
// pkg/extensions directly.
type ExtensionRunner interface {
	ExecuteCommand(extensionID, commandID string, argument string, hasArgument bool) (string, error)
}

// Execute dispatches result to the right platform operation and
// reports the outcome. plat performs the actual OS-level work;
// extensions (nil is fine if no extension host is wired up) runs
// extension commands.
func Execute(result search.Result, plat platform.Platform, extensions ExtensionRunner) Result {
	switch r := result.(type) {
	case search.App:
		return executeLaunchApp(r, plat)

	case search.BuiltinCommand:
		return executeBuiltinCommand(r, plat)

	case search.Alias:
		return executeShellCommand(r.Target, plat)

	case search.Quicklink:
		if r.HasQuery {
			return needsInput()
		}
		return executeOpenURL(r.URLTemplate, plat)

	case search.ResolvedQuicklink:
		return executeOpenURL(r.URL, plat)

	case search.Script:
		if r.HasArgument {
			return needsInput()
		}
		return executeScript(r.Path, "", false, r.OutputMode, plat)

	case search.ScriptWithArg:
		return executeScript(r.Path, r.Argument, true, r.OutputMode, plat)

	case search.ExtensionCommand:
		if r.HasArgument {
			return needsInput()
		}
		return executeExtensionCommand(r.ExtensionID, r.CommandID, "", false, r.OutputMode, plat, extensions)

	case search.ExtensionCommandWithArg:
		return executeExtensionCommand(r.ExtensionID, r.CommandID, r.Argument, true, r.OutputMode, plat, extensions)

	case search.Calculation:
		return executeCopyToClipboard(strings.TrimPrefix(r.Formatted, "= "), r.Formatted, plat)

	case search.ClipboardItem:
		return executeCopyToClipboard(r.Content, r.Preview, plat)

	case search.FileHit:
		return executeOpenFile(r.DisplayPath, plat)

	case search.Emoji:
		return executeCopyToClipboard(r.Glyph, r.Primary, plat)

	case search.UnitConversion:
		return executeCopyToClipboard(r.Result, r.Display, plat)

	default:
		return failedMsg(fmt.Sprintf("no action for result type %T", result))
	}
}

func executeLaunchApp(app search.App, plat platform.Platform) Result {
	entry := platform.AppEntry{ID: app.ID, Name: app.DisplayName, Exec: app.Exec, Icon: app.Icon, Description: app.Desc, Keywords: app.Keywords}
	if err := plat.LaunchApp(entry); err != nil {
		return failed(err)
	}
	return ok()
}

func executeBuiltinCommand(cmd search.BuiltinCommand, plat platform.Platform) Result {
	switch cmd.ID {
	case "nova:settings":
		return Result{Outcome: OpenSettings}
	case "nova:quit":
		return Result{Outcome: Quit}
	case "system:lock":
		return executeSystemCommand(platform.Lock, plat)
	case "system:sleep":
		return executeSystemCommand(platform.Sleep, plat)
	case "system:logout":
		return executeSystemCommand(platform.Logout, plat)
	case "system:restart":
		return executeSystemCommand(platform.Restart, plat)
	case "system:shutdown":
		return executeSystemCommand(platform.Shutdown, plat)
	default:
		return needsInput()
	}
}

func executeSystemCommand(cmd platform.SystemCommand, plat platform.Platform) Result {
	if err := plat.SystemCommand(cmd); err != nil {
		return failed(err)
	}
	return ok()
}

func executeShellCommand(command string, plat platform.Platform) Result {
	if err := plat.RunShellCommand(command); err != nil {
		return failed(err)
	}
	return ok()
}

func executeOpenURL(url string, plat platform.Platform) Result {
	if err := plat.OpenURL(url); err != nil {
		return failed(err)
	}
	return ok()
}

func executeOpenFile(path string, plat platform.Platform) Result {
	home, _ := os.UserHomeDir()
	if err := plat.OpenFile(platform.ExpandHome(path, home)); err != nil {
		return failed(err)
	}
	return ok()
}

func executeCopyToClipboard(content, notification string, plat platform.Platform) Result {
	if err := plat.ClipboardWrite(content); err != nil {
		return failed(err)
	}
	_ = plat.ShowNotification("Copied", notification)
	return okKeepOpen()
}

// executeScript runs a custom script, handling its stdout per
// outputMode ("silent", "notification", "clipboard", "inline").
func executeScript(path, argument string, hasArgument bool, outputMode string, plat platform.Platform) Result {
	if outputMode == "silent" {
		cmd := exec.Command(path)
		if hasArgument {
			cmd.Args = append(cmd.Args, argument)
		}
		if err := cmd.Start(); err != nil {
			return failed(fmt.Errorf("run script: %w", err))
		}
		return ok()
	}

	ctx, cancel := context.WithTimeout(context.Background(), scriptTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, path)
	if hasArgument {
		cmd.Args = append(cmd.Args, argument)
	}

	output, err := cmd.Output()
	if err != nil {
		return failed(fmt.Errorf("run script: %w", err))
	}
	stdout := strings.TrimSpace(string(output))
	if stdout == "" {
		return ok()
	}

	switch outputMode {
	case "clipboard":
		if err := plat.ClipboardWrite(stdout); err != nil {
			return failed(err)
		}
		_ = plat.ShowNotification("Copied to clipboard", stdout)
	default: // "notification", "inline"
		_ = plat.ShowNotification("Nova Script", stdout)
	}
	return ok()
}

// executeExtensionCommand runs an extension command and surfaces its
// result per outputMode ("list", "detail", "form", "notification",
// "clipboard", "silent").
func executeExtensionCommand(extensionID, commandID, argument string, hasArgument bool, outputMode string, plat platform.Platform, extensions ExtensionRunner) Result {
	if extensions == nil {
		return failedMsg("extension host not available")
	}

	output, err := extensions.ExecuteCommand(extensionID, commandID, argument, hasArgument)
	if err != nil {
		return failed(err)
	}

	switch outputMode {
	case "silent":
		return ok()
	case "clipboard":
		if output == "" {
			return ok()
		}
		if err := plat.ClipboardWrite(output); err != nil {
			return failed(err)
		}
		_ = plat.ShowNotification("Copied to clipboard", output)
		return ok()
	case "notification":
		if output != "" {
			_ = plat.ShowNotification("Extension", output)
		}
		return ok()
	case "list", "detail", "form":
		// The command's structured output is rendered by the UI layer,
		// not executed further here; the window stays open so the
		// result can be displayed.
		return okKeepOpen()
	default:
		return ok()
	}
}
