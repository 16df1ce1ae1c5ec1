package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nova-launcher/nova/pkg/search"
)

// protocolRequest is one line of the run command's scripted-testing
// protocol: newline-delimited JSON in, newline-delimited JSON out.
type protocolRequest struct {
	Cmd      string `json:"cmd"`
	Query    string `json:"query,omitempty"`
	Index    int    `json:"index,omitempty"`
	Argument string `json:"argument,omitempty"`
}

type protocolResponse struct {
	OK       bool             `json:"ok"`
	Error    string           `json:"error,omitempty"`
	Results  []resultEnvelope `json:"results,omitempty"`
	Captured bool             `json:"captured,omitempty"`
	Pill     string           `json:"pill,omitempty"`
	Outcome  string           `json:"outcome,omitempty"`
	Message  string           `json:"message,omitempty"`
	Stats    *statsSnapshot   `json:"stats,omitempty"`
}

// resultEnvelope tags a search.Result with the concrete variant name
// so a scripted-testing client can decode it without relying on Go's
// interface-less JSON field shape alone.
type resultEnvelope struct {
	Type string        `json:"type"`
	Data search.Result `json:"data"`
}

func encodeResults(results []search.Result) []resultEnvelope {
	out := make([]resultEnvelope, len(results))
	for i, r := range results {
		out[i] = resultEnvelope{Type: resultTypeName(r), Data: r}
	}
	return out
}

func resultTypeName(r search.Result) string {
	switch r.(type) {
	case search.App:
		return "app"
	case search.BuiltinCommand:
		return "builtin_command"
	case search.Alias:
		return "alias"
	case search.Quicklink:
		return "quicklink"
	case search.ResolvedQuicklink:
		return "resolved_quicklink"
	case search.Script:
		return "script"
	case search.ScriptWithArg:
		return "script_with_arg"
	case search.ExtensionCommand:
		return "extension_command"
	case search.ExtensionCommandWithArg:
		return "extension_command_with_arg"
	case search.Calculation:
		return "calculation"
	case search.ClipboardItem:
		return "clipboard_item"
	case search.FileHit:
		return "file_hit"
	case search.Emoji:
		return "emoji"
	case search.UnitConversion:
		return "unit_conversion"
	default:
		return "unknown"
	}
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the launcher's search/extension/background subsystems",
		Long: `Run starts every subsystem (search engine, extension host, background
scheduler, clipboard poller) and serves a minimal newline-delimited
JSON protocol over stdin/stdout, intended for scripted testing rather
than a human terminal session. The extensions directory and the config
file are both watched for changes for the lifetime of the process, so
installing an extension or editing config.toml takes effect without a
restart; a manual "reload" request is still available for extension
changes a filesystem watch can't see coming (e.g. mid-edit saves on a
networked filesystem without inotify support).

Each input line is {"cmd": "..."} with one of:
  query    {"query": "text"}             search, or advance command mode
  select   {"index": N}                  execute lastResults[N]
  submit   {"argument": "text"}          resolve + execute the captured target
  back     {}                            Backspace-on-empty-input
  dismiss  {}                            Escape
  reload   {}                            rescan extensions
  stats    {}                            snapshot runtime metrics
  shutdown {}                            flush state and exit`,
		RunE: runRun,
	}
}

func runRun(cmd *cobra.Command, args []string) error {
	log := newLogger()
	cfg := loadConfig()

	app, err := NewApp(cfg, flagExtensionsDir, log)
	if err != nil {
		return fmt.Errorf("start app: %w", err)
	}
	defer app.Close()

	stopWatching := app.StartWatching(configPathInUse())
	defer stopWatching()

	return serveProtocol(os.Stdin, os.Stdout, app)
}

func serveProtocol(in io.Reader, out io.Writer, app *App) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	encoder := json.NewEncoder(out)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req protocolRequest
		if err := json.Unmarshal(line, &req); err != nil {
			_ = encoder.Encode(protocolResponse{OK: false, Error: err.Error()})
			continue
		}

		resp := handleRequest(app, req)
		if err := encoder.Encode(resp); err != nil {
			return fmt.Errorf("encode response: %w", err)
		}
		if req.Cmd == "shutdown" {
			return nil
		}
	}
	return scanner.Err()
}

func handleRequest(app *App, req protocolRequest) protocolResponse {
	switch req.Cmd {
	case "query":
		return handleQuery(app, req.Query)
	case "select":
		return handleSelect(app, req.Index)
	case "submit":
		return handleSubmit(app, req.Argument)
	case "back":
		app.mode.Back(true)
		return protocolResponse{OK: true, Captured: app.mode.IsCaptured()}
	case "dismiss":
		app.mode.Dismiss()
		return protocolResponse{OK: true, Captured: app.mode.IsCaptured()}
	case "reload":
		if err := app.ReloadExtensions(); err != nil {
			return protocolResponse{OK: false, Error: err.Error()}
		}
		return protocolResponse{OK: true}
	case "stats":
		snap := app.statsSnapshot()
		return protocolResponse{OK: true, Stats: &snap}
	case "shutdown":
		return protocolResponse{OK: true}
	default:
		return protocolResponse{OK: false, Error: fmt.Sprintf("unknown cmd %q", req.Cmd)}
	}
}

func handleQuery(app *App, text string) protocolResponse {
	if !app.mode.IsCaptured() && app.mode.TryEnterFromKeyword(text, app.resolver()) {
		return protocolResponse{OK: true, Captured: true, Pill: app.mode.PillText()}
	}
	if app.mode.IsCaptured() {
		return protocolResponse{OK: true, Captured: true, Pill: app.mode.PillText()}
	}

	results := app.Query(text)
	return protocolResponse{OK: true, Results: encodeResults(results)}
}

func handleSelect(app *App, index int) protocolResponse {
	if index < 0 || index >= len(app.lastResults) {
		return protocolResponse{OK: false, Error: "index out of range"}
	}
	selected := app.lastResults[index]

	if !app.mode.IsCaptured() && app.mode.Advance(selected) {
		return protocolResponse{OK: true, Captured: true, Pill: app.mode.PillText()}
	}

	result := app.Select(selected)
	return executeResultResponse(result)
}

func handleSubmit(app *App, argument string) protocolResponse {
	resolved, err := app.mode.Resolve(argument)
	if err != nil {
		return protocolResponse{OK: false, Error: err.Error()}
	}
	app.mode.Dismiss()

	result := app.Select(resolved)
	return executeResultResponse(result)
}
