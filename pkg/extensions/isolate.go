package extensions

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	v8 "rogchap.com/v8go"
)

// IsolateState is the lifecycle state of one extension's V8 isolate.
type IsolateState int

const (
	IsolateUnloaded IsolateState = iota
	IsolateLoading
	IsolateReady
	IsolateExecuting
	IsolateError
)

func (s IsolateState) String() string {
	switch s {
	case IsolateUnloaded:
		return "unloaded"
	case IsolateLoading:
		return "loading"
	case IsolateReady:
		return "ready"
	case IsolateExecuting:
		return "executing"
	case IsolateError:
		return "error"
	default:
		return "unknown"
	}
}

// ErrCommandNotFound is wrapped into the error the host returns when the
// requested extension or command is not in its index.
var ErrCommandNotFound = errors.New("extension command not found")

// isolateGracePeriod bounds how long we wait for a terminated V8
// execution's goroutine to unwind before giving up and leaking it
// rather than risk disposing resources a still-running goroutine holds.
const isolateGracePeriod = 2 * time.Second

// Isolate wraps one extension's V8 runtime. Each extension gets its
// own isolate for memory isolation and crash containment; the host
// owns at most config.MaxIsolates of these at once.
type Isolate struct {
	ID            string
	Manifest      Manifest
	ExtensionDir  string
	State         IsolateState
	ErrorMessage  string
	LastActive    time.Time

	iso *v8.Isolate
	ctx *v8.Context
}

// NewIsolate constructs an unloaded isolate for an extension.
func NewIsolate(id string, manifest Manifest, extensionDir string) *Isolate {
	return &Isolate{
		ID:           id,
		Manifest:     manifest,
		ExtensionDir: extensionDir,
		State:        IsolateUnloaded,
		LastActive:   time.Now(),
	}
}

// entryPoint resolves the extension's JS entry point. dist/index.js is
// preferred unconditionally; src/index.js is only consulted if dist is
// absent, never the reverse.
func (i *Isolate) entryPoint() (string, error) {
	dist := filepath.Join(i.ExtensionDir, "dist", "index.js")
	if _, err := os.Stat(dist); err == nil {
		return dist, nil
	}
	src := filepath.Join(i.ExtensionDir, "src", "index.js")
	if _, err := os.Stat(src); err == nil {
		return src, nil
	}
	return "", fmt.Errorf("entry point not found at %s or %s", dist, src)
}

// Load initializes the V8 runtime, binds the host op surface backed by
// hostCtx, and evaluates the extension's entry point. A no-op if
// already Ready.
func (i *Isolate) Load(hostCtx *Context) error {
	if i.State == IsolateReady {
		return nil
	}
	i.State = IsolateLoading

	entry, err := i.entryPoint()
	if err != nil {
		i.State = IsolateError
		i.ErrorMessage = err.Error()
		return fmt.Errorf("load %s: %w", i.ID, err)
	}

	code, err := os.ReadFile(entry)
	if err != nil {
		i.State = IsolateError
		i.ErrorMessage = err.Error()
		return fmt.Errorf("read %s: %w", entry, err)
	}

	iso := v8.NewIsolate()
	global := v8.NewObjectTemplate(iso)
	if err := bindHostOps(iso, global, hostCtx); err != nil {
		iso.Dispose()
		i.State = IsolateError
		i.ErrorMessage = err.Error()
		return fmt.Errorf("bind host ops for %s: %w", i.ID, err)
	}

	v8ctx := v8.NewContext(iso, global)
	if _, err := v8ctx.RunScript(hostOpsPrelude+"\n"+string(code), entry); err != nil {
		v8ctx.Close()
		iso.Dispose()
		i.State = IsolateError
		i.ErrorMessage = wrapJSError(err).Error()
		return fmt.Errorf("load %s: %w", i.ID, wrapJSError(err))
	}

	i.iso = iso
	i.ctx = v8ctx
	i.State = IsolateReady
	i.LastActive = time.Now()
	return nil
}

// Unload disposes the V8 runtime. Context is closed before the isolate
// is disposed, mirroring v8go's embedder-release ordering.
func (i *Isolate) Unload() {
	if i.ctx != nil {
		i.ctx.Close()
		i.ctx = nil
	}
	if i.iso != nil {
		i.iso.Dispose()
		i.iso = nil
	}
	i.State = IsolateUnloaded
}

// IsIdle reports whether the isolate has been unused longer than timeout.
func (i *Isolate) IsIdle(timeout time.Duration) bool {
	return time.Since(i.LastActive) > timeout
}

// ExecuteCommand invokes a command handler registered by the
// extension's entry point, enforcing execTimeout. The isolate
// transitions back to Ready on success or on a recoverable JS error;
// it transitions to Error only if initial load itself fails.
func (i *Isolate) ExecuteCommand(command string, argument string, hasArgument bool, execTimeout time.Duration) (string, error) {
	if i.State == IsolateUnloaded {
		return "", fmt.Errorf("isolate %s not loaded", i.ID)
	}
	if i.State == IsolateError {
		return "", fmt.Errorf("isolate %s in error state: %s", i.ID, i.ErrorMessage)
	}

	i.State = IsolateExecuting
	i.LastActive = time.Now()

	argJSON := "null"
	if hasArgument {
		encoded, err := json.Marshal(argument)
		if err == nil {
			argJSON = string(encoded)
		}
	}

	invoke := fmt.Sprintf(`__nova_invoke(%s, %s)`, jsonStringLiteral(command), argJSON)

	type result struct {
		val string
		err error
	}
	done := make(chan result, 1)

	go func() {
		val, err := i.ctx.RunScript(invoke, "<invoke>")
		if err != nil {
			done <- result{err: err}
			return
		}
		done <- result{val: val.String()}
	}()

	select {
	case r := <-done:
		i.State = IsolateReady
		i.LastActive = time.Now()
		if r.err != nil {
			return "", fmt.Errorf("execute %s/%s: %w", i.ID, command, wrapJSError(r.err))
		}
		return r.val, nil

	case <-time.After(execTimeout):
		i.iso.TerminateExecution()
		select {
		case <-done:
		case <-time.After(isolateGracePeriod):
			// Leave goroutine to unwind on its own; do not dispose
			// resources it may still reference.
		}
		i.State = IsolateReady
		return "", fmt.Errorf("execute %s/%s: timed out after %s", i.ID, command, execTimeout)
	}
}

// RunBackground invokes the extension's registerBackground handler, if
// any, enforcing execTimeout the same way ExecuteCommand does. Returns
// nil without running anything if the extension never called
// globalThis.registerBackground.
func (i *Isolate) RunBackground(execTimeout time.Duration) error {
	if i.State == IsolateUnloaded {
		return fmt.Errorf("isolate %s not loaded", i.ID)
	}
	if i.State == IsolateError {
		return fmt.Errorf("isolate %s in error state: %s", i.ID, i.ErrorMessage)
	}

	i.State = IsolateExecuting
	i.LastActive = time.Now()

	done := make(chan error, 1)
	go func() {
		_, err := i.ctx.RunScript(`__nova_invoke_background()`, "<background>")
		done <- err
	}()

	select {
	case err := <-done:
		i.State = IsolateReady
		i.LastActive = time.Now()
		if err != nil {
			return fmt.Errorf("run background %s: %w", i.ID, wrapJSError(err))
		}
		return nil

	case <-time.After(execTimeout):
		i.iso.TerminateExecution()
		select {
		case <-done:
		case <-time.After(isolateGracePeriod):
		}
		i.State = IsolateReady
		return fmt.Errorf("run background %s: timed out after %s", i.ID, execTimeout)
	}
}

func jsonStringLiteral(s string) string {
	encoded, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(encoded)
}

func wrapJSError(err error) error {
	if jsErr, ok := err.(*v8.JSError); ok {
		msg := jsErr.Message
		if jsErr.Location != "" {
			msg = jsErr.Location + ": " + msg
		}
		return errors.New(msg)
	}
	return err
}

// hostOpsPrelude defines the JS-facing namespaces (clipboard, notify,
// storage, fetch, fs, prefs) in terms of the __nova_* bindings injected
// by bindHostOps, plus the __nova_invoke dispatcher used by
// ExecuteCommand. Extensions call globalThis.registerCommand(name, fn)
// to participate in command dispatch.
const hostOpsPrelude = `
globalThis.__nova_commands = globalThis.__nova_commands || {};
globalThis.registerCommand = function(name, handler) {
  globalThis.__nova_commands[name] = handler;
};
globalThis.registerBackground = function(handler) {
  globalThis.__nova_background = handler;
};
globalThis.clipboard = {
  read: function() { return __nova_clipboard_read(); },
  write: function(text) { return __nova_clipboard_write(text); },
};
globalThis.notify = function(title, body) { return __nova_notify(title, body); };
globalThis.storage = {
  get: function(key) { return JSON.parse(__nova_storage_get(key)); },
  set: function(key, value) { return __nova_storage_set(key, JSON.stringify(value)); },
  delete: function(key) { return __nova_storage_delete(key); },
};
globalThis.fetch = function(url) { return JSON.parse(__nova_fetch(url)); };
globalThis.fs = {
  read: function(path) { return __nova_fs_read(path); },
  write: function(path, content) { return __nova_fs_write(path, content); },
};
globalThis.prefs = {
  get: function(name) { return JSON.parse(__nova_pref_get(name)); },
};
function __nova_invoke(command, argument) {
  var handler = globalThis.__nova_commands[command];
  if (!handler) {
    return JSON.stringify({ error: "Command not found: " + command });
  }
  try {
    var result = handler(argument);
    return JSON.stringify({ result: result });
  } catch (e) {
    return JSON.stringify({ error: (e && e.message) || String(e) });
  }
}
function __nova_invoke_background() {
  if (!globalThis.__nova_background) {
    return;
  }
  globalThis.__nova_background();
}
`
