package extensions

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/nova-launcher/nova/pkg/platform"
	"github.com/nova-launcher/nova/pkg/resilience"
)

// fetchTimeout bounds an extension's outbound HTTP call so a hung
// request can't block the UI loop indefinitely (the isolate-level
// execution timeout is the outer bound; this is the inner one).
const fetchTimeout = 10 * time.Second

// fetchRetryConfig gives a Fetch up to three attempts with a short
// exponential backoff, since a transient DNS hiccup or connection
// reset shouldn't surface all the way to the extension as a failure.
var fetchRetryConfig = resilience.RetryConfig{
	MaxAttempts:  3,
	InitialDelay: 200 * time.Millisecond,
	MaxDelay:     2 * time.Second,
	Multiplier:   2,
	JitterFrac:   0.2,
}

// Context is the host-op surface an extension's JS isolate is bound
// to. Every method checks the extension's permission set before
// touching the platform, network, or filesystem; a denial is returned
// as an error the isolate wrapper turns into a thrown JS exception.
type Context struct {
	ExtensionID string
	Platform    platform.Platform
	Storage     *Storage
	Permissions PermissionSet
	Preferences map[string]any
}

// NewContext builds the context an isolate is loaded with.
func NewContext(extensionID string, plat platform.Platform, storage *Storage, permissions PermissionSet, preferences map[string]any) *Context {
	if preferences == nil {
		preferences = map[string]any{}
	}
	return &Context{
		ExtensionID: extensionID,
		Platform:    plat,
		Storage:     storage,
		Permissions: permissions,
		Preferences: preferences,
	}
}

// ClipboardRead returns the current clipboard contents, or an empty
// string if the clipboard is empty or unreadable.
func (c *Context) ClipboardRead() (string, error) {
	if err := c.Permissions.checkClipboard(c.ExtensionID); err != nil {
		return "", err
	}
	text, _ := c.Platform.ClipboardRead()
	return text, nil
}

// ClipboardWrite overwrites the clipboard.
func (c *Context) ClipboardWrite(text string) error {
	if err := c.Permissions.checkClipboard(c.ExtensionID); err != nil {
		return err
	}
	return c.Platform.ClipboardWrite(text)
}

// Notify shows a desktop notification.
func (c *Context) Notify(title, body string) error {
	if err := c.Permissions.checkSystem(c.ExtensionID); err != nil {
		return err
	}
	return c.Platform.ShowNotification(title, body)
}

// StorageGet reads a JSON value from the extension's private store.
func (c *Context) StorageGet(key string) (json.RawMessage, bool, error) {
	if err := c.Permissions.checkStorage(c.ExtensionID); err != nil {
		return nil, false, err
	}
	return c.Storage.Get(key)
}

// StorageSet writes a JSON value to the extension's private store.
func (c *Context) StorageSet(key string, value json.RawMessage) error {
	if err := c.Permissions.checkStorage(c.ExtensionID); err != nil {
		return err
	}
	return c.Storage.Set(key, value)
}

// StorageDelete removes a key from the extension's private store.
func (c *Context) StorageDelete(key string) error {
	if err := c.Permissions.checkStorage(c.ExtensionID); err != nil {
		return err
	}
	return c.Storage.Delete(key)
}

// Fetch performs an HTTP GET against targetURL, permitted only if the
// extension's network permission allows the URL's host.
func (c *Context) Fetch(targetURL string) (status int, body string, err error) {
	parsed, err := url.Parse(targetURL)
	if err != nil {
		return 0, "", fmt.Errorf("parse url: %w", err)
	}
	if err := c.Permissions.checkNetwork(c.ExtensionID, parsed.Hostname()); err != nil {
		return 0, "", err
	}

	client := &http.Client{Timeout: fetchTimeout}

	retryErr := resilience.Retry(context.Background(), fetchRetryConfig, func(attempt int) error {
		resp, reqErr := client.Get(targetURL)
		if reqErr != nil {
			return fmt.Errorf("fetch %s: %w", targetURL, reqErr)
		}
		defer resp.Body.Close()

		data, readErr := io.ReadAll(resp.Body)
		status = resp.StatusCode
		if readErr != nil {
			return fmt.Errorf("read response body: %w", readErr)
		}
		body = string(data)
		return nil
	})
	if retryErr != nil {
		return status, "", retryErr
	}
	return status, body, nil
}

// FSRead reads a file, permitted only if the extension's filesystem
// permission covers path for reads.
func (c *Context) FSRead(path string) (string, error) {
	if err := c.Permissions.checkFilesystem(c.ExtensionID, path, false); err != nil {
		return "", err
	}
	home, _ := os.UserHomeDir()
	data, err := os.ReadFile(platform.ExpandHome(path, home))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// FSWrite writes content to a file, permitted only if the extension's
// filesystem permission covers path for writes.
func (c *Context) FSWrite(path, content string) error {
	if err := c.Permissions.checkFilesystem(c.ExtensionID, path, true); err != nil {
		return err
	}
	home, _ := os.UserHomeDir()
	if err := os.WriteFile(platform.ExpandHome(path, home), []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// PrefGet reads a user-configured preference value. No permission
// check: preferences are the extension's own declared configuration,
// not host-mediated authority.
func (c *Context) PrefGet(name string) (any, bool) {
	v, ok := c.Preferences[name]
	return v, ok
}
