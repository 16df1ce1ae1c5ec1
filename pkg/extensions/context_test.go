package extensions

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/nova-launcher/nova/pkg/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePlatform is a minimal platform.Platform double for exercising
// Context without touching the real OS.
type fakePlatform struct {
	clipboard string
	notified  []string
}

func (f *fakePlatform) DiscoverApps() ([]platform.AppEntry, error) { return nil, nil }
func (f *fakePlatform) ClipboardRead() (string, bool)              { return f.clipboard, f.clipboard != "" }
func (f *fakePlatform) ClipboardWrite(content string) error        { f.clipboard = content; return nil }
func (f *fakePlatform) OpenURL(url string) error                   { return nil }
func (f *fakePlatform) OpenFile(path string) error                 { return nil }
func (f *fakePlatform) ShowNotification(title, body string) error {
	f.notified = append(f.notified, title+": "+body)
	return nil
}
func (f *fakePlatform) SystemCommand(cmd platform.SystemCommand) error  { return nil }
func (f *fakePlatform) LaunchApp(app platform.AppEntry) error           { return nil }
func (f *fakePlatform) RunShellCommand(command string) error            { return nil }
func (f *fakePlatform) ConfigDir() string                               { return "" }
func (f *fakePlatform) DataDir() string                                 { return "" }
func (f *fakePlatform) RuntimeDir() string                              { return "" }

func newTestContext(t *testing.T, permissions PermissionSet) (*Context, *fakePlatform) {
	t.Helper()
	fp := &fakePlatform{}
	storage := NewStorage(t.TempDir())
	return NewContext("ext", fp, storage, permissions, nil), fp
}

func TestContextClipboardRequiresPermission(t *testing.T) {
	ctx, _ := newTestContext(t, NewPermissionSet())
	_, err := ctx.ClipboardRead()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPermissionDenied))
}

func TestContextClipboardRoundTrip(t *testing.T) {
	ctx, fp := newTestContext(t, PermissionSet{Clipboard: true})
	require.NoError(t, ctx.ClipboardWrite("hello"))
	assert.Equal(t, "hello", fp.clipboard)

	text, err := ctx.ClipboardRead()
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

func TestContextNotifyRequiresSystemPermission(t *testing.T) {
	denied, _ := newTestContext(t, NewPermissionSet())
	err := denied.Notify("Title", "Body")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPermissionDenied))

	ctx, fp := newTestContext(t, PermissionSet{System: true})
	require.NoError(t, ctx.Notify("Title", "Body"))
	assert.Equal(t, []string{"Title: Body"}, fp.notified)
}

func TestContextStorageRoundTrip(t *testing.T) {
	ctx, _ := newTestContext(t, PermissionSet{Storage: true})
	require.NoError(t, ctx.StorageSet("key", json.RawMessage(`"value"`)))

	value, ok, err := ctx.StorageGet("key")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `"value"`, string(value))
}

func TestContextFetchRequiresNetworkPermission(t *testing.T) {
	ctx, _ := newTestContext(t, NewPermissionSet())
	_, _, err := ctx.Fetch("http://example.com")
	require.Error(t, err)
}

func TestContextFetchAllowedDomain(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	ctx, _ := newTestContext(t, PermissionSet{
		Network: NetworkPermission{Enabled: true, AllowedDomains: []string{"127.0.0.1"}},
	})

	status, body, err := ctx.Fetch(server.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body)
}

func TestContextFetchRetriesOnTransientFailure(t *testing.T) {
	var attempts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) <= 2 {
			// Simulate a connection reset: hijack and close without
			// writing a response, so client.Get sees a network error
			// rather than a handled HTTP response.
			hj, ok := w.(http.Hijacker)
			require.True(t, ok)
			conn, _, err := hj.Hijack()
			require.NoError(t, err)
			conn.Close()
			return
		}
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	ctx, _ := newTestContext(t, PermissionSet{
		Network: NetworkPermission{Enabled: true, AllowedDomains: []string{"127.0.0.1"}},
	})

	status, body, err := ctx.Fetch(server.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body)
	assert.EqualValues(t, 3, attempts.Load(), "expected Fetch to retry twice before succeeding on the third attempt")
}

func TestContextFetchGivesUpAfterMaxAttempts(t *testing.T) {
	var attempts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		hj, ok := w.(http.Hijacker)
		require.True(t, ok)
		conn, _, err := hj.Hijack()
		require.NoError(t, err)
		conn.Close()
	}))
	defer server.Close()

	ctx, _ := newTestContext(t, PermissionSet{
		Network: NetworkPermission{Enabled: true, AllowedDomains: []string{"127.0.0.1"}},
	})

	_, _, err := ctx.Fetch(server.URL)
	require.Error(t, err)
	assert.EqualValues(t, fetchRetryConfig.MaxAttempts, attempts.Load())
}

func TestContextPrefGet(t *testing.T) {
	ctx := NewContext("ext", &fakePlatform{}, NewStorage(t.TempDir()), NewPermissionSet(), map[string]any{"theme": "dark"})
	value, ok := ctx.PrefGet("theme")
	assert.True(t, ok)
	assert.Equal(t, "dark", value)

	_, ok = ctx.PrefGet("missing")
	assert.False(t, ok)
}
