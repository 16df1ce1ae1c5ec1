package extensions

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckClipboardDenied(t *testing.T) {
	p := NewPermissionSet()
	err := p.checkClipboard("ext")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPermissionDenied))
}

func TestCheckClipboardGranted(t *testing.T) {
	p := PermissionSet{Clipboard: true}
	assert.NoError(t, p.checkClipboard("ext"))
}

func TestIsDomainAllowedWildcardAll(t *testing.T) {
	p := PermissionSet{Network: NetworkPermission{Enabled: true, AllowedDomains: []string{"*"}}}
	assert.NoError(t, p.checkNetwork("ext", "anything.example.com"))
}

func TestIsDomainAllowedSubdomainWildcard(t *testing.T) {
	p := PermissionSet{Network: NetworkPermission{Enabled: true, AllowedDomains: []string{"*.example.com"}}}
	assert.NoError(t, p.checkNetwork("ext", "api.example.com"))
	assert.NoError(t, p.checkNetwork("ext", "example.com"))
	assert.Error(t, p.checkNetwork("ext", "example.org"))
}

func TestIsDomainAllowedExactMatch(t *testing.T) {
	p := PermissionSet{Network: NetworkPermission{Enabled: true, AllowedDomains: []string{"api.example.com"}}}
	assert.NoError(t, p.checkNetwork("ext", "api.example.com"))
	assert.Error(t, p.checkNetwork("ext", "evil.com"))
}

func TestCheckNetworkDisabled(t *testing.T) {
	p := NewPermissionSet()
	err := p.checkNetwork("ext", "example.com")
	require.Error(t, err)
}

func TestCheckFilesystemReadWrite(t *testing.T) {
	p := PermissionSet{Filesystem: FilesystemPermission{
		Enabled: true, Read: true, AllowedPaths: []string{"/tmp/ext"},
	}}
	assert.NoError(t, p.checkFilesystem("ext", "/tmp/ext/data.json", false))
	assert.Error(t, p.checkFilesystem("ext", "/tmp/ext/data.json", true))
	assert.Error(t, p.checkFilesystem("ext", "/etc/passwd", false))
}

func TestPermissionSetFromManifest(t *testing.T) {
	cfg := PermissionsConfig{
		Network:       []string{"example.com"},
		Clipboard:     true,
		Notifications: true,
		Filesystem:    FilesystemPermConfig{Enabled: true, Read: true},
	}
	p := PermissionSetFromManifest(cfg)
	assert.True(t, p.Clipboard)
	assert.True(t, p.System)
	assert.True(t, p.Network.Enabled)
	assert.True(t, p.Filesystem.Enabled)
}

func TestPermissionStoreGrantAndPersist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "permissions.json")
	store := NewPermissionStore(path)
	assert.False(t, store.HasGrants("ext"))

	store.Grant("ext", PermissionSet{Clipboard: true}, "1.0.0")
	assert.True(t, store.HasGrants("ext"))
	require.NoError(t, store.Save())

	reloaded := NewPermissionStore(path)
	assert.True(t, reloaded.GetPermissions("ext").Clipboard)
}

func TestPermissionStoreRevokePermission(t *testing.T) {
	store := NewPermissionStore(filepath.Join(t.TempDir(), "permissions.json"))
	store.Grant("ext", PermissionSet{Clipboard: true, Storage: true}, "1.0.0")

	store.RevokePermission("ext", "clipboard")
	perms := store.GetPermissions("ext")
	assert.False(t, perms.Clipboard)
	assert.True(t, perms.Storage)
}

func TestPermissionStoreNeedsConsent(t *testing.T) {
	store := NewPermissionStore(filepath.Join(t.TempDir(), "permissions.json"))
	store.Grant("ext", PermissionSet{Clipboard: true}, "1.0.0")

	needs := store.NeedsConsent("ext", PermissionSet{Clipboard: true, Storage: true})
	assert.Equal(t, []string{"storage"}, needs)
}

func TestPermissionStoreLoadsMissingFileEmpty(t *testing.T) {
	store := NewPermissionStore(filepath.Join(t.TempDir(), "does-not-exist.json"))
	assert.Empty(t, store.AllExtensions())
}
