// Package testutil holds helpers shared by pathkeeper's tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
)

// IsolateXDG points every XDG base directory at a fresh temp dir so a
// test never reads the developer's config or writes into their state
// directory. The adrg/xdg package caches the directories at init, so
// the env changes are followed by a Reload; cleanup restores the env
// via t.Setenv and reloads again.
func IsolateXDG(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	// Registered before t.Setenv so it runs after the env restores
	// (cleanups are LIFO) and re-caches the real directories.
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	xdg.Reload()
	return dir
}
