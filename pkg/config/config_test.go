package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/pathkeeper/pkg/errors"
	"github.com/arthur-debert/pathkeeper/pkg/store"
	"github.com/arthur-debert/pathkeeper/pkg/testutil"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "Path", cfg.Master)
	assert.Equal(t, "user", cfg.Scope)
	assert.Equal(t, ";", cfg.Delimiter)
	assert.Equal(t, "%", cfg.Wrap)
	assert.Equal(t, 2000, cfg.MaxLength)
	assert.Equal(t, 4, cfg.BucketCount)
	assert.Equal(t, "PATH_EXT", cfg.BucketPrefix)
	assert.Equal(t, "", cfg.BackupDir)
}

func TestLoadExplicitTOMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("max_length = 1024\nbucket_count = 2\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1024, cfg.MaxLength)
	assert.Equal(t, 2, cfg.BucketCount)
	// Untouched keys keep their defaults.
	assert.Equal(t, "Path", cfg.Master)
}

func TestLoadExplicitYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scope: machine\nbucket_prefix: SPILL\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "machine", cfg.Scope)
	assert.Equal(t, store.ScopeMachine, cfg.StoreScope())
	assert.Equal(t, []string{"SPILL1", "SPILL2", "SPILL3", "SPILL4"}, cfg.BucketNames())
}

func TestLoadEnvironmentOverride(t *testing.T) {
	testutil.IsolateXDG(t)
	t.Setenv("PATHKEEPER_MAX_LENGTH", "512")
	t.Setenv("PATHKEEPER_MASTER", "PATH")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 512, cfg.MaxLength)
	assert.Equal(t, "PATH", cfg.Master)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty master", func(c *Config) { c.Master = "" }},
		{"multi-char delimiter", func(c *Config) { c.Delimiter = ";;" }},
		{"empty wrap", func(c *Config) { c.Wrap = "" }},
		{"zero max length", func(c *Config) { c.MaxLength = 0 }},
		{"zero buckets", func(c *Config) { c.BucketCount = 0 }},
		{"empty prefix", func(c *Config) { c.BucketPrefix = "" }},
		{"bad scope", func(c *Config) { c.Scope = "galactic" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
		})
	}

	assert.NoError(t, Default().Validate())
}

func TestTOMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.MaxLength = 1234
	cfg.BucketPrefix = "SPILL"

	out, err := cfg.TOML()
	require.NoError(t, err)
	assert.Contains(t, string(out), "max_length = 1234")
	assert.Contains(t, string(out), "bucket_prefix = 'SPILL'")

	path := filepath.Join(t.TempDir(), "resolved.toml")
	require.NoError(t, os.WriteFile(path, out, 0644))
	back, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestBucketNames(t *testing.T) {
	cfg := Default()
	cfg.BucketCount = 3
	assert.Equal(t, []string{"PATH_EXT1", "PATH_EXT2", "PATH_EXT3"}, cfg.BucketNames())
}

func TestParams(t *testing.T) {
	cfg := Default()
	p := cfg.Params()
	assert.Equal(t, 2000, p.MaxLength)
	assert.Len(t, p.BucketNames, 4)
	assert.Equal(t, "%PATH_EXT1%", p.Placeholders()[0])
}
