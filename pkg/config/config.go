// Package config loads pathkeeper's layered configuration: embedded
// defaults, then the user's config file under the XDG config directory,
// then PATHKEEPER_* environment variables.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/pathkeeper/pkg/errors"
	"github.com/arthur-debert/pathkeeper/pkg/pathenv"
	"github.com/arthur-debert/pathkeeper/pkg/store"
)

//go:embed pathkeeper.toml
var defaultConfig []byte

// EnvPrefix is the prefix of environment variables overriding config
// keys, e.g. PATHKEEPER_MAX_LENGTH.
const EnvPrefix = "PATHKEEPER_"

// Config is the resolved configuration for one invocation.
type Config struct {
	Master       string `koanf:"master" toml:"master"`
	Scope        string `koanf:"scope" toml:"scope"`
	Delimiter    string `koanf:"delimiter" toml:"delimiter"`
	Wrap         string `koanf:"wrap" toml:"wrap"`
	MaxLength    int    `koanf:"max_length" toml:"max_length"`
	BucketCount  int    `koanf:"bucket_count" toml:"bucket_count"`
	BucketPrefix string `koanf:"bucket_prefix" toml:"bucket_prefix"`
	BackupDir    string `koanf:"backup_dir" toml:"backup_dir"`
}

// DefaultTOML returns the embedded default configuration file, comments
// included. gen-config writes it out as a starting point.
func DefaultTOML() []byte {
	return defaultConfig
}

// TOML serializes the resolved configuration back to TOML, without the
// annotations of the embedded defaults.
func (c Config) TOML() ([]byte, error) {
	out, err := gotoml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "marshalling config")
	}
	return out, nil
}

// Default returns the embedded default configuration, ignoring the
// user's config file and environment.
func Default() Config {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(defaultConfig), toml.Parser()); err != nil {
		// The embedded defaults are compiled in; failing to parse them
		// is a programming error.
		panic(err)
	}
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		panic(err)
	}
	return cfg
}

// Load resolves the configuration. configPath, when non-empty, names an
// explicit config file and overrides the default search location.
func Load(configPath string) (Config, error) {
	return load(configPath)
}

func load(configPath string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider(defaultConfig), toml.Parser()); err != nil {
		return Config{}, errors.Wrap(err, errors.ErrConfigParse, "parsing embedded defaults")
	}

	if configPath == "" {
		configPath = findConfigFile()
	}
	if configPath != "" {
		parser := configParser(configPath)
		if err := k.Load(file.Provider(configPath), parser); err != nil {
			return Config{}, errors.Wrapf(err, errors.ErrConfigLoad,
				"loading config file %s", configPath)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return Config{}, errors.Wrap(err, errors.ErrConfigLoad, "loading environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, errors.Wrap(err, errors.ErrConfigParse, "unmarshalling config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// findConfigFile looks for pathkeeper.toml or pathkeeper.yaml under the
// XDG config directory. Absence is not an error.
func findConfigFile() string {
	base := filepath.Join(xdg.ConfigHome, "pathkeeper")
	for _, name := range []string{"pathkeeper.toml", "pathkeeper.yaml"} {
		path := filepath.Join(base, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func configParser(path string) koanf.Parser {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// Validate checks the configuration invariants.
func (c Config) Validate() error {
	if c.Master == "" {
		return errors.New(errors.ErrConfigValid, "master variable name must not be empty")
	}
	if len(c.Delimiter) != 1 {
		return errors.Newf(errors.ErrConfigValid, "delimiter must be a single character, got %q", c.Delimiter)
	}
	if c.Wrap == "" {
		return errors.New(errors.ErrConfigValid, "wrap character must not be empty")
	}
	if c.MaxLength < 1 {
		return errors.Newf(errors.ErrConfigValid, "max_length must be positive, got %d", c.MaxLength)
	}
	if c.BucketCount < 1 {
		return errors.Newf(errors.ErrConfigValid, "bucket_count must be at least 1, got %d", c.BucketCount)
	}
	if c.BucketPrefix == "" {
		return errors.New(errors.ErrConfigValid, "bucket_prefix must not be empty")
	}
	if _, err := store.ParseScope(c.Scope); err != nil {
		return errors.Wrapf(err, errors.ErrConfigValid, "invalid scope %q", c.Scope)
	}
	return nil
}

// BucketNames returns the bucket variable names in ordinal order.
func (c Config) BucketNames() []string {
	names := make([]string, c.BucketCount)
	for i := range names {
		names[i] = fmt.Sprintf("%s%d", c.BucketPrefix, i+1)
	}
	return names
}

// StoreScope returns the parsed scope. Call Validate first; an invalid
// scope falls back to user.
func (c Config) StoreScope() store.Scope {
	scope, _ := store.ParseScope(c.Scope)
	return scope
}

// Params assembles the pipeline parameters from the configuration.
func (c Config) Params() pathenv.Params {
	return pathenv.Params{
		Syntax:      pathenv.NewSyntax(c.Delimiter, c.Wrap),
		MaxLength:   c.MaxLength,
		BucketNames: c.BucketNames(),
	}
}
