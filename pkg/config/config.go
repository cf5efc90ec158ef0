package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/johnolven/asis-coder/pkg/errors"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"
)

const (
	// RootConfigName is looked up in the package root.
	RootConfigName = "asis-install.toml"
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "ASIS_INSTALL_"
)

// Config is the typed installer configuration.
type Config struct {
	Package PackageConfig `koanf:"package"`
	Scripts ScriptsConfig `koanf:"scripts"`
	Setup   SetupConfig   `koanf:"setup"`

	k *koanf.Koanf
}

// PackageConfig names the product and where to get it manually.
type PackageConfig struct {
	Name       string `koanf:"name"`
	Command    string `koanf:"command"`
	Repository string `koanf:"repository"`
	Directory  string `koanf:"directory"`
}

// ScriptsConfig holds file names relative to the package root.
type ScriptsConfig struct {
	Main   string `koanf:"main"`
	Setup  string `koanf:"setup"`
	LibDir string `koanf:"lib_dir"`
	Shim   string `koanf:"shim"`
}

// SetupConfig controls the delegated setup script.
type SetupConfig struct {
	Timeout time.Duration `koanf:"timeout"`
}

// LoadOptions select the optional configuration sources.
type LoadOptions struct {
	// Root is the package root searched for RootConfigName. Empty skips it.
	Root string
	// File is an explicit config file. It must exist when set.
	File string
	// Overrides are flat koanf keys (e.g. "setup.timeout") applied last.
	Overrides map[string]interface{}
}

// Load builds the configuration from all sources.
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	if opts.Root != "" {
		path := filepath.Join(opts.Root, RootConfigName)
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load root config from %s", path)
			}
		}
	}

	if opts.File != "" {
		if _, err := os.Stat(opts.File); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", opts.File)
		}
		if err := k.Load(file.Provider(opts.File), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", opts.File)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	return decode(k)
}

// Default returns the embedded defaults without any other source.
func Default() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}
	return decode(k)
}

func decode(k *koanf.Koanf) (*Config, error) {
	cfg := &Config{k: k}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envKey maps ASIS_INSTALL_SCRIPTS_LIB_DIR to scripts.lib_dir. Only the
// first underscore separates section from key.
func envKey(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
}

// Validate checks that every name is set and that script names are plain
// file names inside the package root.
func (c *Config) Validate() error {
	required := []struct {
		key, value string
		fileName   bool
	}{
		{"package.name", c.Package.Name, false},
		{"package.command", c.Package.Command, false},
		{"scripts.main", c.Scripts.Main, true},
		{"scripts.setup", c.Scripts.Setup, true},
		{"scripts.lib_dir", c.Scripts.LibDir, true},
		{"scripts.shim", c.Scripts.Shim, true},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return errors.Newf(errors.ErrConfigParse, "%s must not be empty", r.key)
		}
		if r.fileName && (strings.ContainsAny(r.value, `/\`) || r.value == "." || r.value == "..") {
			return errors.Newf(errors.ErrConfigParse, "%s must be a file name, got %q", r.key, r.value)
		}
	}

	if c.Setup.Timeout < 0 {
		return errors.Newf(errors.ErrConfigParse, "setup.timeout must not be negative, got %s", c.Setup.Timeout)
	}
	return nil
}

// TOML renders the merged configuration sources.
func (c *Config) TOML() ([]byte, error) {
	if c.k == nil {
		return nil, errors.New(errors.ErrInternal, "configuration was not loaded")
	}
	out, err := gotoml.Marshal(c.k.Raw())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return out, nil
}
