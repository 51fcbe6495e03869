// Package config loads itdepends settings.
//
// Settings are layered, later layers winning:
//  1. built-in defaults ([Default])
//  2. a TOML file, by default $XDG_CONFIG_HOME/itdepends/config.toml
//     (or the path in $ITDEPENDS_CONFIG)
//  3. environment variables, optionally seeded from a .env file in the
//     working directory
//
// Example config.toml:
//
//	registry_url = "https://search.maven.org/solrsearch/select"
//	request_interval = "1s"
//	timeout = "2m"
//	exclude_namespaces = ["com.acme.internal"]
package config

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/matzehuels/itdepends/pkg/errors"
	"github.com/matzehuels/itdepends/pkg/registry"
)

const appName = "itdepends"

// Environment variables read by [Load].
const (
	EnvConfig          = "ITDEPENDS_CONFIG"
	EnvRegistryURL     = "ITDEPENDS_REGISTRY_URL"
	EnvRequestInterval = "ITDEPENDS_REQUEST_INTERVAL"
	EnvTimeout         = "ITDEPENDS_TIMEOUT"
	EnvNamespace       = "ITDEPENDS_NAMESPACE"
)

// Config holds runtime settings.
type Config struct {
	RegistryURL       string   `toml:"registry_url"`       // Solr search endpoint
	RequestInterval   Duration `toml:"request_interval"`   // pause between registry requests
	Timeout           Duration `toml:"timeout"`            // per-request timeout
	UserAgent         string   `toml:"user_agent"`         // overrides the default User-Agent
	Namespace         string   `toml:"namespace"`          // further project namespace, excluded alongside the root's groupId
	ExcludeNamespaces []string `toml:"exclude_namespaces"` // additional namespaces left out of the report
	MemoSize          int      `toml:"memo_size"`          // in-run lookup memo capacity

	// envErr holds the first malformed registry override from the
	// environment. It is reported by ValidateRegistry.
	envErr error
}

// Duration is a time.Duration written as a Go duration string ("1s", "2m").
type Duration struct{ time.Duration }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		RegistryURL:     registry.DefaultBaseURL,
		RequestInterval: Duration{registry.DefaultRequestInterval},
		Timeout:         Duration{registry.DefaultTimeout},
		MemoSize:        registry.DefaultMemoSize,
	}
}

// Load reads .env (if present), then the config file named by
// $ITDEPENDS_CONFIG or the default location, then environment overrides.
// A missing file at the default location is not an error; a missing file
// named by $ITDEPENDS_CONFIG is.
func Load() (Config, error) {
	_ = godotenv.Load()

	if path := os.Getenv(EnvConfig); path != "" {
		return LoadFile(path)
	}

	cfg := Default()
	if path, err := DefaultPath(); err == nil {
		if _, err := os.Stat(path); err == nil {
			if err := decodeFile(path, &cfg); err != nil {
				return Config{}, err
			}
		}
	}
	return finish(cfg)
}

// LoadFile reads the TOML file at path on top of the defaults and applies
// environment overrides. The file must exist.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if err := decodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return finish(cfg)
}

// DefaultPath returns the config file location following the XDG
// convention (~/.config/itdepends/config.toml).
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Validate reports the first invalid setting that affects every run.
// Registry settings are checked separately by [Config.ValidateRegistry].
func (c Config) Validate() error {
	if c.MemoSize < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "memo_size must not be negative")
	}
	for _, ns := range c.ExcludeNamespaces {
		if strings.TrimSpace(ns) == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "exclude_namespaces contains an empty entry")
		}
	}
	return nil
}

// ValidateRegistry reports the first invalid registry setting. Offline
// runs never call it.
func (c Config) ValidateRegistry() error {
	if c.envErr != nil {
		return c.envErr
	}
	u, err := url.Parse(c.RegistryURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "registry_url %q is not an http(s) URL", c.RegistryURL)
	}
	if c.RequestInterval.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "request_interval must not be negative")
	}
	if c.Timeout.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "timeout must not be negative")
	}
	return nil
}

func decodeFile(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
	}
	return nil
}

func finish(cfg Config) (Config, error) {
	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overlays the environment on cfg. A malformed duration leaves
// the file value in place and is kept for ValidateRegistry.
func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvRegistryURL)); v != "" {
		cfg.RegistryURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvNamespace)); v != "" {
		cfg.Namespace = v
	}
	for _, env := range []struct {
		name string
		dst  *Duration
	}{
		{EnvRequestInterval, &cfg.RequestInterval},
		{EnvTimeout, &cfg.Timeout},
	} {
		v := strings.TrimSpace(os.Getenv(env.name))
		if v == "" {
			continue
		}
		if err := env.dst.UnmarshalText([]byte(v)); err != nil && cfg.envErr == nil {
			cfg.envErr = errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", env.name)
		}
	}
}
