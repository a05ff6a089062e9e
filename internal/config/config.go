// Package config handles TOML configuration loading with environment
// variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrMissingAPIKey is fatal at startup: without a catalog credential no
// file is touched.
var ErrMissingAPIKey = errors.New("no TMDB API key: set tmdb.api_key, the TMDB_API_KEY environment variable, or point tmdb.api_key_file at a key file")

// Config is the root configuration structure.
type Config struct {
	TMDB    TMDBConfig    `toml:"tmdb"`
	Cache   CacheConfig   `toml:"cache"`
	Scanner ScannerConfig `toml:"scanner"`
	Log     LogConfig     `toml:"log"`
}

type TMDBConfig struct {
	APIKey     string `toml:"api_key"`
	APIKeyFile string `toml:"api_key_file"`
}

// CacheConfig controls the persistent lookup cache. The zero value means
// enabled, so omitting the section keeps caching on.
type CacheConfig struct {
	Disabled bool   `toml:"disabled"`
	Path     string `toml:"path"`
}

type ScannerConfig struct {
	DenyList string `toml:"deny_list"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads and parses the configuration file. A missing file yields the
// defaults; credentials can still come from the environment.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.TMDB.APIKeyFile == "" {
		c.TMDB.APIKeyFile = firstNonEmpty(os.Getenv("TMDB_API_KEY_FILE"), "./.tmdb-api-key")
	}
	if c.Cache.Path == "" {
		c.Cache.Path = "./renamarr.cache.db"
	}
	if c.Scanner.DenyList == "" {
		c.Scanner.DenyList = "./extra_disallowed.txt"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// ResolveAPIKey returns the catalog credential: the configured key, else the
// contents of the key file, else the TMDB_API_KEY environment variable.
func (c *Config) ResolveAPIKey() (string, error) {
	if c.TMDB.APIKey != "" {
		return c.TMDB.APIKey, nil
	}
	if data, err := os.ReadFile(c.TMDB.APIKeyFile); err == nil {
		if key := strings.TrimSpace(string(data)); key != "" {
			return key, nil
		}
	}
	if key := os.Getenv("TMDB_API_KEY"); key != "" {
		return key, nil
	}
	return "", ErrMissingAPIKey
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1]
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match
	})
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
