package config

//go:generate go run ../tools/schema-generator

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	core_config "github.com/grovetools/core/config"
	"github.com/grovetools/core/logging"
	"gopkg.in/yaml.v3"
)

var logger = logging.NewLogger("rollcall-config")

// ExtractConfig defines settings for the name-extraction engine.
type ExtractConfig struct {
	// Engine selects the extraction provider.
	// "openai" (default): vision-capable chat model via the OpenAI API.
	// "tesseract": local OCR, no network access.
	Engine string `yaml:"engine,omitempty"`

	// Model is the multimodal model name for the openai engine.
	// Default: gpt-4o.
	Model string `yaml:"model,omitempty"`

	// BaseURL overrides the OpenAI-compatible API root, for proxies or
	// self-hosted gateways.
	BaseURL string `yaml:"base_url,omitempty"`

	// APIKeyEnv names the environment variable holding the API credential.
	// Default: OPENAI_API_KEY. The key itself never lives in config files.
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// TimeoutSeconds bounds one extraction call. Default: 60.
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty"`

	// Languages are OCR language hints for the tesseract engine
	// (e.g. ["eng", "jpn"]).
	Languages []string `yaml:"languages,omitempty"`
}

// RosterConfig defines settings for name normalization.
type RosterConfig struct {
	// MinNameLength drops extracted lines shorter than this many runes.
	// Default: 2.
	MinNameLength int `yaml:"min_name_length,omitempty"`

	// KeepRoleSuffixes disables the local strip of trailing role
	// annotations like "(host)" and trusts the extraction prompt alone.
	KeepRoleSuffixes bool `yaml:"keep_role_suffixes,omitempty"`
}

// ServeConfig defines settings for the web front-end.
type ServeConfig struct {
	// Addr is the listen address for `rollcall serve`. Default: :8477.
	Addr string `yaml:"addr,omitempty"`
}

// Config is the top-level configuration structure for rollcall.
type Config struct {
	Extract ExtractConfig `yaml:"extract,omitempty"`
	Roster  RosterConfig  `yaml:"roster,omitempty"`
	Serve   ServeConfig   `yaml:"serve,omitempty"`
}

// Load reads configuration from the grove config extension "rollcall" when
// available, falling back to ~/.config/rollcall/config.yml, and applies
// defaults. Missing configuration is not an error.
func Load() Config {
	var cfg Config

	loaded := false
	if coreCfg, err := core_config.LoadDefault(); err == nil {
		if err := coreCfg.UnmarshalExtension("rollcall", &cfg); err == nil {
			loaded = true
		}
	}

	if !loaded {
		if home, err := os.UserHomeDir(); err == nil {
			if fileCfg, ok := loadFile(filepath.Join(home, ".config", "rollcall", "config.yml")); ok {
				cfg = fileCfg
			}
		}
	}

	cfg.applyDefaults()
	return cfg
}

// loadFile reads and parses a standalone config file. A missing file is
// normal and reports ok=false silently; a malformed file is warned about
// rather than silently degrading to defaults.
func loadFile(path string) (Config, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, false
	}
	cfg, err := Parse(data)
	if err != nil {
		logger.WithError(err).WithField("path", path).Warn("Ignoring malformed config file")
		return Config{}, false
	}
	return cfg, true
}

// Parse decodes a raw YAML document into a Config with defaults applied.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Extract.Engine == "" {
		c.Extract.Engine = "openai"
	}
	if c.Extract.Model == "" {
		c.Extract.Model = "gpt-4o"
	}
	if c.Extract.APIKeyEnv == "" {
		c.Extract.APIKeyEnv = "OPENAI_API_KEY"
	}
	if c.Extract.TimeoutSeconds <= 0 {
		c.Extract.TimeoutSeconds = 60
	}
	if c.Roster.MinNameLength <= 0 {
		c.Roster.MinNameLength = 2
	}
	if c.Serve.Addr == "" {
		c.Serve.Addr = ":8477"
	}
}

// Timeout returns the extraction timeout as a duration.
func (c ExtractConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
