// Package config handles configuration loading and parsing for redpen.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jfenske/redpen/internal/constants"
	"github.com/jfenske/redpen/internal/logger"
	"github.com/jfenske/redpen/internal/profile"
)

//go:embed config.toml
var defaultConfig []byte

// Config holds the active language profiles after user overrides have
// been applied: disabled profiles removed, disabled rules filtered out,
// extra advisory rules appended.
type Config struct {
	Profiles []*profile.Profile
}

// ProfileSettings tunes one built-in profile.
type ProfileSettings struct {
	// Enabled defaults to true when the section or field is absent.
	Enabled       *bool       `toml:"enabled"`
	DisabledRules []string    `toml:"disabled_rules"`
	Extra         []ExtraRule `toml:"extra"`
}

// ExtraRule is a user-supplied advisory regex rule.
type ExtraRule struct {
	Name        string `toml:"name"`
	Pattern     string `toml:"pattern"`
	Description string `toml:"description"`
}

// fileConfig is the on-disk TOML shape.
type fileConfig struct {
	Profiles map[string]ProfileSettings `toml:"profiles"`
}

var (
	globalConfig      *Config
	configInitialized bool
	configPath        string
	initError         error
)

// GetConfigDir returns the config directory path.
// Uses REDPEN_CONFIG env var if set, otherwise ~/.config/redpen
func GetConfigDir() (string, error) {
	if dir := os.Getenv(constants.EnvConfigDir); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, constants.XDGConfigSubdir, constants.AppName), nil
}

// EnsureConfigFiles creates the config directory and writes the default
// config file if it doesn't exist.
func EnsureConfigFiles(configDir string) error {
	if err := os.MkdirAll(configDir, constants.DirMode); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	path := filepath.Join(configDir, constants.ConfigFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, defaultConfig, constants.FileMode); err != nil {
			return fmt.Errorf("failed to write %s: %w", constants.ConfigFileName, err)
		}
	}

	return nil
}

// LoadConfig parses TOML data and applies it to fresh copies of the
// built-in profiles.
func LoadConfig(data []byte) (*Config, error) {
	var raw fileConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	var active []*profile.Profile
	for _, p := range profile.Builtins() {
		settings, ok := raw.Profiles[strings.ToLower(p.Name)]
		if !ok {
			active = append(active, p)
			continue
		}
		if settings.Enabled != nil && !*settings.Enabled {
			continue
		}

		if len(settings.DisabledRules) > 0 {
			kept := p.Rules[:0]
			for _, r := range p.Rules {
				if !containsName(settings.DisabledRules, r.Name) {
					kept = append(kept, r)
				}
			}
			p.Rules = kept
		}

		for _, extra := range settings.Extra {
			rule, err := profile.CompileExtra(extra.Name, extra.Pattern, extra.Description)
			if err != nil {
				return nil, fmt.Errorf("profile %s: %w", p.Name, err)
			}
			p.Rules = append(p.Rules, rule)
		}

		active = append(active, p)
	}

	return &Config{Profiles: active}, nil
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

// loadEmbeddedDefaults loads profiles from the embedded default config.
func loadEmbeddedDefaults() *Config {
	cfg, _ := LoadConfig(defaultConfig)
	if cfg == nil {
		cfg = &Config{Profiles: profile.Builtins()}
	}
	return cfg
}

// Init loads configuration from files, creating defaults if necessary.
// Any failure falls back to embedded defaults; the hook must keep working
// without a readable config file.
func Init() error {
	if configInitialized {
		return nil
	}

	configDir, err := GetConfigDir()
	if err != nil {
		logger.Debug("failed to get config dir, using embedded defaults", "error", err)
		return initWithError(err)
	}

	if err := EnsureConfigFiles(configDir); err != nil {
		logger.Debug("failed to ensure config files, using embedded defaults", "error", err)
		return initWithError(err)
	}

	path := filepath.Join(configDir, constants.ConfigFileName)
	configData, err := os.ReadFile(path)
	if err != nil {
		logger.Debug("failed to read config file, using embedded defaults", "path", path, "error", err)
		return initWithError(fmt.Errorf("failed to read %s: %w", constants.ConfigFileName, err))
	}

	cfg, err := LoadConfig(configData)
	if err != nil {
		logger.Debug("failed to parse config, using embedded defaults", "error", err)
		return initWithError(fmt.Errorf("failed to load config: %w", err))
	}

	globalConfig = cfg
	configPath = path
	configInitialized = true
	logger.Debug("config loaded successfully", "path", path, "profiles", len(cfg.Profiles))
	return nil
}

func initWithError(err error) error {
	globalConfig = loadEmbeddedDefaults()
	initError = err
	configInitialized = true
	return err
}

// Get returns the current configuration.
// If Init has not been called, it initializes with defaults.
func Get() *Config {
	if !configInitialized {
		Init()
	}
	return globalConfig
}

// GetConfigPath returns the path of the loaded config file, or "" when
// running on embedded defaults.
func GetConfigPath() string {
	return configPath
}

// InitError returns the error that forced the embedded-defaults fallback,
// if any.
func InitError() error {
	return initError
}

// Reset resets the configuration state. Used for testing.
func Reset() {
	configInitialized = false
	globalConfig = nil
	configPath = ""
	initError = nil
}

// GetDefaultConfig returns the embedded default configuration.
func GetDefaultConfig() []byte {
	return defaultConfig
}
