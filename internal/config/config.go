// Package config provides configuration management for secretsdir.
//
// The config file describes where the two candidate secrets directories live
// and how the resolver may be forced; it never records the classification
// itself, which is always derived from the development machine list at
// runtime.
//
// Config file locations (priority order, see FindConfigPath):
//  1. $SECRETSDIR_CONFIG
//  2. ./secretsdir.yaml, ./secretsdir.json, ./secretsdir.jsonc
//  3. $XDG_CONFIG_HOME/secretsdir/config.yaml
//  4. ~/.config/secretsdir/config.yaml
//  5. /etc/secretsdir/config.yaml
//
// Environment variables override file values:
//
//	SECRETSDIR_SECRETS_DIR   force the secrets directory
//	SECRETSDIR_DEVELOPMENT   force classification (true/false)
//	SECRETSDIR_LIST_FILE     development machine list file name
//	SECRETSDIR_DATA_DIR      development data directory
//	SECRETSDIR_LOG_LEVEL     debug, info, warn, error, off
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"secretsdir/internal/machine"
	"secretsdir/internal/secrets"
)

// Environment variable overrides
const (
	EnvSecretsDir  = "SECRETSDIR_SECRETS_DIR"
	EnvDevelopment = "SECRETSDIR_DEVELOPMENT"
	EnvListFile    = "SECRETSDIR_LIST_FILE"
	EnvDataDir     = "SECRETSDIR_DATA_DIR"
	EnvLogLevel    = "SECRETSDIR_LOG_LEVEL"
)

// DefaultOrganization names the organization folder under the cloud root
const DefaultOrganization = "Default"

// Load finds and loads the config file, or returns defaults if none found.
// Environment overrides are applied either way.
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		cfg := DefaultConfig()
		if err := cfg.ApplyEnv(); err != nil {
			return nil, "", err
		}
		return cfg, "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path. Files ending in .json or
// .jsonc may contain comments and trailing commas.
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		data = jsonc.ToJSON(data)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.ApplyEnv(); err != nil {
		return nil, path, err
	}

	return cfg, path, nil
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns sensible defaults for a new installation
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Development: DevelopmentConfig{
			CloudRoot:    DefaultCloudRoot(),
			Organization: DefaultOrganization,
		},
		ListFile: secrets.DefaultListFileName,
		Journal: JournalConfig{
			Enabled: true,
			Path:    DefaultJournalPath(),
		},
		Log: LogConfig{Level: "warn"},
	}
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.ListFile == "" {
		c.ListFile = secrets.DefaultListFileName
	}
	if c.Development.CloudRoot == "" {
		c.Development.CloudRoot = DefaultCloudRoot()
	}
	if c.Development.Organization == "" {
		c.Development.Organization = DefaultOrganization
	}
	if c.Journal.Path == "" {
		c.Journal.Path = DefaultJournalPath()
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
}

// ApplyEnv overlays SECRETSDIR_* environment variables onto the config
func (c *Config) ApplyEnv() error {
	if dir := os.Getenv(EnvSecretsDir); dir != "" {
		c.SecretsDir = &dir
	}
	if raw := os.Getenv(EnvDevelopment); raw != "" {
		dev, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDevelopment, err)
		}
		c.DevelopmentOverride = &dev
	}
	if name := os.Getenv(EnvListFile); name != "" {
		c.ListFile = name
	}
	if dir := os.Getenv(EnvDataDir); dir != "" {
		c.Development.DataDir = dir
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Log.Level = level
	}
	return nil
}

// DevelopmentDataDir returns the shared data directory for development
// machines: the explicit data_dir, or <cloud_root>/Organizations/<org>/Data
func (c *Config) DevelopmentDataDir() string {
	if c.Development.DataDir != "" {
		return c.Development.DataDir
	}
	return filepath.Join(c.Development.CloudRoot, "Organizations", c.Development.Organization, "Data")
}

// Locations resolves the two secrets directory roots. The executable
// directory comes from executable_dir when set, otherwise from the running
// binary.
func (c *Config) Locations() (secrets.Locations, error) {
	exeDir := c.ExecutableDir
	if exeDir == "" {
		dir, err := machine.ExecutableDir()
		if err != nil {
			return secrets.Locations{}, err
		}
		exeDir = dir
	}

	return secrets.Locations{
		ExecutableDir:      exeDir,
		DevelopmentDataDir: c.DevelopmentDataDir(),
	}, nil
}

// Summary returns a human-readable config summary
func (c *Config) Summary() string {
	summary := fmt.Sprintf("List file: %s\n", c.ListFile)
	summary += fmt.Sprintf("Development data: %s\n", c.DevelopmentDataDir())
	if c.ExecutableDir != "" {
		summary += fmt.Sprintf("Executable dir: %s\n", c.ExecutableDir)
	}
	if c.SecretsDir != nil {
		summary += fmt.Sprintf("Secrets dir (forced): %s\n", *c.SecretsDir)
	}
	if c.DevelopmentOverride != nil {
		summary += fmt.Sprintf("Development (forced): %t\n", *c.DevelopmentOverride)
	}
	if c.Journal.Enabled {
		summary += fmt.Sprintf("Journal: %s", c.Journal.Path)
	} else {
		summary += "Journal: disabled"
	}
	return summary
}
