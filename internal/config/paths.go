package config

import (
	"os"
	"path/filepath"
)

const (
	// EnvConfigPath is the environment variable for explicit config path
	EnvConfigPath = "SECRETSDIR_CONFIG"
	// ConfigFileName is the default config file name
	ConfigFileName = "secretsdir.yaml"
	// ConfigDirName is the config directory name under XDG
	ConfigDirName = "secretsdir"
)

// workingDirNames are checked in the working directory, in order
var workingDirNames = []string{ConfigFileName, "secretsdir.json", "secretsdir.jsonc"}

// FindConfigPath searches for config file in priority order:
// 1. $SECRETSDIR_CONFIG (explicit path)
// 2. ./secretsdir.yaml, ./secretsdir.json, ./secretsdir.jsonc (working directory)
// 3. $XDG_CONFIG_HOME/secretsdir/config.yaml
// 4. ~/.config/secretsdir/config.yaml
// 5. /etc/secretsdir/config.yaml
//
// Returns empty string if no config file found
func FindConfigPath() string {
	// 1. Explicit environment variable
	if path := os.Getenv(EnvConfigPath); path != "" {
		if fileExists(path) {
			return path
		}
	}

	// 2. Working directory
	for _, name := range workingDirNames {
		if fileExists(name) {
			if abs, err := filepath.Abs(name); err == nil {
				return abs
			}
			return name
		}
	}

	// 3. XDG config home
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		path := filepath.Join(xdgHome, ConfigDirName, "config.yaml")
		if fileExists(path) {
			return path
		}
	}

	// 4. Default XDG location (~/.config)
	if home := homeDir(); home != "" {
		path := filepath.Join(home, ".config", ConfigDirName, "config.yaml")
		if fileExists(path) {
			return path
		}
	}

	// 5. System-wide
	systemPath := filepath.Join("/etc", ConfigDirName, "config.yaml")
	if fileExists(systemPath) {
		return systemPath
	}

	return ""
}

// DefaultConfigPath returns the preferred location for a new config file
// Prefers XDG config home, falls back to working directory
func DefaultConfigPath() string {
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		return filepath.Join(xdgHome, ConfigDirName, "config.yaml")
	}

	if home := homeDir(); home != "" {
		return filepath.Join(home, ".config", ConfigDirName, "config.yaml")
	}

	return ConfigFileName
}

// DefaultJournalPath returns the decision journal location under the XDG
// data directory
func DefaultJournalPath() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return filepath.Join(xdgData, ConfigDirName, "journal.db")
	}

	if home := homeDir(); home != "" {
		return filepath.Join(home, ".local", "share", ConfigDirName, "journal.db")
	}

	return "./secretsdir-journal.db"
}

// DefaultCloudRoot returns ~/Dropbox, the conventional personal cloud-storage
// root holding organization data on development machines
func DefaultCloudRoot() string {
	if home := homeDir(); home != "" {
		return filepath.Join(home, "Dropbox")
	}
	return "Dropbox"
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir(configPath string) error {
	dir := filepath.Dir(configPath)
	return os.MkdirAll(dir, 0755)
}

func homeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	home, _ := os.UserHomeDir()
	return home
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
