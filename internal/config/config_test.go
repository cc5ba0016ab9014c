package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"secretsdir/internal/secrets"
)

// clearEnv blanks every SECRETSDIR_* override for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvConfigPath, EnvSecretsDir, EnvDevelopment, EnvListFile, EnvDataDir, EnvLogLevel} {
		t.Setenv(key, "")
	}
}

// chdir changes the working directory for the duration of the test
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir(%q) error: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Version != 1 {
		t.Errorf("Version = %d, want 1", cfg.Version)
	}
	if cfg.ListFile != secrets.DefaultListFileName {
		t.Errorf("ListFile = %q, want %q", cfg.ListFile, secrets.DefaultListFileName)
	}
	if cfg.Development.Organization != DefaultOrganization {
		t.Errorf("Organization = %q, want %q", cfg.Development.Organization, DefaultOrganization)
	}
	if cfg.SecretsDir != nil {
		t.Error("SecretsDir should be nil by default")
	}
	if cfg.DevelopmentOverride != nil {
		t.Error("DevelopmentOverride should be nil by default")
	}
	if !cfg.Journal.Enabled {
		t.Error("Journal should be enabled by default")
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
}

func TestSaveAndLoad(t *testing.T) {
	clearEnv(t)

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := DefaultConfig()
	dir := "/srv/app/Secrets"
	dev := true
	cfg.SecretsDir = &dir
	cfg.DevelopmentOverride = &dev
	cfg.ListFile = "Machines.txt"
	cfg.Journal.Enabled = false

	if err := cfg.Save(configPath); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, path, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}
	if path != configPath {
		t.Errorf("path = %s, want %s", path, configPath)
	}

	if loaded.SecretsDir == nil || *loaded.SecretsDir != dir {
		t.Errorf("SecretsDir = %v, want %s", loaded.SecretsDir, dir)
	}
	if loaded.DevelopmentOverride == nil || !*loaded.DevelopmentOverride {
		t.Error("DevelopmentOverride should be true")
	}
	if loaded.ListFile != "Machines.txt" {
		t.Errorf("ListFile = %q, want Machines.txt", loaded.ListFile)
	}
	if loaded.Journal.Enabled {
		t.Error("Journal.Enabled should survive as false")
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	clearEnv(t)

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("development:\n  organization: Acme\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, _, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}
	if cfg.Development.Organization != "Acme" {
		t.Errorf("Organization = %q, want Acme", cfg.Development.Organization)
	}
	if cfg.ListFile != secrets.DefaultListFileName {
		t.Errorf("ListFile = %q, want default", cfg.ListFile)
	}
	if !cfg.Journal.Enabled {
		t.Error("Journal should stay enabled when the file omits it")
	}
	if cfg.Journal.Path == "" {
		t.Error("Journal.Path should be defaulted")
	}
}

func TestLoadJSONC(t *testing.T) {
	clearEnv(t)

	configPath := filepath.Join(t.TempDir(), "secretsdir.jsonc")
	content := `{
	// shared data on development machines
	"development": {"data_dir": "/data/shared"},
	"list_file": "Dev.txt",
}`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, _, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}
	if cfg.Development.DataDir != "/data/shared" {
		t.Errorf("DataDir = %q, want /data/shared", cfg.Development.DataDir)
	}
	if cfg.ListFile != "Dev.txt" {
		t.Errorf("ListFile = %q, want Dev.txt", cfg.ListFile)
	}
}

func TestLoadInvalid(t *testing.T) {
	clearEnv(t)

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("version: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := LoadFromPath(configPath); err == nil {
		t.Error("LoadFromPath() should fail on malformed yaml")
	}
	if _, _, err := LoadFromPath(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadFromPath() should fail on a missing file")
	}
}

func TestApplyEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvSecretsDir, "/forced/Secrets")
	t.Setenv(EnvDevelopment, "false")
	t.Setenv(EnvListFile, "Other.txt")
	t.Setenv(EnvDataDir, "/data/dev")
	t.Setenv(EnvLogLevel, "debug")

	cfg := DefaultConfig()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv() error: %v", err)
	}

	if cfg.SecretsDir == nil || *cfg.SecretsDir != "/forced/Secrets" {
		t.Errorf("SecretsDir = %v, want /forced/Secrets", cfg.SecretsDir)
	}
	if cfg.DevelopmentOverride == nil || *cfg.DevelopmentOverride {
		t.Error("DevelopmentOverride should be false")
	}
	if cfg.ListFile != "Other.txt" {
		t.Errorf("ListFile = %q, want Other.txt", cfg.ListFile)
	}
	if cfg.DevelopmentDataDir() != "/data/dev" {
		t.Errorf("DevelopmentDataDir() = %q, want /data/dev", cfg.DevelopmentDataDir())
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestApplyEnvInvalidBool(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvDevelopment, "maybe")

	if err := DefaultConfig().ApplyEnv(); err == nil {
		t.Error("ApplyEnv() should reject a non-boolean development override")
	}
}

func TestDevelopmentDataDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Development.CloudRoot = "/home/dev/Dropbox"
	cfg.Development.Organization = "Acme"

	want := filepath.Join("/home/dev/Dropbox", "Organizations", "Acme", "Data")
	if got := cfg.DevelopmentDataDir(); got != want {
		t.Errorf("DevelopmentDataDir() = %q, want %q", got, want)
	}

	cfg.Development.DataDir = "/explicit"
	if got := cfg.DevelopmentDataDir(); got != "/explicit" {
		t.Errorf("DevelopmentDataDir() = %q, want /explicit", got)
	}
}

func TestLocations(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ExecutableDir = "/opt/app"
	cfg.Development.DataDir = "/data"

	locs, err := cfg.Locations()
	if err != nil {
		t.Fatalf("Locations() error: %v", err)
	}
	if locs.ExecutableDir != "/opt/app" {
		t.Errorf("ExecutableDir = %q, want /opt/app", locs.ExecutableDir)
	}
	if got, want := locs.DevelopmentSecretsDir(), filepath.Join("/data", secrets.SecretsDirName); got != want {
		t.Errorf("DevelopmentSecretsDir() = %q, want %q", got, want)
	}

	cfg.ExecutableDir = ""
	locs, err = cfg.Locations()
	if err != nil {
		t.Fatalf("Locations() error: %v", err)
	}
	if !filepath.IsAbs(locs.ExecutableDir) {
		t.Errorf("ExecutableDir = %q, want the test binary's directory", locs.ExecutableDir)
	}
}

func TestSummary(t *testing.T) {
	cfg := DefaultConfig()
	dir := "/forced"
	cfg.SecretsDir = &dir
	cfg.Journal.Enabled = false

	s := cfg.Summary()
	for _, want := range []string{"List file: " + secrets.DefaultListFileName, "Secrets dir (forced): /forced", "Journal: disabled"} {
		if !strings.Contains(s, want) {
			t.Errorf("Summary() missing %q:\n%s", want, s)
		}
	}
}

func TestFindConfigPath(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ConfigFileName)

	if err := DefaultConfig().Save(configPath); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	chdir(t, tmpDir)

	// Should find config in working directory
	if found := FindConfigPath(); found == "" {
		t.Error("FindConfigPath() should find config in working directory")
	}

	// Explicit path doesn't exist, should fall back
	t.Setenv(EnvConfigPath, "/nonexistent/path.yaml")
	if found := FindConfigPath(); found == "" {
		t.Error("FindConfigPath() should fall back when env path doesn't exist")
	}

	// Explicit path wins when present
	explicit := filepath.Join(t.TempDir(), "explicit.yaml")
	if err := DefaultConfig().Save(explicit); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	t.Setenv(EnvConfigPath, explicit)
	if found := FindConfigPath(); found != explicit {
		t.Errorf("FindConfigPath() = %q, want %q", found, explicit)
	}
}

func TestDefaultJournalPath(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	want := filepath.Join(dataHome, ConfigDirName, "journal.db")
	if got := DefaultJournalPath(); got != want {
		t.Errorf("DefaultJournalPath() = %q, want %q", got, want)
	}
}

func TestFindConfigPathXDGConfigHome(t *testing.T) {
	clearEnv(t)
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	want := filepath.Join(xdg, ConfigDirName, "config.yaml")
	if err := DefaultConfig().Save(want); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	if got := FindConfigPath(); got != want {
		t.Errorf("FindConfigPath() = %q, want %q", got, want)
	}
	if got := DefaultConfigPath(); got != want {
		t.Errorf("DefaultConfigPath() = %q, want %q", got, want)
	}
}
