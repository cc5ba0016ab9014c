package config

// Config is the root configuration structure
type Config struct {
	Version             int               `yaml:"version"`
	Development         DevelopmentConfig `yaml:"development"`
	ExecutableDir       string            `yaml:"executable_dir,omitempty"` // "" = directory of the running binary
	ListFile            string            `yaml:"list_file"`
	SecretsDir          *string           `yaml:"secrets_dir,omitempty"`          // forces the secrets directory
	DevelopmentOverride *bool             `yaml:"development_override,omitempty"` // nil = classify from the list file
	Journal             JournalConfig     `yaml:"journal"`
	Log                 LogConfig         `yaml:"log"`
}

// DevelopmentConfig locates the shared data directory used on development
// machines. DataDir wins when set; otherwise the directory is
// <cloud_root>/Organizations/<organization>/Data.
type DevelopmentConfig struct {
	DataDir      string `yaml:"data_dir,omitempty"`
	CloudRoot    string `yaml:"cloud_root"`
	Organization string `yaml:"organization"`
}

// JournalConfig holds decision journal settings
type JournalConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}
