package domain

// Report is a snapshot of how the secrets directory was resolved.
type Report struct {
	MachineName       string `json:"machine_name" yaml:"machine_name"`
	Classification    string `json:"classification" yaml:"classification"`
	SecretsDir        string `json:"secrets_dir" yaml:"secrets_dir"`
	SecretsDirForced  bool   `json:"secrets_dir_forced" yaml:"secrets_dir_forced"`
	ListFile          string `json:"list_file" yaml:"list_file"`
	ListPath          string `json:"list_path,omitempty" yaml:"list_path,omitempty"`
	DevelopmentDir    string `json:"development_secrets_dir" yaml:"development_secrets_dir"`
	NonDevelopmentDir string `json:"non_development_secrets_dir" yaml:"non_development_secrets_dir"`
}
