package secrets

import "secretsdir/internal/fsutil"

const (
	// SecretsDirName is the subdirectory holding secrets in both locations.
	SecretsDirName = "Secrets"
	// DefaultListFileName names the development machine list.
	DefaultListFileName = "Development Machines.txt"
)

// Locations holds the two roots the secrets directory can live under.
type Locations struct {
	// ExecutableDir is the directory containing the running binary.
	ExecutableDir string
	// DevelopmentDataDir is the shared data directory used on development
	// machines.
	DevelopmentDataDir string
}

// AppendSecretsDir returns dir/Secrets.
func AppendSecretsDir(dir string) string {
	return fsutil.Combine(dir, SecretsDirName)
}

// NonDevelopmentSecretsDir is the secrets directory for ordinary machines.
// It is computed directly and never consults classification.
func (l Locations) NonDevelopmentSecretsDir() string {
	return AppendSecretsDir(l.ExecutableDir)
}

// DevelopmentSecretsDir is the secrets directory for development machines.
// It is computed directly and never consults classification.
func (l Locations) DevelopmentSecretsDir() string {
	return AppendSecretsDir(l.DevelopmentDataDir)
}

// ListCandidates returns the list file paths in probe order.
func (l Locations) ListCandidates(listFileName string) []string {
	return []string{
		fsutil.Combine(l.NonDevelopmentSecretsDir(), listFileName),
		fsutil.Combine(l.DevelopmentSecretsDir(), listFileName),
	}
}
