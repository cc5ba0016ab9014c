// Package machine identifies the host the process runs on.
package machine

import (
	"fmt"
	"os"
	"path/filepath"

	"secretsdir/internal/logging"
)

// FallbackName is reported when the operating system cannot supply a host name.
const FallbackName = "localhost"

// Identity supplies the current machine name.
type Identity interface {
	Name() string
}

// Hostname reads the name from the operating system on every call.
type Hostname struct{}

// Name returns os.Hostname, or FallbackName if it fails.
func (Hostname) Name() string {
	name, err := os.Hostname()
	if err != nil {
		logging.Warn().Err(err).Str("fallback", FallbackName).Msg("hostname unavailable")
		return FallbackName
	}
	return name
}

// Static always reports the same name.
type Static string

// Name returns s.
func (s Static) Name() string {
	return string(s)
}

// ExecutableDir returns the directory containing the running binary, with
// symlinks resolved.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}
