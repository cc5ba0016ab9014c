package secrets

import (
	"secretsdir/internal/logging"
)

// FindListFile probes the candidate secrets directories for listFileName,
// non-development location first. It returns the first path that exists.
func (s *Service) FindListFile(listFileName string) (string, bool) {
	return s.findListFile(listFileName)
}

func (s *Service) findListFile(listFileName string) (string, bool) {
	for _, candidate := range s.locations.ListCandidates(listFileName) {
		if s.files.Exists(candidate) {
			logging.Debug().Str("path", candidate).Msg("development machine list found")
			return candidate, true
		}
		logging.Debug().Str("path", candidate).Msg("development machine list not present")
	}
	return "", false
}

// LoadDevelopmentMachineNames reads one machine name per line from path.
// Unreadable files yield a *fsutil.FileAccessError.
func (s *Service) LoadDevelopmentMachineNames(path string) ([]string, error) {
	return s.files.ReadLines(path)
}

// SaveDevelopmentMachineNames overwrites path with one name per line.
// Unwritable targets yield a *fsutil.FileAccessError.
func (s *Service) SaveDevelopmentMachineNames(path string, names []string) error {
	return s.files.WriteLines(path, names)
}

// ContainsMachine reports whether name appears in names exactly. There is no
// trimming, case folding or pattern matching.
func ContainsMachine(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// AddMachineNames appends each of add not already present, keeping order.
// It reports whether anything changed.
func AddMachineNames(names []string, add ...string) ([]string, bool) {
	out := append([]string(nil), names...)
	changed := false
	for _, n := range add {
		if n == "" || ContainsMachine(out, n) {
			continue
		}
		out = append(out, n)
		changed = true
	}
	return out, changed
}

// RemoveMachineNames drops every exact occurrence of each of remove.
// It reports whether anything changed.
func RemoveMachineNames(names []string, remove ...string) ([]string, bool) {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if ContainsMachine(remove, n) {
			continue
		}
		out = append(out, n)
	}
	return out, len(out) != len(names)
}
