package secrets

import (
	"context"
	"sync"
	"time"

	"secretsdir/internal/domain"
	"secretsdir/internal/logging"
	"secretsdir/internal/machine"
	"secretsdir/internal/override"
)

// Files is the filesystem surface the service needs.
type Files interface {
	Exists(path string) bool
	ReadFile(path string) ([]byte, error)
	ReadLines(path string) ([]string, error)
	WriteLines(path string, lines []string) error
}

// Recorder receives every classification the service makes.
type Recorder interface {
	Record(ctx context.Context, d domain.Decision) error
}

// Service classifies the current machine and resolves its secrets directory.
// It is safe for concurrent use; the first caller to classify does the file
// probe and every other caller waits for its answer.
type Service struct {
	files     Files
	identity  machine.Identity
	locations Locations
	listFile  string
	recorder  Recorder
	now       func() time.Time

	secretsDir *override.Value[string]

	mu       sync.Mutex
	cached   Classification
	listPath string
}

// Option configures a Service.
type Option func(*Service)

// WithRecorder journals each decision. Recorder failures are logged, never
// returned.
func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		s.recorder = r
	}
}

// WithListFile sets the list file name IsDevelopmentMachine and
// ResolveSecretsDirectory classify with. The default is DefaultListFileName.
func WithListFile(name string) Option {
	return func(s *Service) {
		if name != "" {
			s.listFile = name
		}
	}
}

// WithClock replaces time.Now for decision timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a service with an unknown classification and no
// secrets directory override.
func NewService(files Files, identity machine.Identity, locations Locations, opts ...Option) *Service {
	s := &Service{
		files:      files,
		identity:   identity,
		locations:  locations,
		listFile:   DefaultListFileName,
		now:        time.Now,
		secretsDir: override.Unset[string](),
		cached:     Unknown(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Locations returns the roots the service resolves against.
func (s *Service) Locations() Locations {
	return s.locations
}

// ListFile returns the list file name used when none is given.
func (s *Service) ListFile() string {
	return s.listFile
}

// SecretsDirectoryOverride exposes the cell that forces
// ResolveSecretsDirectory to a fixed path.
func (s *Service) SecretsDirectoryOverride() *override.Value[string] {
	return s.secretsDir
}

// ResolveSecretsDirectory returns the overridden secrets directory if one is
// set, otherwise the development or non-development directory according to
// IsDevelopmentMachine. The directory need not exist.
func (s *Service) ResolveSecretsDirectory() (string, error) {
	if dir, ok := s.secretsDir.Get(); ok {
		return dir, nil
	}

	dev, err := s.IsDevelopmentMachine()
	if err != nil {
		return "", err
	}
	if dev {
		return s.locations.DevelopmentSecretsDir(), nil
	}
	return s.locations.NonDevelopmentSecretsDir(), nil
}

// IsDevelopmentMachine classifies using the service's list file name.
func (s *Service) IsDevelopmentMachine() (bool, error) {
	return s.IsDevelopmentMachineWithList(s.listFile)
}

// IsDevelopmentMachineWithList classifies using the named list file. The
// cached answer is shared across list file names: whichever name is used
// first decides for the rest of the service's life, until reset.
func (s *Service) IsDevelopmentMachineWithList(listFileName string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dev, ok := s.cached.Get(); ok {
		return dev, nil
	}

	name := s.identity.Name()

	path, found := s.findListFile(listFileName)
	if !found {
		logging.Debug().
			Str("list_file", listFileName).
			Msg("no development machine list found, classifying as non-development")
		s.store(Known(false), "")
		s.record(domain.Decision{
			MachineName: name,
			ListFile:    listFileName,
			Source:      domain.SourceAbsent,
		})
		return false, nil
	}

	names, err := s.LoadDevelopmentMachineNames(path)
	if err != nil {
		return false, err
	}

	dev := ContainsMachine(names, name)
	s.store(Known(dev), path)

	logging.Info().
		Str("machine", name).
		Str("list", path).
		Bool("development", dev).
		Msg("classified machine")

	s.record(domain.Decision{
		MachineName: name,
		ListFile:    listFileName,
		ListPath:    path,
		Source:      domain.SourceComputed,
		Development: dev,
		Digest:      domain.DigestLines(names),
	})
	return dev, nil
}

// ResetIsDevelopmentMachine forgets the cached answer so the next query
// probes the list files again.
func (s *Service) ResetIsDevelopmentMachine() {
	s.mu.Lock()
	s.store(Unknown(), "")
	s.mu.Unlock()
}

// OverrideIsDevelopmentMachine replaces the cached answer. It holds until
// the next reset or override.
func (s *Service) OverrideIsDevelopmentMachine(development bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store(Known(development), "")
	s.record(domain.Decision{
		MachineName: s.identity.Name(),
		Source:      domain.SourceOverride,
		Development: development,
	})
}

// Classification returns the cached state without computing anything.
func (s *Service) Classification() Classification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cached
}

// ListPath returns the list file that produced the cached answer, or "" if
// the answer was overridden, absent or not yet computed.
func (s *Service) ListPath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listPath
}

// MachineName returns the name classification compares against.
func (s *Service) MachineName() string {
	return s.identity.Name()
}

// Report resolves the secrets directory and captures the resulting state.
// A forced secrets directory leaves the classification untouched.
func (s *Service) Report() (domain.Report, error) {
	dir, err := s.ResolveSecretsDirectory()
	if err != nil {
		return domain.Report{}, err
	}

	return domain.Report{
		MachineName:       s.MachineName(),
		Classification:    s.Classification().String(),
		SecretsDir:        dir,
		SecretsDirForced:  s.secretsDir.IsOverridden(),
		ListFile:          s.listFile,
		ListPath:          s.ListPath(),
		DevelopmentDir:    s.locations.DevelopmentSecretsDir(),
		NonDevelopmentDir: s.locations.NonDevelopmentSecretsDir(),
	}, nil
}

// store must be called with mu held.
func (s *Service) store(c Classification, listPath string) {
	s.cached = c
	s.listPath = listPath
}

// record must be called with mu held.
func (s *Service) record(d domain.Decision) {
	if s.recorder == nil {
		return
	}
	d.DecidedAt = s.now()
	if err := s.recorder.Record(context.Background(), d); err != nil {
		logging.Warn().Err(err).Str("source", string(d.Source)).Msg("failed to journal decision")
	}
}
