package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"secretsdir/internal/codec"
	"secretsdir/internal/config"
	"secretsdir/internal/fsutil"
	"secretsdir/internal/logging"
	"secretsdir/internal/machine"
	"secretsdir/internal/repository"
	"secretsdir/internal/repository/sqlite"
	"secretsdir/internal/secrets"
)

// app is the wired runtime for one command invocation
type app struct {
	cfg        *config.Config
	configPath string
	files      *fsutil.Files
	svc        *secrets.Service
	journal    repository.Journal
}

// loadConfig reads the env file and config, then layers flags on top
func (g *globalFlags) loadConfig() (*config.Config, string, error) {
	if g.envFile != "" {
		if err := godotenv.Load(g.envFile); err != nil {
			return nil, "", fmt.Errorf("load env file: %w", err)
		}
	}

	var (
		cfg  *config.Config
		path string
		err  error
	)
	if g.configPath != "" {
		cfg, path, err = config.LoadFromPath(g.configPath)
	} else {
		cfg, path, err = config.Load()
	}
	if err != nil {
		return nil, path, err
	}

	if g.listFile != "" {
		cfg.ListFile = g.listFile
	}
	if g.secretsDir != "" {
		dir := g.secretsDir
		cfg.SecretsDir = &dir
	}
	dev, err := parseDevelopment(g.development)
	if err != nil {
		return nil, path, err
	}
	if dev != nil {
		cfg.DevelopmentOverride = dev
	}
	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}
	if g.prettyLogs {
		cfg.Log.Pretty = true
	}

	return cfg, path, nil
}

// open wires config, logging, the journal and the classifier
func (g *globalFlags) open() (*app, error) {
	cfg, path, err := g.loadConfig()
	if err != nil {
		return nil, err
	}

	level, ok := logging.ParseLevel(cfg.Log.Level)
	logging.Init(logging.Config{Level: level, Pretty: cfg.Log.Pretty})
	if !ok {
		logging.Warn().Str("level", cfg.Log.Level).Msg("unknown log level, using warn")
	}
	if path != "" {
		logging.Debug().Str("path", path).Msg("loaded config")
	}

	locations, err := cfg.Locations()
	if err != nil {
		return nil, fmt.Errorf("resolve executable directory: %w", err)
	}

	a := &app{
		cfg:        cfg,
		configPath: path,
		files:      fsutil.OS(),
	}

	opts := []secrets.Option{secrets.WithListFile(cfg.ListFile)}
	if cfg.Journal.Enabled {
		journal, err := sqlite.Open(cfg.Journal.Path)
		if err != nil {
			logging.Warn().Err(err).Str("path", cfg.Journal.Path).Msg("decision journal unavailable")
		} else {
			a.journal = journal
			opts = append(opts, secrets.WithRecorder(repository.Recorder{Journal: journal}))
		}
	}

	var identity machine.Identity = machine.Hostname{}
	if g.machineName != "" {
		identity = machine.Static(g.machineName)
	}

	a.svc = secrets.NewService(a.files, identity, locations, opts...)

	if cfg.SecretsDir != nil {
		a.svc.SecretsDirectoryOverride().Override(*cfg.SecretsDir)
	}
	if cfg.DevelopmentOverride != nil {
		a.svc.OverrideIsDevelopmentMachine(*cfg.DevelopmentOverride)
	}

	return a, nil
}

// Close releases the journal
func (a *app) Close() error {
	if a.journal == nil {
		return nil
	}
	return a.journal.Close()
}

// parseDevelopment maps auto|true|false to nil, true, false
func parseDevelopment(raw string) (*bool, error) {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" || raw == "auto" {
		return nil, nil
	}
	dev, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("--development must be auto, true or false, got %q", raw)
	}
	return &dev, nil
}

// encode writes v in a structured output format
func encode(w io.Writer, format string, v any) error {
	c, err := codec.ForFormat(format)
	if err != nil {
		return err
	}
	return c.Encode(w, v)
}
