// Package commands provides the CLI commands for secretsdir.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information set at build time
	Version   = "0.1.0"
	BuildTime = "dev"
)

// globalFlags holds the persistent flags shared by every command
type globalFlags struct {
	configPath  string
	logLevel    string
	prettyLogs  bool
	envFile     string
	secretsDir  string
	development string
	listFile    string
	machineName string
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "secretsdir",
		Short: "Resolve the secrets directory for this machine",
		Long: `secretsdir decides whether this host is a development machine by looking
for its name in a development machine list, then resolves the matching
secrets directory.

The list is probed next to the executable first and in the shared
development data directory second; the first list found decides.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "Config file (default: search $SECRETSDIR_CONFIG, ./secretsdir.yaml, ~/.config/secretsdir)")
	pf.StringVar(&g.logLevel, "log-level", "", "Log level (debug|info|warn|error|off)")
	pf.BoolVar(&g.prettyLogs, "pretty-logs", false, "Human-readable log output")
	pf.StringVar(&g.envFile, "env-file", "", "Load environment variables from a .env file first")
	pf.StringVar(&g.secretsDir, "secrets-dir", "", "Force the secrets directory")
	pf.StringVar(&g.development, "development", "auto", "Force classification (auto|true|false)")
	pf.StringVar(&g.listFile, "list-file", "", "Development machine list file name")
	pf.StringVar(&g.machineName, "machine-name", "", "Classify as this machine name instead of the hostname")

	cmd.SetVersionTemplate(fmt.Sprintf("secretsdir %s (%s)\n", Version, BuildTime))

	cmd.AddCommand(resolveCmd(g))
	cmd.AddCommand(classifyCmd(g))
	cmd.AddCommand(machinesCmd(g))
	cmd.AddCommand(pathCmd(g))
	cmd.AddCommand(checkCmd(g))
	cmd.AddCommand(historyCmd(g))
	cmd.AddCommand(watchCmd(g))
	cmd.AddCommand(configCmd(g))

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
