package commands

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"secretsdir/internal/fsutil"
	"secretsdir/internal/secrets"
)

const (
	locationDevelopment    = "development"
	locationNonDevelopment = "non-development"
)

var errNoList = errors.New("no development machine list found")

func machinesCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "machines",
		Aliases: []string{"machine"},
		Short:   "Manage the development machine list",
	}
	cmd.AddCommand(machinesListCmd(g))
	cmd.AddCommand(machinesAddCmd(g))
	cmd.AddCommand(machinesRemoveCmd(g))
	return cmd
}

func machinesListCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the names in the development machine list",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := g.open()
			if err != nil {
				return err
			}
			defer a.Close()

			path, ok := a.svc.FindListFile(a.svc.ListFile())
			if !ok {
				fmt.Fprintln(cmd.ErrOrStderr(), errNoList)
				return nil
			}

			names, err := a.svc.LoadDevelopmentMachineNames(path)
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func machinesAddCmd(g *globalFlags) *cobra.Command {
	var location string

	cmd := &cobra.Command{
		Use:   "add [name...]",
		Short: "Add machines to the development machine list (default: this machine)",
		Long: `Add machines to the development machine list.

Without arguments the current machine is added. The list that classification
would read is updated; when no list exists yet one is created in the
directory chosen by --location.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := g.open()
			if err != nil {
				return err
			}
			defer a.Close()

			if len(args) == 0 {
				args = []string{a.svc.MachineName()}
			}

			var names []string
			path, ok := a.svc.FindListFile(a.svc.ListFile())
			if ok {
				if names, err = a.svc.LoadDevelopmentMachineNames(path); err != nil {
					return err
				}
			} else {
				if path, err = newListPath(a.svc.Locations(), location, a.svc.ListFile()); err != nil {
					return err
				}
				if err := a.files.EnsureDir(filepath.Dir(path)); err != nil {
					return err
				}
			}

			updated, changed := secrets.AddMachineNames(names, args...)
			if !changed && ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s unchanged\n", path)
				return nil
			}
			if err := a.svc.SaveDevelopmentMachineNames(path, updated); err != nil {
				return err
			}
			a.svc.ResetIsDevelopmentMachine()

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d machine(s)\n", path, len(updated))
			return nil
		},
	}

	cmd.Flags().StringVar(&location, "location", locationDevelopment,
		"Where to create the list when none exists (development|non-development)")
	return cmd
}

func machinesRemoveCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "remove name...",
		Aliases: []string{"rm"},
		Short:   "Remove machines from the development machine list",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := g.open()
			if err != nil {
				return err
			}
			defer a.Close()

			path, ok := a.svc.FindListFile(a.svc.ListFile())
			if !ok {
				return errNoList
			}

			names, err := a.svc.LoadDevelopmentMachineNames(path)
			if err != nil {
				return err
			}

			updated, changed := secrets.RemoveMachineNames(names, args...)
			if !changed {
				fmt.Fprintf(cmd.OutOrStdout(), "%s unchanged\n", path)
				return nil
			}
			if err := a.svc.SaveDevelopmentMachineNames(path, updated); err != nil {
				return err
			}
			a.svc.ResetIsDevelopmentMachine()

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d machine(s)\n", path, len(updated))
			return nil
		},
	}
}

// newListPath picks the list file location for a list that does not exist yet
func newListPath(locs secrets.Locations, location, listFile string) (string, error) {
	switch location {
	case locationDevelopment:
		return fsutil.Combine(locs.DevelopmentSecretsDir(), listFile), nil
	case locationNonDevelopment:
		return fsutil.Combine(locs.NonDevelopmentSecretsDir(), listFile), nil
	default:
		return "", fmt.Errorf("--location must be %s or %s, got %q", locationDevelopment, locationNonDevelopment, location)
	}
}
