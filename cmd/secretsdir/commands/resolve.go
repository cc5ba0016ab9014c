package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func resolveCmd(g *globalFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the secrets directory for this machine",
		Long: `Print the secrets directory for this machine.

With -o json or -o yaml a full report is printed instead: the machine name,
its classification, the list file that decided it and both candidate
directories.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := g.open()
			if err != nil {
				return err
			}
			defer a.Close()

			report, err := a.svc.Report()
			if err != nil {
				return err
			}

			if output == "" || output == "text" {
				fmt.Fprintln(cmd.OutOrStdout(), report.SecretsDir)
				return nil
			}
			return encode(cmd.OutOrStdout(), output, report)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format (text|json|yaml)")
	return cmd
}

func classifyCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "classify",
		Short: "Print development or non-development",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := g.open()
			if err != nil {
				return err
			}
			defer a.Close()

			if _, err := a.svc.IsDevelopmentMachine(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.svc.Classification())
			return nil
		},
	}
}
