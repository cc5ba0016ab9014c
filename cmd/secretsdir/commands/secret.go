package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func pathCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "path <file>",
		Short: "Print the path of a file inside the secrets directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := g.open()
			if err != nil {
				return err
			}
			defer a.Close()

			path, err := a.svc.SecretFilePath(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func checkCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Parse a JSON, JSONC or YAML secret file and list its top-level keys",
		Long: `Parse a secret file from the secrets directory and list its top-level keys.

Values are never printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := g.open()
			if err != nil {
				return err
			}
			defer a.Close()

			doc := map[string]any{}
			if err := a.svc.LoadSecretFile(args[0], false, &doc); err != nil {
				return err
			}

			keys := make([]string, 0, len(doc))
			for k := range doc {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			for _, k := range keys {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
			return nil
		},
	}
}
