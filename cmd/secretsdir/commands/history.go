package commands

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"secretsdir/internal/domain"
)

func historyCmd(g *globalFlags) *cobra.Command {
	var (
		limit  int
		output string
		latest bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded classification decisions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := g.open()
			if err != nil {
				return err
			}
			defer a.Close()

			if a.journal == nil {
				return errors.New("decision journal is disabled or unavailable")
			}

			decisions := []domain.Decision{}
			if latest {
				d, err := a.journal.Latest(cmd.Context(), a.svc.MachineName())
				if err != nil {
					return err
				}
				if d != nil {
					decisions = append(decisions, *d)
				}
			} else {
				decisions, err = a.journal.List(cmd.Context(), limit)
				if err != nil {
					return err
				}
			}

			if output != "" && output != "text" {
				return encode(cmd.OutOrStdout(), output, decisions)
			}

			if len(decisions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no decisions recorded")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tDECIDED\tMACHINE\tSOURCE\tCLASSIFICATION\tLIST")
			for _, d := range decisions {
				list := d.ListPath
				if list == "" {
					list = "-"
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
					d.ID,
					d.DecidedAt.Local().Format(time.DateTime),
					d.MachineName,
					d.Source,
					d.Classification(),
					list,
				)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum entries to show (0 for all)")
	cmd.Flags().BoolVar(&latest, "latest", false, "Show only the newest decision for this machine")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format (text|json|yaml)")
	return cmd
}
