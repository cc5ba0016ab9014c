package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"secretsdir/internal/logging"
	"secretsdir/internal/watcher"
)

func watchCmd(g *globalFlags) *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Reclassify whenever a development machine list changes",
		Long: `Watch both candidate development machine lists. On every change the cached
classification is dropped and recomputed, and the resulting secrets
directory is printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := g.open()
			if err != nil {
				return err
			}
			defer a.Close()

			if a.cfg.DevelopmentOverride != nil {
				return errors.New("watch cannot be combined with a forced classification")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			var mu sync.Mutex
			report := func() {
				mu.Lock()
				defer mu.Unlock()

				if _, err := a.svc.IsDevelopmentMachine(); err != nil {
					logging.Error().Err(err).Msg("classification failed")
					return
				}
				dir, err := a.svc.ResolveSecretsDirectory()
				if err != nil {
					logging.Error().Err(err).Msg("resolve failed")
					return
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", a.svc.Classification(), dir)
			}

			report()

			err = watcher.WatchMultiple(ctx, a.svc.Locations().ListCandidates(a.svc.ListFile()), debounce, func(path string) {
				logging.Info().Str("path", path).Msg("development machine list changed")
				a.svc.ResetIsDevelopmentMachine()
				report()
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", watcher.DefaultDebounce, "Quiet period before reclassifying")
	return cmd
}
