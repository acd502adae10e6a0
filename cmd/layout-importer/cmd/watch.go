package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"type-layout-importer/internal/watch"
)

func newWatchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch FILE...",
		Short: "Regenerate Go layouts whenever a report changes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			if err := generate(ctx, out, opts.log, cfg, args); err != nil {
				opts.log.Error("generation failed", zap.Error(err))
			}

			w, err := watch.NewWatcher(watch.DefaultDebounce)
			if err != nil {
				return err
			}
			defer w.Stop()

			err = w.Watch(args, func(path string) {
				if err := generate(ctx, out, opts.log, cfg, []string{path}); err != nil {
					opts.log.Error("generation failed", zap.String("path", path), zap.Error(err))
				}
			})
			if err != nil {
				return err
			}

			<-ctx.Done()

			return nil
		},
	}
}
