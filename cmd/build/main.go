package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/midbel/plot/dash"
	"github.com/midbel/plot/internal/logging"
	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var (
		dir       string
		jobs      int
		check     bool
		logLevel  string
		logFormat string
	)
	cmd := &cobra.Command{
		Use:           "build dashboard.yaml",
		Short:         "Render every chart of a dashboard",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.New(logging.Config{
				Level:  logLevel,
				Format: logFormat,
				Output: cmd.ErrOrStderr(),
			})
			cfg, err := dash.LoadFile(args[0])
			if err != nil {
				return err
			}
			if check {
				logger.Info().Str("file", args[0]).Int("charts", len(cfg.Charts)).Msg("dashboard is valid")
				return nil
			}
			b := dash.Builder{
				Logger: logger,
				Dir:    dir,
				Limit:  jobs,
			}
			return b.Build(cmd.Context(), cfg)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&dir, "dir", "d", "", "output directory (overrides the dashboard)")
	flags.IntVarP(&jobs, "jobs", "j", 0, "charts rendered in parallel (default: number of CPUs)")
	flags.BoolVar(&check, "check", false, "validate the dashboard without rendering it")
	flags.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flags.StringVar(&logFormat, "log-format", "console", "log format (console, json)")
	return cmd
}
