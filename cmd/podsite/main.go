package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"podsite/internal/config"
	"podsite/internal/logging"
	"podsite/internal/site"
)

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "podsite <config.json>",
		Short: "Podsite turns a podcast RSS feed into a static website",
		Long: `Podsite fetches a podcast RSS feed, downloads episode audio and cover
art, and renders a front page, per-episode pages, and a sitemap from
templates into the configured output directory.

Re-runs are cheap: already-downloaded assets are skipped, pages are
always re-rendered.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.New(verbose)

			logger.Debug("loading config file", "path", args[0])
			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}

			builder, err := site.NewBuilder(cfg, logger)
			if err != nil {
				return err
			}

			return builder.Build(cmd.Context())
		},
	}
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "increase output verbosity")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
