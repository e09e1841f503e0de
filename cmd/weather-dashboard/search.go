package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"weather-dashboard/internal/dashboard"
)

func searchCommand(configPath *string) *cobra.Command {
	var country string

	cmd := &cobra.Command{
		Use:   "search <city>",
		Short: "Fetch weather and forecast for one city and print it",
		Long: `Run a single dashboard search against the weather backend and print the result.

Examples:
  weather-dashboard search Paris
  weather-dashboard search Springfield --country US`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			// Logs go to stderr so stdout carries only the rendering.
			d, err := setup(*configPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer d.stop()

			notifier, err := d.notifier(nil)
			if err != nil {
				return err
			}

			controller := dashboard.NewController(d.client, notifier, d.l)
			return runSearch(ctx, controller, args[0], country, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "ISO country code to disambiguate the city")

	return cmd
}

func runSearch(ctx context.Context, controller *dashboard.Controller, city, country string, out io.Writer) error {
	if err := controller.SearchCountry(ctx, city, country); err != nil {
		return err
	}

	render(out, controller.State())
	return nil
}
