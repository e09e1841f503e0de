package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	v1 "weather-dashboard/internal/controllers/http/v1"
	"weather-dashboard/internal/dashboard"
	"weather-dashboard/internal/notify"
	"weather-dashboard/pkg/httpserver"
)

const shutdownTimeout = 30 * time.Second

func serveCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(*configPath)
		},
	}
}

func serve(configPath string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	d, err := setup(configPath, os.Stdout)
	if err != nil {
		return err
	}

	feed := notify.NewFeed(d.cfg.Notify.FeedSize)
	notifier, err := d.notifier(feed)
	if err != nil {
		d.stop()
		return err
	}

	controller := dashboard.NewController(d.client, notifier, d.l)

	read, write, idle := d.cfg.Server.Timeouts()
	app := httpserver.InitFiberServer(d.cfg.App.Name, httpserver.Timeouts{
		Read:  read,
		Write: write,
		Idle:  idle,
	})

	v1.NewRouter(ctx, app, controller, d.client, feed, d.l)

	go func() {
		if err := app.Listen(":" + d.cfg.Server.Port); err != nil {
			d.l.Fatal("cannot run the server", map[string]any{"err": err.Error()})
		}
	}()

	d.l.Info("application started successfully", map[string]any{
		"port":    d.cfg.Server.Port,
		"backend": d.cfg.Backend.BaseURL,
		"version": d.cfg.App.Version,
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		d.l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		cancel()
		controller.Wait()
		d.stop()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}

	return nil
}
