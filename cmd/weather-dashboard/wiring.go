package main

import (
	"fmt"
	"io"

	"weather-dashboard/config"
	"weather-dashboard/internal/apiclient"
	"weather-dashboard/internal/notify"
	"weather-dashboard/pkg/observe"
)

type deps struct {
	cfg    *config.Config
	l      *observe.Logger
	sentry *observe.SentryHook
	client *apiclient.Client
}

func setup(configPath string, logOut io.Writer) (*deps, error) {
	cfg, err := config.NewConfig(configPath)
	if err != nil {
		return nil, err
	}

	d := &deps{cfg: cfg}

	writers := []io.Writer{logOut}
	if cfg.Sentry.DSN != "" {
		hook, err := observe.NewSentryHook(cfg.App.Env, cfg.App.Name, 0, cfg.IsDevelopment(), cfg.Sentry.DSN)
		if err != nil {
			return nil, fmt.Errorf("sentry: %w", err)
		}
		d.sentry = hook
		writers = append(writers, hook)
	}

	d.l, err = observe.NewLogger(observe.Options{
		AppName: cfg.App.Name,
		AppEnv:  cfg.App.Env,
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
	}, writers...)
	if err != nil {
		return nil, err
	}

	d.client, err = apiclient.NewClient(cfg.Backend.BaseURL, d.l,
		apiclient.WithTimeout(cfg.BackendTimeout()),
		apiclient.WithRateLimit(cfg.Backend.RequestsPerSecond, cfg.Backend.Burst),
	)
	if err != nil {
		return nil, err
	}

	return d, nil
}

// notifier fans out to the log, the feed when given, and shoutrrr when URLs
// are configured.
func (d *deps) notifier(feed *notify.Feed) (notify.Notifier, error) {
	sinks := notify.Fanout{notify.NewLogNotifier(d.l)}
	if feed != nil {
		sinks = append(sinks, feed)
	}

	if len(d.cfg.Notify.URLs) > 0 {
		s, err := notify.NewShoutrrrNotifier(d.cfg.Notify.URLs, d.cfg.NotifyTimeout())
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, s)
	}

	return sinks, nil
}

func (d *deps) stop() {
	if d.sentry != nil {
		d.sentry.Flush()
	}
	_ = d.l.Stop()
}
