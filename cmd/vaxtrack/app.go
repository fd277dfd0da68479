package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	kafkanotify "vaccine-tracker/internal/adapters/notify/kafka"
	"vaccine-tracker/internal/adapters/notify/logsink"
	sqsnotify "vaccine-tracker/internal/adapters/notify/sqs"
	"vaccine-tracker/internal/adapters/notify/webhook"
	pg "vaccine-tracker/internal/adapters/storage/postgres"
	"vaccine-tracker/internal/config"
	"vaccine-tracker/internal/domain/reminders"
	"vaccine-tracker/internal/domain/schedule"
	"vaccine-tracker/internal/domain/tracker"
	"vaccine-tracker/internal/platform/httpclient"
	"vaccine-tracker/internal/platform/logger"
	"vaccine-tracker/internal/router"
)

// app agrupa lo que comparten serve y sweep.
type app struct {
	cfg *config.Config
	log logger.Logger
	db  *sql.DB
	svc *tracker.Service

	closers []func() error
}

func loadConfig() (*config.Config, logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, logger.New(cfg.LoggerOptions()), nil
}

func loadTemplate(path string) (schedule.Template, error) {
	if strings.TrimSpace(path) == "" {
		return schedule.Canonical(), nil
	}
	return schedule.LoadTemplateFile(path)
}

// newApp abre la persistencia, arma los sinks y carga el working set.
func newApp(ctx context.Context, cfg *config.Config, log logger.Logger) (*app, error) {
	a := &app{cfg: cfg, log: log}

	if cfg.UsesPostgres() {
		db, err := pg.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		a.db = db
		a.closers = append(a.closers, db.Close)
	} else {
		log.Warn("DATABASE_URL not set, using in-memory storage", nil)
	}

	tpl, err := loadTemplate(cfg.ScheduleTemplateFile)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	notifier, err := a.buildNotifier(ctx)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	a.svc = tracker.NewService(router.NewRepositories(a.db),
		tracker.WithTemplate(tpl),
		tracker.WithNotifier(notifier),
		tracker.WithLogger(log.With(map[string]any{"component": "tracker"})),
	)
	if err := a.svc.Load(ctx); err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("load working set: %w", err)
	}

	log.Info("working set loaded", map[string]any{
		"template_doses": tpl.Len(),
		"postgres":       a.db != nil,
	})
	return a, nil
}

// buildNotifier siempre loguea; webhook, kafka y sqs se suman si están configurados.
func (a *app) buildNotifier(ctx context.Context) (reminders.Notifier, error) {
	sinks := reminders.Multi{logsink.New(a.log.With(map[string]any{"component": "notify"}))}

	if u := strings.TrimSpace(a.cfg.NotifyWebhookURL); u != "" {
		wh, err := webhook.New(u, httpclient.New(httpclient.DefaultTimeout))
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, wh)
	}

	if brokers := a.cfg.Brokers(); len(brokers) > 0 {
		k, err := kafkanotify.New(brokers, a.cfg.KafkaTopic)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, k)
		a.closers = append(a.closers, k.Close)
	}

	if q := strings.TrimSpace(a.cfg.SQSQueueURL); q != "" {
		s, err := sqsnotify.New(ctx, q)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, s)
	}

	return sinks, nil
}

func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
