package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/diwise/eventspot/internal/pkg/application/mirror"
	"github.com/diwise/eventspot/internal/pkg/infrastructure/storage"
	"github.com/diwise/eventspot/pkg/eventspot/types/events"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
)

const (
	appName string = "eventspot-purge"
)

func main() {
	appVersion := buildinfo.SourceVersion()

	ctx, log, cleanup := o11y.Init(context.Background(), appName, appVersion, "json")

	var configPath string
	flag.StringVar(&configPath, "config", env.GetVariableOrDefault(ctx, "MIRROR_CONFIG_PATH", "/opt/diwise/config/accounts.yaml"), "path to the account configuration")
	flag.Parse()

	err := run(ctx, log, configPath)

	cleanup()

	if err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger, configPath string) error {
	f, err := os.Open(configPath)
	if err != nil {
		log.Error("failed to open account configuration", "path", configPath, "err", err.Error())
		return err
	}
	defer f.Close()

	cfg, err := mirror.LoadConfiguration(f)
	if err != nil {
		log.Error("failed to load account configuration", "err", err.Error())
		return err
	}

	store, err := storage.Connect(ctx, storage.LoadConfiguration(ctx))
	if err != nil {
		log.Error("failed to connect to database", "err", err.Error())
		return err
	}
	defer store.Close()

	var totalCount int64 = 0

	for _, account := range cfg.Accounts {
		l := log.With(slog.String("account", account.ID))

		keep := make([]events.Status, 0, len(account.Statuses))
		for _, s := range account.Statuses {
			keep = append(keep, events.Status(s))
		}

		if len(keep) == 0 {
			l.Debug("account mirrors every status, nothing to purge")
			continue
		}

		l.Debug("purge events", slog.Time("start_time", time.Now()))

		count, err := store.Purge(ctx, account.ID, keep...)
		if err != nil {
			l.Error("failed to purge events", "err", err.Error())
			return err
		}

		totalCount += count

		l.Debug("done purging events", slog.Int64("count", count), slog.Time("end_time", time.Now()))
	}

	log.Debug("vacuum")

	err = store.Vacuum(ctx)
	if err != nil {
		log.Error("failed to vacuum table", "err", err.Error())
		return err
	}

	log.Info("done purging", slog.Int64("total", totalCount))

	return nil
}
