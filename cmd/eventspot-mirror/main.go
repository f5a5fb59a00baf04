package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/diwise/eventspot/internal/pkg/application/mirror"
	"github.com/diwise/eventspot/internal/pkg/infrastructure/router"
	"github.com/diwise/eventspot/internal/pkg/infrastructure/storage"
	"github.com/diwise/eventspot/internal/pkg/presentation/api"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

const (
	serviceName string = "eventspot-mirror"
)

func main() {
	serviceVersion := buildinfo.SourceVersion()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	ctx, logger, cleanup := o11y.Init(ctx, serviceName, serviceVersion, "json")

	flags := parseExternalConfig(ctx, defaultFlags())

	err := run(ctx, logger, flags)

	cleanup()
	stop()

	if err != nil {
		os.Exit(1)
	}
}

// run serves the api until ctx is cancelled or the server fails
func run(ctx context.Context, logger *slog.Logger, flags FlagMap) error {
	cfg, err := loadAccounts(ctx, flags[configPath])
	if err != nil {
		logger.Error("failed to load account configuration", "err", err.Error())
		return err
	}

	interval, err := flags.interval()
	if err != nil {
		logger.Error("invalid sync interval", "err", err.Error())
		return err
	}

	policies, err := os.Open(flags[opaPath])
	if err != nil {
		logger.Error("unable to open opa policy file", "err", err.Error())
		return err
	}
	defer policies.Close()

	store, err := storage.Connect(ctx, storage.LoadConfiguration(ctx))
	if err != nil {
		logger.Error("failed to connect to database", "err", err.Error())
		return err
	}
	defer store.Close()

	app := mirror.New(*cfg, store, mirror.DefaultClientFactory(flags[debugClient]))

	r := router.New(serviceName, logger)

	err = api.RegisterHandlers(ctx, r, policies, app)
	if err != nil {
		logger.Error("failed to register api handlers", "err", err.Error())
		return err
	}

	var wg sync.WaitGroup
	defer wg.Wait()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if interval > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			scheduleSyncs(ctx, app, interval)
		}()
	}

	srv := &http.Server{
		Addr:    net.JoinHostPort(flags[listenAddress], flags[servicePort]),
		Handler: r,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	logger.Info("starting to listen for connections", "addr", srv.Addr)

	err = srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("failed to listen for connections", "err", err.Error())
		return err
	}

	logger.Info("shutting down")

	return nil
}

func loadAccounts(ctx context.Context, path string) (*mirror.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := mirror.LoadConfiguration(f)
	if err != nil {
		return nil, err
	}

	// accounts without credentials of their own share the service wide ones
	apiKey := env.GetVariableOrDefault(ctx, "EVENTSPOT_API_KEY", "")
	accessToken := env.GetVariableOrDefault(ctx, "EVENTSPOT_ACCESS_TOKEN", "")

	for i := range cfg.Accounts {
		if cfg.Accounts[i].APIKey == "" {
			cfg.Accounts[i].APIKey = apiKey
		}
		if cfg.Accounts[i].AccessToken == "" {
			cfg.Accounts[i].AccessToken = accessToken
		}
	}

	return cfg, nil
}

func scheduleSyncs(ctx context.Context, app mirror.EventMirror, interval time.Duration) {
	log := logging.GetFromContext(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for ctx.Err() == nil {
		results, err := app.SyncAll(ctx)
		if err != nil {
			log.Error("scheduled sync failed", "err", err.Error())
		}
		log.Info("scheduled sync done", "accounts", len(results))

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
