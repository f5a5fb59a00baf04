package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/diwise/eventspot/internal/pkg/application/mirror"
	"github.com/matryer/is"
)

func TestLoadAccountsFallsBackToSharedCredentials(t *testing.T) {
	is := is.New(t)

	t.Setenv("EVENTSPOT_API_KEY", "shared-key")
	t.Setenv("EVENTSPOT_ACCESS_TOKEN", "shared-token")

	cfg, err := loadAccounts(context.Background(), "../../assets/config/accounts.yaml")
	is.NoErr(err)

	def, ok := cfg.Account("default")
	is.True(ok)
	is.Equal(def.APIKey, "shared-key")
	is.Equal(def.AccessToken, "shared-token")

	culture, ok := cfg.Account("culture")
	is.True(ok)
	is.Equal(culture.APIKey, "culture-api-key")
	is.Equal(culture.AccessToken, "culture-access-token")
}

func TestLoadAccountsFromMissingFile(t *testing.T) {
	is := is.New(t)

	_, err := loadAccounts(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	is.True(err != nil)
}

func TestLoadAccountsWithBrokenYaml(t *testing.T) {
	is := is.New(t)

	path := filepath.Join(t.TempDir(), "accounts.yaml")
	is.NoErr(os.WriteFile(path, []byte("accounts: [\n"), 0o600))

	_, err := loadAccounts(context.Background(), path)
	is.True(err != nil)
}

func TestSyncInterval(t *testing.T) {
	is := is.New(t)

	flags := defaultFlags()
	d, err := flags.interval()
	is.NoErr(err)
	is.Equal(d, 15*time.Minute)

	flags[syncInterval] = "0"
	d, err = flags.interval()
	is.NoErr(err)
	is.Equal(d, time.Duration(0))

	flags[syncInterval] = "often"
	_, err = flags.interval()
	is.True(err != nil)
}

func TestRunReturnsConfigurationErrors(t *testing.T) {
	is := is.New(t)

	flags := defaultFlags()
	flags[configPath] = filepath.Join(t.TempDir(), "nope.yaml")

	err := run(context.Background(), slog.Default(), flags)
	is.True(err != nil)

	flags = defaultFlags()
	flags[configPath] = "../../assets/config/accounts.yaml"
	flags[syncInterval] = "often"

	err = run(context.Background(), slog.Default(), flags)
	is.True(err != nil)
}

func TestScheduledSyncsStopWhenContextIsCancelled(t *testing.T) {
	is := is.New(t)

	var runs atomic.Int32
	app := &mirror.EventMirrorMock{
		SyncAllFunc: func(ctx context.Context) ([]mirror.SyncResult, error) {
			runs.Add(1)
			return []mirror.SyncResult{}, nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		scheduleSyncs(ctx, app, time.Millisecond)
		close(done)
	}()

	for runs.Load() < 2 {
		time.Sleep(time.Millisecond)
	}
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("scheduled syncs did not stop")
	}

	is.True(runs.Load() >= 2)
}
