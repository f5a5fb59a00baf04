package mirror

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/diwise/eventspot/internal/pkg/infrastructure/storage"
	"github.com/diwise/eventspot/pkg/eventspot/client"
	eserrors "github.com/diwise/eventspot/pkg/eventspot/errors"
	"github.com/diwise/eventspot/pkg/eventspot/types/events"
	"github.com/matryer/is"
)

func TestSyncStoresMirroredStatuses(t *testing.T) {
	is, app, remote, store := setupTest(t)

	remote.QueryEventsFunc = func(ctx context.Context, cursor string) (*client.QueryEventsResult, error) {
		if cursor == "" {
			return &client.QueryEventsResult{
				Events: []events.Event{
					events.New(events.ID("1"), events.WithStatus(events.StatusActive)),
					events.New(events.ID("2"), events.WithStatus(events.StatusDraft)),
				},
				Next: "/v2/eventspot/events?next=p2",
			}, nil
		}
		return &client.QueryEventsResult{
			Events: []events.Event{
				events.New(events.ID("3"), events.WithStatus(events.StatusComplete)),
			},
		}, nil
	}

	result, err := app.Sync(context.Background(), "default")

	is.NoErr(err)
	is.Equal(result.Account, "default")
	is.True(result.RunID != "")
	is.Equal(result.Fetched, 3)
	is.Equal(result.Stored, 2)
	is.Equal(result.Skipped, 1) // drafts are not mirrored

	calls := store.SaveCalls()
	is.Equal(len(calls), 2)
	is.Equal(calls[0].E.ID().OrElse(""), "1")
	is.Equal(calls[1].E.ID().OrElse(""), "3")
	is.Equal(len(remote.QueryEventsCalls()), 2)
}

func TestSyncCountsFindingsButStoresEvent(t *testing.T) {
	is, app, remote, store := setupTest(t)

	remote.QueryEventsFunc = func(ctx context.Context, cursor string) (*client.QueryEventsResult, error) {
		return &client.QueryEventsResult{
			Events: []events.Event{
				events.New(events.ID("1"), events.WithStatus(events.StatusActive), events.VirtualEvent(true)),
			},
		}, nil
	}

	result, err := app.Sync(context.Background(), "default")

	is.NoErr(err)
	is.Equal(result.Findings, 1)
	is.Equal(len(store.SaveCalls()), 1)
}

func TestSyncSkipsEventsThatCannotBeStored(t *testing.T) {
	is, app, remote, store := setupTest(t)

	remote.QueryEventsFunc = func(ctx context.Context, cursor string) (*client.QueryEventsResult, error) {
		return &client.QueryEventsResult{
			Events: []events.Event{events.New(events.WithStatus(events.StatusActive))},
		}, nil
	}
	store.SaveFunc = func(ctx context.Context, account string, e events.Event) error {
		return eserrors.NewBadRequestError("event has no id")
	}

	result, err := app.Sync(context.Background(), "default")

	is.NoErr(err)
	is.Equal(result.Stored, 0)
	is.Equal(result.Skipped, 1)
}

func TestSyncFailsOnStoreError(t *testing.T) {
	is, app, remote, store := setupTest(t)

	remote.QueryEventsFunc = func(ctx context.Context, cursor string) (*client.QueryEventsResult, error) {
		return &client.QueryEventsResult{
			Events: []events.Event{events.New(events.ID("1"))},
		}, nil
	}
	store.SaveFunc = func(ctx context.Context, account string, e events.Event) error {
		return fmt.Errorf("connection refused")
	}

	_, err := app.Sync(context.Background(), "culture")

	is.True(err != nil)
}

func TestSyncOfUnknownAccount(t *testing.T) {
	is, app, _, _ := setupTest(t)

	_, err := app.Sync(context.Background(), "missing")

	is.True(errors.Is(err, eserrors.ErrNotFound))
}

func TestOverlappingSyncIsRejected(t *testing.T) {
	is, app, remote, _ := setupTest(t)

	started := make(chan struct{})
	release := make(chan struct{})

	remote.QueryEventsFunc = func(ctx context.Context, cursor string) (*client.QueryEventsResult, error) {
		close(started)
		<-release
		return &client.QueryEventsResult{}, nil
	}

	var wg sync.WaitGroup
	var firstErr error
	wg.Add(1)

	go func() {
		defer wg.Done()
		_, firstErr = app.Sync(context.Background(), "default")
	}()

	<-started
	_, err := app.Sync(context.Background(), "default")
	is.True(errors.Is(err, eserrors.ErrConflict))

	close(release)
	wg.Wait()
	is.NoErr(firstErr)
}

func TestSyncAllJoinsErrors(t *testing.T) {
	is, app, remote, _ := setupTest(t)

	remote.QueryEventsFunc = func(ctx context.Context, cursor string) (*client.QueryEventsResult, error) {
		return nil, eserrors.NewUnauthorizedError("bad api key")
	}

	results, err := app.SyncAll(context.Background())

	is.Equal(len(results), 0)
	is.True(errors.Is(err, eserrors.ErrUnauthorized))
}

func TestQueryEventsPassesStatusFilter(t *testing.T) {
	is, app, _, store := setupTest(t)

	evts, err := app.QueryEvents(context.Background(), "default", events.StatusActive)

	is.NoErr(err)
	is.Equal(len(evts), 1)
	is.Equal(store.QueryCalls()[0].Statuses, []events.Status{events.StatusActive})
}

func TestRetrieveEventFromUnknownAccount(t *testing.T) {
	is, app, _, store := setupTest(t)

	_, err := app.RetrieveEvent(context.Background(), "missing", "1")

	is.True(errors.Is(err, eserrors.ErrNotFound))
	is.Equal(len(store.RetrieveCalls()), 0)
}

func setupTest(t *testing.T) (*is.I, EventMirror, *client.EventSpotClientMock, *storage.StoreMock) {
	is := is.New(t)

	remote := &client.EventSpotClientMock{}
	store := &storage.StoreMock{
		SaveFunc: func(ctx context.Context, account string, e events.Event) error {
			return nil
		},
		QueryFunc: func(ctx context.Context, account string, statuses ...events.Status) ([]events.Event, error) {
			return []events.Event{events.New(events.ID("1"), events.WithStatus(events.StatusActive))}, nil
		},
		RetrieveFunc: func(ctx context.Context, account, eventID string) (events.Event, error) {
			return events.New(events.ID(eventID)), nil
		},
	}

	cfg := Config{
		Accounts: []Account{
			{ID: "default", Name: "Kommunen", Endpoint: "http://lolcathost", Statuses: []string{"ACTIVE", "COMPLETE"}},
			{ID: "culture", Name: "Kultur", Endpoint: "http://lolcathost"},
		},
	}

	app := New(cfg, store, func(Account) client.EventSpotClient { return remote })

	return is, app, remote, store
}
