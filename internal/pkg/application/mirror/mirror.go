package mirror

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/diwise/eventspot/internal/pkg/infrastructure/storage"
	"github.com/diwise/eventspot/pkg/eventspot/client"
	eserrors "github.com/diwise/eventspot/pkg/eventspot/errors"
	"github.com/diwise/eventspot/pkg/eventspot/types/events"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

//go:generate moq -rm -out ./eventmirror_mock.go . EventMirror

type EventMirror interface {
	Sync(ctx context.Context, account string) (SyncResult, error)
	SyncAll(ctx context.Context) ([]SyncResult, error)
	RetrieveEvent(ctx context.Context, account, eventID string) (events.Event, error)
	QueryEvents(ctx context.Context, account string, statuses ...events.Status) ([]events.Event, error)
}

// SyncResult summarizes a single sync run of an account
type SyncResult struct {
	RunID    string    `json:"runId"`
	Account  string    `json:"account"`
	Started  time.Time `json:"started"`
	Fetched  int       `json:"fetched"`
	Stored   int       `json:"stored"`
	Skipped  int       `json:"skipped"`
	Findings int       `json:"findings"`
}

// ClientFactory creates the remote client used to sync an account
type ClientFactory func(account Account) client.EventSpotClient

func DefaultClientFactory(debug string) ClientFactory {
	return func(account Account) client.EventSpotClient {
		return client.NewEventSpotClient(
			account.Endpoint,
			client.Account(account.ID),
			client.APIKey(account.APIKey),
			client.AccessToken(account.AccessToken),
			client.PageSize(account.PageSize),
			client.Debug(debug),
		)
	}
}

var tracer = otel.Tracer("eventspot-mirror/app")

type mirrorApp struct {
	cfg       Config
	store     storage.Store
	newClient ClientFactory

	mu      sync.Mutex
	running map[string]bool
}

func New(cfg Config, store storage.Store, newClient ClientFactory) EventMirror {
	return &mirrorApp{
		cfg:       cfg,
		store:     store,
		newClient: newClient,
		running:   map[string]bool{},
	}
}

// Sync pulls every event of the account from the remote service and stores
// the ones whose status the account mirrors. Overlapping runs for the same
// account are rejected with a conflict error.
func (app *mirrorApp) Sync(ctx context.Context, accountID string) (SyncResult, error) {
	var err error

	account, ok := app.cfg.Account(accountID)
	if !ok {
		return SyncResult{}, eserrors.NewNotFoundError(fmt.Sprintf("unknown account %s", accountID))
	}

	if !app.begin(accountID) {
		return SyncResult{}, eserrors.NewConflictError(fmt.Sprintf("a sync of account %s is already running", accountID))
	}
	defer app.end(accountID)

	result := SyncResult{
		RunID:   uuid.NewString(),
		Account: accountID,
		Started: time.Now().UTC(),
	}

	ctx, span := tracer.Start(ctx, "sync-account",
		trace.WithAttributes(
			attribute.String("account", accountID),
			attribute.String("run-id", result.RunID),
		),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx).With(slog.String("account", accountID), slog.String("run_id", result.RunID))
	ctx = logging.NewContextWithLogger(ctx, log)

	log.Info("starting sync")

	c := app.newClient(account)

	result.Fetched, err = client.QueryAllEvents(ctx, c, func(e events.Event) error {
		if !account.Mirrors(e.Status().OrElse("")) {
			result.Skipped++
			return nil
		}

		if findings := events.CheckInvariants(e); len(findings) > 0 {
			result.Findings += len(findings)
			log.Debug("event breaks remote rules", "id", e.ID().OrElse(""), "findings", fmt.Sprint(findings))
		}

		saveErr := app.store.Save(ctx, accountID, e)
		if saveErr != nil {
			if errors.Is(saveErr, eserrors.ErrBadRequest) {
				log.Warn("skipping event that can not be stored", "err", saveErr.Error())
				result.Skipped++
				return nil
			}
			return saveErr
		}

		result.Stored++
		return nil
	})

	if err != nil {
		log.Error("sync failed", "err", err.Error(), "fetched", result.Fetched, "stored", result.Stored)
		return result, err
	}

	log.Info("sync done", "fetched", result.Fetched, "stored", result.Stored, "skipped", result.Skipped)

	return result, nil
}

// SyncAll syncs every configured account in turn. A failing account does
// not stop the others, the errors are joined.
func (app *mirrorApp) SyncAll(ctx context.Context) ([]SyncResult, error) {
	results := make([]SyncResult, 0, len(app.cfg.Accounts))
	errs := []error{}

	for _, account := range app.cfg.Accounts {
		result, err := app.Sync(ctx, account.ID)
		if err != nil {
			errs = append(errs, fmt.Errorf("account %s: %w", account.ID, err))
			continue
		}
		results = append(results, result)
	}

	return results, errors.Join(errs...)
}

func (app *mirrorApp) RetrieveEvent(ctx context.Context, accountID, eventID string) (events.Event, error) {
	if _, ok := app.cfg.Account(accountID); !ok {
		return events.Event{}, eserrors.NewNotFoundError(fmt.Sprintf("unknown account %s", accountID))
	}

	return app.store.Retrieve(ctx, accountID, eventID)
}

func (app *mirrorApp) QueryEvents(ctx context.Context, accountID string, statuses ...events.Status) ([]events.Event, error) {
	if _, ok := app.cfg.Account(accountID); !ok {
		return nil, eserrors.NewNotFoundError(fmt.Sprintf("unknown account %s", accountID))
	}

	return app.store.Query(ctx, accountID, statuses...)
}

func (app *mirrorApp) begin(accountID string) bool {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running[accountID] {
		return false
	}

	app.running[accountID] = true
	return true
}

func (app *mirrorApp) end(accountID string) {
	app.mu.Lock()
	defer app.mu.Unlock()

	delete(app.running, accountID)
}
