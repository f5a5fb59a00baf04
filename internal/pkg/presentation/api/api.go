package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/diwise/eventspot/internal/pkg/application/mirror"
	"github.com/diwise/eventspot/internal/pkg/presentation/api/auth"
	"github.com/diwise/eventspot/internal/pkg/presentation/api/problems"
	"github.com/diwise/eventspot/pkg/eventspot/types/events"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("eventspot-mirror/api")

func RegisterHandlers(ctx context.Context, r chi.Router, policies io.Reader, app mirror.EventMirror) error {
	authenticator, err := auth.NewAuthenticator(ctx, policies)
	if err != nil {
		return fmt.Errorf("failed to create api authenticator: %w", err)
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(Logger(logging.GetFromContext(ctx)))

		r.Route("/accounts/{account}", func(r chi.Router) {
			r.Get("/events", NewQueryEventsHandler(app, authenticator))
			r.Get("/events/{eventId}", NewRetrieveEventHandler(app, authenticator))
			r.Post("/sync", NewSyncHandler(app, authenticator))
		})
	})

	return nil
}

func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(
				trace.SpanFromContext(ctx),
				logger,
				ctx)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func NewQueryEventsHandler(app mirror.EventMirror, authenticator auth.Enticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-events")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		account := chi.URLParam(r, "account")

		err = authenticator.CheckAccess(ctx, r, account)
		if err != nil {
			problems.NewForbidden("access not granted").WriteResponse(w)
			return
		}

		statuses := []events.Status{}
		if filter := r.URL.Query().Get("status"); filter != "" {
			for _, s := range strings.Split(filter, ",") {
				statuses = append(statuses, events.Status(strings.ToUpper(strings.TrimSpace(s))))
			}
		}

		evts, err := app.QueryEvents(ctx, account, statuses...)
		if err != nil {
			logging.GetFromContext(ctx).Error("query events failed", "account", account, "err", err.Error())
			problems.ReportError(w, err)
			return
		}

		writeJSON(ctx, w, http.StatusOK, evts)
	}
}

func NewRetrieveEventHandler(app mirror.EventMirror, authenticator auth.Enticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "retrieve-event")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		account := chi.URLParam(r, "account")
		eventID := chi.URLParam(r, "eventId")

		err = authenticator.CheckAccess(ctx, r, account)
		if err != nil {
			problems.NewForbidden("access not granted").WriteResponse(w)
			return
		}

		e, err := app.RetrieveEvent(ctx, account, eventID)
		if err != nil {
			problems.ReportError(w, err)
			return
		}

		writeJSON(ctx, w, http.StatusOK, e)
	}
}

func NewSyncHandler(app mirror.EventMirror, authenticator auth.Enticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "sync-account")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		account := chi.URLParam(r, "account")

		err = authenticator.CheckAccess(ctx, r, account)
		if err != nil {
			problems.NewForbidden("access not granted").WriteResponse(w)
			return
		}

		result, err := app.Sync(ctx, account)
		if err != nil {
			problems.ReportError(w, err)
			return
		}

		writeJSON(ctx, w, http.StatusOK, result)
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, code int, body any) {
	b, err := json.Marshal(body)
	if err != nil {
		logging.GetFromContext(ctx).Error("failed to marshal response", "err", err.Error())
		problems.NewInternalError("failed to marshal response").WriteResponse(w)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(b)
}
