package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	eserrors "github.com/diwise/eventspot/pkg/eventspot/errors"
	"github.com/diwise/eventspot/pkg/eventspot/types/events"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:generate moq -rm -out ./store_mock.go . Store

type Store interface {
	Save(ctx context.Context, account string, e events.Event) error
	Retrieve(ctx context.Context, account, eventID string) (events.Event, error)
	Query(ctx context.Context, account string, statuses ...events.Status) ([]events.Event, error)
}

type Config struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func LoadConfiguration(ctx context.Context) Config {
	return Config{
		host:     env.GetVariableOrDefault(ctx, "POSTGRES_HOST", ""),
		user:     env.GetVariableOrDefault(ctx, "POSTGRES_USER", ""),
		password: env.GetVariableOrDefault(ctx, "POSTGRES_PASSWORD", ""),
		port:     env.GetVariableOrDefault(ctx, "POSTGRES_PORT", "5432"),
		dbname:   env.GetVariableOrDefault(ctx, "POSTGRES_DBNAME", "diwise"),
		sslmode:  env.GetVariableOrDefault(ctx, "POSTGRES_SSLMODE", "disable"),
	}
}

func NewConfig(host, user, password, port, dbname, sslmode string) Config {
	return Config{
		host:     host,
		user:     user,
		password: password,
		port:     port,
		dbname:   dbname,
		sslmode:  sslmode,
	}
}

func (c Config) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.user, c.password, c.host, c.port, c.dbname, c.sslmode)
}

// dbPool is the part of *pgxpool.Pool the store uses
type dbPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

type PostgresStore struct {
	pool dbPool
}

// Connect opens a connection pool and makes sure the events table exists
func Connect(ctx context.Context, cfg Config) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, cfg.ConnStr())
	if err != nil {
		return nil, err
	}

	err = pool.Ping(ctx)
	if err != nil {
		pool.Close()
		return nil, err
	}

	s := &PostgresStore{pool: pool}

	err = s.initialize(ctx)
	if err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}

func (s *PostgresStore) initialize(ctx context.Context) error {
	ddl := `
		CREATE TABLE IF NOT EXISTS events (
			account    TEXT NOT NULL,
			id         TEXT NOT NULL,
			status     TEXT NULL,
			payload    JSONB NOT NULL,
			updated_at TIMESTAMP WITH TIME ZONE NOT NULL,
			PRIMARY KEY (account, id)
		);
		CREATE INDEX IF NOT EXISTS events_account_status_idx ON events (account, status);`

	_, err := s.pool.Exec(ctx, ddl)
	if err != nil {
		return fmt.Errorf("failed to create events table: %w", err)
	}

	return nil
}

// Save inserts or replaces the stored payload of an event. Only events that
// carry an id can be stored.
func (s *PostgresStore) Save(ctx context.Context, account string, e events.Event) error {
	id, ok := e.ID().Get()
	if !ok || id == "" {
		return eserrors.NewBadRequestError("event has no id")
	}

	payload, err := e.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", id, err)
	}

	var status *string
	if st, ok := e.Status().Get(); ok {
		str := string(st)
		status = &str
	}

	sql := `
		INSERT INTO events (account, id, status, payload, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (account, id) DO UPDATE
		SET status = EXCLUDED.status, payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at;`

	_, err = s.pool.Exec(ctx, sql, account, id, status, payload, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to store event %s: %w", id, err)
	}

	return nil
}

func (s *PostgresStore) Retrieve(ctx context.Context, account, eventID string) (events.Event, error) {
	var payload []byte

	sql := `SELECT payload FROM events WHERE account = $1 AND id = $2;`

	err := s.pool.QueryRow(ctx, sql, account, eventID).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return events.Event{}, eserrors.NewNotFoundError(fmt.Sprintf("no event with id %s in account %s", eventID, account))
		}
		return events.Event{}, err
	}

	return events.NewFromJSON(payload)
}

// Query returns the stored events of an account ordered by id. When statuses
// are given only events in one of those statuses are returned.
func (s *PostgresStore) Query(ctx context.Context, account string, statuses ...events.Status) ([]events.Event, error) {
	var filter []string
	for _, st := range statuses {
		filter = append(filter, string(st))
	}

	sql := `
		SELECT payload FROM events
		WHERE account = $1 AND ($2::text[] IS NULL OR status = ANY($2))
		ORDER BY id;`

	rows, err := s.pool.Query(ctx, sql, account, filter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]events.Event, 0)
	log := logging.GetFromContext(ctx)

	for rows.Next() {
		var payload []byte

		err := rows.Scan(&payload)
		if err != nil {
			return nil, err
		}

		e, err := events.NewFromJSON(payload)
		if err != nil {
			log.Warn("skipping stored event that could not be mapped", "account", account, "err", err.Error())
			continue
		}

		result = append(result, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// Purge deletes the stored events of an account whose status is not in keep.
// Events without a status are always deleted when keep is non-empty.
func (s *PostgresStore) Purge(ctx context.Context, account string, keep ...events.Status) (int64, error) {
	if len(keep) == 0 {
		return 0, nil
	}

	var filter []string
	for _, st := range keep {
		filter = append(filter, string(st))
	}

	sql := `DELETE FROM events WHERE account = $1 AND (status IS NULL OR NOT (status = ANY($2)));`

	tag, err := s.pool.Exec(ctx, sql, account, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to purge events of account %s: %w", account, err)
	}

	return tag.RowsAffected(), nil
}

func (s *PostgresStore) Vacuum(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, "VACUUM ANALYZE events;")
	return err
}
