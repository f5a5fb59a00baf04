package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strconv"
	"strings"

	"github.com/diwise/eventspot/pkg/eventspot/errors"
	"github.com/diwise/eventspot/pkg/eventspot/types/events"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

//go:generate moq -rm -out ./eventspotclient_mock.go . EventSpotClient

type EventSpotClient interface {
	CreateEvent(ctx context.Context, event events.Event) (events.Event, error)
	RetrieveEvent(ctx context.Context, eventID string) (events.Event, error)
	UpdateEvent(ctx context.Context, eventID string, event events.Event) (events.Event, error)
	UpdateEventStatus(ctx context.Context, eventID string, status events.Status) error
	QueryEvents(ctx context.Context, cursor string) (*QueryEventsResult, error)
}

// QueryEventsResult is a single page of events. Next is empty on the last page.
type QueryEventsResult struct {
	Events []events.Event
	Next   string
}

const (
	EventsPath string = "/v2/eventspot/events"

	TraceAttributeEventID string = "event-id"
	TraceAttributeAccount string = "eventspot-account"
)

func APIKey(key string) func(*esClient) {
	return func(c *esClient) {
		c.apiKey = key
	}
}

func AccessToken(token string) func(*esClient) {
	return func(c *esClient) {
		c.accessToken = token
	}
}

func Account(account string) func(*esClient) {
	return func(c *esClient) {
		c.account = account
	}
}

func Debug(enabled string) func(*esClient) {
	return func(c *esClient) {
		c.debug = (enabled == "true")
	}
}

// PageSize sets the number of events requested per page. The remote service
// accepts 1 to 50.
func PageSize(size int) func(*esClient) {
	return func(c *esClient) {
		if size > 0 {
			c.pageSize = size
		}
	}
}

func NewEventSpotClient(baseURL string, options ...func(*esClient)) EventSpotClient {
	c := &esClient{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		account:  "default",
		pageSize: 50,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}

	for _, option := range options {
		option(c)
	}

	return c
}

var tracer = otel.Tracer("eventspot-client")

type esClient struct {
	baseURL     string
	account     string
	apiKey      string
	accessToken string
	pageSize    int
	debug       bool
	httpClient  http.Client
}

func (c *esClient) CreateEvent(ctx context.Context, event events.Event) (events.Event, error) {
	var err error

	ctx, span := tracer.Start(ctx, "create-event",
		trace.WithAttributes(attribute.String(TraceAttributeAccount, c.account)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	b, err := event.MarshalJSON()
	if err != nil {
		err = fmt.Errorf("failed to marshal event: %w", err)
		return events.Event{}, err
	}

	resp, respBody, err := c.call(ctx, http.MethodPost, c.baseURL+EventsPath, bytes.NewBuffer(b))
	if err != nil {
		return events.Event{}, err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		err = errors.NewErrorFromResponse(resp.StatusCode, respBody)
		return events.Event{}, err
	}

	if resp.StatusCode != http.StatusCreated {
		err = fmt.Errorf("unexpected response code %d (%w)", resp.StatusCode, errors.ErrInternal)
		return events.Event{}, err
	}

	created, err := events.NewFromJSON(respBody)
	if err != nil {
		err = c.decodeError(respBody, err)
		return events.Event{}, err
	}

	return created, nil
}

func (c *esClient) RetrieveEvent(ctx context.Context, eventID string) (events.Event, error) {
	var err error

	ctx, span := tracer.Start(ctx, "retrieve-event",
		trace.WithAttributes(attribute.String(TraceAttributeAccount, c.account)),
		trace.WithAttributes(attribute.String(TraceAttributeEventID, eventID)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	resp, respBody, err := c.call(ctx, http.MethodGet, c.eventURL(eventID), nil)
	if err != nil {
		return events.Event{}, err
	}

	if resp.StatusCode != http.StatusOK {
		err = c.responseError(resp, respBody)
		return events.Event{}, err
	}

	e, err := events.NewFromJSON(respBody)
	if err != nil {
		err = c.decodeError(respBody, err)
		return events.Event{}, err
	}

	return e, nil
}

// UpdateEvent replaces the event. Fields that are absent in event are left
// out of the request body.
func (c *esClient) UpdateEvent(ctx context.Context, eventID string, event events.Event) (events.Event, error) {
	var err error

	ctx, span := tracer.Start(ctx, "update-event",
		trace.WithAttributes(attribute.String(TraceAttributeAccount, c.account)),
		trace.WithAttributes(attribute.String(TraceAttributeEventID, eventID)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	b, err := event.MarshalJSON()
	if err != nil {
		err = fmt.Errorf("failed to marshal event: %w", err)
		return events.Event{}, err
	}

	resp, respBody, err := c.call(ctx, http.MethodPut, c.eventURL(eventID), bytes.NewBuffer(b))
	if err != nil {
		return events.Event{}, err
	}

	if resp.StatusCode != http.StatusOK {
		err = c.responseError(resp, respBody)
		return events.Event{}, err
	}

	updated, err := events.NewFromJSON(respBody)
	if err != nil {
		err = c.decodeError(respBody, err)
		return events.Event{}, err
	}

	return updated, nil
}

type patchOperation struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value string `json:"value"`
}

// UpdateEventStatus asks the remote service to move the event to status. Any
// transition rules are enforced remotely.
func (c *esClient) UpdateEventStatus(ctx context.Context, eventID string, status events.Status) error {
	var err error

	ctx, span := tracer.Start(ctx, "update-event-status",
		trace.WithAttributes(attribute.String(TraceAttributeAccount, c.account)),
		trace.WithAttributes(attribute.String(TraceAttributeEventID, eventID)),
		trace.WithAttributes(attribute.String("status", string(status))),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	b, err := json.Marshal([]patchOperation{{Op: "REPLACE", Path: "#/status", Value: string(status)}})
	if err != nil {
		return err
	}

	resp, respBody, err := c.call(ctx, http.MethodPatch, c.eventURL(eventID), bytes.NewBuffer(b))
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		err = c.responseError(resp, respBody)
		return err
	}

	return nil
}

type queryResponse struct {
	Meta struct {
		Pagination struct {
			NextLink string `json:"next_link"`
		} `json:"pagination"`
	} `json:"meta"`
	Results []events.Event `json:"results"`
}

// QueryEvents fetches a single page of events. An empty cursor starts from
// the first page, otherwise cursor is the Next value of a previous result.
func (c *esClient) QueryEvents(ctx context.Context, cursor string) (*QueryEventsResult, error) {
	var err error

	ctx, span := tracer.Start(ctx, "query-events",
		trace.WithAttributes(attribute.String(TraceAttributeAccount, c.account)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	endpoint := c.baseURL + EventsPath + "?limit=" + strconv.Itoa(c.pageSize)
	if cursor != "" {
		endpoint, err = c.resolve(cursor)
		if err != nil {
			return nil, err
		}
	}

	resp, respBody, err := c.call(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		err = c.responseError(resp, respBody)
		return nil, err
	}

	qr := queryResponse{}

	err = json.Unmarshal(respBody, &qr)
	if err != nil {
		err = c.decodeError(respBody, err)
		return nil, err
	}

	return &QueryEventsResult{
		Events: qr.Results,
		Next:   qr.Meta.Pagination.NextLink,
	}, nil
}

// QueryAllEvents follows the pagination links of the remote service and hands
// every event to callback, stopping at the first error
func QueryAllEvents(ctx context.Context, c EventSpotClient, callback func(e events.Event) error) (count int, err error) {
	logger := logging.GetFromContext(ctx)
	cursor := ""

	for {
		var result *QueryEventsResult

		result, err = c.QueryEvents(ctx, cursor)
		if err != nil {
			return
		}

		for _, e := range result.Events {
			if err = callback(e); err != nil {
				return
			}
			count++
		}

		if result.Next == "" || result.Next == cursor {
			break
		}

		logger.Debug("following pagination link", "next", result.Next, "count", count)
		cursor = result.Next
	}

	return
}

func (c *esClient) eventURL(eventID string) string {
	return c.baseURL + EventsPath + "/" + url.PathEscape(eventID)
}

// resolve turns a relative next_link into an absolute url on the base url
func (c *esClient) resolve(link string) (string, error) {
	base, err := url.Parse(c.baseURL + "/")
	if err != nil {
		return "", fmt.Errorf("invalid base url: %s (%w)", err.Error(), errors.ErrInternal)
	}

	ref, err := url.Parse(link)
	if err != nil {
		return "", fmt.Errorf("invalid pagination link %q (%w)", link, errors.ErrBadResponse)
	}

	return base.ResolveReference(ref).String(), nil
}

func (c *esClient) responseError(resp *http.Response, respBody []byte) error {
	if resp.StatusCode >= http.StatusBadRequest {
		return errors.NewErrorFromResponse(resp.StatusCode, respBody)
	}

	contentType := resp.Header.Get("Content-Type")
	return fmt.Errorf("remote service returned status code %d (content-type: %s, body: %s) (%w)", resp.StatusCode, contentType, string(respBody), errors.ErrInternal)
}

func (c *esClient) decodeError(respBody []byte, err error) error {
	if c.debug && len(respBody) < 1000 {
		return fmt.Errorf("unmarshaling of %s failed: %w", string(respBody), err)
	}
	return fmt.Errorf("failed to unmarshal response: %w", err)
}

func (c *esClient) call(ctx context.Context, method, endpoint string, body io.Reader) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %s (%w)", err.Error(), errors.ErrInternal)
	}

	if c.apiKey != "" {
		q := req.URL.Query()
		q.Set("api_key", c.apiKey)
		req.URL.RawQuery = q.Encode()
	}

	if c.accessToken != "" {
		req.Header.Add("Authorization", "Bearer "+c.accessToken)
	}

	req.Header.Add("Accept", "application/json")
	if body != nil {
		req.Header.Add("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to send request: %s (%w)", err.Error(), errors.ErrRequest)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response body: %s (%w)", err.Error(), errors.ErrBadResponse)
	}

	if c.debug && resp.StatusCode >= http.StatusBadRequest {
		if resp.StatusCode != http.StatusUnauthorized && resp.StatusCode != http.StatusNotFound {
			reqbytes, _ := httputil.DumpRequestOut(req, false)
			respbytes, _ := httputil.DumpResponse(resp, false)

			logging.GetFromContext(ctx).Error("request failed", "request", string(reqbytes), "response", string(respbytes))
		}
	}

	return resp, respBody, nil
}
