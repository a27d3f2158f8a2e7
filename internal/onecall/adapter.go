package onecall

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/harshitrajsinha/onecall-weather-go/internal/events"
)

// TimestampLayout formats the time written at the head of failure log lines, e.g. 17-Oct-26 09:05
const TimestampLayout = "2-Jan-06 15:04"

// Logger is the diagnostic sink used by the adapter
type Logger interface {
	Debug(msg string)
	Error(msg string)
}

// Notifier receives the success event of a request
type Notifier interface {
	Notify(ctx context.Context, event events.Event)
}

// Option customises an Adapter during construction
type Option func(*Adapter)

// WithBaseURL points the adapter at another provider host
func WithBaseURL(baseURL string) Option {
	return func(a *Adapter) {
		if baseURL != "" {
			a.baseURL = baseURL
		}
	}
}

// WithHTTPClient replaces the default client. Any timeout comes from the client.
func WithHTTPClient(client *http.Client) Option {
	return func(a *Adapter) {
		if client != nil {
			a.client = client
		}
	}
}

// WithTracer sets the tracer used for the outbound request span
func WithTracer(tracer trace.Tracer) Option {
	return func(a *Adapter) {
		if tracer != nil {
			a.tracer = tracer
		}
	}
}

// WithClock overrides the clock used for log timestamps
func WithClock(now func() time.Time) Option {
	return func(a *Adapter) {
		if now != nil {
			a.now = now
		}
	}
}

// Adapter turns request configs into One Call requests. It keeps no state
// between invocations apart from tracking requests still in flight.
type Adapter struct {
	inflight sync.WaitGroup

	baseURL  string
	client   *http.Client
	logger   Logger
	notifier Notifier
	tracer   trace.Tracer
	now      func() time.Time
}

// NewAdapter is constructor for Adapter
func NewAdapter(logger Logger, notifier Notifier, opts ...Option) *Adapter {
	a := &Adapter{
		baseURL: DefaultBaseURL,
		client: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:    15,
				IdleConnTimeout: 10 * time.Second,
			},
		},
		logger:   logger,
		notifier: notifier,
		tracer:   otel.Tracer("onecall"),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = nopLogger{}
	}
	if a.notifier == nil {
		a.notifier = nopNotifier{}
	}
	return a
}

// HandleNotification is the inbound entry point. Only OPENWEATHER_ONECALL_GET is acted upon.
func (a *Adapter) HandleNotification(ctx context.Context, name string, cfg RequestConfig) {
	if name != events.NameOneCallGet {
		a.logger.Debug(fmt.Sprintf("ignoring notification %q", name))
		return
	}
	a.HandleRequest(ctx, cfg)
}

// HandleRequest validates cfg and, when valid, fetches the data in the
// background. It returns as soon as the request is dispatched.
//
// Exactly one of two things happens for a valid config: one
// OPENWEATHER_ONECALL_DATA event is sent to the notifier, or one error line is
// logged. An invalid config is logged and never reaches the network. The
// request is not aborted when ctx is cancelled.
func (a *Adapter) HandleRequest(ctx context.Context, cfg RequestConfig) {
	a.logger.Debug("onecall request received")

	target, err := BuildURL(a.baseURL, cfg)
	if err != nil {
		a.logFailure(err)
		return
	}

	a.inflight.Add(1)
	go func() {
		defer a.inflight.Done()
		a.dispatch(context.WithoutCancel(ctx), target)
	}()
}

// Wait blocks until every dispatched request has produced its outcome or ctx is done
func (a *Adapter) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		a.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for onecall requests, %w", ctx.Err())
	}
}

// Fetch performs the request synchronously and returns the decoded payload
func (a *Adapter) Fetch(ctx context.Context, cfg RequestConfig) (any, error) {
	target, err := BuildURL(a.baseURL, cfg)
	if err != nil {
		return nil, err
	}
	return a.get(ctx, target)
}

func (a *Adapter) dispatch(ctx context.Context, target string) {
	payload, err := a.get(ctx, target)
	if err != nil {
		a.logFailure(err)
		return
	}

	a.logger.Debug("got onecall response from " + redact(target))
	a.notifier.Notify(ctx, events.New(events.NameOneCallData, payload))
	a.logger.Debug("sent onecall data")
}

func (a *Adapter) get(ctx context.Context, target string) (any, error) {
	ctx, span := a.tracer.Start(ctx, "onecall-get")
	defer span.End()

	span.SetAttributes(attribute.String("http.url", redact(target)))

	// create request
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, recordError(span, fmt.Errorf("%w: %s", ErrTransport, redact(err.Error())))
	}
	req.Header.Set("Accept", "application/json")

	// send request and get response
	resp, err := a.client.Do(req)
	if err != nil {
		return nil, recordError(span, fmt.Errorf("%w: %s", ErrTransport, redact(err.Error())))
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode != http.StatusOK {
		return nil, recordError(span, &RemoteError{
			StatusCode: resp.StatusCode,
			StatusText: statusText(resp),
		})
	}

	// parse response data
	var payload any
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&payload); err != nil {
		return nil, recordError(span, fmt.Errorf("%w: %v", ErrPayload, err))
	}
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return nil, recordError(span, fmt.Errorf("%w: unexpected data after JSON value", ErrPayload))
	}

	return payload, nil
}

func (a *Adapter) logFailure(err error) {
	a.logger.Error(fmt.Sprintf("%s ** ERROR ** %s", a.now().Format(TimestampLayout), redact(err.Error())))
}

func recordError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, redact(err.Error()))
	return err
}

// statusText extracts the reason phrase from resp.Status, e.g. "Not Found" from "404 Not Found"
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}

type nopLogger struct{}

func (nopLogger) Debug(string) {}
func (nopLogger) Error(string) {}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, events.Event) {}
