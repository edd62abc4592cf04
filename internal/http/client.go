package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/hamadhassan3/outseta-client-sub001/internal/constants"
	"github.com/hamadhassan3/outseta-client-sub001/pkg/outseta"
)

// Client is the HTTP implementation of outseta.Transport. Every call is a
// single round trip: the underlying retryablehttp client is configured
// never to retry.
type Client struct {
	httpClient *retryablehttp.Client
	userAgent  string
	logger     outseta.Logger
	debug      bool
	requestIDs bool
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds each round trip, including reading the body.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithUserAgent sets the User-Agent sent when the caller sets none.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithLogger sets the logger.
func WithLogger(logger outseta.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithRequestIDs adds a random X-Request-Id to requests that carry none.
func WithRequestIDs(enabled bool) Option {
	return func(c *Client) {
		c.requestIDs = enabled
	}
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient.HTTPClient = httpClient
		}
	}
}

// NewClient creates a new HTTP transport.
func NewClient(opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.CheckRetry = neverRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		httpClient: retryClient,
		userAgent:  constants.DefaultUserAgent,
		logger:     outseta.NopLogger{},
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.logger == nil {
		client.logger = outseta.NopLogger{}
	}

	if client.debug {
		retryClient.Logger = &leveledLogger{logger: client.logger}
	}

	return client
}

// neverRetry reports every outcome as final. A done context is surfaced
// instead of the transport error it caused.
func neverRetry(ctx context.Context, _ *http.Response, _ error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	return false, nil
}

// Do implements outseta.Transport.
func (c *Client) Do(ctx context.Context, method, fullURL string, headers map[string]string, body []byte) (*outseta.Response, error) {
	op := method + " " + fullURL

	var rawBody interface{}
	if body != nil {
		rawBody = body
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, fullURL, rawBody)
	if err != nil {
		return nil, &outseta.Error{Kind: outseta.KindInvalidArgument, Op: op, Field: "url", Err: err}
	}

	for name, value := range headers {
		req.Header.Set(name, value)
	}

	if req.Header.Get(constants.HeaderUserAgent) == "" && c.userAgent != "" {
		req.Header.Set(constants.HeaderUserAgent, c.userAgent)
	}

	if c.requestIDs && req.Header.Get(constants.HeaderRequestID) == "" {
		req.Header.Set(constants.HeaderRequestID, uuid.NewString())
	}

	if c.debug {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method":     method,
			"url":        fullURL,
			"request_id": req.Header.Get(constants.HeaderRequestID),
			"body_bytes": len(body),
		})
	}

	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classify(op, err)
	}

	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &outseta.Error{
			Kind:       outseta.KindInvalidResponse,
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("reading response body: %w", err),
		}
	}

	if c.debug {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      method,
			"url":         fullURL,
			"status_code": resp.StatusCode,
			"body_bytes":  len(respBody),
			"duration":    time.Since(start).String(),
		})
	}

	return &outseta.Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
	}, nil
}

// leveledLogger feeds retryablehttp's own log lines into an outseta.Logger.
type leveledLogger struct {
	logger outseta.Logger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, fieldsOf(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, fieldsOf(keysAndValues))
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, fieldsOf(keysAndValues))
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, fieldsOf(keysAndValues))
}

func fieldsOf(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}

	return fields
}

var _ retryablehttp.LeveledLogger = (*leveledLogger)(nil)
