package outseta

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/hamadhassan3/outseta-client-sub001/internal/constants"
)

// failedStatuses are the non-400 failure codes the remote API documents.
// Any other non-2xx code is reported as KindUnknownAPI.
var failedStatuses = map[int]bool{
	http.StatusUnauthorized:        true,
	http.StatusForbidden:           true,
	http.StatusNotFound:            true,
	http.StatusMethodNotAllowed:    true,
	http.StatusConflict:            true,
	http.StatusUnprocessableEntity: true,
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// Call is one request issued through Client.Do.
type Call struct {
	Method string
	// Path is relative to the base URL and may already carry a query string.
	Path string
	// Params are appended to Path as query parameters.
	Params map[string]string
	// Body is the wire payload, sent for POST and PUT only.
	Body string
	// Headers override the client's headers for this call.
	Headers map[string]string
}

// Client is the shared base of every endpoint client. Create one with a
// ClientBuilder; a zero Client refuses to issue requests.
//
// A Client is safe for concurrent use. Header updates are copy-on-write:
// requests in flight keep the headers they started with.
type Client struct {
	mu           sync.RWMutex
	config       ClientConfig
	interceptors *InterceptorChain
	ready        bool
}

// Get issues a GET and returns the response body.
func (c *Client) Get(ctx context.Context, path string, params map[string]string) (string, error) {
	resp, err := c.Do(ctx, &Call{Method: http.MethodGet, Path: path, Params: params})
	if err != nil {
		return "", err
	}

	return string(resp.Body), nil
}

// Post issues a POST with body and returns the response body.
func (c *Client) Post(ctx context.Context, path string, params map[string]string, body string) (string, error) {
	resp, err := c.Do(ctx, &Call{Method: http.MethodPost, Path: path, Params: params, Body: body})
	if err != nil {
		return "", err
	}

	return string(resp.Body), nil
}

// Put issues a PUT with body and returns the response body.
func (c *Client) Put(ctx context.Context, path string, params map[string]string, body string) (string, error) {
	resp, err := c.Do(ctx, &Call{Method: http.MethodPut, Path: path, Params: params, Body: body})
	if err != nil {
		return "", err
	}

	return string(resp.Body), nil
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string, params map[string]string) error {
	_, err := c.Do(ctx, &Call{Method: http.MethodDelete, Path: path, Params: params})

	return err
}

// Do performs exactly one round trip for call and interprets the status.
// Only 2xx responses are returned without error.
func (c *Client) Do(ctx context.Context, call *Call) (*Response, error) {
	op := call.Method + " " + call.Path

	if !c.isReady() {
		return nil, &Error{Kind: KindClientBuild, Op: op, Err: constants.ErrClientNotBuilt}
	}

	c.mu.RLock()
	headers := c.config.Headers.Merge(call.Headers).Map()
	baseURL := c.config.BaseURL
	transport := c.config.Transport
	c.mu.RUnlock()

	req := &Request{
		Method:  call.Method,
		Path:    call.Path,
		URL:     joinURL(baseURL, call.Path, call.Params),
		Headers: headers,
	}

	if call.Method == http.MethodPost || call.Method == http.MethodPut {
		req.Body = []byte(call.Body)
	}

	err := c.interceptors.ExecuteRequestInterceptors(ctx, req)
	if err != nil {
		return nil, asKind(err, KindInvalidArgument, op)
	}

	resp, err := transport.Do(ctx, req.Method, req.URL, req.Headers, req.Body)
	if err != nil {
		err = transportError(op, err)
	} else if resp == nil {
		err = &Error{Kind: KindInvalidResponse, Op: op, Err: constants.ErrEmptyPayload}
	}

	c.interceptors.ExecuteResponseInterceptors(ctx, req, resp, err)

	if err != nil {
		return nil, err
	}

	err = interpretStatus(op, resp)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// interpretStatus maps a response status onto the error taxonomy.
func interpretStatus(op string, resp *Response) error {
	code := resp.StatusCode

	switch {
	case code < constants.HTTPStatusMin || code > constants.HTTPStatusMax:
		return &Error{
			Kind:       KindInvalidResponse,
			Op:         op,
			StatusCode: code,
			Err:        fmt.Errorf("%w: %d", constants.ErrStatusOutOfRange, code),
		}
	case code >= http.StatusOK && code < http.StatusMultipleChoices:
		return nil
	case code == http.StatusBadRequest:
		return &Error{Kind: KindBadRequest, Op: op, StatusCode: code, Body: string(resp.Body)}
	case failedStatuses[code]:
		return &Error{Kind: KindFailed, Op: op, StatusCode: code, Body: string(resp.Body)}
	default:
		return &Error{Kind: KindUnknownAPI, Op: op, StatusCode: code, Body: string(resp.Body)}
	}
}

// transportError tags err as a connectivity failure unless the transport
// already classified it.
func transportError(op string, err error) error {
	sdkErr := &Error{}
	if errors.As(err, &sdkErr) {
		if sdkErr.Op != "" {
			return err
		}

		tagged := *sdkErr
		tagged.Op = op

		return &tagged
	}

	return &Error{Kind: KindConnectivity, Op: op, Err: err}
}

func joinURL(baseURL, path string, params map[string]string) string {
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	full := baseURL + path
	if len(params) == 0 {
		return full
	}

	values := url.Values{}
	for key, value := range params {
		values.Set(key, value)
	}

	separator := "?"
	if strings.Contains(path, "?") {
		separator = "&"
	}

	return full + separator + values.Encode()
}

func (c *Client) isReady() bool {
	if c == nil {
		return false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.ready
}

// IsHeadersValid reports whether an Authorization header is present.
func (c *Client) IsHeadersValid() bool {
	if !c.isReady() {
		return false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	value, ok := c.config.Headers.Get(constants.HeaderAuthorization)

	return ok && strings.TrimSpace(value) != ""
}

// Headers returns a copy of the configured headers.
func (c *Client) Headers() *Headers {
	if !c.isReady() {
		return NewHeaders()
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.config.Headers.Clone()
}

// SetHeader sets a header on every later request.
func (c *Client) SetHeader(name, value string) error {
	return c.UpdateHeaders(map[string]string{name: value})
}

// UpdateHeaders sets several headers on every later request.
func (c *Client) UpdateHeaders(headers map[string]string) error {
	if !c.isReady() {
		return &Error{Kind: KindClientBuild, Op: "update headers", Err: constants.ErrClientNotBuilt}
	}

	for name := range headers {
		if strings.TrimSpace(name) == "" {
			return &Error{Kind: KindInvalidArgument, Op: "update headers", Field: string(SettingHeader), Err: constants.ErrHeaderNameBlank}
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.config.Headers = c.config.Headers.Merge(headers)

	return nil
}

// Serializer returns the wire codec endpoint clients decode with.
func (c *Client) Serializer() Serializer {
	if !c.isReady() {
		return nil
	}

	return c.config.Serializer
}

// Logger returns the configured logger.
func (c *Client) Logger() Logger {
	if !c.isReady() {
		return NopLogger{}
	}

	return c.config.Logger
}

// BaseURL returns the normalized API root.
func (c *Client) BaseURL() string {
	if !c.isReady() {
		return ""
	}

	return c.config.BaseURL
}

// AuthMode returns how the client authenticates.
func (c *Client) AuthMode() AuthMode {
	if !c.isReady() {
		return AuthNone
	}

	return c.config.AuthMode
}

// Config returns a copy of the client configuration.
func (c *Client) Config() ClientConfig {
	if !c.isReady() {
		return ClientConfig{Headers: NewHeaders(), Logger: NopLogger{}}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	config := c.config
	config.Headers = c.config.Headers.Clone()

	return config
}
