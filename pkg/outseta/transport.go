package outseta

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// Response is what a Transport returns for any HTTP response, whatever its
// status code. Interpreting the status is the Client's job.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Transport performs one raw HTTP exchange.
//
// fullURL is already fully qualified and body is nil for GET and DELETE.
// Implementations return a KindConnectivity *Error when the remote host
// cannot be reached and a KindInvalidResponse *Error when the reply cannot
// be read as HTTP. Any other error is treated as a connectivity failure.
type Transport interface {
	Do(ctx context.Context, method, fullURL string, headers map[string]string, body []byte) (*Response, error)
}

// TransportFunc adapts an ordinary function to the Transport interface.
type TransportFunc func(ctx context.Context, method, fullURL string, headers map[string]string, body []byte) (*Response, error)

// Do implements Transport.
func (f TransportFunc) Do(ctx context.Context, method, fullURL string, headers map[string]string, body []byte) (*Response, error) {
	return f(ctx, method, fullURL, headers, body)
}

// FormField is one name/value pair of a form-encoded payload.
type FormField struct {
	Name  string
	Value string
}

// EncodeFormValue URL-encodes a single form attribute.
func EncodeFormValue(value string) string {
	return url.QueryEscape(value)
}

// EncodeForm builds an application/x-www-form-urlencoded payload, keeping
// the order of fields.
func EncodeForm(fields ...FormField) string {
	parts := make([]string, 0, len(fields))

	for _, field := range fields {
		parts = append(parts, EncodeFormValue(field.Name)+"="+EncodeFormValue(field.Value))
	}

	return strings.Join(parts, "&")
}
