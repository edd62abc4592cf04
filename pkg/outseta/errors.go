package outseta

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/hamadhassan3/outseta-client-sub001/internal/constants"
)

// ErrorKind classifies every error the SDK returns.
type ErrorKind int

const (
	// KindUnknown is the kind of errors that did not originate in the SDK.
	KindUnknown ErrorKind = iota
	// KindInvalidArgument marks a caller-supplied value rejected before any network call.
	KindInvalidArgument
	// KindClientBuild marks inconsistent or incomplete client configuration.
	KindClientBuild
	// KindPageBuild marks a page request that violates its numeric constraints.
	KindPageBuild
	// KindConnectivity marks a transport that could not reach the remote host.
	KindConnectivity
	// KindInvalidResponse marks a response that could not be read as HTTP.
	KindInvalidResponse
	// KindBadRequest marks a 400 response.
	KindBadRequest
	// KindFailed marks a recognized non-400 failure status.
	KindFailed
	// KindUnknownAPI marks any other non-2xx status.
	KindUnknownAPI
	// KindParse marks a payload that could not be decoded into the target type.
	KindParse
	// KindSerialization marks a value that could not be encoded.
	KindSerialization
)

var kindNames = map[ErrorKind]string{
	KindUnknown:         "unknown",
	KindInvalidArgument: "invalid argument",
	KindClientBuild:     "client build",
	KindPageBuild:       "page build",
	KindConnectivity:    "connectivity",
	KindInvalidResponse: "invalid response",
	KindBadRequest:      "bad request",
	KindFailed:          "request failed",
	KindUnknownAPI:      "unknown API error",
	KindParse:           "parse",
	KindSerialization:   "serialization",
}

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("kind(%d)", int(k))
}

// Sentinels matched by errors.Is against any *Error of the same kind.
var (
	ErrInvalidArgument  = &Error{Kind: KindInvalidArgument}
	ErrClientBuild      = &Error{Kind: KindClientBuild}
	ErrPageBuild        = &Error{Kind: KindPageBuild}
	ErrConnectivity     = &Error{Kind: KindConnectivity}
	ErrInvalidResponse  = &Error{Kind: KindInvalidResponse}
	ErrBadRequest       = &Error{Kind: KindBadRequest}
	ErrFailed           = &Error{Kind: KindFailed}
	ErrUnknownAPI       = &Error{Kind: KindUnknownAPI}
	ErrParse            = &Error{Kind: KindParse}
	ErrSerialization    = &Error{Kind: KindSerialization}
	errSentinelsByKinds = map[ErrorKind]*Error{
		KindInvalidArgument: ErrInvalidArgument,
		KindClientBuild:     ErrClientBuild,
		KindPageBuild:       ErrPageBuild,
		KindConnectivity:    ErrConnectivity,
		KindInvalidResponse: ErrInvalidResponse,
		KindBadRequest:      ErrBadRequest,
		KindFailed:          ErrFailed,
		KindUnknownAPI:      ErrUnknownAPI,
		KindParse:           ErrParse,
		KindSerialization:   ErrSerialization,
	}
)

// Error is the single error type returned by the SDK.
type Error struct {
	Kind ErrorKind
	// Op names the operation that failed, e.g. "GET /crm/accounts" or "build".
	Op string
	// Field names the offending configuration or argument, if any.
	Field string
	// StatusCode is the HTTP status for response errors.
	StatusCode int
	// Body is the raw response body for response errors, passed through unmodified.
	Body string
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var builder strings.Builder

	builder.WriteString(e.Kind.String())

	if e.Op != "" {
		builder.WriteString(": ")
		builder.WriteString(e.Op)
	}

	if e.Field != "" {
		builder.WriteString(": field ")
		builder.WriteString(e.Field)
	}

	if e.StatusCode != 0 {
		fmt.Fprintf(&builder, ": status %d", e.StatusCode)
	}

	if e.Err != nil {
		builder.WriteString(": ")
		builder.WriteString(e.Err.Error())
	}

	if e.Body != "" {
		builder.WriteString(": ")
		builder.WriteString(preview(e.Body))
	}

	return builder.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	sentinel, ok := target.(*Error)
	if !ok {
		return false
	}

	return errSentinelsByKinds[e.Kind] == sentinel
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) ErrorKind {
	sdkErr := &Error{}
	if errors.As(err, &sdkErr) {
		return sdkErr.Kind
	}

	return KindUnknown
}

// StatusCodeOf returns the HTTP status carried by err, or 0.
func StatusCodeOf(err error) int {
	sdkErr := &Error{}
	if errors.As(err, &sdkErr) {
		return sdkErr.StatusCode
	}

	return 0
}

// IsNotFound checks if the error is a 404 failure.
func IsNotFound(err error) bool {
	return StatusCodeOf(err) == http.StatusNotFound
}

// IsUnauthorized checks if the error is a 401 failure.
func IsUnauthorized(err error) bool {
	return StatusCodeOf(err) == http.StatusUnauthorized
}

// IsForbidden checks if the error is a 403 failure.
func IsForbidden(err error) bool {
	return StatusCodeOf(err) == http.StatusForbidden
}

// IsRateLimited checks if the error is a 429 failure.
func IsRateLimited(err error) bool {
	return StatusCodeOf(err) == http.StatusTooManyRequests
}

// APIErrorBody is the machine-readable payload the remote API puts in
// error responses. Not every error response carries one.
type APIErrorBody struct {
	ErrorMessage     string          `json:"ErrorMessage"`
	Message          string          `json:"Message"`
	Error            string          `json:"error"`
	ErrorDescription string          `json:"error_description"`
	ValidationErrors json.RawMessage `json:"EntityValidationErrors,omitempty"`
}

// Text returns the most specific message present in the payload.
func (b *APIErrorBody) Text() string {
	for _, candidate := range []string{b.ErrorDescription, b.ErrorMessage, b.Message, b.Error} {
		if candidate != "" {
			return candidate
		}
	}

	return ""
}

// ParseAPIErrorBody decodes the error payload carried by a response error.
func ParseAPIErrorBody(err error) (*APIErrorBody, error) {
	sdkErr := &Error{}
	if !errors.As(err, &sdkErr) || sdkErr.Body == "" {
		return nil, &Error{Kind: KindParse, Op: "parse error body", Err: constants.ErrEmptyPayload}
	}

	var body APIErrorBody

	unmarshalErr := json.Unmarshal([]byte(sdkErr.Body), &body)
	if unmarshalErr != nil {
		return nil, &Error{Kind: KindParse, Op: "parse error body", Err: unmarshalErr}
	}

	return &body, nil
}

// NewArgumentError reports that the required argument field of op is missing.
func NewArgumentError(op, field string) error {
	return &Error{Kind: KindInvalidArgument, Op: op, Field: field, Err: constants.ErrValueRequired}
}

// RequireArgument returns an InvalidArgument error naming field when value is blank.
func RequireArgument(op, field, value string) error {
	if strings.TrimSpace(value) == "" {
		return NewArgumentError(op, field)
	}

	return nil
}

func preview(body string) string {
	if len(body) <= constants.ErrorBodyPreviewLimit {
		return body
	}

	cut := constants.ErrorBodyPreviewLimit
	for cut > 0 && !utf8.RuneStart(body[cut]) {
		cut--
	}

	return body[:cut] + "..."
}
