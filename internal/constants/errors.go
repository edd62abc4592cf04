package constants

import "errors"

// Client construction errors.
var (
	ErrBaseURLRequired      = errors.New("base URL is required")
	ErrBaseURLInvalid       = errors.New("base URL must be an absolute http or https URL")
	ErrSerializerRequired   = errors.New("serializer is required")
	ErrTransportRequired    = errors.New("transport is required")
	ErrCredentialBlank      = errors.New("credential must not be blank")
	ErrAuthModeNotPermitted = errors.New("auth mode not permitted for this client family")
	ErrClientNotBuilt       = errors.New("client was not created by a builder")
	ErrHeaderNameBlank      = errors.New("header name must not be blank")
	ErrConfigRequired       = errors.New("config is required")
	ErrConflictingAuth      = errors.New("both an API key and an access token are configured")
)

// Page request errors.
var (
	ErrPageSizeOutOfRange   = errors.New("page size out of range")
	ErrPageNumNegative      = errors.New("page number must not be negative")
	ErrOrderByRequired      = errors.New("order direction requires an order by field")
	ErrCustomParamNameBlank = errors.New("custom parameter name must not be blank")
	ErrNoMoreItems          = errors.New("no more items")
)

// Argument errors.
var (
	ErrValueRequired    = errors.New("value is required")
	ErrPasswordRequired = errors.New("password is required without an API key")
)

// Wire errors.
var (
	ErrStatusOutOfRange = errors.New("response status code out of range")
	ErrEmptyPayload     = errors.New("empty payload")
)

// CLI errors.
var (
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
	ErrUnknownOutput      = errors.New("unknown output format")
	ErrNoCredentials      = errors.New("no credentials configured, set api_key or access_token")
	ErrEmptyExpression    = errors.New("filter expression is empty")
	ErrNotBoolExpression  = errors.New("filter expression must evaluate to a boolean")
	ErrInvalidTokenFormat = errors.New("token is not a JWT")
)
