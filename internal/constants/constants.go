package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// HTTP status codes interpreted by the client base.
const (
	// HTTPStatusMin is the smallest status code a valid response can carry.
	HTTPStatusMin = 100

	// HTTPStatusMax is the largest status code a valid response can carry.
	HTTPStatusMax = 599
)

// Header names and values.
const (
	// HeaderAuthorization carries either the API key or the bearer token.
	HeaderAuthorization = "Authorization"

	// HeaderAccept is the Accept header.
	HeaderAccept = "Accept"

	// HeaderContentType is the Content-Type header.
	HeaderContentType = "Content-Type"

	// HeaderUserAgent is the User-Agent header.
	HeaderUserAgent = "User-Agent"

	// HeaderRequestID correlates a request with server-side logs.
	HeaderRequestID = "X-Request-Id"

	// ContentTypeJSON is the default request and response media type.
	ContentTypeJSON = "application/json"

	// ContentTypeForm is used by the token endpoint.
	ContentTypeForm = "application/x-www-form-urlencoded"

	// AuthSchemeAPIKey prefixes "<key>:<secret>" API key credentials.
	AuthSchemeAPIKey = "Outseta"

	// AuthSchemeBearer prefixes access tokens.
	AuthSchemeBearer = "Bearer"

	// DomainURLFormat builds the API root of an Outseta domain.
	DomainURLFormat = "https://%s.outseta.com/api/v1"

	// DefaultUserAgent is sent when no user agent is configured.
	DefaultUserAgent = "outseta-go-client/1.0"
)

// Pagination wire parameter names and limits.
const (
	// ParamOffset is the page index parameter. The remote API names it
	// offset although it carries a page number.
	ParamOffset = "offset"

	// ParamLimit is the page size parameter.
	ParamLimit = "limit"

	// ParamOrderBy carries the ordering field, suffixed with OrderDescSuffix
	// for descending order.
	ParamOrderBy = "orderby"

	// OrderDescSuffix is appended to the orderby value for descending order.
	OrderDescSuffix = " desc"

	// MaxPageSize is the largest page the remote API serves.
	MaxPageSize = 100

	// DefaultPageSize is the page size used by the CLI when none is given.
	DefaultPageSize = 25

	// DefaultMaxPages bounds page iteration when no limit is configured.
	DefaultMaxPages = 1000
)

// Auth endpoint constants.
const (
	// TokenPath is the token endpoint path, relative to the API base URL.
	TokenPath = "/tokens"

	// GrantTypePassword is the only grant the token endpoint accepts.
	GrantTypePassword = "password"

	// ImpersonationPassword is sent when an API key authorizes the token
	// request on behalf of a user.
	ImpersonationPassword = "*"

	// DefaultAuthClientID identifies the token request when none is configured.
	DefaultAuthClientID = "outseta_auth_widget"
)

// Error reporting.
const (
	// ErrorBodyPreviewLimit caps how much of a response body an error message shows.
	ErrorBodyPreviewLimit = 256

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"
)
