package outsetaclient

import (
	"fmt"
	"strings"
	"time"

	"github.com/hamadhassan3/outseta-client-sub001/internal/client"
	"github.com/hamadhassan3/outseta-client-sub001/internal/constants"
	"github.com/hamadhassan3/outseta-client-sub001/internal/http"
	"github.com/hamadhassan3/outseta-client-sub001/pkg/outseta"
)

// Config represents client configuration for the family constructors.
//
// # Authentication
//
// Provide either APIKey and APISecret or an AccessToken. Which one a client
// uses depends on its family: the auth client only ever uses the API key,
// the profile client only the access token. The remaining families accept
// either but refuse a Config that carries both.
//
// Credentials are only read from Config, never from the environment.
type Config struct {
	// BaseURL is the API root, e.g. "https://acme.outseta.com/api/v1". A
	// missing scheme defaults to https; a trailing slash is trimmed.
	BaseURL string
	// Domain is the Outseta subdomain. It is used when BaseURL is empty.
	Domain string

	// APIKey and APISecret authenticate as the account owner.
	APIKey    string
	APISecret string
	// AccessToken authenticates as a signed-in person.
	AccessToken string
	// ClientID identifies token requests made by the auth client.
	ClientID string

	// Timeout bounds each HTTP round trip. Zero uses the default.
	Timeout time.Duration
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// Headers are sent with every request.
	Headers map[string]string
	// Debug switches Logger from one entry per API call to the transport's
	// verbose HTTP request/response log.
	Debug bool
	// RequestIDs adds a random X-Request-Id to every request.
	RequestIDs bool
	// Logger is an optional structured logger.
	Logger outseta.Logger
	// Metrics, if set, collects per-endpoint call statistics.
	Metrics *outseta.MetricsCollector
}

// Endpoint returns the normalized API root.
func (c *Config) Endpoint() (string, error) {
	endpoint := strings.TrimSpace(c.BaseURL)

	if endpoint == "" && strings.TrimSpace(c.Domain) != "" {
		endpoint = fmt.Sprintf(constants.DomainURLFormat, strings.TrimSpace(c.Domain))
	}

	if endpoint == "" {
		return "", &outseta.Error{Kind: outseta.KindClientBuild, Op: "resolve endpoint", Field: "baseURL", Err: constants.ErrBaseURLRequired}
	}

	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint, nil
}

func (c *Config) transport() *http.Client {
	opts := []http.Option{
		http.WithDebug(c.Debug),
		http.WithRequestIDs(c.RequestIDs),
	}

	if c.Timeout > 0 {
		opts = append(opts, http.WithTimeout(c.Timeout))
	}

	if c.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(c.UserAgent))
	}

	if c.Logger != nil {
		opts = append(opts, http.WithLogger(c.Logger))
	}

	return http.NewClient(opts...)
}

// NewBuilder returns a builder for family preloaded from config with the
// JSON serializer and the HTTP transport. Callers may adjust it before
// Build.
func NewBuilder(family outseta.Family, config *Config) (*outseta.ClientBuilder, error) {
	if config == nil {
		return nil, &outseta.Error{Kind: outseta.KindClientBuild, Op: "build " + family.Name + " client", Err: constants.ErrConfigRequired}
	}

	endpoint, err := config.Endpoint()
	if err != nil {
		return nil, err
	}

	builder := outseta.NewClientBuilder(family).
		WithBaseURL(endpoint).
		WithHeaders(config.Headers).
		WithSerializer(outseta.NewJSONSerializer()).
		WithTransport(config.transport())

	// In debug mode the transport logs each round trip itself.
	if config.Logger != nil && !config.Debug {
		builder.WithLogger(config.Logger)
	}

	if config.Metrics != nil {
		builder.
			WithRequestInterceptor(outseta.MetricsRequestInterceptor(config.Metrics)).
			WithResponseInterceptor(outseta.MetricsResponseInterceptor(config.Metrics))
	}

	err = applyCredentials(builder, family, config)
	if err != nil {
		return nil, err
	}

	return builder, nil
}

// applyCredentials picks the credential family accepts. When it accepts
// neither configured credential, the configured one is still set so the
// builder reports the rejection.
func applyCredentials(builder *outseta.ClientBuilder, family outseta.Family, config *Config) error {
	hasKey := config.APIKey != "" || config.APISecret != ""
	hasToken := config.AccessToken != ""

	useKey := hasKey && family.Permits(outseta.AuthAPIKey)
	useToken := hasToken && family.Permits(outseta.AuthAccessToken)

	switch {
	case useKey && useToken:
		return &outseta.Error{Kind: outseta.KindClientBuild, Op: "build " + family.Name + " client", Field: "authMode", Err: constants.ErrConflictingAuth}
	case useKey:
		builder.WithAPIKey(config.APIKey, config.APISecret)
	case useToken:
		builder.WithAccessToken(config.AccessToken)
	case hasKey:
		builder.WithAPIKey(config.APIKey, config.APISecret)
	case hasToken:
		builder.WithAccessToken(config.AccessToken)
	}

	return nil
}

func build(family outseta.Family, config *Config) (*outseta.Client, error) {
	builder, err := NewBuilder(family, config)
	if err != nil {
		return nil, err
	}

	return builder.Build()
}

// NewAuth creates a client for the token endpoint.
func NewAuth(config *Config) (outseta.AuthClient, error) {
	base, err := build(outseta.AuthFamily, config)
	if err != nil {
		return nil, err
	}

	return client.NewAuthClient(base, config.ClientID), nil
}

// NewCRM creates a client for accounts, people and activities.
func NewCRM(config *Config) (outseta.CRMClient, error) {
	base, err := build(outseta.CRMFamily, config)
	if err != nil {
		return nil, err
	}

	return client.NewCRMClient(base), nil
}

// NewBilling creates a client for plans, subscriptions and transactions.
func NewBilling(config *Config) (outseta.BillingClient, error) {
	base, err := build(outseta.BillingFamily, config)
	if err != nil {
		return nil, err
	}

	return client.NewBillingClient(base), nil
}

// NewSupport creates a client for support cases.
func NewSupport(config *Config) (outseta.SupportClient, error) {
	base, err := build(outseta.SupportFamily, config)
	if err != nil {
		return nil, err
	}

	return client.NewSupportClient(base), nil
}

// NewMarketing creates a client for email lists.
func NewMarketing(config *Config) (outseta.MarketingClient, error) {
	base, err := build(outseta.MarketingFamily, config)
	if err != nil {
		return nil, err
	}

	return client.NewMarketingClient(base), nil
}

// NewProfile creates a client for the signed-in person's profile.
func NewProfile(config *Config) (outseta.ProfileClient, error) {
	base, err := build(outseta.ProfileFamily, config)
	if err != nil {
		return nil, err
	}

	return client.NewProfileClient(base), nil
}
