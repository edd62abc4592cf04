package outseta

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/hamadhassan3/outseta-client-sub001/internal/constants"
)

// ClientConfig is the validated configuration of a Client.
type ClientConfig struct {
	Family     Family
	BaseURL    string
	Headers    *Headers
	AuthMode   AuthMode
	Credential string
	Serializer Serializer
	Transport  Transport
	Logger     Logger
}

// ClientBuilder accumulates configuration for a Client of one family.
// Setters return the builder for chaining. A setting the family never
// allows is refused immediately: the builder records the first such
// rejection, reports it from Err, and fails Build with it.
type ClientBuilder struct {
	family       Family
	baseURL      string
	headers      *Headers
	authMode     AuthMode
	apiKey       string
	apiSecret    string
	accessToken  string
	serializer   Serializer
	transport    Transport
	logger       Logger
	interceptors *InterceptorChain
	err          error
}

// NewClientBuilder starts a builder for family.
func NewClientBuilder(family Family) *ClientBuilder {
	return &ClientBuilder{
		family:       family,
		headers:      NewHeaders(),
		interceptors: NewInterceptorChain(),
	}
}

// Err returns the first set-time rejection, if any.
func (b *ClientBuilder) Err() error {
	return b.err
}

func (b *ClientBuilder) accept(setting Setting, value string) bool {
	err := b.family.reject(setting, value)
	if err == nil {
		return true
	}

	if b.err == nil {
		b.err = err
	}

	return false
}

// WithBaseURL sets the API root every path is appended to.
func (b *ClientBuilder) WithBaseURL(baseURL string) *ClientBuilder {
	if b.accept(SettingBaseURL, baseURL) {
		b.baseURL = baseURL
	}

	return b
}

// WithHeader sets a header sent with every request.
func (b *ClientBuilder) WithHeader(name, value string) *ClientBuilder {
	if strings.TrimSpace(name) == "" {
		if b.err == nil {
			b.err = &Error{Kind: KindClientBuild, Op: "configure " + b.family.Name + " client", Field: string(SettingHeader), Err: constants.ErrHeaderNameBlank}
		}

		return b
	}

	if b.accept(SettingHeader, name) {
		b.headers.Set(name, value)
	}

	return b
}

// WithHeaders sets several headers.
func (b *ClientBuilder) WithHeaders(headers map[string]string) *ClientBuilder {
	for name, value := range headers {
		b.WithHeader(name, value)
	}

	return b
}

// WithAPIKey selects API-key auth. It replaces any access token set earlier.
func (b *ClientBuilder) WithAPIKey(apiKey, apiSecret string) *ClientBuilder {
	if b.accept(SettingAPIKey, apiKey) {
		b.authMode = AuthAPIKey
		b.apiKey = apiKey
		b.apiSecret = apiSecret
		b.accessToken = ""
	}

	return b
}

// WithAccessToken selects bearer-token auth. It replaces any API key set
// earlier.
func (b *ClientBuilder) WithAccessToken(accessToken string) *ClientBuilder {
	if b.accept(SettingAccessToken, accessToken) {
		b.authMode = AuthAccessToken
		b.accessToken = accessToken
		b.apiKey = ""
		b.apiSecret = ""
	}

	return b
}

// WithoutAuth clears any credential.
func (b *ClientBuilder) WithoutAuth() *ClientBuilder {
	if b.accept(SettingNoAuth, AuthNone.String()) {
		b.authMode = AuthNone
		b.apiKey = ""
		b.apiSecret = ""
		b.accessToken = ""
	}

	return b
}

// WithSerializer sets the wire codec.
func (b *ClientBuilder) WithSerializer(serializer Serializer) *ClientBuilder {
	b.serializer = serializer

	return b
}

// WithTransport sets the HTTP transport.
func (b *ClientBuilder) WithTransport(transport Transport) *ClientBuilder {
	b.transport = transport

	return b
}

// WithLogger sets the logger. Requests and responses are logged at debug
// level, failed round trips at error level.
func (b *ClientBuilder) WithLogger(logger Logger) *ClientBuilder {
	b.logger = logger

	return b
}

// WithRequestInterceptor adds a request interceptor.
func (b *ClientBuilder) WithRequestInterceptor(interceptor RequestInterceptor) *ClientBuilder {
	if interceptor != nil {
		b.interceptors.AddRequestInterceptor(interceptor)
	}

	return b
}

// WithResponseInterceptor adds a response interceptor.
func (b *ClientBuilder) WithResponseInterceptor(interceptor ResponseInterceptor) *ClientBuilder {
	if interceptor != nil {
		b.interceptors.AddResponseInterceptor(interceptor)
	}

	return b
}

// Build validates the configuration and returns a ready Client.
func (b *ClientBuilder) Build() (*Client, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.serializer == nil {
		return nil, b.buildError(SettingSerializer, constants.ErrSerializerRequired)
	}

	if b.transport == nil {
		return nil, b.buildError(SettingTransport, constants.ErrTransportRequired)
	}

	baseURL, err := normalizeBaseURL(b.baseURL)
	if err != nil {
		return nil, b.buildError(SettingBaseURL, err)
	}

	credential, err := b.credential()
	if err != nil {
		return nil, err
	}

	if !b.family.Permits(b.authMode) {
		return nil, b.buildError(SettingNoAuth, fmt.Errorf("%w: %s", constants.ErrAuthModeNotPermitted, b.authMode))
	}

	config := ClientConfig{
		Family:     b.family,
		BaseURL:    baseURL,
		Headers:    b.assembleHeaders(credential),
		AuthMode:   b.authMode,
		Credential: credential,
		Serializer: b.serializer,
		Transport:  b.transport,
		Logger:     loggerOrNop(b.logger),
	}

	if b.family.Validate != nil {
		err := b.family.Validate(config)
		if err != nil {
			return nil, b.buildError(Setting(b.family.Name), err)
		}
	}

	interceptors := b.interceptors.clone()
	if b.logger != nil {
		interceptors.requestInterceptors = append([]RequestInterceptor{LoggingInterceptor(b.logger)}, interceptors.requestInterceptors...)
		interceptors.AddResponseInterceptor(LoggingResponseInterceptor(b.logger))
	}

	return &Client{config: config, interceptors: interceptors, ready: true}, nil
}

func (b *ClientBuilder) buildError(setting Setting, err error) error {
	return &Error{Kind: KindClientBuild, Op: "build " + b.family.Name + " client", Field: string(setting), Err: err}
}

func (b *ClientBuilder) credential() (string, error) {
	switch b.authMode {
	case AuthAPIKey:
		if strings.TrimSpace(b.apiKey) == "" || strings.TrimSpace(b.apiSecret) == "" {
			return "", b.buildError(SettingAPIKey, constants.ErrCredentialBlank)
		}

		return b.apiKey + ":" + b.apiSecret, nil
	case AuthAccessToken:
		if strings.TrimSpace(b.accessToken) == "" {
			return "", b.buildError(SettingAccessToken, constants.ErrCredentialBlank)
		}

		return b.accessToken, nil
	default:
		return "", nil
	}
}

func (b *ClientBuilder) assembleHeaders(credential string) *Headers {
	headers := NewHeaders()
	headers.Set(constants.HeaderAccept, constants.ContentTypeJSON)
	headers.Set(constants.HeaderContentType, constants.ContentTypeJSON)

	for _, name := range b.headers.Names() {
		value, _ := b.headers.Get(name)
		headers.Set(name, value)
	}

	switch b.authMode {
	case AuthAPIKey:
		headers.Set(constants.HeaderAuthorization, constants.AuthSchemeAPIKey+" "+credential)
	case AuthAccessToken:
		headers.Set(constants.HeaderAuthorization, constants.AuthSchemeBearer+" "+credential)
	default:
		headers.Del(constants.HeaderAuthorization)
	}

	return headers
}

// normalizeBaseURL checks that raw is an absolute http(s) URL and trims a
// trailing slash.
func normalizeBaseURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", constants.ErrBaseURLRequired
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("%w: %w", constants.ErrBaseURLInvalid, err)
	}

	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return "", fmt.Errorf("%w: %q", constants.ErrBaseURLInvalid, raw)
	}

	return strings.TrimRight(trimmed, "/"), nil
}
