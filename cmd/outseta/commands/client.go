package commands

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/xhit/go-str2duration/v2"

	"github.com/hamadhassan3/outseta-client-sub001/internal/constants"
	"github.com/hamadhassan3/outseta-client-sub001/pkg/outseta"
	"github.com/hamadhassan3/outseta-client-sub001/pkg/outsetaclient"
)

// parseTimeout accepts Go durations plus day and week units, e.g. "1d2h".
func parseTimeout(value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}

	timeout, err := str2duration.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("parsing timeout %q: %w", value, err)
	}

	return timeout, nil
}

// clientConfig turns the CLI configuration into a client configuration for
// family. Only the credential the family accepts is passed on, so a stored
// access token does not conflict with a stored API key.
func clientConfig(family outseta.Family) (*outsetaclient.Config, error) {
	config := loadConfig()

	timeout, err := parseTimeout(config.Timeout)
	if err != nil {
		return nil, err
	}

	cfg := &outsetaclient.Config{
		BaseURL:    config.BaseURL,
		Domain:     config.Domain,
		ClientID:   config.ClientID,
		Timeout:    timeout,
		UserAgent:  config.UserAgent,
		Debug:      config.Debug,
		RequestIDs: config.RequestIDs,
		Logger:     outseta.NewZerologLogger(log.Logger),
	}

	hasKey := config.APIKey != "" && config.APISecret != ""
	hasToken := config.AccessToken != ""

	switch {
	case hasKey && family.Permits(outseta.AuthAPIKey):
		cfg.APIKey = config.APIKey
		cfg.APISecret = config.APISecret
	case hasToken && family.Permits(outseta.AuthAccessToken):
		cfg.AccessToken = config.AccessToken
	case family.Permits(outseta.AuthNone):
	default:
		return nil, constants.ErrNoCredentials
	}

	return cfg, nil
}
