package outseta

import (
	"fmt"
	"slices"

	"github.com/hamadhassan3/outseta-client-sub001/internal/constants"
)

// AuthMode is how a client authenticates. The modes are mutually exclusive.
type AuthMode int

const (
	// AuthNone sends no Authorization header.
	AuthNone AuthMode = iota
	// AuthAPIKey sends "Authorization: Outseta <key>:<secret>".
	AuthAPIKey
	// AuthAccessToken sends "Authorization: Bearer <token>".
	AuthAccessToken
)

// String implements fmt.Stringer.
func (m AuthMode) String() string {
	switch m {
	case AuthNone:
		return "none"
	case AuthAPIKey:
		return "api key"
	case AuthAccessToken:
		return "access token"
	default:
		return fmt.Sprintf("auth mode(%d)", int(m))
	}
}

// Setting names a builder option, for Family.Reject and error fields.
type Setting string

// Builder settings.
const (
	SettingBaseURL     Setting = "baseURL"
	SettingHeader      Setting = "headers"
	SettingAPIKey      Setting = "apiKey"
	SettingAccessToken Setting = "accessToken"
	SettingNoAuth      Setting = "authMode"
	SettingSerializer  Setting = "serializer"
	SettingTransport   Setting = "transport"
)

// Family is the configuration policy of a group of endpoints. It narrows
// what a ClientBuilder accepts.
type Family struct {
	// Name identifies the family in errors.
	Name string
	// AuthModes lists the permitted auth modes. Empty permits all.
	AuthModes []AuthMode
	// Reject, if set, runs inside builder setters and refuses a setting
	// that is never valid for the family.
	Reject func(setting Setting, value string) error
	// Validate, if set, runs last in Build against the assembled config.
	Validate func(cfg ClientConfig) error
}

// Permits reports whether mode is allowed.
func (f Family) Permits(mode AuthMode) bool {
	return len(f.AuthModes) == 0 || slices.Contains(f.AuthModes, mode)
}

func (f Family) reject(setting Setting, value string) error {
	if f.Reject == nil {
		return nil
	}

	err := f.Reject(setting, value)
	if err == nil {
		return nil
	}

	return &Error{Kind: KindClientBuild, Op: "configure " + f.Name + " client", Field: string(setting), Err: err}
}

// rejectSettings returns a Reject hook refusing each of settings.
func rejectSettings(settings ...Setting) func(Setting, string) error {
	return func(setting Setting, _ string) error {
		if slices.Contains(settings, setting) {
			return constants.ErrAuthModeNotPermitted
		}

		return nil
	}
}

// Predefined endpoint families.
var (
	// GenericFamily permits any single auth mode, including none.
	GenericFamily = Family{Name: "generic"}

	// AuthFamily issues tokens; it runs unauthenticated or impersonates
	// with an API key, never with a bearer token.
	AuthFamily = Family{
		Name:      "auth",
		AuthModes: []AuthMode{AuthNone, AuthAPIKey},
		Reject:    rejectSettings(SettingAccessToken),
	}

	// ProfileFamily acts on behalf of a signed-in person and needs their token.
	ProfileFamily = Family{
		Name:      "profile",
		AuthModes: []AuthMode{AuthAccessToken},
		Reject:    rejectSettings(SettingAPIKey),
	}

	CRMFamily = Family{
		Name:      "crm",
		AuthModes: []AuthMode{AuthAPIKey, AuthAccessToken},
	}

	BillingFamily = Family{
		Name:      "billing",
		AuthModes: []AuthMode{AuthAPIKey, AuthAccessToken},
	}

	SupportFamily = Family{
		Name:      "support",
		AuthModes: []AuthMode{AuthAPIKey, AuthAccessToken},
	}

	MarketingFamily = Family{
		Name:      "marketing",
		AuthModes: []AuthMode{AuthAPIKey, AuthAccessToken},
	}
)
