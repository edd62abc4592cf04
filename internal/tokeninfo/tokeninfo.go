// Package tokeninfo reads the claims of access tokens issued by the token
// endpoint. Signatures are not verified: the remote API does that, the CLI
// only shows who a token belongs to and when it expires.
package tokeninfo

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/hamadhassan3/outseta-client-sub001/internal/constants"
)

// Info summarizes an access token.
type Info struct {
	Subject   string                 `json:"subject"              yaml:"subject"`
	Email     string                 `json:"email,omitempty"      yaml:"email,omitempty"`
	Name      string                 `json:"name,omitempty"       yaml:"name,omitempty"`
	Issuer    string                 `json:"issuer,omitempty"     yaml:"issuer,omitempty"`
	AccountID string                 `json:"account_uid,omitempty" yaml:"account_uid,omitempty"`
	IssuedAt  time.Time              `json:"issued_at,omitempty"  yaml:"issued_at,omitempty"`
	ExpiresAt time.Time              `json:"expires_at,omitempty" yaml:"expires_at,omitempty"`
	Claims    map[string]interface{} `json:"claims"               yaml:"claims"`
}

// Expired reports whether the token has an expiry in the past.
func (i *Info) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && now.After(i.ExpiresAt)
}

// Remaining returns the time left before expiry, zero when expired or
// when the token carries no expiry.
func (i *Info) Remaining(now time.Time) time.Duration {
	if i.ExpiresAt.IsZero() || now.After(i.ExpiresAt) {
		return 0
	}

	return i.ExpiresAt.Sub(now)
}

// Inspect decodes token without verifying its signature.
func Inspect(token string) (*Info, error) {
	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), constants.AuthSchemeBearer+" "))
	if strings.Count(token, ".") != 2 {
		return nil, constants.ErrInvalidTokenFormat
	}

	claims := jwt.MapClaims{}

	parser := &jwt.Parser{}

	_, _, err := parser.ParseUnverified(token, claims)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", constants.ErrInvalidTokenFormat, err)
	}

	info := &Info{
		Subject:   stringClaim(claims, "sub"),
		Email:     stringClaim(claims, "email"),
		Name:      stringClaim(claims, "name"),
		Issuer:    stringClaim(claims, "iss"),
		AccountID: stringClaim(claims, "outseta:accountUid"),
		IssuedAt:  timeClaim(claims, "iat"),
		ExpiresAt: timeClaim(claims, "exp"),
		Claims:    claims,
	}

	return info, nil
}

func stringClaim(claims jwt.MapClaims, name string) string {
	value, _ := claims[name].(string)

	return value
}

func timeClaim(claims jwt.MapClaims, name string) time.Time {
	switch value := claims[name].(type) {
	case float64:
		return time.Unix(int64(value), 0).UTC()
	case int64:
		return time.Unix(value, 0).UTC()
	default:
		return time.Time{}
	}
}
