package outseta

import "time"

// AuthToken is issued by the token endpoint. Pass AccessToken to
// ClientBuilder.WithAccessToken to act as the signed-in person.
type AuthToken struct {
	AccessToken string `json:"access_token" yaml:"access_token"`
	TokenType   string `json:"token_type"   yaml:"token_type"`
	ExpiresIn   int    `json:"expires_in"   yaml:"expires_in"`
}

// Lifetime returns ExpiresIn as a duration.
func (t *AuthToken) Lifetime() time.Duration {
	return time.Duration(t.ExpiresIn) * time.Second
}
