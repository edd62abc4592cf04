package commands

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamadhassan3/outseta-client-sub001/internal/constants"
)

func TestTokenGet_WithAPIKey(t *testing.T) {
	var form map[string][]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tokens", r.URL.Path)
		assert.Equal(t, "Outseta key:secret", r.Header.Get("Authorization"))
		assert.NoError(t, r.ParseForm())
		form = r.PostForm

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"issued","token_type":"bearer","expires_in":3600}`))
	}))
	t.Cleanup(server.Close)

	useViper(t, map[string]interface{}{
		"base_url":   server.URL,
		"api_key":    "key",
		"api_secret": "secret",
		"output":     "json",
	})

	path := filepath.Join(t.TempDir(), "config.yml")
	viper.SetConfigFile(path)

	out, err := execute(t, NewTokenCommand(), "get", "jane@example.com", "--save")
	require.NoError(t, err)

	var token struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &token))
	assert.Equal(t, "issued", token.AccessToken)
	assert.Equal(t, 3600, token.ExpiresIn)

	assert.Equal(t, []string{"jane@example.com"}, form["username"])
	assert.Equal(t, []string{constants.ImpersonationPassword}, form["password"])
	assert.Equal(t, []string{constants.DefaultAuthClientID}, form["client_id"])

	assert.Equal(t, "issued", readConfigFile(t, path).AccessToken)
	assert.Equal(t, "issued", viper.GetString("access_token"))
}

func TestTokenInspect(t *testing.T) {
	useViper(t, map[string]interface{}{"output": "json"})

	expires := time.Now().Add(time.Hour).Truncate(time.Second).UTC()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "p-1",
		"email": "jane@example.com",
		"exp":   expires.Unix(),
	}).SignedString([]byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)

	viper.Set("access_token", token)

	out, err := execute(t, NewTokenCommand(), "inspect")
	require.NoError(t, err)

	var info struct {
		Subject   string    `json:"subject"`
		Email     string    `json:"email"`
		ExpiresAt time.Time `json:"expires_at"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "p-1", info.Subject)
	assert.Equal(t, "jane@example.com", info.Email)
	assert.True(t, expires.Equal(info.ExpiresAt))
}

func TestTokenInspect_Errors(t *testing.T) {
	useViper(t, nil)

	_, err := execute(t, NewTokenCommand(), "inspect")
	require.ErrorIs(t, err, constants.ErrNoCredentials)

	_, err = execute(t, NewTokenCommand(), "inspect", "opaque")
	require.ErrorIs(t, err, constants.ErrInvalidTokenFormat)
}
