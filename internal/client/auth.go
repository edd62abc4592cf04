package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/hamadhassan3/outseta-client-sub001/internal/constants"
	"github.com/hamadhassan3/outseta-client-sub001/pkg/outseta"
)

// AuthClient implements outseta.AuthClient.
type AuthClient struct {
	base     *outseta.Client
	clientID string
}

// NewAuthClient creates an auth client. An empty clientID selects the
// default one.
func NewAuthClient(base *outseta.Client, clientID string) *AuthClient {
	if clientID == "" {
		clientID = constants.DefaultAuthClientID
	}

	return &AuthClient{base: base, clientID: clientID}
}

// GetAccessToken implements outseta.AuthClient.
func (c *AuthClient) GetAccessToken(ctx context.Context, username, password string) (*outseta.AuthToken, error) {
	const op = "get access token"

	err := outseta.RequireArgument(op, "username", username)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(password) == "" {
		if !c.base.IsHeadersValid() {
			return nil, &outseta.Error{Kind: outseta.KindInvalidArgument, Op: op, Field: "password", Err: constants.ErrPasswordRequired}
		}

		password = constants.ImpersonationPassword
	}

	form := outseta.EncodeForm(
		outseta.FormField{Name: "username", Value: username},
		outseta.FormField{Name: "password", Value: password},
		outseta.FormField{Name: "grant_type", Value: constants.GrantTypePassword},
		outseta.FormField{Name: "client_id", Value: c.clientID},
	)

	resp, err := c.base.Do(ctx, &outseta.Call{
		Method:  http.MethodPost,
		Path:    constants.TokenPath,
		Body:    form,
		Headers: map[string]string{constants.HeaderContentType: constants.ContentTypeForm},
	})
	if err != nil {
		return nil, fmt.Errorf("requesting access token: %w", err)
	}

	token, err := outseta.FromWire[outseta.AuthToken](c.base.Serializer(), string(resp.Body))
	if err != nil {
		return nil, fmt.Errorf("parsing access token response: %w", err)
	}

	return token, nil
}

var _ outseta.AuthClient = (*AuthClient)(nil)
