package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hamadhassan3/outseta-client-sub001/pkg/outseta"
)

const profilePath = "/profile"

// ProfileClient implements outseta.ProfileClient.
type ProfileClient struct {
	base *outseta.Client
}

// NewProfileClient creates a profile client on base.
func NewProfileClient(base *outseta.Client) *ProfileClient {
	return &ProfileClient{base: base}
}

// Get returns the signed-in person.
func (c *ProfileClient) Get(ctx context.Context) (*outseta.Person, error) {
	person, err := getOne[outseta.Person](ctx, c.base, profilePath)
	if err != nil {
		return nil, fmt.Errorf("getting profile: %w", err)
	}

	return person, nil
}

// Update changes the signed-in person.
func (c *ProfileClient) Update(ctx context.Context, person *outseta.Person) (*outseta.Person, error) {
	if person == nil {
		return nil, outseta.NewArgumentError("update profile", "person")
	}

	updated, err := send(ctx, c.base, http.MethodPut, profilePath, person)
	if err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}

	return updated, nil
}

var _ outseta.ProfileClient = (*ProfileClient)(nil)
