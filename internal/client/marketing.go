package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/hamadhassan3/outseta-client-sub001/pkg/outseta"
)

// MarketingClient implements outseta.MarketingClient.
type MarketingClient struct {
	emailLists *EmailListsClient
}

// NewMarketingClient creates a marketing client on base.
func NewMarketingClient(base *outseta.Client) *MarketingClient {
	return &MarketingClient{
		emailLists: &EmailListsClient{
			ResourceClient: NewResourceClient[outseta.EmailList](base, "/email/lists", "email list"),
			base:           base,
		},
	}
}

// EmailLists returns the email lists client.
func (c *MarketingClient) EmailLists() outseta.EmailListsClient {
	return c.emailLists
}

// EmailListsClient implements outseta.EmailListsClient.
type EmailListsClient struct {
	*ResourceClient[outseta.EmailList]

	base *outseta.Client
}

func subscriptionsPath(listUID string) string {
	return "/email/lists/" + url.PathEscape(listUID) + "/subscriptions"
}

// Subscribe adds a person to an email list.
func (c *EmailListsClient) Subscribe(ctx context.Context, listUID string, subscription *outseta.EmailListSubscription) error {
	const op = "subscribe to email list"

	err := outseta.RequireArgument(op, "listUID", listUID)
	if err != nil {
		return err
	}

	if subscription == nil || subscription.Subscriber == nil {
		return outseta.NewArgumentError(op, "subscriber")
	}

	_, err = send(ctx, c.base, http.MethodPost, subscriptionsPath(listUID), subscription)
	if err != nil {
		return fmt.Errorf("subscribing to email list: %w", err)
	}

	return nil
}

// Unsubscribe removes a person from an email list.
func (c *EmailListsClient) Unsubscribe(ctx context.Context, listUID, personUID string) error {
	const op = "unsubscribe from email list"

	err := outseta.RequireArgument(op, "listUID", listUID)
	if err != nil {
		return err
	}

	err = outseta.RequireArgument(op, "personUID", personUID)
	if err != nil {
		return err
	}

	err = c.base.Delete(ctx, subscriptionsPath(listUID)+"/"+url.PathEscape(personUID), nil)
	if err != nil {
		return fmt.Errorf("unsubscribing from email list: %w", err)
	}

	return nil
}

var (
	_ outseta.MarketingClient  = (*MarketingClient)(nil)
	_ outseta.EmailListsClient = (*EmailListsClient)(nil)
)
