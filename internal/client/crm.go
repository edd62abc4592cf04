package client

import "github.com/hamadhassan3/outseta-client-sub001/pkg/outseta"

// CRMClient implements outseta.CRMClient.
type CRMClient struct {
	accounts   *ResourceClient[outseta.Account]
	people     *ResourceClient[outseta.Person]
	activities *ResourceClient[outseta.Activity]
}

// NewCRMClient creates a CRM client on base.
func NewCRMClient(base *outseta.Client) *CRMClient {
	return &CRMClient{
		accounts:   NewResourceClient[outseta.Account](base, "/crm/accounts", "account"),
		people:     NewResourceClient[outseta.Person](base, "/crm/people", "person"),
		activities: NewResourceClient[outseta.Activity](base, "/activities", "activity"),
	}
}

// Accounts returns the accounts client.
func (c *CRMClient) Accounts() outseta.AccountsClient {
	return c.accounts
}

// People returns the people client.
func (c *CRMClient) People() outseta.PeopleClient {
	return c.people
}

// Activities returns the activities client.
func (c *CRMClient) Activities() outseta.ActivitiesClient {
	return c.activities
}

var _ outseta.CRMClient = (*CRMClient)(nil)
