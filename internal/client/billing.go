package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/hamadhassan3/outseta-client-sub001/pkg/outseta"
)

// BillingClient implements outseta.BillingClient.
type BillingClient struct {
	plans         *ResourceClient[outseta.Plan]
	subscriptions *ResourceClient[outseta.Subscription]
	transactions  *TransactionsClient
}

// NewBillingClient creates a billing client on base.
func NewBillingClient(base *outseta.Client) *BillingClient {
	return &BillingClient{
		plans:         NewResourceClient[outseta.Plan](base, "/billing/plans", "plan"),
		subscriptions: NewResourceClient[outseta.Subscription](base, "/billing/subscriptions", "subscription"),
		transactions:  &TransactionsClient{base: base},
	}
}

// Plans returns the plans client.
func (c *BillingClient) Plans() outseta.PlansClient {
	return c.plans
}

// Subscriptions returns the subscriptions client.
func (c *BillingClient) Subscriptions() outseta.SubscriptionsClient {
	return c.subscriptions
}

// Transactions returns the transactions client.
func (c *BillingClient) Transactions() outseta.TransactionsClient {
	return c.transactions
}

// TransactionsClient implements outseta.TransactionsClient.
type TransactionsClient struct {
	base *outseta.Client
}

// List retrieves one page of an account's billing transactions.
func (c *TransactionsClient) List(ctx context.Context, accountUID string, req *outseta.PageRequest) (*outseta.TransactionPage, error) {
	err := outseta.RequireArgument("list transactions", "accountUID", accountUID)
	if err != nil {
		return nil, err
	}

	page, err := listPage[outseta.Transaction](ctx, c.base, "/billing/transactions/"+url.PathEscape(accountUID), req)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	return page, nil
}

var (
	_ outseta.BillingClient      = (*BillingClient)(nil)
	_ outseta.TransactionsClient = (*TransactionsClient)(nil)
)
