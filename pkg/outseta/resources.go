package outseta

import "context"

// AuthClient issues access tokens.
type AuthClient interface {
	// GetAccessToken exchanges credentials for a token. The password may be
	// empty only when the client authenticates with an API key, in which
	// case the token is issued for username without a password.
	GetAccessToken(ctx context.Context, username, password string) (*AuthToken, error)
}

// AccountsClient defines operations for CRM accounts.
type AccountsClient interface {
	List(ctx context.Context, req *PageRequest) (*AccountPage, error)
	Get(ctx context.Context, uid string) (*Account, error)
	Create(ctx context.Context, account *Account) (*Account, error)
	Update(ctx context.Context, uid string, account *Account) (*Account, error)
	Delete(ctx context.Context, uid string) error
}

// PeopleClient defines operations for CRM people.
type PeopleClient interface {
	List(ctx context.Context, req *PageRequest) (*PersonPage, error)
	Get(ctx context.Context, uid string) (*Person, error)
	Create(ctx context.Context, person *Person) (*Person, error)
	Update(ctx context.Context, uid string, person *Person) (*Person, error)
	Delete(ctx context.Context, uid string) error
}

// ActivitiesClient defines operations for CRM activities.
type ActivitiesClient interface {
	List(ctx context.Context, req *PageRequest) (*ActivityPage, error)
}

// CRMClient groups the CRM resources.
type CRMClient interface {
	Accounts() AccountsClient
	People() PeopleClient
	Activities() ActivitiesClient
}

// PlansClient defines operations for billing plans.
type PlansClient interface {
	List(ctx context.Context, req *PageRequest) (*PlanPage, error)
	Get(ctx context.Context, uid string) (*Plan, error)
}

// SubscriptionsClient defines operations for billing subscriptions.
type SubscriptionsClient interface {
	List(ctx context.Context, req *PageRequest) (*SubscriptionPage, error)
	Get(ctx context.Context, uid string) (*Subscription, error)
}

// TransactionsClient defines operations for an account's billing transactions.
type TransactionsClient interface {
	List(ctx context.Context, accountUID string, req *PageRequest) (*TransactionPage, error)
}

// BillingClient groups the billing resources.
type BillingClient interface {
	Plans() PlansClient
	Subscriptions() SubscriptionsClient
	Transactions() TransactionsClient
}

// CasesClient defines operations for support cases.
type CasesClient interface {
	List(ctx context.Context, req *PageRequest) (*CasePage, error)
	Get(ctx context.Context, uid string) (*Case, error)
	Create(ctx context.Context, supportCase *Case) (*Case, error)
}

// SupportClient groups the support resources.
type SupportClient interface {
	Cases() CasesClient
}

// EmailListsClient defines operations for marketing email lists.
type EmailListsClient interface {
	List(ctx context.Context, req *PageRequest) (*EmailListPage, error)
	Get(ctx context.Context, uid string) (*EmailList, error)
	Subscribe(ctx context.Context, listUID string, subscription *EmailListSubscription) error
	Unsubscribe(ctx context.Context, listUID, personUID string) error
}

// MarketingClient groups the marketing resources.
type MarketingClient interface {
	EmailLists() EmailListsClient
}

// ProfileClient reads and updates the signed-in person.
type ProfileClient interface {
	Get(ctx context.Context) (*Person, error)
	Update(ctx context.Context, person *Person) (*Person, error)
}
