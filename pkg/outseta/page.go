package outseta

// Metadata describes one page's position within the full result set.
type Metadata struct {
	Limit  int `json:"limit"  yaml:"limit"`
	Offset int `json:"offset" yaml:"offset"`
	Total  int `json:"total"  yaml:"total"`
}

// ItemPage represents a decoded {metadata, items} list response.
type ItemPage[T any] struct {
	Metadata Metadata `json:"metadata" yaml:"metadata"`
	Items    []T      `json:"items"    yaml:"items"`
}

// Len returns the number of items on the page.
func (p *ItemPage[T]) Len() int {
	if p == nil {
		return 0
	}

	return len(p.Items)
}

// IsEmpty reports whether the page carries no items.
func (p *ItemPage[T]) IsEmpty() bool {
	return p.Len() == 0
}

// AccountPage represents a page of Account resources.
type AccountPage = ItemPage[Account]

// PersonPage represents a page of Person resources.
type PersonPage = ItemPage[Person]

// ActivityPage represents a page of Activity resources.
type ActivityPage = ItemPage[Activity]

// PlanPage represents a page of Plan resources.
type PlanPage = ItemPage[Plan]

// SubscriptionPage represents a page of Subscription resources.
type SubscriptionPage = ItemPage[Subscription]

// TransactionPage represents a page of Transaction resources.
type TransactionPage = ItemPage[Transaction]

// CasePage represents a page of Case resources.
type CasePage = ItemPage[Case]

// EmailListPage represents a page of EmailList resources.
type EmailListPage = ItemPage[EmailList]
