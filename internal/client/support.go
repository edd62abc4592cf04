package client

import "github.com/hamadhassan3/outseta-client-sub001/pkg/outseta"

// SupportClient implements outseta.SupportClient.
type SupportClient struct {
	cases *ResourceClient[outseta.Case]
}

// NewSupportClient creates a support client on base.
func NewSupportClient(base *outseta.Client) *SupportClient {
	return &SupportClient{
		cases: NewResourceClient[outseta.Case](base, "/support/cases", "case"),
	}
}

// Cases returns the cases client.
func (c *SupportClient) Cases() outseta.CasesClient {
	return c.cases
}

var _ outseta.SupportClient = (*SupportClient)(nil)
