// Package outseta provides the types, interfaces, and request pipeline for
// working with the Outseta REST API.
//
// # Overview
//
// The outseta package defines the domain types (Account, Person, Plan,
// Subscription, ...), the endpoint client interfaces (CRMClient,
// BillingClient, ...) and the shared Client every endpoint client is built
// on. Concrete endpoint clients are constructed by the outsetaclient
// package, which wires the JSON serializer and the HTTP transport. Most
// consumers should import outsetaclient and interact with the interfaces
// declared here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/hamadhassan3/outseta-client-sub001/pkg/outseta"
//	  "github.com/hamadhassan3/outseta-client-sub001/pkg/outsetaclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  crm, err := outsetaclient.NewCRM(&outsetaclient.Config{
//	    Domain:    "acme",
//	    APIKey:    "key",
//	    APISecret: "secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  req, err := outseta.NewPageRequest().WithPageSize(50).Build()
//	  if err != nil { log.Fatal(err) }
//
//	  accounts, err := crm.Accounts().List(ctx, req)
//	  if err != nil { log.Fatal(err) }
//	  _ = accounts
//	}
//
// # Building clients
//
// A ClientBuilder is created for a Family, the policy of one endpoint
// group. Families narrow which auth mode is legal: AuthFamily never takes
// an access token, ProfileFamily only takes one. Settings a family never
// allows are refused as soon as they are set; everything else is checked by
// Build, which fails with a KindClientBuild error naming the offending
// setting.
//
// # Pagination
//
// List endpoints take a PageRequest and return an ItemPage. PageRequest
// validates its fields when built and encodes them with BuildParams. The
// remote API calls the page number "offset" and takes the sort direction
// as a " desc" suffix of the orderby field; both are encoded that way.
//
//	it := outseta.NewPageIterator(ctx, crm.Accounts().List, req, nil)
//	for it.HasNext() {
//	  account, err := it.Next()
//	  if err != nil { break }
//	  _ = account
//	}
//
// or fetch all results at once:
//
//	all, err := outseta.FetchAllPages(ctx, crm.Accounts().List, req, nil)
//
// # Errors
//
// Every error returned by the package is an *Error tagged with an
// ErrorKind. Match kinds with errors.Is against the sentinels (ErrBadRequest,
// ErrFailed, ...) or with KindOf. Response errors carry the HTTP status and
// the raw body; ParseAPIErrorBody decodes the body when the API sent a
// machine-readable reason. Nothing is retried.
package outseta
