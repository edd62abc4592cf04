// Package outsetaclient provides the primary entry point for constructing
// Outseta API clients that implement the interfaces of package outseta.
//
// It wires configuration, the HTTP transport and the JSON serializer onto an
// outseta.ClientBuilder for each endpoint family. Most applications call one
// of the family constructors:
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/hamadhassan3/outseta-client-sub001/pkg/outsetaclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cfg := &outsetaclient.Config{Domain: "acme", APIKey: "key", APISecret: "secret"}
//
//	  auth, err := outsetaclient.NewAuth(cfg)
//	  if err != nil { log.Fatal(err) }
//
//	  // With an API key the password may be empty.
//	  token, err := auth.GetAccessToken(ctx, "jane@example.com", "")
//	  if err != nil { log.Fatal(err) }
//
//	  profile, err := outsetaclient.NewProfile(&outsetaclient.Config{
//	    Domain:      "acme",
//	    AccessToken: token.AccessToken,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  me, err := profile.Get(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = me
//	}
//
// NewBuilder exposes the preloaded builder for callers that need to swap
// the transport or serializer, e.g. in tests.
package outsetaclient
