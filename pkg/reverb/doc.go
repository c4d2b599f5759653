// Package reverb provides types, interfaces, and helpers for working with the
// Reverb marketplace HAL+JSON API.
//
// # Overview
//
// The reverb package defines the Client interface, its Config, the Response
// and Resource types, and the error taxonomy. A concrete client is built by
// the reverbclient package, which normalises configuration and wires the
// transport and authentication.
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/reverb-client/pkg/reverb"
//	  "github.com/fivetwenty-io/reverb-client/pkg/reverbclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := reverbclient.NewWithToken("https://reverb.com", "token")
//	  if err != nil { log.Fatal(err) }
//
//	  listing, err := cli.FindListingBySku(ctx, "THESKU")
//	  if err != nil { log.Fatal(err) }
//	  if listing == nil { return }
//
//	  _, err = listing.Update(ctx, map[string]interface{}{"title": "new title"})
//	  if err != nil { log.Fatal(err) }
//	}
//
// # Errors
//
// Only two failure classes are intercepted. HTTP 401 and 403 produce an
// *APIError of KindNotAuthorized, and HTTP 503 produces KindServiceUnavailable.
// Use IsNotAuthorized, IsServiceUnavailable or errors.Is with ErrNotAuthorized
// and ErrServiceUnavailable. Every other status is returned in the Response
// and left for the caller to inspect.
//
// # Resources
//
// A Resource wraps one fetched object. Read fields by path with Get, Lookup
// or String, follow hypermedia with Link, decode into Listing or Webhook with
// Decode, and persist changes with Update. Update does not refresh the
// wrapper, and the search endpoints may lag writes.
package reverb
