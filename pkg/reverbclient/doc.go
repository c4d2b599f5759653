// Package reverbclient provides the primary entry point for constructing a
// Reverb marketplace API client that implements the reverb.Client interface.
//
// It normalises and validates a reverb.Config, then wires the HTTP transport
// and authentication defined in the internal packages.
//
// Quick start
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
//
//	  // Legacy personal token, sent as X-Auth-Token.
//	  cli, err := reverbclient.NewWithToken("https://reverb.com", "token")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or an OAuth access token, sent as a bearer token.
//	  cli, err = reverbclient.NewWithOAuthToken("reverb.com", "oauth-token")
//
//	  // Or the full config.
//	  cli, err = reverbclient.New(&reverb.Config{
//	    BaseURL:        "https://sandbox.reverb.com",
//	    AuthToken:      "token",
//	    BasicAuth:      &reverb.BasicAuth{Username: "user", Password: "pass"},
//	    APIVersion:     "3.0",
//	    DefaultHeaders: map[string]string{"Accept-Language": "en"},
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  resp, err := cli.ListWebhooks(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = resp
//	}
//
// # Base URL
//
// An empty BaseURL defaults to https://reverb.com. A missing scheme becomes
// https:// and a trailing slash is dropped.
//
// # TLS and development mode
//
// For local development, you can set Config.SkipTLSVerify=true. This is gated by
// the environment variable REVERB_DEV_MODE to avoid accidental insecure usage in
// production environments.
package reverbclient
