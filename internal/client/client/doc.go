// Package client contains the transport side of the blood bank client.
//
// # Overview
//
// The package provides:
//  1. The Client interface: the REST API contract the data service
//     consumes (health, list/create donors, list/create requests).
//  2. HTTPClient, its JSON-over-HTTP implementation. Every call carries a
//     fresh X-Request-ID; an optional per-call timeout can be configured.
//  3. Local database bootstrap (InitDatabase, RunMigrations) that opens the
//     SQLite file behind the fallback store and applies embedded goose
//     migrations.
//
// # Error Handling
//
// Failures map onto sentinel errors for errors.Is:
//   - ErrUnavailable       connection refused, DNS failure, timeout
//   - ErrUnexpectedStatus  the server answered outside 2xx
//
// Anything else (e.g. an undecodable body) is wrapped as "api error".
//
// See Also
//
//   - Interface:  Client
//   - HTTP impl:  HTTPClient
//   - DB helpers: InitDatabase, RunMigrations
package client
