// Package cli provides the interactive blood bank command-line client.
//
// It wires configuration, the local fallback store, the API client and the
// data service into a REPL. Anyone can register as a donor or file a blood
// request; the dashboard commands (donors, requests, stats, refresh, reset)
// need an admin login. A background watcher probes the API and switches the
// prompt between online and offline.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
