// Package common contains small constants and helpers shared across the
// client packages.
package common

// RequestIDHeaderName is the HTTP header carrying the per-call correlation
// id on outbound API requests.
const RequestIDHeaderName = "X-Request-ID"

