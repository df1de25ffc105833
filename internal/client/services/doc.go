// Package services holds the client's data-access layer.
//
// DataService serves donors, blood requests and the dashboard overview.
// Every call tries the REST API first; when that fails for any reason the
// local store answers instead, and the returned Result says which one did.
package services
