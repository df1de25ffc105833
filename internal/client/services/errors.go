package services

import "errors"

// ErrLocalStore marks failures of the local fallback store. Remote
// failures are never returned; they only switch a call to the local path.
var ErrLocalStore = errors.New("local store failure")
