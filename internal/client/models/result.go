package models

// Source tells where a result came from.
type Source string

const (
	SourceRemote Source = "remote"
	SourceLocal  Source = "local"
)

// Result pairs data with the source that produced it, so callers can tell
// a server answer from the local fallback without probing again.
type Result[T any] struct {
	Source Source
	Data   T
}

// Remote wraps data fetched from the API.
func Remote[T any](data T) Result[T] {
	return Result[T]{Source: SourceRemote, Data: data}
}

// Local wraps data served from the local store.
func Local[T any](data T) Result[T] {
	return Result[T]{Source: SourceLocal, Data: data}
}

// IsLocal reports whether the remote call failed and local data was used.
func (r Result[T]) IsLocal() bool {
	return r.Source == SourceLocal
}
