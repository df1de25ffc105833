// Package store provides the local fallback store: two named slots, one per
// record kind, each holding a serialized, newest-first collection.
//
// The store deals in raw bytes; encoding records is up to the caller.
//
// Implementations
//
//   - SQLiteStore   durable, backed by the "slots" table (see migrations)
//   - MemoryStore   process-local map, for tests and throwaway sessions
//
// Both run Update as one atomic read-modify-write.
package store
