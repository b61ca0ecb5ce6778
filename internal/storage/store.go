// Package storage implements the durable key→string map all application
// state lives in. The canonical implementation is SQLite-backed; an
// in-memory implementation with the same contract exists for tests.
package storage

import "context"

// Store is a durable key→string map.
//
// Contract:
//   - Get returns ("", false, nil) for a missing key, never an error.
//   - Set upserts; writing an existing key overwrites its value.
//   - Delete of a missing key is a no-op.
//   - Update runs fn against a handle for which all writes apply atomically:
//     either every write in fn is persisted or none is.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string]string, error)
	Update(ctx context.Context, fn func(ctx context.Context, s Store) error) error
}
