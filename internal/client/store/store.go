// Package store provides the persistent key-value store backing the client
// session: the Go analogue of the browser's local storage. Values survive
// restarts and are removed only explicitly.
package store

import "context"

// Store is a persistent key-value collaborator with get/set/remove
// semantics. A missing key reads as (nil, nil), not an error.
//
// SetAll writes several keys as one unit; implementations backed by a
// transactional medium must make the write atomic, so related records
// (such as a session token and its user) never end up half-written.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetAll(ctx context.Context, values map[string][]byte) error
	Delete(ctx context.Context, key string) error
}
