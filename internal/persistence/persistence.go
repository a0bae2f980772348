// Package persistence provides a pluggable key-value snapshot store. It is
// the server-side port of the browser local-storage mirror: small JSON blobs
// written under fixed keys, read back at startup and discarded on logout.
package persistence

import (
	"context"
	"errors"
)

// ErrNotFound indicates no snapshot exists under the requested key.
var ErrNotFound = errors.New("snapshot not found")

// Store persists small JSON snapshots by key. Implementations must treat a
// missing key as ErrNotFound on Get and as success on Delete.
type Store interface {
	Put(ctx context.Context, key string, value []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}
