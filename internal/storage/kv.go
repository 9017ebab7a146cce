package storage

import "context"

// Store is the persistent key/value layer under the session-scoped cart and
// wishlist stores. Values are JSON-serialized. Set returns only once the
// value is durable; a failed write is reported, never silently dropped.
type Store interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Remove(ctx context.Context, key string) error
	Close() error
}

const (
	CartRecord     = "cart"
	WishlistRecord = "wishlist"
)

// Key builds the well-known record key for one shopper session.
func Key(sessionID, record string) string {
	return "session:" + sessionID + ":" + record
}
