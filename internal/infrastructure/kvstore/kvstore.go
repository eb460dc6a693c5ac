package kvstore

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when the key has never been written.
var ErrKeyNotFound = errors.New("kvstore: key not found")

// Store is a minimal key-value persistence backend. The ledger keeps its
// whole record list under a single well-known key, so Get/Set is the
// entire contract.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
