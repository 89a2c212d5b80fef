package interfaces

import "context"

// IKeyValueStore is the durable byte store the repositories sit on.
//
// Every collection (users, print jobs, conversations) is kept as one JSON
// document under a single key. Implementations only need last-writer-wins
// semantics; per-collection serialization is done by the repositories.
type IKeyValueStore interface {
	// Get returns found=false (and no error) when the key does not exist.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Put(ctx context.Context, key string, value []byte) error
}
