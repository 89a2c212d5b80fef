package kvstore

import (
	"context"
	"fmt"

	"agencia_maker/internal/usecase/interfaces"

	bolt "go.etcd.io/bbolt"
)

const defaultBoltBucket = "agencia_maker"

// BoltStore persists values in a single bucket of an embedded bbolt file.
type BoltStore struct {
	db     *bolt.DB
	bucket []byte
}

var _ interfaces.IKeyValueStore = (*BoltStore)(nil)

func NewBoltStore(db *bolt.DB) (*BoltStore, error) {
	s := &BoltStore{db: db, bucket: []byte(defaultBoltBucket)}
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(s.bucket)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create bolt bucket: %w", err)
	}
	return s, nil
}

func (s *BoltStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		// Bolt values are only valid for the life of the transaction.
		if v := tx.Bucket(s.bucket).Get([]byte(key)); v != nil {
			out = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return out, out != nil, nil
}

func (s *BoltStore) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(key), value)
	})
}
