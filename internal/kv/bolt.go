package kv

import (
	"context"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/hashtagbbq/tableside/internal/port"
)

var boltBucket = []byte("tableside")

// Bolt stores keys in a single bbolt bucket. It is the durable driver for
// long-lived installs where the JSON file store would grow awkward.
type Bolt struct {
	db *bolt.DB
}

var _ port.KV = (*Bolt)(nil)

func OpenBolt(path string) (*Bolt, error) {
	if path == "" {
		return nil, fmt.Errorf("path is empty")
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("bolt.Open: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("tx.CreateBucketIfNotExists: %w", err)
	}

	return &Bolt{db: db}, nil
}

func (b *Bolt) Get(_ context.Context, key string) ([]byte, bool, error) {
	var (
		value []byte
		found bool
	)

	err := b.db.View(func(tx *bolt.Tx) error {
		stored := tx.Bucket(boltBucket).Get([]byte(key))
		if stored == nil {
			return nil
		}
		found = true
		value = make([]byte, len(stored))
		copy(value, stored)
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("db.View: %w", err)
	}

	return value, found, nil
}

func (b *Bolt) Set(_ context.Context, key string, value []byte) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).Put([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("db.Update: %w", err)
	}
	return nil
}

func (b *Bolt) Delete(_ context.Context, key string) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("db.Update: %w", err)
	}
	return nil
}

func (b *Bolt) Close() error {
	return b.db.Close()
}
