// Package boltstore provides a bbolt-backed store provider.
//
// All records live in a single bucket of a single database file, which
// makes it the closest Go analog to the dbm-style database files the shelf
// idiom comes from. ticktock.Open uses this provider by default.
package boltstore

import (
	bolt "go.etcd.io/bbolt"

	"github.com/tsroten/ticktock/store"
)

var bucketName = []byte("ticktock")

// BoltStore is a store.Store backed by a single bbolt database file.
type BoltStore struct {
	db     *bolt.DB
	closed bool
}

// Open opens (creating if necessary) the database file at path.
func Open(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &BoltStore{db: db}, nil
}

// Read returns the record stored under key.
func (b *BoltStore) Read(key string) ([]byte, error) {
	if b.closed {
		return nil, store.ErrClosed
	}
	var data []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		value := tx.Bucket(bucketName).Get([]byte(key))
		if value == nil {
			return store.ErrNotFound
		}
		// The slice is only valid for the life of the transaction.
		data = make([]byte, len(value))
		copy(data, value)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Write stores data under key, replacing any existing record.
func (b *BoltStore) Write(key string, data []byte) error {
	if b.closed {
		return store.ErrClosed
	}
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), data)
	})
}

// Delete removes the record stored under key.
func (b *BoltStore) Delete(key string) error {
	if b.closed {
		return store.ErrClosed
	}
	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket.Get([]byte(key)) == nil {
			return store.ErrNotFound
		}
		return bucket.Delete([]byte(key))
	})
}

// Contains reports whether a record exists under key.
func (b *BoltStore) Contains(key string) (bool, error) {
	if b.closed {
		return false, store.ErrClosed
	}
	var found bool
	err := b.db.View(func(tx *bolt.Tx) error {
		found = tx.Bucket(bucketName).Get([]byte(key)) != nil
		return nil
	})
	return found, err
}

// Keys returns every key currently present in the store.
func (b *BoltStore) Keys() ([]string, error) {
	if b.closed {
		return nil, store.ErrClosed
	}
	var keys []string
	err := b.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

// Flush forces the database file to durable storage.
func (b *BoltStore) Flush() error {
	if b.closed {
		return store.ErrClosed
	}
	return b.db.Sync()
}

// Close releases the database handle.
func (b *BoltStore) Close() error {
	if b.closed {
		return store.ErrClosed
	}
	b.closed = true
	return b.db.Close()
}
