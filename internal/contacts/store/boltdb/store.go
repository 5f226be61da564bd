package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/boltdb/bolt"

	"contactbook/internal/contacts/models"
	"contactbook/internal/contacts/store"
	"contactbook/pkg/platform/sentinel"
)

var recordsBucket = []byte("contacts")

// Store keeps the book in a bolt database file, one key per record. Keys are
// big endian positions so a cursor walks records in insertion order.
type Store struct {
	DB *bolt.DB
}

var _ store.Snapshot = (*Store)(nil)

// Open opens (or creates) the bolt file at path. Bolt holds an exclusive file
// lock, so a second process waits up to a second and then fails.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt %s: %w", path, err)
	}
	return &Store{DB: db}, nil
}

// Close the database and release the file lock.
func (s *Store) Close() error {
	return s.DB.Close()
}

func (s *Store) Load(_ context.Context) (*models.AddressBook, error) {
	var docs []store.Document
	err := s.DB.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(recordsBucket)
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(_, v []byte) error {
			var doc store.Document
			if err := json.Unmarshal(v, &doc); err != nil {
				return fmt.Errorf("%w: %v", sentinel.ErrCorrupt, err)
			}
			docs = append(docs, doc)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("bolt load: %w", err)
	}
	return store.FromDocuments(docs)
}

// Save replaces the bucket contents in one transaction.
func (s *Store) Save(_ context.Context, book *models.AddressBook) error {
	return s.DB.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(recordsBucket); err != nil && !errors.Is(err, bolt.ErrBucketNotFound) {
			return fmt.Errorf("bolt clear: %w", err)
		}
		bucket, err := tx.CreateBucket(recordsBucket)
		if err != nil {
			return fmt.Errorf("bolt create bucket: %w", err)
		}
		for _, doc := range store.ToDocuments(book) {
			seq, err := bucket.NextSequence()
			if err != nil {
				return err
			}
			value, err := json.Marshal(doc)
			if err != nil {
				return fmt.Errorf("bolt encode %s: %w", doc.Name, err)
			}
			if err := bucket.Put(uintToBytes(seq), value); err != nil {
				return fmt.Errorf("bolt put %s: %w", doc.Name, err)
			}
		}
		return nil
	})
}

// uintToBytes returns an 8-byte big endian representation of v.
func uintToBytes(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
