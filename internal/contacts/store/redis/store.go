package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"contactbook/internal/contacts/models"
	"contactbook/internal/contacts/store"
	"contactbook/pkg/platform/sentinel"
)

// DefaultKey is the list key used when none is configured.
const DefaultKey = "contactbook:records"

// Store keeps the book as a Redis list of JSON documents under one key. List
// order is insertion order.
type Store struct {
	client redis.Cmdable
	key    string
}

var _ store.Snapshot = (*Store)(nil)

func New(client redis.Cmdable, key string) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{client: client, key: key}
}

// Load reads the list. A missing key loads as an empty book.
func (s *Store) Load(ctx context.Context) (*models.AddressBook, error) {
	values, err := s.client.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis: read %s: %w", s.key, err)
	}
	docs := make([]store.Document, 0, len(values))
	for i, v := range values {
		var doc store.Document
		if err := json.Unmarshal([]byte(v), &doc); err != nil {
			return nil, fmt.Errorf("redis: entry %d of %s: %w: %v", i, s.key, sentinel.ErrCorrupt, err)
		}
		docs = append(docs, doc)
	}
	return store.FromDocuments(docs)
}

// Save replaces the list in a single MULTI/EXEC.
func (s *Store) Save(ctx context.Context, book *models.AddressBook) error {
	docs := store.ToDocuments(book)
	values := make([]any, 0, len(docs))
	for _, doc := range docs {
		b, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("redis: encode %s: %w", doc.Name, err)
		}
		values = append(values, string(b))
	}

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.key)
		if len(values) > 0 {
			pipe.RPush(ctx, s.key, values...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis: write %s: %w", s.key, err)
	}
	return nil
}
