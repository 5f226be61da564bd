// Package store defines the persistence port for the address book and the
// document shape every backend serializes.
//
// Backends live in subpackages (file, bolt, postgres, redis). Each one stores the
// whole book at once: Load at startup, Save at shutdown.
package store

import (
	"context"
	"fmt"

	"contactbook/internal/contacts/models"
	"contactbook/pkg/platform/sentinel"
)

// Snapshot loads and saves a whole address book. A missing snapshot loads as an
// empty book.
type Snapshot interface {
	Load(ctx context.Context) (*models.AddressBook, error)
	Save(ctx context.Context, book *models.AddressBook) error
}

// Document is the serialized form of one record.
type Document struct {
	Name     string   `json:"name" yaml:"name"`
	Phones   []string `json:"phones" yaml:"phones"`
	Birthday string   `json:"birthday,omitempty" yaml:"birthday,omitempty"`
}

// ToDocuments flattens the book in insertion order.
func ToDocuments(book *models.AddressBook) []Document {
	records := book.Records()
	docs := make([]Document, 0, len(records))
	for _, r := range records {
		doc := Document{Name: r.Name(), Phones: r.PhoneNumbers()}
		if b, ok := r.Birthday(); ok {
			doc.Birthday = b.String()
		}
		docs = append(docs, doc)
	}
	return docs
}

// FromDocuments rebuilds a book, validating every field again. Invalid data is
// reported as sentinel.ErrCorrupt.
func FromDocuments(docs []Document) (*models.AddressBook, error) {
	book := models.NewAddressBook()
	for i, doc := range docs {
		r, err := FromDocument(doc)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		book.AddRecord(r)
	}
	return book, nil
}

// FromDocument rebuilds a single record.
func FromDocument(doc Document) (*models.Record, error) {
	r, err := models.NewRecord(doc.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sentinel.ErrCorrupt, err)
	}
	for _, p := range doc.Phones {
		if err := r.AddPhone(p); err != nil {
			return nil, fmt.Errorf("%w: contact %s: %v", sentinel.ErrCorrupt, doc.Name, err)
		}
	}
	if doc.Birthday != "" {
		if err := r.AddBirthday(doc.Birthday); err != nil {
			return nil, fmt.Errorf("%w: contact %s: %v", sentinel.ErrCorrupt, doc.Name, err)
		}
	}
	return r, nil
}
