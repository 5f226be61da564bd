package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"contactbook/internal/contacts/models"
	"contactbook/internal/contacts/store"
)

// undefinedTable is the SQLSTATE Postgres returns for a missing relation.
const undefinedTable = "42P01"

const createTableStatement = `
  CREATE TABLE IF NOT EXISTS contacts (
    position INT PRIMARY KEY,
    name     TEXT NOT NULL UNIQUE,
    phones   TEXT[] NOT NULL DEFAULT '{}',
    birthday DATE NULL
  )`

const listStatement = `SELECT name, phones, birthday FROM contacts ORDER BY position`

const clearStatement = `DELETE FROM contacts`

const insertStatement = `
  INSERT INTO contacts (position, name, phones, birthday)
  VALUES ($1, $2, $3, $4)`

// Store persists the book in a single contacts table. Position keeps insertion
// order; Save rewrites the table in one transaction.
type Store struct {
	pool *pgxpool.Pool
}

var _ store.Snapshot = (*Store)(nil)

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// EnsureSchema creates the contacts table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, createTableStatement); err != nil {
		return fmt.Errorf("postgres: create contacts table: %w", err)
	}
	return nil
}

// Load reads every contact. A database without the contacts table loads as an
// empty book.
func (s *Store) Load(ctx context.Context) (*models.AddressBook, error) {
	rows, err := s.pool.Query(ctx, listStatement)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == undefinedTable {
			return models.NewAddressBook(), nil
		}
		return nil, fmt.Errorf("postgres: list contacts: %w", err)
	}

	docs, err := pgx.CollectRows(rows, scanDocument)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == undefinedTable {
			return models.NewAddressBook(), nil
		}
		return nil, fmt.Errorf("postgres: could not read row: %w", err)
	}
	return store.FromDocuments(docs)
}

func scanDocument(row pgx.CollectableRow) (store.Document, error) {
	var (
		doc      store.Document
		birthday pgtype.Date
	)
	if err := row.Scan(&doc.Name, &doc.Phones, &birthday); err != nil {
		return store.Document{}, err
	}
	if doc.Phones == nil {
		doc.Phones = []string{}
	}
	if birthday.Valid {
		doc.Birthday = birthday.Time.Format(models.BirthdayLayout)
	}
	return doc, nil
}

// Save replaces the table contents atomically.
func (s *Store) Save(ctx context.Context, book *models.AddressBook) error {
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, createTableStatement); err != nil {
			return fmt.Errorf("create contacts table: %w", err)
		}
		if _, err := tx.Exec(ctx, clearStatement); err != nil {
			return fmt.Errorf("clear contacts: %w", err)
		}

		batch := &pgx.Batch{}
		for i, r := range book.Records() {
			var birthday pgtype.Date
			if b, ok := r.Birthday(); ok {
				birthday = pgtype.Date{Time: b.Date(), Valid: true}
			}
			batch.Queue(insertStatement, i, r.Name(), r.PhoneNumbers(), birthday)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert contacts: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("postgres: save snapshot: %w", err)
	}
	return nil
}
