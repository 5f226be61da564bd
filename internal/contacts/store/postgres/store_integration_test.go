//go:build integration

package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"contactbook/internal/contacts/models"
	"contactbook/internal/contacts/store"
	"contactbook/internal/contacts/store/postgres"
	"contactbook/pkg/platform/sentinel"
	"contactbook/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *postgres.Store
	ctx      context.Context
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.store = postgres.New(s.postgres.Pool)
	s.ctx = context.Background()
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.DropTables(s.ctx, "contacts"))
}

func (s *PostgresStoreSuite) newRecord(name string, phones []string, birthday string) *models.Record {
	r, err := models.NewRecord(name)
	s.Require().NoError(err)
	for _, p := range phones {
		s.Require().NoError(r.AddPhone(p))
	}
	if birthday != "" {
		s.Require().NoError(r.AddBirthday(birthday))
	}
	return r
}

func (s *PostgresStoreSuite) TestMissingTableLoadsEmptyBook() {
	book, err := s.store.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, book.Len())
}

func (s *PostgresStoreSuite) TestRoundTrip() {
	book := models.NewAddressBook(
		s.newRecord("Alice", []string{"0501234567", "0509876543"}, "29.02.2000"),
		s.newRecord("Bob", []string{"0671112233"}, ""),
		s.newRecord("Carol", nil, "31.12.1999"),
	)
	s.Require().NoError(s.store.Save(s.ctx, book))

	loaded, err := s.store.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(store.ToDocuments(book), store.ToDocuments(loaded))
}

func (s *PostgresStoreSuite) TestSaveReplacesTable() {
	s.Require().NoError(s.store.EnsureSchema(s.ctx))
	s.Require().NoError(s.store.Save(s.ctx, models.NewAddressBook(
		s.newRecord("A", []string{"0501234567"}, ""),
		s.newRecord("B", nil, ""),
	)))
	s.Require().NoError(s.store.Save(s.ctx, models.NewAddressBook(
		s.newRecord("B", nil, "01.01.2000"),
	)))

	loaded, err := s.store.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal([]store.Document{{Name: "B", Phones: []string{}, Birthday: "01.01.2000"}}, store.ToDocuments(loaded))
}

func (s *PostgresStoreSuite) TestInvalidRowIsCorrupt() {
	s.Require().NoError(s.store.EnsureSchema(s.ctx))
	_, err := s.postgres.Pool.Exec(s.ctx,
		`INSERT INTO contacts (position, name, phones) VALUES (0, 'Eve', ARRAY['12'])`)
	s.Require().NoError(err)

	_, err = s.store.Load(s.ctx)
	s.Require().Error(err)
	s.ErrorIs(err, sentinel.ErrCorrupt)
}
