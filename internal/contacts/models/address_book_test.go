package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"contactbook/internal/contacts/models"
	dErrors "contactbook/pkg/domain-errors"
)

type AddressBookSuite struct {
	suite.Suite
	book  *models.AddressBook
	today time.Time
}

func TestAddressBookSuite(t *testing.T) {
	suite.Run(t, new(AddressBookSuite))
}

func (s *AddressBookSuite) SetupTest() {
	s.book = models.NewAddressBook()
	s.today = time.Date(2026, time.October, 19, 8, 0, 0, 0, time.UTC)
}

func (s *AddressBookSuite) newRecord(name, birthday string) *models.Record {
	r, err := models.NewRecord(name)
	s.Require().NoError(err)
	if birthday != "" {
		s.Require().NoError(r.AddBirthday(birthday))
	}
	return r
}

func names(records []*models.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name()
	}
	return out
}

func (s *AddressBookSuite) TestAddAndFind() {
	s.Run("finds added record", func() {
		r := s.newRecord("Alice", "")
		s.book.AddRecord(r)

		found, ok := s.book.Find("Alice")
		s.Require().True(ok)
		s.Same(r, found)
	})

	s.Run("unknown name is absent", func() {
		_, ok := s.book.Find("Nobody")
		s.False(ok)
	})

	s.Run("overwrite keeps the original position", func() {
		s.book.AddRecord(s.newRecord("Bob", ""))
		s.book.AddRecord(s.newRecord("Carol", ""))
		replacement := s.newRecord("Alice", "01.01.2000")
		s.book.AddRecord(replacement)

		s.Equal([]string{"Alice", "Bob", "Carol"}, names(s.book.Records()))
		found, _ := s.book.Find("Alice")
		s.Same(replacement, found)
		s.Equal(3, s.book.Len())
	})
}

func (s *AddressBookSuite) TestDelete() {
	s.book = models.NewAddressBook(
		s.newRecord("Alice", ""),
		s.newRecord("Bob", ""),
		s.newRecord("Carol", ""),
	)

	s.Run("removes and keeps remaining order", func() {
		s.book.Delete("Alice")
		s.Equal([]string{"Bob", "Carol"}, names(s.book.Records()))

		_, ok := s.book.Find("Alice")
		s.False(ok)
		carol, ok := s.book.Find("Carol")
		s.Require().True(ok)
		s.Equal("Carol", carol.Name())
	})

	s.Run("unknown name is a no-op", func() {
		s.book.Delete("Nobody")
		s.Equal(2, s.book.Len())
	})

	s.Run("re-added name goes to the end", func() {
		s.book.AddRecord(s.newRecord("Alice", ""))
		s.Equal([]string{"Bob", "Carol", "Alice"}, names(s.book.Records()))
	})
}

func (s *AddressBookSuite) TestUpcomingBirthdays() {
	s.book = models.NewAddressBook(
		s.newRecord("Later", "30.10.1990"),
		s.newRecord("Today", "19.10.1985"),
		s.newRecord("NoBirthday", ""),
		s.newRecord("Week", "26.10.2001"),
		s.newRecord("Passed", "18.10.1970"),
		s.newRecord("NewYear", "01.01.2000"),
	)

	s.Run("zero days returns only today's birthdays", func() {
		got, err := s.book.UpcomingBirthdays(s.today, 0)
		s.Require().NoError(err)
		s.Equal([]string{"Today"}, names(got))
	})

	s.Run("window is inclusive and keeps insertion order", func() {
		got, err := s.book.UpcomingBirthdays(s.today, models.DefaultUpcomingDays)
		s.Require().NoError(err)
		s.Equal([]string{"Today", "Week"}, names(got))
	})

	s.Run("passed birthdays roll into next year", func() {
		got, err := s.book.UpcomingBirthdays(s.today, 364)
		s.Require().NoError(err)
		s.Equal([]string{"Later", "Today", "Week", "Passed", "NewYear"}, names(got))
	})

	s.Run("a year window includes new year birthdays", func() {
		got, err := s.book.UpcomingBirthdays(s.today, 365)
		s.Require().NoError(err)
		s.Contains(names(got), "NewYear")
	})

	s.Run("negative window is rejected", func() {
		_, err := s.book.UpcomingBirthdays(s.today, -1)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("empty book has none", func() {
		got, err := models.NewAddressBook().UpcomingBirthdays(s.today, 365)
		s.Require().NoError(err)
		s.Empty(got)
	})
}
