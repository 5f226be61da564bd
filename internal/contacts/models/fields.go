package models

import (
	"strings"
	"time"

	dErrors "contactbook/pkg/domain-errors"
)

// BirthdayLayout is the only accepted textual form of a birthday (DD.MM.YYYY).
const BirthdayLayout = "02.01.2006"

const phoneDigits = 10

// Name identifies a contact and keys it in the AddressBook.
//
// Invariants:
//   - non-empty after trimming surrounding whitespace
type Name struct {
	value string
}

// NewName trims s and rejects an empty result.
func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Name{}, dErrors.New(dErrors.CodeValidation, "Name cannot be empty.")
	}
	return Name{value: s}, nil
}

func (n Name) String() string { return n.value }

// Phone is a ten digit number.
//
// Invariants:
//   - exactly 10 characters, all ASCII digits
type Phone struct {
	value string
}

// NewPhone accepts exactly ten ASCII digits.
func NewPhone(s string) (Phone, error) {
	if len(s) != phoneDigits || !IsDigits(s) {
		return Phone{}, dErrors.New(dErrors.CodeValidation, "Phone must have exactly 10 digits.")
	}
	return Phone{value: s}, nil
}

func (p Phone) String() string { return p.value }

// IsDigits reports whether s is non-empty and made of ASCII digits only.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Birthday is a calendar date without time of day, kept at UTC midnight.
type Birthday struct {
	date time.Time
}

// NewBirthday parses a zero padded DD.MM.YYYY date.
func NewBirthday(s string) (Birthday, error) {
	t, err := time.Parse(BirthdayLayout, s)
	if err != nil {
		return Birthday{}, dErrors.New(dErrors.CodeValidation, "Invalid date format. Use DD.MM.YYYY")
	}
	return Birthday{date: t}, nil
}

// Date returns the birthday as a UTC midnight time.
func (b Birthday) Date() time.Time { return b.date }

// String formats the birthday as DD.MM.YYYY.
func (b Birthday) String() string { return b.date.Format(BirthdayLayout) }
