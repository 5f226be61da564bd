package models

import (
	"strings"
	"time"

	dErrors "contactbook/pkg/domain-errors"
)

// Record is one contact.
//
// Invariants:
//   - Name is immutable after construction
//   - every stored Phone passed NewPhone; duplicates are allowed
//   - at most one Birthday
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord returns a record with a validated name and no phones or birthday.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

func (r *Record) Name() string { return r.name.String() }

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []Phone {
	return append([]Phone(nil), r.phones...)
}

// PhoneNumbers returns the phone values as strings in insertion order.
func (r *Record) PhoneNumbers() []string {
	out := make([]string, len(r.phones))
	for i, p := range r.phones {
		out[i] = p.String()
	}
	return out
}

// Birthday returns the birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

func (r *Record) AddPhone(phone string) error {
	p, err := NewPhone(phone)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone drops every phone equal to phone. Absent phones are ignored.
func (r *Record) RemovePhone(phone string) {
	kept := r.phones[:0]
	for _, p := range r.phones {
		if p.value != phone {
			kept = append(kept, p)
		}
	}
	r.phones = kept
}

// EditPhone replaces the first phone equal to oldPhone with newPhone.
// newPhone is validated first; a missing oldPhone is reported as not found and
// leaves the list untouched.
func (r *Record) EditPhone(oldPhone, newPhone string) error {
	p, err := NewPhone(newPhone)
	if err != nil {
		return err
	}
	for i := range r.phones {
		if r.phones[i].value == oldPhone {
			r.phones[i] = p
			return nil
		}
	}
	return dErrors.Newf(dErrors.CodeNotFound, "Phone %s not found for contact %s.", oldPhone, r.Name())
}

// AddBirthday sets or replaces the birthday.
func (r *Record) AddBirthday(birthday string) error {
	b, err := NewBirthday(birthday)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// DaysToBirthday returns the days from today to the next birthday, or false if
// no birthday is set.
func (r *Record) DaysToBirthday(today time.Time) (int, bool) {
	if r.birthday == nil {
		return 0, false
	}
	return r.birthday.DaysUntil(today), true
}

func (r *Record) String() string {
	birthday := "No birthday"
	if r.birthday != nil {
		birthday = r.birthday.String()
	}
	return "Contact name: " + r.Name() +
		", phones: " + strings.Join(r.PhoneNumbers(), ", ") +
		", birthday: " + birthday
}
