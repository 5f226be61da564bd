package models

import (
	"slices"
	"time"

	dErrors "contactbook/pkg/domain-errors"
)

// DefaultUpcomingDays is the birthday window used when none is given.
const DefaultUpcomingDays = 7

// AddressBook keys records by name and remembers the order in which names were
// first added. It is not safe for concurrent use.
type AddressBook struct {
	index   map[string]int
	records []*Record
}

func NewAddressBook(records ...*Record) *AddressBook {
	b := &AddressBook{index: make(map[string]int, len(records))}
	for _, r := range records {
		b.AddRecord(r)
	}
	return b
}

// AddRecord inserts r, or replaces the record with the same name in place.
func (b *AddressBook) AddRecord(r *Record) {
	if i, ok := b.index[r.Name()]; ok {
		b.records[i] = r
		return
	}
	b.index[r.Name()] = len(b.records)
	b.records = append(b.records, r)
}

func (b *AddressBook) Find(name string) (*Record, bool) {
	i, ok := b.index[name]
	if !ok {
		return nil, false
	}
	return b.records[i], true
}

// Delete removes the record for name. Unknown names are ignored.
func (b *AddressBook) Delete(name string) {
	i, ok := b.index[name]
	if !ok {
		return
	}
	delete(b.index, name)
	b.records = slices.Delete(b.records, i, i+1)
	for j := i; j < len(b.records); j++ {
		b.index[b.records[j].Name()] = j
	}
}

// Records returns the records in insertion order.
func (b *AddressBook) Records() []*Record {
	return slices.Clone(b.records)
}

func (b *AddressBook) Len() int { return len(b.records) }

// UpcomingBirthdays returns the records whose next birthday falls within
// [today, today+days], in insertion order.
func (b *AddressBook) UpcomingBirthdays(today time.Time, days int) ([]*Record, error) {
	if days < 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "Days must not be negative.")
	}
	var upcoming []*Record
	for _, r := range b.records {
		if n, ok := r.DaysToBirthday(today); ok && n <= days {
			upcoming = append(upcoming, r)
		}
	}
	return upcoming, nil
}
