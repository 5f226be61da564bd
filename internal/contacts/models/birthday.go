package models

import "time"

const day = 24 * time.Hour

// NextOccurrence returns the first date on or after today's date that falls on
// the birthday's month and day. A 29 February birthday falls on 28 February in
// non-leap years.
func (b Birthday) NextOccurrence(today time.Time) time.Time {
	t := dateOf(today)
	next := b.occurrenceIn(t.Year())
	if next.Before(t) {
		next = b.occurrenceIn(t.Year() + 1)
	}
	return next
}

// DaysUntil returns the number of whole days from today's date to the next
// occurrence. Zero means the birthday is today.
func (b Birthday) DaysUntil(today time.Time) int {
	return int(b.NextOccurrence(today).Sub(dateOf(today)) / day)
}

func (b Birthday) occurrenceIn(year int) time.Time {
	month, d := b.date.Month(), b.date.Day()
	if month == time.February && d == 29 && !isLeap(year) {
		d = 28
	}
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// dateOf drops the time of day, keeping the calendar date as seen in t's
// location.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
