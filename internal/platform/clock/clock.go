// Package clock provides the wall-clock source used for ledger timestamps.
// All business dates are taken in a fixed UTC+5 offset regardless of the
// host's local zone.
package clock

import "time"

// Location is the fixed UTC+5 zone the restaurant operates in.
var Location = time.FixedZone("PKT", 5*60*60)

// Clock returns the current instant.
type Clock interface {
	Now() time.Time
}

// System reads the host clock and converts it to Location.
type System struct{}

func (System) Now() time.Time {
	return time.Now().In(Location)
}

// Fixed always returns the same instant. Used in tests.
type Fixed struct {
	At time.Time
}

func (f Fixed) Now() time.Time {
	return f.At.In(Location)
}

// Date returns the civil date of t as observed in Location, normalized to
// midnight UTC so that it compares equal to dates read back from storage.
func Date(t time.Time) time.Time {
	y, m, d := t.In(Location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current civil date in Location.
func Today(c Clock) time.Time {
	return Date(c.Now())
}

// CivilDate builds a calendar date value in the same normalized form as Date.
func CivilDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
