package pricing

import "time"

// DateOf truncates t to its calendar date in UTC. All pricing works on
// whole calendar days; time-of-day and zone never influence a quote.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// StayRange is a half-open [checkIn, checkOut) range of calendar nights.
// The night of checkOut itself is never billed.
type StayRange struct {
	checkIn  time.Time
	checkOut time.Time
}

// NewStayRange accepts any pair of instants, including degenerate ones.
// A checkOut at or before checkIn yields a zero-night range rather than
// an error; rejecting out-of-order dates is a form-layer concern.
func NewStayRange(checkIn, checkOut time.Time) StayRange {
	return StayRange{
		checkIn:  DateOf(checkIn),
		checkOut: DateOf(checkOut),
	}
}

func (s StayRange) CheckIn() time.Time  { return s.checkIn }
func (s StayRange) CheckOut() time.Time { return s.checkOut }

// Nights is the number of billable nights, never negative.
func (s StayRange) Nights() int {
	if !s.checkOut.After(s.checkIn) {
		return 0
	}
	return int(s.checkOut.Sub(s.checkIn).Hours() / 24)
}

// Overlaps reports whether two stays share at least one night.
func (s StayRange) Overlaps(other StayRange) bool {
	return s.checkIn.Before(other.checkOut) && other.checkIn.Before(s.checkOut)
}

// Contains reports whether the given calendar date is a billed night.
func (s StayRange) Contains(date time.Time) bool {
	d := DateOf(date)
	return !d.Before(s.checkIn) && d.Before(s.checkOut)
}
