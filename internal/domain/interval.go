package domain

import "time"

// Interval represents a half-open [Start, End) time span proposed for booking
type Interval struct {
	Start time.Time
	End   time.Time
}

// IsValid returns true if the interval has a positive duration
func (i Interval) IsValid() bool {
	return !i.Start.IsZero() && i.End.After(i.Start)
}

// Duration returns the length of the interval
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Overlaps сообщает, пересекаются ли два интервала.
// Используются строгие неравенства: интервалы, которые только касаются
// границами (конец одного равен началу другого), пересечением не считаются,
// поэтому записи "впритык" допустимы.
//
// Примеры:
// - [11:30, 12:00) и [11:20, 11:40) → пересекаются (11:30-11:40)
// - [11:30, 12:00) и [11:00, 11:30) → не пересекаются (граничат)
// - [11:30, 12:00) и [12:00, 12:30) → не пересекаются (граничат)
func (i Interval) Overlaps(other Interval) bool {
	return other.Start.Before(i.End) && other.End.After(i.Start)
}
