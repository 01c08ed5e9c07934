package datemath

import (
	"time"
)

// Unit is a calendar unit understood by AddUnits.
type Unit int

const (
	Minute Unit = iota
	Hour
	Day
	Week
	Month
)

// LoadLocation resolves an IANA zone name. Unknown or empty names fall back
// to UTC and report false.
func LoadLocation(name string) (*time.Location, bool) {
	if name == "" {
		return time.UTC, false
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC, false
	}
	return loc, true
}

// StartOfDay returns midnight of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// At returns the instant of the wall clock hour:minute on day's calendar date
// in loc. Hours wrap mod 24 and minutes mod 60.
func At(day time.Time, hour, minute int, loc *time.Location) time.Time {
	day = day.In(loc)
	return time.Date(day.Year(), day.Month(), day.Day(), mod(hour, 24), mod(minute, 60), 0, 0, loc)
}

// ShiftDays moves a calendar day by n days, keeping it at midnight.
func ShiftDays(day time.Time, n int) time.Time {
	loc := day.Location()
	return time.Date(day.Year(), day.Month(), day.Day()+n, 0, 0, 0, 0, loc)
}

// DaysUntil returns how many days from `from` to the next `target`, 0 when
// they are the same weekday.
func DaysUntil(from, target time.Weekday) int {
	return mod(int(target)-int(from), 7)
}

// UpcomingWeekday returns the first day on or after day that falls on target.
func UpcomingWeekday(day time.Time, target time.Weekday) time.Time {
	return ShiftDays(day, DaysUntil(day.Weekday(), target))
}

// NextWeekday returns the first day strictly after day that falls on target.
func NextWeekday(day time.Time, target time.Weekday) time.Time {
	n := DaysUntil(day.Weekday(), target)
	if n == 0 {
		n = 7
	}
	return ShiftDays(day, n)
}

// NextMonday returns the Monday strictly after day.
func NextMonday(day time.Time) time.Time {
	return NextWeekday(day, time.Monday)
}

// EndOfMonth returns the last calendar day of day's month.
func EndOfMonth(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month()+1, 0, 0, 0, 0, 0, day.Location())
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AddUnits adds n units to t. Day-based units keep the wall clock in t's zone.
func AddUnits(t time.Time, n int, unit Unit) time.Time {
	switch unit {
	case Minute:
		return t.Add(time.Duration(n) * time.Minute)
	case Hour:
		return t.Add(time.Duration(n) * time.Hour)
	case Day:
		return t.AddDate(0, 0, n)
	case Week:
		return t.AddDate(0, 0, 7*n)
	case Month:
		return t.AddDate(0, n, 0)
	}
	return t
}

func mod(a, b int) int {
	return ((a % b) + b) % b
}
