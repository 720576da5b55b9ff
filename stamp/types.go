package stamp

import (
	"fmt"
	"time"
)

// Date is a calendar date in UTC.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// TimeOfDay is a wall-clock time in UTC, 24-hour, whole seconds.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

func NewDate(year int, month time.Month, day int) (Date, error) {
	if month < time.January || month > time.December {
		return Date{}, fmt.Errorf("month must be in 1..12 but was %d", int(month))
	}
	if last := lastDay(year, month); day < 1 || day > last {
		return Date{}, fmt.Errorf("day must be in 1..%d for %s %d but was %d", last, month, year, day)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// MustDate is NewDate for field values already known to be valid, such as the
// ones the buildstamp command splices in. It panics on invalid fields.
func MustDate(year int, month time.Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(fmt.Sprintf("stamp: invalid date: %s", err))
	}
	return d
}

func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("hour must be in 0..23 but was %d", hour)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("minute must be in 0..59 but was %d", minute)
	}
	if second < 0 || second > 59 {
		return TimeOfDay{}, fmt.Errorf("second must be in 0..59 but was %d", second)
	}
	return TimeOfDay{Hour: hour, Minute: minute, Second: second}, nil
}

// MustTimeOfDay is NewTimeOfDay for field values already known to be valid.
// It panics on invalid fields.
func MustTimeOfDay(hour, minute, second int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute, second)
	if err != nil {
		panic(fmt.Sprintf("stamp: invalid time: %s", err))
	}
	return t
}

// String returns the date as "YYYY-MM-DD".
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// String returns the time as "HH:MM:SS".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// At combines the date with a time of day at UTC.
func (d Date) At(t TimeOfDay) time.Time {
	return time.Date(d.Year, d.Month, d.Day, t.Hour, t.Minute, t.Second, 0, time.UTC)
}

func lastDay(year int, month time.Month) int {
	// day zero of the next month normalizes to the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
