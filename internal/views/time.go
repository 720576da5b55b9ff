package views

import (
	"time"

	"github.com/davrd/buildstamp/internal/snapshot"
	"github.com/davrd/buildstamp/stamp"
)

func Date(in snapshot.Instant) stamp.Date {
	return stamp.Date{Year: in.Year, Month: in.Month, Day: in.Day}
}

func TimeOfDay(in snapshot.Instant) stamp.TimeOfDay {
	return stamp.TimeOfDay{Hour: in.Hour, Minute: in.Minute, Second: in.Second}
}

func DateTime(in snapshot.Instant) time.Time {
	return Date(in).At(TimeOfDay(in))
}

// DateString returns "YYYY-MM-DD". The date-only and combined views share the
// same formatter, so they render the captured fields identically.
func DateString(in snapshot.Instant) string {
	return Date(in).String()
}

// TimeString returns "HH:MM:SS".
func TimeString(in snapshot.Instant) string {
	return TimeOfDay(in).String()
}

// DateTimeString returns "YYYY-MM-DDTHH:MM:SSZ", by construction equal to
// DateString + "T" + TimeString + "Z".
func DateTimeString(in snapshot.Instant) string {
	return DateString(in) + "T" + TimeString(in) + "Z"
}

// UnixSeconds returns seconds since the UNIX epoch, derived from the same
// calendar fields as DateTime rather than re-sampled from the clock.
func UnixSeconds(in snapshot.Instant) int64 {
	return DateTime(in).Unix()
}
