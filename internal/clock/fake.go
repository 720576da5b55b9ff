package clock

import "time"

// Fake is a Clock pinned to a fixed instant, for tests.
type Fake struct {
	Instant time.Time
}

var _ Clock = (*Fake)(nil)

func (f *Fake) Now() time.Time {
	return f.Instant
}
