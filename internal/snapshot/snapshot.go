// Package snapshot captures the build timestamp and toolchain version exactly
// once per run and serves every later request from the memoized values.
package snapshot

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/davrd/buildstamp/internal/clock"
	"github.com/davrd/buildstamp/internal/toolchain"
)

// Instant is the UTC build timestamp, truncated to whole seconds.
type Instant struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second int
}

// InstantOf breaks a time down into calendar fields at UTC.
func InstantOf(t time.Time) Instant {
	t = t.UTC()
	return Instant{
		Year:   t.Year(),
		Month:  t.Month(),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}

func (in Instant) validate() error {
	// the zero-padded string views assume a four-digit year
	if in.Year < 0 || in.Year > 9999 {
		return fmt.Errorf("year %d is outside the supported 0..9999 range", in.Year)
	}
	return nil
}

// Source is the single source of truth for one build invocation. Construct
// one per run and share it across every rewrite site; the first request for
// each entity performs the host query, later requests observe the identical
// snapshot. A failed toolchain query is memoized and resurfaced verbatim.
type Source struct {
	clock clock.Clock
	tool  toolchain.Querier

	instantOnce sync.Once
	instant     Instant
	instantErr  error

	versionOnce sync.Once
	version     *semver.Version
	versionErr  error
}

func New(c clock.Clock, q toolchain.Querier) *Source {
	return &Source{clock: c, tool: q}
}

// Instant returns the build timestamp, sampling the clock on first call.
func (s *Source) Instant() (Instant, error) {
	s.instantOnce.Do(func() {
		in := InstantOf(s.clock.Now())
		if err := in.validate(); err != nil {
			s.instantErr = fmt.Errorf("clock read: %w", err)
			return
		}
		s.instant = in
	})
	return s.instant, s.instantErr
}

// Toolchain returns the toolchain version, running the query on first call.
func (s *Source) Toolchain(ctx context.Context) (*semver.Version, error) {
	s.versionOnce.Do(func() {
		s.version, s.versionErr = s.tool.Version(ctx)
	})
	return s.version, s.versionErr
}
