package snapshot

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/google/go-cmp/cmp"

	"github.com/davrd/buildstamp/internal/clock"
)

type fakeQuerier struct {
	calls   atomic.Int64
	version *semver.Version
	err     error
}

func (q *fakeQuerier) Version(ctx context.Context) (*semver.Version, error) {
	q.calls.Add(1)
	return q.version, q.err
}

type countingClock struct {
	calls   atomic.Int64
	instant time.Time
}

func (c *countingClock) Now() time.Time {
	c.calls.Add(1)
	return c.instant
}

func TestSourceInstant(t *testing.T) {
	t.Run("CapturedOnce", func(t *testing.T) {
		c := &countingClock{instant: time.Date(2024, time.March, 5, 14, 8, 31, 999_000_000, time.UTC)}
		s := New(c, &fakeQuerier{})

		first, err := s.Instant()
		if err != nil {
			t.Fatalf("Instant error: %s", err)
		}
		second, err := s.Instant()
		if err != nil {
			t.Fatalf("Instant error: %s", err)
		}
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("captures differ (-first +second):\n%s", diff)
		}
		if c.calls.Load() != 1 {
			t.Errorf("clock reads wants 1 but was %d", c.calls.Load())
		}

		want := Instant{Year: 2024, Month: time.March, Day: 5, Hour: 14, Minute: 8, Second: 31}
		if diff := cmp.Diff(want, first); diff != "" {
			t.Errorf("instant mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("NormalizedToUTC", func(t *testing.T) {
		zone := time.FixedZone("UTC+9", 9*60*60)
		c := &countingClock{instant: time.Date(2024, time.January, 1, 3, 0, 0, 0, zone)}
		s := New(c, &fakeQuerier{})

		in, err := s.Instant()
		if err != nil {
			t.Fatalf("Instant error: %s", err)
		}
		if in.Year != 2023 || in.Month != time.December || in.Day != 31 || in.Hour != 18 {
			t.Errorf("instant wants 2023-12-31T18 but was %+v", in)
		}
	})

	t.Run("UnrepresentableReading", func(t *testing.T) {
		c := &countingClock{instant: time.Date(12024, time.March, 5, 0, 0, 0, 0, time.UTC)}
		s := New(c, &fakeQuerier{})

		_, err := s.Instant()
		if err == nil {
			t.Fatalf("Instant wants error but was nil")
		}
		_, again := s.Instant()
		if !errors.Is(again, err) && again.Error() != err.Error() {
			t.Errorf("memoized error wants %q but was %q", err, again)
		}
		if c.calls.Load() != 1 {
			t.Errorf("clock reads wants 1 but was %d", c.calls.Load())
		}
	})

	t.Run("Bound", func(t *testing.T) {
		before := time.Now().UTC().Add(-time.Second)
		s := New(clock.New(), &fakeQuerier{})

		in, err := s.Instant()
		if err != nil {
			t.Fatalf("Instant error: %s", err)
		}
		after := time.Now().UTC().Add(time.Second)

		captured := time.Date(in.Year, in.Month, in.Day, in.Hour, in.Minute, in.Second, 0, time.UTC)
		if captured.Before(before) {
			t.Errorf("captured %s wants to be after %s", captured, before)
		}
		if captured.After(after) {
			t.Errorf("captured %s wants to be before %s", captured, after)
		}
	})
}

func TestSourceToolchain(t *testing.T) {
	ctx := context.Background()

	t.Run("QueriedOnce", func(t *testing.T) {
		q := &fakeQuerier{version: semver.MustParse("1.78.0")}
		s := New(&clock.Fake{}, q)

		first, err := s.Toolchain(ctx)
		if err != nil {
			t.Fatalf("Toolchain error: %s", err)
		}
		second, err := s.Toolchain(ctx)
		if err != nil {
			t.Fatalf("Toolchain error: %s", err)
		}
		if first != second {
			t.Errorf("captures want the identical value but were %p and %p", first, second)
		}
		if q.calls.Load() != 1 {
			t.Errorf("queries wants 1 but was %d", q.calls.Load())
		}
	})

	t.Run("ErrorMemoized", func(t *testing.T) {
		queryErr := errors.New("version command not found")
		q := &fakeQuerier{err: queryErr}
		s := New(&clock.Fake{}, q)

		_, err := s.Toolchain(ctx)
		if !errors.Is(err, queryErr) {
			t.Fatalf("error wants %q but was %q", queryErr, err)
		}
		_, err = s.Toolchain(ctx)
		if !errors.Is(err, queryErr) {
			t.Fatalf("resurfaced error wants %q but was %q", queryErr, err)
		}
		if q.calls.Load() != 1 {
			t.Errorf("queries wants 1 (never retried) but was %d", q.calls.Load())
		}
	})
}

func TestSourceConcurrentFirstAccess(t *testing.T) {
	c := &countingClock{instant: time.Date(2024, time.March, 5, 14, 8, 31, 0, time.UTC)}
	q := &fakeQuerier{version: semver.MustParse("1.78.0")}
	s := New(c, q)
	ctx := context.Background()

	const sites = 64
	instants := make([]Instant, sites)
	versions := make([]*semver.Version, sites)

	var wg sync.WaitGroup
	for i := 0; i < sites; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			in, err := s.Instant()
			if err != nil {
				t.Errorf("Instant error: %s", err)
				return
			}
			v, err := s.Toolchain(ctx)
			if err != nil {
				t.Errorf("Toolchain error: %s", err)
				return
			}
			instants[i] = in
			versions[i] = v
		}()
	}
	wg.Wait()

	if c.calls.Load() != 1 {
		t.Errorf("clock reads wants 1 but was %d", c.calls.Load())
	}
	if q.calls.Load() != 1 {
		t.Errorf("queries wants 1 but was %d", q.calls.Load())
	}
	for i := 1; i < sites; i++ {
		if instants[i] != instants[0] {
			t.Fatalf("instant %d wants %+v but was %+v", i, instants[0], instants[i])
		}
		if versions[i] != versions[0] {
			t.Fatalf("version %d wants the identical snapshot", i)
		}
	}
}
