package toolchain

import (
	"context"
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	valid := []struct {
		name string
		raw  string
		want string
	}{
		{"GoRelease", "go1.22.3", "1.22.3"},
		{"GoMajorMinor", "go1.22", "1.22.0"},
		{"GoReleaseCandidate", "go1.21rc2", "1.21.0-rc2"},
		{"GoBeta", "go1.18beta1", "1.18.0-beta1"},
		{"GoVersionLine", "go version go1.22.3 linux/amd64", "1.22.3"},
		{"PlainSemver", "1.78.0", "1.78.0"},
		{"SemverPrerelease", "1.79.0-beta.2", "1.79.0-beta.2"},
		{"SemverPrereleaseBuild", "1.79.0-beta.2+abc123", "1.79.0-beta.2+abc123"},
		{"VPrefix", "v1.78.0", "1.78.0"},
		{"SurroundingSpace", "  go1.22.3\n", "1.22.3"},
	}
	for _, tc := range valid {
		t.Run(tc.name, func(t *testing.T) {
			v, err := Parse(tc.raw)
			if err != nil {
				t.Fatalf("Parse(%q) error: %s", tc.raw, err)
			}
			if v.String() != tc.want {
				t.Errorf("Parse(%q) wants %s but was %s", tc.raw, tc.want, v)
			}
		})
	}

	invalid := []struct {
		name string
		raw  string
	}{
		{"Devel", "devel go1.23-d2e2f3c Mon Jan 1 00:00:00 2024 +0000"},
		{"Empty", ""},
		{"Garbage", "not a version"},
		{"GoNoMinor", "go1"},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.raw); err == nil {
				t.Errorf("Parse(%q) wants error but was nil", tc.raw)
			}
		})
	}
}

func TestQuerierVersion(t *testing.T) {
	ctx := context.Background()

	t.Run("ReportedVersion", func(t *testing.T) {
		q := NewCommand("echo", "go1.22.3")
		v, err := q.Version(ctx)
		if err != nil {
			t.Fatalf("Version error: %s", err)
		}
		if v.String() != "1.22.3" {
			t.Errorf("Version wants 1.22.3 but was %s", v)
		}
	})

	t.Run("MissingCommand", func(t *testing.T) {
		q := NewCommand("definitely-not-a-toolchain-binary")
		_, err := q.Version(ctx)
		if err == nil {
			t.Fatalf("Version wants error but was nil")
		}
		var queryErr *QueryError
		if !errors.As(err, &queryErr) {
			t.Fatalf("error wants QueryError but was %T", err)
		}
	})

	t.Run("NonZeroExit", func(t *testing.T) {
		q := NewCommand("false")
		_, err := q.Version(ctx)
		if err == nil {
			t.Fatalf("Version wants error but was nil")
		}
		var queryErr *QueryError
		if !errors.As(err, &queryErr) {
			t.Fatalf("error wants QueryError but was %T", err)
		}
	})

	t.Run("UnparsableOutput", func(t *testing.T) {
		q := NewCommand("echo", "devel go1.23-d2e2f3c")
		_, err := q.Version(ctx)
		if err == nil {
			t.Fatalf("Version wants error but was nil")
		}
		var queryErr *QueryError
		if !errors.As(err, &queryErr) {
			t.Fatalf("error wants QueryError but was %T", err)
		}
		if queryErr.Output != "devel go1.23-d2e2f3c" {
			t.Errorf("Output wants the raw report but was %q", queryErr.Output)
		}
	})

	t.Run("RealToolchain", func(t *testing.T) {
		v, err := New().Version(ctx)
		if err != nil {
			t.Skipf("no go toolchain on PATH: %s", err)
		}
		if v.Major() < 1 {
			t.Errorf("Major wants >= 1 but was %d", v.Major())
		}
	})
}
