package toolchain

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Querier reports the version of the toolchain active for this build.
type Querier interface {
	Version(ctx context.Context) (*semver.Version, error)
}

// QueryError describes a failed version query: the reporting command was
// missing, exited non-zero, or printed something unrecognizable.
type QueryError struct {
	Command string
	Output  string
	Err     error
}

func (e *QueryError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("toolchain version query %q: %s", e.Command, e.Err)
	}
	return fmt.Sprintf("toolchain version query %q returned %q: %s", e.Command, e.Output, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

type querier struct {
	command []string
}

var _ Querier = (*querier)(nil)

// New returns a Querier that asks the Go toolchain on PATH for its version.
func New() *querier {
	return NewCommand("go", "env", "GOVERSION")
}

// NewCommand returns a Querier backed by an arbitrary version-reporting
// command. The command must print the version on stdout.
func NewCommand(name string, args ...string) *querier {
	return &querier{command: append([]string{name}, args...)}
}

func (q *querier) Version(ctx context.Context) (*semver.Version, error) {
	cmd := exec.CommandContext(ctx, q.command[0], q.command[1:]...)
	out, err := cmd.Output()
	if err != nil {
		output := ""
		if exitErr, ok := err.(*exec.ExitError); ok {
			output = strings.TrimSpace(string(exitErr.Stderr))
		}
		return nil, &QueryError{Command: strings.Join(q.command, " "), Output: output, Err: err}
	}

	raw := strings.TrimSpace(string(out))
	v, err := Parse(raw)
	if err != nil {
		return nil, &QueryError{Command: strings.Join(q.command, " "), Output: raw, Err: err}
	}
	return v, nil
}

// goVersionRE matches release toolchain forms: go1.22, go1.22.3, go1.21rc2,
// go1.18beta1. Development toolchains ("devel go1.23-d2e2f3c ...") have no
// determinate version and are rejected.
var goVersionRE = regexp.MustCompile(`^go(\d+)\.(\d+)(?:\.(\d+))?(?:(rc|beta)(\d+))?$`)

// Parse normalizes a version report to a semantic version. Accepted inputs
// are the Go toolchain forms above, the long "go version go1.22.3 linux/amd64"
// form, and plain semver with optional prerelease and build metadata.
func Parse(raw string) (*semver.Version, error) {
	s := strings.TrimSpace(raw)
	if rest, ok := strings.CutPrefix(s, "go version "); ok {
		if i := strings.IndexByte(rest, ' '); i >= 0 {
			rest = rest[:i]
		}
		s = rest
	}

	if m := goVersionRE.FindStringSubmatch(s); m != nil {
		major, err := strconv.ParseUint(m[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("major part of %q: %w", raw, err)
		}
		minor, err := strconv.ParseUint(m[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("minor part of %q: %w", raw, err)
		}
		var patch uint64
		if m[3] != "" {
			if patch, err = strconv.ParseUint(m[3], 10, 64); err != nil {
				return nil, fmt.Errorf("patch part of %q: %w", raw, err)
			}
		}
		prerelease := ""
		if m[4] != "" {
			prerelease = m[4] + m[5]
		}
		return semver.New(major, minor, patch, prerelease, ""), nil
	}

	v, err := semver.StrictNewVersion(strings.TrimPrefix(s, "v"))
	if err != nil {
		return nil, fmt.Errorf("unrecognized toolchain version %q: %w", raw, err)
	}
	return v, nil
}
