// Package views resolves the captured build state into its derived
// representations. Every resolver is a pure function of the snapshot, so all
// views produced within one run agree with each other.
package views

import "fmt"

// Kind identifies one derived view of the captured build state. The set is
// closed; Literal emission switches over it exhaustively.
type Kind int

const (
	KindDate Kind = iota
	KindDateString
	KindTime
	KindTimeString
	KindDateTime
	KindDateTimeString
	KindUnixSeconds
	KindToolchainVersion
	KindToolchainVersionString
	KindToolchainVersionMajor
	KindToolchainVersionMinor
	KindToolchainVersionPatch
	KindToolchainVersionPrerelease
	KindToolchainVersionBuildMetadata
)

var kindTable = []struct {
	kind   Kind
	tag    string
	marker string
}{
	{KindDate, "date", "BuildDate"},
	{KindDateString, "date-string", "BuildDateString"},
	{KindTime, "time", "BuildTime"},
	{KindTimeString, "time-string", "BuildTimeString"},
	{KindDateTime, "datetime", "BuildDateTime"},
	{KindDateTimeString, "datetime-string", "BuildDateTimeString"},
	{KindUnixSeconds, "unix-seconds", "BuildUnixSeconds"},
	{KindToolchainVersion, "toolchain-version", "ToolchainVersion"},
	{KindToolchainVersionString, "toolchain-version-string", "ToolchainVersionString"},
	{KindToolchainVersionMajor, "toolchain-version-major", "ToolchainVersionMajor"},
	{KindToolchainVersionMinor, "toolchain-version-minor", "ToolchainVersionMinor"},
	{KindToolchainVersionPatch, "toolchain-version-patch", "ToolchainVersionPatch"},
	{KindToolchainVersionPrerelease, "toolchain-version-prerelease", "ToolchainVersionPrerelease"},
	{KindToolchainVersionBuildMetadata, "toolchain-version-buildmetadata", "ToolchainVersionBuildMetadata"},
}

// All returns every recognized kind in tag order.
func All() []Kind {
	kinds := make([]Kind, len(kindTable))
	for i, e := range kindTable {
		kinds[i] = e.kind
	}
	return kinds
}

// ParseTag maps a view tag such as "datetime-string" to its kind.
func ParseTag(tag string) (Kind, error) {
	for _, e := range kindTable {
		if e.tag == tag {
			return e.kind, nil
		}
	}
	return 0, fmt.Errorf("unknown view tag %q", tag)
}

// FromMarker maps a stamp marker function name to its kind.
func FromMarker(fn string) (Kind, bool) {
	for _, e := range kindTable {
		if e.marker == fn {
			return e.kind, true
		}
	}
	return 0, false
}

// Tag returns the view tag for the kind.
func (k Kind) Tag() string {
	return kindTable[k].tag
}

// Marker returns the stamp marker function name for the kind.
func (k Kind) Marker() string {
	return kindTable[k].marker
}

func (k Kind) String() string {
	return k.Tag()
}

// Versioned reports whether resolving the kind needs the toolchain version
// rather than the build timestamp.
func (k Kind) Versioned() bool {
	return k >= KindToolchainVersion
}
