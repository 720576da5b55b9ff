// Package stamp declares the marker functions recognized by the buildstamp
// command, together with the host types the spliced literals construct.
//
// A marker call is a placeholder for a build-time constant:
//
//	var builtAt = stamp.BuildDateTimeString()
//
// Running `buildstamp rewrite -w` over the package replaces every marker call
// with a literal derived from a single capture of the build clock and the
// toolchain version. The marker bodies only exist to fail loudly if a program
// is compiled without having been rewritten; none of them ever return.
package stamp

import (
	"time"

	"github.com/Masterminds/semver/v3"
)

// BuildDate is rewritten to the build date as a Date literal.
func BuildDate() Date { panic(notRewritten("BuildDate")) }

// BuildDateString is rewritten to the build date as "YYYY-MM-DD".
func BuildDateString() string { panic(notRewritten("BuildDateString")) }

// BuildTime is rewritten to the build time as a TimeOfDay literal.
func BuildTime() TimeOfDay { panic(notRewritten("BuildTime")) }

// BuildTimeString is rewritten to the build time as "HH:MM:SS".
func BuildTimeString() string { panic(notRewritten("BuildTimeString")) }

// BuildDateTime is rewritten to the build timestamp as a time.Time literal
// at UTC.
func BuildDateTime() time.Time { panic(notRewritten("BuildDateTime")) }

// BuildDateTimeString is rewritten to the build timestamp as
// "YYYY-MM-DDTHH:MM:SSZ".
func BuildDateTimeString() string { panic(notRewritten("BuildDateTimeString")) }

// BuildUnixSeconds is rewritten to the build timestamp as seconds since the
// UNIX epoch.
func BuildUnixSeconds() int64 { panic(notRewritten("BuildUnixSeconds")) }

// ToolchainVersion is rewritten to the toolchain version active during the
// build as a semver.Version literal.
func ToolchainVersion() *semver.Version { panic(notRewritten("ToolchainVersion")) }

// ToolchainVersionString is rewritten to the canonical
// "major.minor.patch[-prerelease][+build]" toolchain version string.
func ToolchainVersionString() string { panic(notRewritten("ToolchainVersionString")) }

// ToolchainVersionMajor is rewritten to the toolchain major version.
func ToolchainVersionMajor() uint64 { panic(notRewritten("ToolchainVersionMajor")) }

// ToolchainVersionMinor is rewritten to the toolchain minor version.
func ToolchainVersionMinor() uint64 { panic(notRewritten("ToolchainVersionMinor")) }

// ToolchainVersionPatch is rewritten to the toolchain patch version.
func ToolchainVersionPatch() uint64 { panic(notRewritten("ToolchainVersionPatch")) }

// ToolchainVersionPrerelease is rewritten to the toolchain prerelease
// identifier, or "" when the version has none.
func ToolchainVersionPrerelease() string { panic(notRewritten("ToolchainVersionPrerelease")) }

// ToolchainVersionBuildMetadata is rewritten to the toolchain build metadata,
// or "" when the version has none.
func ToolchainVersionBuildMetadata() string { panic(notRewritten("ToolchainVersionBuildMetadata")) }

func notRewritten(fn string) string {
	return "stamp: stamp." + fn + "() survived to run time; run buildstamp over this package before compiling"
}
