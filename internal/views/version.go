package views

import "github.com/Masterminds/semver/v3"

// VersionString returns the canonical "major.minor.patch[-prerelease][+build]"
// form, omitting a segment entirely when it is empty.
func VersionString(v *semver.Version) string {
	return v.String()
}

func VersionMajor(v *semver.Version) uint64 {
	return v.Major()
}

func VersionMinor(v *semver.Version) uint64 {
	return v.Minor()
}

func VersionPatch(v *semver.Version) uint64 {
	return v.Patch()
}

// VersionPrerelease returns the prerelease identifier, "" when absent.
func VersionPrerelease(v *semver.Version) string {
	return v.Prerelease()
}

// VersionBuildMetadata returns the build metadata, "" when absent.
func VersionBuildMetadata(v *semver.Version) string {
	return v.Metadata()
}
