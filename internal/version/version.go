package version

// Version holds the current version of bmichart.
// This is updated manually before a new release.
const Version = "1.0.0"

// VersionInfo returns a string with the current version information.
func VersionInfo() string {
	return "bmichart version " + Version
}
