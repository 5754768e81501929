// Package version provides the spraygen release version.
// Versions follow semantic versioning (semver) conventions.
package version

// Version holds the current spraygen version.
// Format: major.minor.patch[-prerelease][+build]
const Version = "0.1.0-dev"
