// Package constant defines immutable application-level identifiers and build metadata.
package constant

const (
	// Tubevault is the canonical application identifier used for filesystem paths and CLI branding.
	Tubevault = "tubevault"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent is sent with every request to the artwork lookup service.
	UserAgent = "tubevault/" + Version
)

// Build metadata, overridden at link time with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
