package version

// Version is the current CLI version, overridden at build time via
// -ldflags "-X github.com/colwise/cli/internal/version.Version=...".
var Version = "0.0.0-dev"
