// Package version provides the litbuild tool version.
package version

// Version is the litbuild tool version.
// Can be overridden at build time with:
//   go build -ldflags "-X github.com/grove-tools/litbuild/pkg/version.Version=2.0.1"
var Version = "dev"
