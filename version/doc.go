// Package version provides version information and build metadata for treeseed.
//
// Values come from, in order of preference:
//   - Compile-time variables (Version, Commit, Date) set via -ldflags
//   - Runtime build info from debug.ReadBuildInfo()
//   - Fallback defaults for development builds
//
// Release builds set them with:
//
//	go build -ldflags "-X github.com/dendrascience/treeseed/version.Version=v1.0.0 -X github.com/dendrascience/treeseed/version.Commit=abc123 -X github.com/dendrascience/treeseed/version.Date=2023-01-01T00:00:00Z"
//
// GetFullVersion is what `treeseed --version` prints, and the generator
// stamps GetVersion into every run report.
package version
