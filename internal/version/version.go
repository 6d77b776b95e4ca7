// Package version provides build-time version information.
//
// Variables are set at build time via ldflags:
//
//	go build -ldflags "-X github.com/rickgao/etherex-fixtures/internal/version.Version=1.0.0 \
//	                   -X github.com/rickgao/etherex-fixtures/internal/version.Commit=$(git rev-parse --short HEAD) \
//	                   -X github.com/rickgao/etherex-fixtures/internal/version.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package version

// Name is the binary name reported by String.
const Name = "fixtures"

// Build-time variables (set via ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String returns a formatted version string, e.g. "fixtures 1.0.0 (abc1234) built 2024-01-15T10:00:00Z".
func String() string {
	return Name + " " + Version + " (" + Commit + ") built " + BuildTime
}

// LogArgs returns the build info as slog key/value pairs.
func LogArgs() []any {
	return []any{
		"version", Version,
		"commit", Commit,
		"build_time", BuildTime,
	}
}
