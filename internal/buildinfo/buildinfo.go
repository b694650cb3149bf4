// Package buildinfo holds release metadata injected with
// -ldflags "-X github.com/Dr-Obek/textfilter/internal/buildinfo.Version=…".
package buildinfo

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// LogAttrs returns the metadata as slog key/value pairs.
func LogAttrs() []any {
	return []any{"version", Version, "commit", Commit, "build_date", Date}
}
