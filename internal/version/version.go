package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/johnolven/asis-coder/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/johnolven/asis-coder/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/johnolven/asis-coder/internal/version.Date={{.Date}}
)
